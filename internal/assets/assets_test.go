package assets

import (
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, root, rel, data string) {
	t.Helper()
	p := filepath.Join(root, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(p, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestClean(t *testing.T) {
	tests := []struct{ in, want string }{
		{`art\cuts\intro.mve`, "art/cuts/intro.mve"},
		{"color.pal", "color.pal"},
		{`..\..\etc\passwd`, "etc/passwd"},
		{`\text\english\cuts\boil3.sve`, "text/english/cuts/boil3.sve"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := Clean(tt.in); got != tt.want {
			t.Errorf("Clean(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestExists(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "ART/CUTS/INTRO.MVE", "movie")
	writeFile(t, root, "text/english/cuts/boil3.sve", "1:hi")
	if err := os.MkdirAll(filepath.Join(root, "art", "dir.mve"), 0o755); err != nil {
		t.Fatal(err)
	}

	f := New(root, nil)
	tests := []struct {
		path string
		want bool
	}{
		{`art\cuts\intro.mve`, true},
		{`ART\CUTS\INTRO.MVE`, true},
		{`text\english\cuts\boil3.sve`, true},
		{`text\german\cuts\boil3.sve`, false},
		{`art\cuts\boil3.mve`, false},
		{`art\dir.mve`, false},
		{"", false},
	}
	for _, tt := range tests {
		if got := f.Exists(tt.path); got != tt.want {
			t.Errorf("Exists(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}

func TestLookupBacktracksPastShadowingDirs(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "ART/CUTS/INTRO.MVE", "movie")
	writeFile(t, root, "art/other/readme.txt", "x")
	writeFile(t, root, "Text/English/cuts/boil3.sve", "1:hi")
	writeFile(t, root, "text/english/notes.txt", "x")
	writeFile(t, root, "text/ENGLISH/CUTS", "a file, not a directory")

	f := New(root, nil)
	tests := []struct {
		path string
		want string
	}{
		{`art\cuts\intro.mve`, "ART/CUTS/INTRO.MVE"},
		{`art\other\readme.txt`, "art/other/readme.txt"},
		{`text\english\cuts\boil3.sve`, "Text/English/cuts/boil3.sve"},
	}
	for _, tt := range tests {
		got, err := f.Lookup(tt.path)
		if err != nil {
			t.Errorf("Lookup(%q): %v", tt.path, err)
			continue
		}
		if got != tt.want {
			t.Errorf("Lookup(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}

	if _, err := f.Lookup(`art\cuts\boil3.mve`); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("Lookup of missing movie = %v, want fs.ErrNotExist", err)
	}
}

func TestOpenAndResolve(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "Color.Pal", "palette")
	f := New(root, nil)

	rc, err := f.Open("color.pal")
	if err != nil {
		t.Fatal(err)
	}
	data, err := io.ReadAll(rc)
	rc.Close()
	if err != nil || string(data) != "palette" {
		t.Fatalf("read %q, %v", data, err)
	}

	p, err := f.Resolve("color.pal")
	if err != nil {
		t.Fatal(err)
	}
	if got, err := os.ReadFile(p); err != nil || string(got) != "palette" {
		t.Errorf("Resolve = %q: %q, %v", p, got, err)
	}

	if _, err := f.Open(`missing\file.pal`); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("missing file err = %v", err)
	}
}
