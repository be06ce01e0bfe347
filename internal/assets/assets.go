// Package assets resolves game data paths. Game paths use backslash
// separators and were written for a case-insensitive file system, so
// lookups fall back to a case-insensitive match of each path element.
package assets

import (
	"fmt"
	"io"
	"io/fs"
	"path"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// FS is a read-only view of the game data directory.
type FS struct {
	fs     afero.Fs
	root   string
	logger *zap.Logger
}

// New returns an FS rooted at dir on the host file system.
func New(dir string, logger *zap.Logger) *FS {
	return NewFromFs(afero.NewBasePathFs(afero.NewOsFs(), dir), dir, logger)
}

// NewFromFs wraps an existing afero file system. root is only used when
// reporting host paths.
func NewFromFs(fsys afero.Fs, root string, logger *zap.Logger) *FS {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &FS{fs: afero.NewReadOnlyFs(fsys), root: root, logger: logger}
}

// Clean converts a game path to a slash separated relative path.
func Clean(gamePath string) string {
	p := strings.ReplaceAll(gamePath, `\`, "/")
	p = path.Clean("/" + p)
	return strings.TrimPrefix(p, "/")
}

// Lookup returns the path of gamePath inside the file system, matching
// each element case-insensitively when there is no exact match.
func (f *FS) Lookup(gamePath string) (string, error) {
	clean := Clean(gamePath)
	if clean == "" {
		return "", fmt.Errorf("lookup %q: %w", gamePath, fs.ErrInvalid)
	}
	if _, err := f.fs.Stat(clean); err == nil {
		return clean, nil
	}

	match, err := f.matchFold("", strings.Split(clean, "/"))
	if err != nil {
		return "", fmt.Errorf("lookup %q: %w", gamePath, err)
	}
	f.logger.Debug("case-insensitive asset match", zap.String("path", gamePath), zap.String("match", match))
	return match, nil
}

// matchFold resolves elems below dir. Every entry equal to the next element
// under case folding is a candidate, exact spelling first; a candidate whose
// subtree does not hold the rest of the path is abandoned for the next one.
func (f *FS) matchFold(dir string, elems []string) (string, error) {
	if len(elems) == 0 {
		return dir, nil
	}
	base := dir
	if base == "" {
		base = "."
	}
	entries, err := afero.ReadDir(f.fs, base)
	if err != nil {
		return "", fs.ErrNotExist
	}

	elem := elems[0]
	var candidates []string
	for _, e := range entries {
		switch {
		case e.Name() == elem:
			candidates = append([]string{elem}, candidates...)
		case strings.EqualFold(e.Name(), elem):
			if len(elems) > 1 && !e.IsDir() {
				continue
			}
			candidates = append(candidates, e.Name())
		}
	}
	for _, c := range candidates {
		if match, err := f.matchFold(path.Join(dir, c), elems[1:]); err == nil {
			return match, nil
		}
	}
	return "", fs.ErrNotExist
}

// Exists reports whether gamePath names a regular file.
func (f *FS) Exists(gamePath string) bool {
	p, err := f.Lookup(gamePath)
	if err != nil {
		return false
	}
	info, err := f.fs.Stat(p)
	return err == nil && !info.IsDir()
}

// Open opens gamePath for reading.
func (f *FS) Open(gamePath string) (io.ReadCloser, error) {
	p, err := f.Lookup(gamePath)
	if err != nil {
		return nil, err
	}
	return f.fs.Open(p)
}

// Resolve returns the host path of gamePath, for consumers that open files
// themselves.
func (f *FS) Resolve(gamePath string) (string, error) {
	p, err := f.Lookup(gamePath)
	if err != nil {
		return "", err
	}
	return filepath.Join(f.root, filepath.FromSlash(p)), nil
}
