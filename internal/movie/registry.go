package movie

import (
	"errors"
	"fmt"
	"io"
)

// ErrCorruptSave is returned when persisted playback history is truncated
// or holds values other than 0 and 1.
var ErrCorruptSave = errors.New("corrupt movie history")

// Registry records which movies have been shown. Its persisted form is one
// byte per movie in ID order, each 0 or 1.
type Registry struct {
	played [MovieCount]byte
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Reset marks every movie as not played.
func (r *Registry) Reset() {
	r.played = [MovieCount]byte{}
}

// MarkPlayed records id as played. id must be valid.
func (r *Registry) MarkPlayed(id ID) {
	if !id.Valid() {
		panic(fmt.Sprintf("movie: MarkPlayed(%d) out of range", int(id)))
	}
	r.played[id] = 1
}

// HasPlayed reports whether id has been played.
func (r *Registry) HasPlayed(id ID) bool {
	if !id.Valid() {
		return false
	}
	return r.played[id] == 1
}

// WriteTo writes the MovieCount-byte history to w.
func (r *Registry) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(r.played[:])
	if err == nil && n != MovieCount {
		err = io.ErrShortWrite
	}
	if err != nil {
		return int64(n), fmt.Errorf("write movie history: %w", err)
	}
	return int64(n), nil
}

// ReadFrom loads the history from rd. The registry is only replaced once a
// complete, valid history has been read.
func (r *Registry) ReadFrom(rd io.Reader) (int64, error) {
	var buf [MovieCount]byte
	n, err := io.ReadFull(rd, buf[:])
	if err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return int64(n), fmt.Errorf("read movie history: got %d of %d bytes: %w", n, MovieCount, ErrCorruptSave)
		}
		return int64(n), fmt.Errorf("read movie history: %w", err)
	}
	for i, b := range buf {
		if b > 1 {
			return int64(n), fmt.Errorf("read movie history: entry %d is %d: %w", i, b, ErrCorruptSave)
		}
	}
	r.played = buf
	return int64(n), nil
}

// Played returns the IDs of every played movie in ID order.
func (r *Registry) Played() []ID {
	var ids []ID
	for i, b := range r.played {
		if b == 1 {
			ids = append(ids, ID(i))
		}
	}
	return ids
}
