// Package gallery tracks which image of a project's gallery is on screen.
package gallery

import (
	"errors"
	"fmt"
)

// ErrEmpty is returned when a navigator is requested for zero images.
var ErrEmpty = errors.New("gallery has no images")

// Navigator holds the current image index for one gallery. A navigator is
// owned by a single view and is not safe for concurrent use.
type Navigator struct {
	length int
	index  int
}

// New creates a navigator over length images, starting at the first one.
func New(length int) (*Navigator, error) {
	if length < 1 {
		return nil, ErrEmpty
	}
	return &Navigator{length: length}, nil
}

// At creates a navigator positioned at index i.
func At(length, i int) (*Navigator, error) {
	n, err := New(length)
	if err != nil {
		return nil, err
	}
	if !n.Valid(i) {
		return nil, fmt.Errorf("image index %d out of range [0,%d)", i, length)
	}
	n.index = i
	return n, nil
}

// Len returns the number of images.
func (n *Navigator) Len() int { return n.length }

// Index returns the current image index.
func (n *Navigator) Index() int { return n.index }

// Valid reports whether i is a usable index for JumpTo.
func (n *Navigator) Valid(i int) bool {
	return i >= 0 && i < n.length
}

// HasControls reports whether previous/next controls should be offered.
func (n *Navigator) HasControls() bool {
	return n.length > 1
}

// Advance moves to the next image, wrapping from the last to the first.
func (n *Navigator) Advance() int {
	n.index = (n.index + 1) % n.length
	return n.index
}

// Retreat moves to the previous image, wrapping from the first to the last.
func (n *Navigator) Retreat() int {
	n.index = (n.index - 1 + n.length) % n.length
	return n.index
}

// JumpTo selects image i directly. i must satisfy Valid; anything else is a
// programming error and panics.
func (n *Navigator) JumpTo(i int) int {
	if !n.Valid(i) {
		panic(fmt.Sprintf("gallery: JumpTo(%d) out of range [0,%d)", i, n.length))
	}
	n.index = i
	return n.index
}

// Next returns the index Advance would move to, without moving.
func (n *Navigator) Next() int {
	return (n.index + 1) % n.length
}

// Prev returns the index Retreat would move to, without moving.
func (n *Navigator) Prev() int {
	return (n.index - 1 + n.length) % n.length
}
