// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"image"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/boxplay/internal/arena"
)

// DrawableID identifies an uploaded drawable. The zero value is never valid.
type DrawableID uint64

// IsZero reports whether id is the zero identifier.
func (id DrawableID) IsZero() bool {
	return id == 0
}

// Drawable is an uploaded image.
type Drawable struct {
	// Image holds the pixels, 4 bytes per pixel.
	Image *image.RGBA

	// Format is the pixel format of Image as a GPU texture format.
	Format gputypes.TextureFormat
}

// Width returns the drawable width in pixels.
func (d *Drawable) Width() int { return d.Image.Bounds().Dx() }

// Height returns the drawable height in pixels.
func (d *Drawable) Height() int { return d.Image.Bounds().Dy() }

// DrawableTable owns drawables on behalf of a backend.
//
// DrawableTable is NOT safe for concurrent use.
type DrawableTable struct {
	slots *arena.Arena[*Drawable]
}

// NewDrawableTable creates an empty table.
func NewDrawableTable() *DrawableTable {
	return &DrawableTable{slots: arena.New[*Drawable]()}
}

// Create stores img and returns its identifier.
func (t *DrawableTable) Create(img *image.RGBA) (DrawableID, error) {
	if img == nil || img.Bounds().Empty() {
		return 0, ErrEmptyImage
	}
	h := t.slots.Insert(&Drawable{
		Image:  img,
		Format: gputypes.TextureFormatRGBA8Unorm,
	})
	return DrawableID(h), nil
}

// Get returns the drawable for id.
func (t *DrawableTable) Get(id DrawableID) (*Drawable, bool) {
	return t.slots.Get(arena.Handle(id))
}

// Release removes the drawable for id.
func (t *DrawableTable) Release(id DrawableID) error {
	if _, ok := t.slots.Remove(arena.Handle(id)); !ok {
		return ErrInvalidDrawable
	}
	return nil
}

// Len returns the number of live drawables.
func (t *DrawableTable) Len() int {
	return t.slots.Len()
}

// IDs returns the identifiers of all live drawables.
func (t *DrawableTable) IDs() []DrawableID {
	hs := t.slots.Handles()
	ids := make([]DrawableID, len(hs))
	for i, h := range hs {
		ids[i] = DrawableID(h)
	}
	return ids
}
