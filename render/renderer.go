// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"errors"
	"image"
	"image/color"
)

// Sentinel errors for the render package.
var (
	// ErrInvalidDrawable is returned for zero, released or foreign drawable IDs.
	ErrInvalidDrawable = errors.New("render: invalid drawable")

	// ErrEmptyImage is returned when uploading a nil or zero-area image.
	ErrEmptyImage = errors.New("render: empty image")

	// ErrClosed is returned by backends after Close.
	ErrClosed = errors.New("render: backend closed")
)

// Renderer executes the per-frame drawing commands.
//
// Clear and FillRect never fail; a rectangle partially or completely outside
// the target is clipped. CopyDrawable fails only for unknown drawables.
//
// Example:
//
//	r.Clear(color.RGBA{200, 200, 200, 255})
//	r.FillRect(image.Rect(0, 0, 40, 40), color.RGBA{255, 0, 255, 255})
//	if err := r.CopyDrawable(glyph.Drawable, dst); err != nil {
//	    return err
//	}
//	return r.Present()
type Renderer interface {
	// Clear fills the whole target with c.
	Clear(c color.RGBA)

	// FillRect fills r with c.
	FillRect(r image.Rectangle, c color.RGBA)

	// CopyDrawable copies the whole drawable into dst, scaling if the sizes
	// differ.
	CopyDrawable(id DrawableID, dst image.Rectangle) error

	// Present makes the frame visible.
	Present() error
}

// DrawableStore uploads and releases drawables.
type DrawableStore interface {
	// CreateDrawable uploads img and returns its identifier. The store takes
	// ownership of img; the caller must not modify it afterwards.
	CreateDrawable(img *image.RGBA) (DrawableID, error)

	// ReleaseDrawable frees the drawable. Releasing an unknown identifier
	// returns ErrInvalidDrawable.
	ReleaseDrawable(id DrawableID) error
}

// Backend is a complete rendering backend.
type Backend interface {
	Renderer
	DrawableStore

	// Size returns the target size in pixels (or cells for text backends).
	Size() (width, height int)
}
