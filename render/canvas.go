// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"fmt"
	"image"
	"image/color"

	"github.com/gogpu/gg"
)

// PresentFunc is called by Canvas.Present after a frame has been drawn.
// Window drivers use it to mark their ggcanvas dirty.
type PresentFunc func(dc *gg.Context) error

// CanvasOption configures a Canvas.
type CanvasOption func(*Canvas)

// WithPresent sets the function run on Present.
func WithPresent(fn PresentFunc) CanvasOption {
	return func(c *Canvas) {
		c.present = fn
	}
}

// Canvas is a Backend that draws through a gg.Context.
//
// Drawables are kept as gg image buffers next to their RGBA source, so
// CopyDrawable never converts pixels on the hot path.
type Canvas struct {
	dc        *gg.Context
	owned     bool
	drawables *DrawableTable
	bufs      map[DrawableID]*gg.ImageBuf
	present   PresentFunc

	fillErr error
	frames  uint64
	closed  bool
}

// NewCanvas creates a standalone canvas of the given size.
func NewCanvas(width, height int, opts ...CanvasOption) *Canvas {
	c := newCanvas(gg.NewContext(width, height), opts)
	c.owned = true
	return c
}

// NewCanvasForContext creates a canvas drawing into an existing context,
// typically the context of an integration/ggcanvas window canvas. The caller
// keeps ownership of dc.
func NewCanvasForContext(dc *gg.Context, opts ...CanvasOption) *Canvas {
	return newCanvas(dc, opts)
}

func newCanvas(dc *gg.Context, opts []CanvasOption) *Canvas {
	c := &Canvas{
		dc:        dc,
		drawables: NewDrawableTable(),
		bufs:      make(map[DrawableID]*gg.ImageBuf),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Context returns the underlying gg context.
func (c *Canvas) Context() *gg.Context {
	return c.dc
}

// Retarget switches drawing to dc, keeping the drawables. A standalone
// canvas closes its own context on the first retarget; the caller owns dc.
func (c *Canvas) Retarget(dc *gg.Context) error {
	if dc == nil || dc == c.dc {
		return nil
	}
	old, owned := c.dc, c.owned
	c.dc, c.owned = dc, false
	if owned {
		return old.Close()
	}
	return nil
}

// Size returns the canvas size in pixels.
func (c *Canvas) Size() (width, height int) {
	return c.dc.Width(), c.dc.Height()
}

// Frames returns the number of presented frames.
func (c *Canvas) Frames() uint64 {
	return c.frames
}

// Clear fills the whole canvas with col.
func (c *Canvas) Clear(col color.RGBA) {
	c.dc.ClearWithColor(gg.FromColor(col))
}

// FillRect fills r with col.
func (c *Canvas) FillRect(r image.Rectangle, col color.RGBA) {
	if r.Empty() {
		return
	}
	c.dc.SetColor(col)
	c.dc.DrawRectangle(float64(r.Min.X), float64(r.Min.Y), float64(r.Dx()), float64(r.Dy()))
	if err := c.dc.Fill(); err != nil && c.fillErr == nil {
		c.fillErr = err
	}
}

// CopyDrawable draws the drawable into dst with nearest-neighbor sampling.
func (c *Canvas) CopyDrawable(id DrawableID, dst image.Rectangle) error {
	buf, ok := c.bufs[id]
	if !ok {
		return fmt.Errorf("render: copy %#x: %w", uint64(id), ErrInvalidDrawable)
	}
	if dst.Empty() {
		return nil
	}
	c.dc.DrawImageEx(buf, gg.DrawImageOptions{
		X:             float64(dst.Min.X),
		Y:             float64(dst.Min.Y),
		DstWidth:      float64(dst.Dx()),
		DstHeight:     float64(dst.Dy()),
		Interpolation: gg.InterpNearest,
		Opacity:       1,
		BlendMode:     gg.BlendNormal,
	})
	return nil
}

// Present finishes the frame. Fill errors recorded during the frame are
// reported here.
func (c *Canvas) Present() error {
	if c.closed {
		return ErrClosed
	}
	err := c.fillErr
	c.fillErr = nil
	if err != nil {
		return fmt.Errorf("render: fill: %w", err)
	}
	if c.present != nil {
		if err := c.present(c.dc); err != nil {
			return fmt.Errorf("render: present: %w", err)
		}
	}
	c.frames++
	return nil
}

// CreateDrawable uploads img.
func (c *Canvas) CreateDrawable(img *image.RGBA) (DrawableID, error) {
	if c.closed {
		return 0, ErrClosed
	}
	id, err := c.drawables.Create(img)
	if err != nil {
		return 0, err
	}
	buf := gg.ImageBufFromImage(img)
	if buf == nil {
		_ = c.drawables.Release(id)
		return 0, fmt.Errorf("render: convert drawable: %w", ErrEmptyImage)
	}
	c.bufs[id] = buf
	return id, nil
}

// ReleaseDrawable frees the drawable.
func (c *Canvas) ReleaseDrawable(id DrawableID) error {
	if err := c.drawables.Release(id); err != nil {
		return err
	}
	delete(c.bufs, id)
	return nil
}

// Drawables returns the number of live drawables.
func (c *Canvas) Drawables() int {
	return c.drawables.Len()
}

// Image returns a snapshot of the canvas pixels.
func (c *Canvas) Image() image.Image {
	return c.dc.Image()
}

// SavePNG writes the canvas to a PNG file.
func (c *Canvas) SavePNG(path string) error {
	return c.dc.SavePNG(path)
}

// Close releases the remaining drawables and, for standalone canvases, the
// gg context. Close is idempotent.
func (c *Canvas) Close() error {
	if c.closed {
		return nil
	}
	c.closed = true
	for _, id := range c.drawables.IDs() {
		_ = c.drawables.Release(id)
	}
	clear(c.bufs)
	if c.owned {
		return c.dc.Close()
	}
	return nil
}
