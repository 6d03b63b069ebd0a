// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package term

import (
	"fmt"
	"image"
	"image/color"

	"github.com/gdamore/tcell/v2"

	"github.com/gogpu/boxplay/render"
)

// Backend implements render.Backend on a tcell screen.
//
// Backend is NOT safe for concurrent use. The screen itself may be polled
// for events from another goroutine.
type Backend struct {
	screen tcell.Screen
	owned  bool

	// width and height are the logical pixel size the sandbox draws in.
	width, height int

	cols, rows int
	cells      []color.RGBA

	drawables *render.DrawableTable
	frames    uint64
	closed    bool
}

// Open creates and initializes a terminal screen and wraps it.
// Close finalizes the screen.
func Open(width, height int) (*Backend, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("term: new screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("term: init screen: %w", err)
	}
	b := NewBackend(screen, width, height)
	b.owned = true
	return b, nil
}

// NewBackend wraps an initialized screen. The caller keeps ownership of the
// screen.
func NewBackend(screen tcell.Screen, width, height int) *Backend {
	b := &Backend{
		screen:    screen,
		width:     width,
		height:    height,
		drawables: render.NewDrawableTable(),
	}
	b.resize()
	return b
}

// Screen returns the wrapped screen.
func (b *Backend) Screen() tcell.Screen {
	return b.screen
}

// Size returns the logical pixel size.
func (b *Backend) Size() (width, height int) {
	return b.width, b.height
}

// Grid returns the current character grid size.
func (b *Backend) Grid() (cols, rows int) {
	return b.cols, b.rows
}

// Frames returns the number of presented frames.
func (b *Backend) Frames() uint64 {
	return b.frames
}

func (b *Backend) resize() {
	cols, rows := b.screen.Size()
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}
	if cols == b.cols && rows == b.rows {
		return
	}
	b.cols, b.rows = cols, rows
	b.cells = make([]color.RGBA, cols*rows)
}

// center returns the pixel at the center of cell (cx, cy).
func (b *Backend) center(cx, cy int) image.Point {
	return image.Pt(
		(2*cx+1)*b.width/(2*b.cols),
		(2*cy+1)*b.height/(2*b.rows),
	)
}

// cellRange returns the cells whose centers may fall inside r.
func (b *Backend) cellRange(r image.Rectangle) (x0, y0, x1, y1 int) {
	x0 = max(r.Min.X*b.cols/b.width-1, 0)
	y0 = max(r.Min.Y*b.rows/b.height-1, 0)
	x1 = min(r.Max.X*b.cols/b.width+1, b.cols)
	y1 = min(r.Max.Y*b.rows/b.height+1, b.rows)
	return x0, y0, x1, y1
}

// Clear picks up terminal resizes and fills every cell with c.
func (b *Backend) Clear(c color.RGBA) {
	b.resize()
	for i := range b.cells {
		b.cells[i] = c
	}
}

// FillRect sets every cell whose center lies in r.
func (b *Backend) FillRect(r image.Rectangle, c color.RGBA) {
	x0, y0, x1, y1 := b.cellRange(r)
	for cy := y0; cy < y1; cy++ {
		for cx := x0; cx < x1; cx++ {
			if b.center(cx, cy).In(r) {
				b.cells[cy*b.cols+cx] = c
			}
		}
	}
}

// CopyDrawable samples the drawable at every cell center inside dst and
// blends the premultiplied sample over the cell.
func (b *Backend) CopyDrawable(id render.DrawableID, dst image.Rectangle) error {
	d, ok := b.drawables.Get(id)
	if !ok {
		return render.ErrInvalidDrawable
	}
	if dst.Empty() {
		return nil
	}
	src := d.Image
	sw, sh := d.Width(), d.Height()

	x0, y0, x1, y1 := b.cellRange(dst)
	for cy := y0; cy < y1; cy++ {
		for cx := x0; cx < x1; cx++ {
			p := b.center(cx, cy)
			if !p.In(dst) {
				continue
			}
			sx := (p.X - dst.Min.X) * sw / dst.Dx()
			sy := (p.Y - dst.Min.Y) * sh / dst.Dy()
			i := &b.cells[cy*b.cols+cx]
			*i = over(src.RGBAAt(src.Rect.Min.X+sx, src.Rect.Min.Y+sy), *i)
		}
	}
	return nil
}

// over composites premultiplied s over d.
func over(s, d color.RGBA) color.RGBA {
	inv := 255 - uint32(s.A)
	blend := func(sc, dc uint8) uint8 {
		return uint8(uint32(sc) + (uint32(dc)*inv+127)/255)
	}
	return color.RGBA{
		R: blend(s.R, d.R),
		G: blend(s.G, d.G),
		B: blend(s.B, d.B),
		A: blend(s.A, d.A),
	}
}

// Present writes the cells to the screen and shows it.
func (b *Backend) Present() error {
	if b.closed {
		return render.ErrClosed
	}
	for cy := 0; cy < b.rows; cy++ {
		for cx := 0; cx < b.cols; cx++ {
			c := b.cells[cy*b.cols+cx]
			bg := tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
			b.screen.SetContent(cx, cy, ' ', nil, tcell.StyleDefault.Background(bg))
		}
	}
	b.screen.Show()
	b.frames++
	return nil
}

// Cell returns the color of cell (cx, cy) in the last drawn frame.
func (b *Backend) Cell(cx, cy int) color.RGBA {
	if cx < 0 || cy < 0 || cx >= b.cols || cy >= b.rows {
		return color.RGBA{}
	}
	return b.cells[cy*b.cols+cx]
}

// CreateDrawable keeps img for sampling.
func (b *Backend) CreateDrawable(img *image.RGBA) (render.DrawableID, error) {
	if b.closed {
		return 0, render.ErrClosed
	}
	return b.drawables.Create(img)
}

// ReleaseDrawable drops a drawable.
func (b *Backend) ReleaseDrawable(id render.DrawableID) error {
	return b.drawables.Release(id)
}

// Drawables returns the number of live drawables.
func (b *Backend) Drawables() int {
	return b.drawables.Len()
}

// Close finalizes the screen if Open created it. Close is idempotent.
func (b *Backend) Close() {
	if b.closed {
		return
	}
	b.closed = true
	if b.owned {
		b.screen.Fini()
	}
}

var _ render.Backend = (*Backend)(nil)
