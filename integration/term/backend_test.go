// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package term

import (
	"context"
	"errors"
	"image"
	"image/color"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/gogpu/boxplay"
	"github.com/gogpu/boxplay/control"
	"github.com/gogpu/boxplay/render"
)

var (
	gray    = color.RGBA{200, 200, 200, 255}
	magenta = color.RGBA{255, 0, 255, 255}
)

// newSimBackend returns an 800x600 pixel backend on an 80x24 grid, so every
// cell covers 10x25 pixels.
func newSimBackend(t *testing.T) (*Backend, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	screen.SetSize(80, 24)
	t.Cleanup(screen.Fini)

	b := NewBackend(screen, 800, 600)
	if cols, rows := b.Grid(); cols != 80 || rows != 24 {
		t.Fatalf("grid = %dx%d, want 80x24", cols, rows)
	}
	return b, screen
}

func TestBackend_FillRect(t *testing.T) {
	b, _ := newSimBackend(t)
	b.Clear(gray)
	b.FillRect(image.Rect(0, 0, 40, 40), magenta)

	tests := []struct {
		cx, cy int
		want   color.RGBA
	}{
		{0, 0, magenta},
		{3, 0, magenta},
		{3, 1, magenta}, // center y 37
		{4, 0, gray},    // center x 45
		{0, 2, gray},    // center y 62
		{79, 23, gray},
	}
	for _, tt := range tests {
		if got := b.Cell(tt.cx, tt.cy); got != tt.want {
			t.Errorf("Cell(%d,%d) = %v, want %v", tt.cx, tt.cy, got, tt.want)
		}
	}
}

func TestBackend_FillRectClipped(t *testing.T) {
	b, _ := newSimBackend(t)
	b.Clear(gray)
	b.FillRect(image.Rect(780, 580, 900, 700), magenta)

	if got := b.Cell(79, 23); got != magenta {
		t.Errorf("corner cell = %v, want %v", got, magenta)
	}
	if got := b.Cell(77, 23); got != gray {
		t.Errorf("cell outside rect = %v", got)
	}
}

func TestBackend_CopyDrawable(t *testing.T) {
	b, _ := newSimBackend(t)

	img := image.NewRGBA(image.Rect(0, 0, 20, 20))
	for i := range img.Pix {
		img.Pix[i] = 0xff
	}
	opaque, err := b.CreateDrawable(img)
	if err != nil {
		t.Fatal(err)
	}

	half := image.NewRGBA(image.Rect(0, 0, 10, 10))
	for i := range half.Pix {
		half.Pix[i] = 128
	}
	translucent, err := b.CreateDrawable(half)
	if err != nil {
		t.Fatal(err)
	}

	b.Clear(color.RGBA{0, 0, 0, 255})
	if err := b.CopyDrawable(opaque, image.Rect(0, 0, 20, 25)); err != nil {
		t.Fatal(err)
	}
	if err := b.CopyDrawable(translucent, image.Rect(100, 0, 110, 25)); err != nil {
		t.Fatal(err)
	}

	white := color.RGBA{255, 255, 255, 255}
	if got := b.Cell(0, 0); got != white {
		t.Errorf("Cell(0,0) = %v, want white", got)
	}
	if got := b.Cell(1, 0); got != white {
		t.Errorf("Cell(1,0) = %v, want white", got)
	}
	if got := b.Cell(2, 0); got != (color.RGBA{0, 0, 0, 255}) {
		t.Errorf("Cell(2,0) = %v, want black", got)
	}
	if got, want := b.Cell(10, 0), (color.RGBA{128, 128, 128, 255}); got != want {
		t.Errorf("blended cell = %v, want %v", got, want)
	}

	if err := b.CopyDrawable(render.DrawableID(999), image.Rect(0, 0, 10, 10)); !errors.Is(err, render.ErrInvalidDrawable) {
		t.Errorf("unknown drawable: err = %v", err)
	}
	if err := b.ReleaseDrawable(opaque); err != nil {
		t.Fatal(err)
	}
	if b.Drawables() != 1 {
		t.Errorf("Drawables() = %d, want 1", b.Drawables())
	}
}

func TestBackend_Present(t *testing.T) {
	b, _ := newSimBackend(t)
	b.Clear(gray)
	if err := b.Present(); err != nil {
		t.Fatal(err)
	}
	if b.Frames() != 1 {
		t.Errorf("Frames() = %d, want 1", b.Frames())
	}

	b.Close()
	b.Close()
	if err := b.Present(); !errors.Is(err, render.ErrClosed) {
		t.Errorf("Present after Close: err = %v", err)
	}
	if _, err := b.CreateDrawable(image.NewRGBA(image.Rect(0, 0, 1, 1))); !errors.Is(err, render.ErrClosed) {
		t.Errorf("CreateDrawable after Close: err = %v", err)
	}
}

func TestTranslate(t *testing.T) {
	tests := []struct {
		name string
		ev   tcell.Event
		want boxplay.Event
		ok   bool
	}{
		{"w", tcell.NewEventKey(tcell.KeyRune, 'w', tcell.ModNone), boxplay.KeyDownEvent(control.KeyUp), true},
		{"D", tcell.NewEventKey(tcell.KeyRune, 'D', tcell.ModNone), boxplay.KeyDownEvent(control.KeyRight), true},
		{"left", tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), boxplay.KeyDownEvent(control.KeyLeft), true},
		{"down", tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModNone), boxplay.KeyDownEvent(control.KeyDown), true},
		{"q", tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone), boxplay.QuitEvent(), true},
		{"escape", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), boxplay.QuitEvent(), true},
		{"ctrl-c", tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl), boxplay.QuitEvent(), true},
		{"other rune", tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone), boxplay.Event{}, false},
		{"resize", tcell.NewEventResize(80, 24), boxplay.Event{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := translate(tt.ev)
			if ok != tt.ok || got != tt.want {
				t.Errorf("translate = (%v, %v), want (%v, %v)", got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestPump(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatal(err)
	}

	ch := Pump(context.Background(), screen)
	screen.InjectKey(tcell.KeyRune, 'x', tcell.ModNone)
	screen.InjectKey(tcell.KeyRune, 'a', tcell.ModNone)

	select {
	case ev := <-ch:
		if ev != boxplay.KeyDownEvent(control.KeyLeft) {
			t.Errorf("event = %v, want key-down left", ev)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("no event pumped")
	}

	screen.Fini()
	select {
	case _, ok := <-ch:
		if ok {
			t.Error("unexpected event after Fini")
		}
	case <-time.After(2 * time.Second):
		t.Fatal("channel not closed after Fini")
	}
}

func TestSandboxOnTerminal(t *testing.T) {
	b, _ := newSimBackend(t)
	sb, err := boxplay.New(b)
	if err != nil {
		t.Fatal(err)
	}
	defer sb.Close()

	script, err := boxplay.ParseScript("d,q")
	if err != nil {
		t.Fatal(err)
	}
	if err := sb.Run(context.Background(), script, boxplay.WithFrameInterval(0)); err != nil {
		t.Fatal(err)
	}
	if b.Frames() != 2 {
		t.Errorf("Frames() = %d, want 2", b.Frames())
	}

	// The player box starts at pixel (200, 200): cell (20, 8) has its center
	// at (205, 212).
	if got, want := b.Cell(20, 8), (color.RGBA{255, 5, 255, 255}); got != want {
		t.Errorf("player cell = %v, want %v", got, want)
	}
	if b.Drawables() == 0 {
		t.Error("no glyph drawables uploaded")
	}
}
