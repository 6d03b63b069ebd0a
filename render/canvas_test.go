// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"errors"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/gogpu/gg"
)

func rgbaAt(img image.Image, x, y int) color.RGBA {
	return color.RGBAModel.Convert(img.At(x, y)).(color.RGBA)
}

func near(a, b uint8) bool {
	d := int(a) - int(b)
	return d >= -2 && d <= 2
}

func nearColor(a, b color.RGBA) bool {
	return near(a.R, b.R) && near(a.G, b.G) && near(a.B, b.B) && near(a.A, b.A)
}

func TestCanvas_ClearAndFill(t *testing.T) {
	c := NewCanvas(64, 64)
	defer c.Close()

	bg := color.RGBA{200, 200, 200, 255}
	fg := color.RGBA{255, 0, 255, 255}
	c.Clear(bg)
	c.FillRect(image.Rect(10, 10, 30, 30), fg)
	if err := c.Present(); err != nil {
		t.Fatal(err)
	}

	img := c.Image()
	if got := rgbaAt(img, 20, 20); !nearColor(got, fg) {
		t.Errorf("inside rect = %v, want %v", got, fg)
	}
	if got := rgbaAt(img, 50, 50); !nearColor(got, bg) {
		t.Errorf("background = %v, want %v", got, bg)
	}
	if c.Frames() != 1 {
		t.Errorf("Frames() = %d", c.Frames())
	}
}

func TestCanvas_CopyDrawable(t *testing.T) {
	c := NewCanvas(32, 32)
	defer c.Close()

	src := image.NewRGBA(image.Rect(0, 0, 4, 4))
	red := color.RGBA{255, 0, 0, 255}
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			src.SetRGBA(x, y, red)
		}
	}
	id, err := c.CreateDrawable(src)
	if err != nil {
		t.Fatal(err)
	}

	c.Clear(color.RGBA{0, 0, 0, 255})
	if err := c.CopyDrawable(id, image.Rect(8, 8, 12, 12)); err != nil {
		t.Fatal(err)
	}
	if got := rgbaAt(c.Image(), 9, 9); !nearColor(got, red) {
		t.Errorf("copied pixel = %v, want %v", got, red)
	}
	if got := rgbaAt(c.Image(), 20, 20); got.R != 0 {
		t.Errorf("pixel outside dst touched: %v", got)
	}

	if err := c.ReleaseDrawable(id); err != nil {
		t.Fatal(err)
	}
	if err := c.CopyDrawable(id, image.Rect(0, 0, 4, 4)); !errors.Is(err, ErrInvalidDrawable) {
		t.Errorf("copy after release: err = %v, want ErrInvalidDrawable", err)
	}
}

func TestCanvas_PresentHook(t *testing.T) {
	var calls int
	dc := gg.NewContext(8, 8)
	defer dc.Close()

	c := NewCanvasForContext(dc, WithPresent(func(got *gg.Context) error {
		if got != dc {
			t.Error("present hook got a different context")
		}
		calls++
		return nil
	}))
	if err := c.Present(); err != nil {
		t.Fatal(err)
	}
	if calls != 1 {
		t.Errorf("hook called %d times", calls)
	}

	hookErr := errors.New("lost surface")
	c = NewCanvasForContext(dc, WithPresent(func(*gg.Context) error { return hookErr }))
	if err := c.Present(); !errors.Is(err, hookErr) {
		t.Errorf("err = %v, want wrapped hook error", err)
	}
}

func TestCanvas_SavePNG(t *testing.T) {
	c := NewCanvas(16, 16)
	defer c.Close()
	c.Clear(color.RGBA{1, 2, 3, 255})

	path := filepath.Join(t.TempDir(), "frame.png")
	if err := c.SavePNG(path); err != nil {
		t.Fatal(err)
	}
	if st, err := os.Stat(path); err != nil || st.Size() == 0 {
		t.Errorf("snapshot missing: %v", err)
	}
}

func TestCanvas_Closed(t *testing.T) {
	c := NewCanvas(4, 4)
	if _, err := c.CreateDrawable(image.NewRGBA(image.Rect(0, 0, 1, 1))); err != nil {
		t.Fatal(err)
	}
	if err := c.Close(); err != nil {
		t.Fatal(err)
	}
	if c.Drawables() != 0 {
		t.Errorf("Drawables() = %d after Close", c.Drawables())
	}
	if _, err := c.CreateDrawable(image.NewRGBA(image.Rect(0, 0, 1, 1))); !errors.Is(err, ErrClosed) {
		t.Errorf("err = %v, want ErrClosed", err)
	}
	if err := c.Close(); err != nil {
		t.Errorf("second Close: %v", err)
	}
}

func TestCanvas_Retarget(t *testing.T) {
	c := NewCanvas(32, 32)
	defer c.Close()

	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for i := range img.Pix {
		img.Pix[i] = 0xff
	}
	id, err := c.CreateDrawable(img)
	if err != nil {
		t.Fatal(err)
	}

	dc := gg.NewContext(16, 16)
	defer dc.Close()
	if err := c.Retarget(dc); err != nil {
		t.Fatal(err)
	}
	if w, h := c.Size(); w != 16 || h != 16 {
		t.Errorf("Size() = %dx%d after retarget, want 16x16", w, h)
	}

	c.Clear(color.RGBA{0, 0, 0, 255})
	if err := c.CopyDrawable(id, image.Rect(0, 0, 4, 4)); err != nil {
		t.Fatalf("drawable lost on retarget: %v", err)
	}
	if err := c.Present(); err != nil {
		t.Fatal(err)
	}
	if got := rgbaAt(dc.Image(), 1, 1); !nearColor(got, color.RGBA{255, 255, 255, 255}) {
		t.Errorf("pixel = %v, want white in the new context", got)
	}

	// The caller owns the new context; Close must not close it.
	if err := c.Close(); err != nil {
		t.Fatal(err)
	}
	if dc.Width() != 16 {
		t.Error("context unusable after canvas Close")
	}
}
