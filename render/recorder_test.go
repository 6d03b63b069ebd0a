// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"errors"
	"image"
	"image/color"
	"testing"
)

func TestRecorder_RecordsFrame(t *testing.T) {
	r := NewRecorder(640, 480)

	id, err := r.CreateDrawable(image.NewRGBA(image.Rect(0, 0, 8, 8)))
	if err != nil {
		t.Fatal(err)
	}

	bg := color.RGBA{200, 200, 200, 255}
	r.Clear(bg)
	r.FillRect(image.Rect(0, 0, 40, 40), color.RGBA{255, 0, 255, 255})
	if err := r.CopyDrawable(id, image.Rect(10, 10, 18, 18)); err != nil {
		t.Fatal(err)
	}
	if err := r.Present(); err != nil {
		t.Fatal(err)
	}

	want := []OpKind{OpClear, OpFillRect, OpCopy, OpPresent}
	ops := r.Ops()
	if len(ops) != len(want) {
		t.Fatalf("got %d ops, want %d", len(ops), len(want))
	}
	for i, k := range want {
		if ops[i].Kind != k {
			t.Errorf("op %d = %v, want %v", i, ops[i].Kind, k)
		}
	}
	if ops[0].Color != bg {
		t.Errorf("clear color = %v", ops[0].Color)
	}
	if ops[2].Drawable != id {
		t.Error("copy recorded the wrong drawable")
	}
	if r.Frames() != 1 {
		t.Errorf("Frames() = %d", r.Frames())
	}

	r.Reset()
	if len(r.Ops()) != 0 {
		t.Error("Reset kept ops")
	}
}

func TestRecorder_CopyUnknownDrawable(t *testing.T) {
	r := NewRecorder(1, 1)
	if err := r.CopyDrawable(42, image.Rect(0, 0, 1, 1)); !errors.Is(err, ErrInvalidDrawable) {
		t.Errorf("err = %v, want ErrInvalidDrawable", err)
	}
	if len(r.Ops()) != 0 {
		t.Error("failed copy was recorded")
	}
}

func TestRecorder_ReleaseOrder(t *testing.T) {
	r := NewRecorder(1, 1)
	var ids []DrawableID
	for i := 0; i < 3; i++ {
		id, err := r.CreateDrawable(image.NewRGBA(image.Rect(0, 0, 1, 1)))
		if err != nil {
			t.Fatal(err)
		}
		ids = append(ids, id)
	}
	for i := len(ids) - 1; i >= 0; i-- {
		if err := r.ReleaseDrawable(ids[i]); err != nil {
			t.Fatal(err)
		}
	}

	rel := r.Released()
	for i, id := range rel {
		if id != ids[len(ids)-1-i] {
			t.Errorf("release %d = %#x, want %#x", i, id, ids[len(ids)-1-i])
		}
	}
	if r.Live() != 0 {
		t.Errorf("Live() = %d", r.Live())
	}
}

func TestRecorder_FailCreateAfter(t *testing.T) {
	r := NewRecorder(1, 1)
	r.FailCreateAfter = 1
	if _, err := r.CreateDrawable(image.NewRGBA(image.Rect(0, 0, 1, 1))); err != nil {
		t.Fatal(err)
	}
	if _, err := r.CreateDrawable(image.NewRGBA(image.Rect(0, 0, 1, 1))); err == nil {
		t.Error("second create succeeded past the limit")
	}
}
