// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"fmt"
	"image"
	"image/color"
)

// OpKind identifies a recorded renderer call.
type OpKind int

const (
	// OpClear is a Clear call.
	OpClear OpKind = iota
	// OpFillRect is a FillRect call.
	OpFillRect
	// OpCopy is a CopyDrawable call.
	OpCopy
	// OpPresent is a Present call.
	OpPresent
)

// String returns the name of the op.
func (k OpKind) String() string {
	switch k {
	case OpClear:
		return "Clear"
	case OpFillRect:
		return "FillRect"
	case OpCopy:
		return "Copy"
	case OpPresent:
		return "Present"
	default:
		return fmt.Sprintf("OpKind(%d)", int(k))
	}
}

// Op is one recorded call.
type Op struct {
	Kind     OpKind
	Rect     image.Rectangle
	Color    color.RGBA
	Drawable DrawableID
}

// Recorder is a Backend that records calls instead of drawing.
// It is used by tests and by the headless driver when no snapshot is
// requested.
type Recorder struct {
	width, height int

	drawables *DrawableTable
	ops       []Op
	created   []DrawableID
	released  []DrawableID
	frames    uint64

	// FailCreateAfter makes CreateDrawable fail once this many drawables
	// have been created. Zero disables the failure.
	FailCreateAfter int
}

// NewRecorder creates a recorder reporting the given target size.
func NewRecorder(width, height int) *Recorder {
	return &Recorder{
		width:     width,
		height:    height,
		drawables: NewDrawableTable(),
	}
}

// Size returns the reported target size.
func (r *Recorder) Size() (width, height int) {
	return r.width, r.height
}

func (r *Recorder) Clear(c color.RGBA) {
	r.ops = append(r.ops, Op{Kind: OpClear, Color: c})
}

func (r *Recorder) FillRect(rect image.Rectangle, c color.RGBA) {
	r.ops = append(r.ops, Op{Kind: OpFillRect, Rect: rect, Color: c})
}

func (r *Recorder) CopyDrawable(id DrawableID, dst image.Rectangle) error {
	if _, ok := r.drawables.Get(id); !ok {
		return fmt.Errorf("render: copy %#x: %w", uint64(id), ErrInvalidDrawable)
	}
	r.ops = append(r.ops, Op{Kind: OpCopy, Rect: dst, Drawable: id})
	return nil
}

func (r *Recorder) Present() error {
	r.ops = append(r.ops, Op{Kind: OpPresent})
	r.frames++
	return nil
}

func (r *Recorder) CreateDrawable(img *image.RGBA) (DrawableID, error) {
	if r.FailCreateAfter > 0 && len(r.created) >= r.FailCreateAfter {
		return 0, fmt.Errorf("render: recorder: create limit %d reached", r.FailCreateAfter)
	}
	id, err := r.drawables.Create(img)
	if err != nil {
		return 0, err
	}
	r.created = append(r.created, id)
	return id, nil
}

func (r *Recorder) ReleaseDrawable(id DrawableID) error {
	if err := r.drawables.Release(id); err != nil {
		return err
	}
	r.released = append(r.released, id)
	return nil
}

// Drawable returns a live drawable.
func (r *Recorder) Drawable(id DrawableID) (*Drawable, bool) {
	return r.drawables.Get(id)
}

// Ops returns the recorded calls since the last Reset.
func (r *Recorder) Ops() []Op {
	return r.ops
}

// OpsOf returns the recorded calls of one kind.
func (r *Recorder) OpsOf(kind OpKind) []Op {
	var out []Op
	for _, op := range r.ops {
		if op.Kind == kind {
			out = append(out, op)
		}
	}
	return out
}

// Created returns every created drawable in creation order.
func (r *Recorder) Created() []DrawableID {
	return r.created
}

// Released returns every released drawable in release order.
func (r *Recorder) Released() []DrawableID {
	return r.released
}

// Live returns the number of drawables not yet released.
func (r *Recorder) Live() int {
	return r.drawables.Len()
}

// Frames returns the number of Present calls.
func (r *Recorder) Frames() uint64 {
	return r.frames
}

// Reset drops the recorded ops but keeps drawables.
func (r *Recorder) Reset() {
	r.ops = r.ops[:0]
}
