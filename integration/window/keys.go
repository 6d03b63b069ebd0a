// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package window

import (
	"github.com/gogpu/gpucontext"

	"github.com/gogpu/boxplay"
	"github.com/gogpu/boxplay/control"
)

// keyMap maps window keys to direction keys.
var keyMap = map[gpucontext.Key]control.Key{
	gpucontext.KeyW:     control.KeyUp,
	gpucontext.KeyA:     control.KeyLeft,
	gpucontext.KeyS:     control.KeyDown,
	gpucontext.KeyD:     control.KeyRight,
	gpucontext.KeyUp:    control.KeyUp,
	gpucontext.KeyLeft:  control.KeyLeft,
	gpucontext.KeyDown:  control.KeyDown,
	gpucontext.KeyRight: control.KeyRight,
}

// pressEvent translates a key press. Escape quits.
func pressEvent(k gpucontext.Key) (boxplay.Event, bool) {
	if k == gpucontext.KeyEscape {
		return boxplay.QuitEvent(), true
	}
	if ck, ok := keyMap[k]; ok {
		return boxplay.KeyDownEvent(ck), true
	}
	return boxplay.Event{}, false
}

// releaseEvent translates a key release.
func releaseEvent(k gpucontext.Key) (boxplay.Event, bool) {
	if ck, ok := keyMap[k]; ok {
		return boxplay.KeyUpEvent(ck), true
	}
	return boxplay.Event{}, false
}
