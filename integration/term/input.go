// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package term

import (
	"context"

	"github.com/gdamore/tcell/v2"

	"github.com/gogpu/boxplay"
	"github.com/gogpu/boxplay/control"
)

// eventBuffer is the capacity of the pump channel.
const eventBuffer = 100

// Pump polls screen events on a goroutine and forwards the ones the sandbox
// understands. The channel is closed when the screen is finalized or ctx is
// done. Feed it to boxplay.ChannelSource.
func Pump(ctx context.Context, screen tcell.Screen) <-chan boxplay.Event {
	ch := make(chan boxplay.Event, eventBuffer)
	go func() {
		defer close(ch)
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			if _, ok := ev.(*tcell.EventResize); ok {
				screen.Sync()
				continue
			}
			bev, ok := translate(ev)
			if !ok {
				continue
			}
			select {
			case ch <- bev:
			case <-ctx.Done():
				return
			}
		}
	}()
	return ch
}

// translate maps a tcell event to a sandbox event. Terminals deliver presses
// only, so every key becomes a key-down.
func translate(ev tcell.Event) (boxplay.Event, bool) {
	kev, ok := ev.(*tcell.EventKey)
	if !ok {
		return boxplay.Event{}, false
	}

	switch kev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return boxplay.QuitEvent(), true
	case tcell.KeyUp:
		return boxplay.KeyDownEvent(control.KeyUp), true
	case tcell.KeyDown:
		return boxplay.KeyDownEvent(control.KeyDown), true
	case tcell.KeyLeft:
		return boxplay.KeyDownEvent(control.KeyLeft), true
	case tcell.KeyRight:
		return boxplay.KeyDownEvent(control.KeyRight), true
	case tcell.KeyRune:
		r := kev.Rune()
		if r == 'q' || r == 'Q' {
			return boxplay.QuitEvent(), true
		}
		if k := control.KeyForRune(r); k != control.KeyUnknown {
			return boxplay.KeyDownEvent(k), true
		}
	}
	return boxplay.Event{}, false
}
