package boxplay

import (
	"context"
	"time"

	"github.com/gogpu/boxplay/physics"
)

// EventSource supplies input events to Run.
type EventSource interface {
	// Poll returns the events for the given frame. It must not block.
	Poll(frame uint64) []Event
}

// ChannelSource drains a channel filled by a blocking input goroutine, such
// as a terminal event pump. A closed channel produces a quit event.
type ChannelSource <-chan Event

// Poll implements EventSource.
func (c ChannelSource) Poll(uint64) []Event {
	var evs []Event
	for {
		select {
		case ev, ok := <-c:
			if !ok {
				return append(evs, QuitEvent())
			}
			evs = append(evs, ev)
		default:
			return evs
		}
	}
}

// RunOption configures Run.
type RunOption func(*runOptions)

type runOptions struct {
	maxFrames uint64
	interval  time.Duration
}

// WithMaxFrames stops Run after n frames. Zero means no limit.
func WithMaxFrames(n uint64) RunOption {
	return func(o *runOptions) {
		o.maxFrames = n
	}
}

// WithFrameInterval sets the wall-clock time between frames. Zero runs
// frames back to back, which headless runs use. Default: one fixed step.
func WithFrameInterval(d time.Duration) RunOption {
	return func(o *runOptions) {
		o.interval = d
	}
}

// Run produces frames until a quit event, the frame limit, a frame error or
// context cancellation. Returns nil on quit and on reaching the limit, and
// ctx.Err() on cancellation.
func (s *Sandbox) Run(ctx context.Context, src EventSource, opts ...RunOption) error {
	o := runOptions{interval: time.Duration(physics.FixedStep * float64(time.Second))}
	for _, opt := range opts {
		opt(&o)
	}

	var tick <-chan time.Time
	if o.interval > 0 {
		t := time.NewTicker(o.interval)
		defer t.Stop()
		tick = t.C
	}

	for {
		if o.maxFrames > 0 && s.frames >= o.maxFrames {
			return nil
		}
		if tick != nil {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-tick:
			}
		} else if err := ctx.Err(); err != nil {
			return err
		}

		if src != nil {
			for _, ev := range src.Poll(s.frames) {
				s.Post(ev)
			}
		}
		if err := s.Frame(); err != nil {
			return err
		}
		if s.state == Stopped {
			return nil
		}
	}
}
