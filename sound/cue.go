package sound

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(48000)

	// DefaultFrequency is the click pitch in Hz.
	DefaultFrequency = 880.0
	// DefaultDuration is the click length.
	DefaultDuration = 60 * time.Millisecond
	// DefaultMinGap is the shortest interval between two clicks.
	DefaultMinGap = 80 * time.Millisecond
)

// sink receives finished streamers.
type sink interface {
	add(s beep.Streamer)
}

// mixerSink adds streamers to a mixer that is being played by the speaker.
type mixerSink struct {
	mixer *beep.Mixer
}

func (m *mixerSink) add(s beep.Streamer) {
	speaker.Lock()
	m.mixer.Add(s)
	speaker.Unlock()
}

// Option configures a Cue.
type Option func(*Cue)

// WithFrequency sets the click pitch in Hz.
func WithFrequency(hz float64) Option {
	return func(c *Cue) { c.freq = hz }
}

// WithDuration sets the click length.
func WithDuration(d time.Duration) Option {
	return func(c *Cue) { c.dur = d }
}

// WithMinGap sets the shortest interval between two clicks. Contacts that
// arrive faster are dropped.
func WithMinGap(d time.Duration) Option {
	return func(c *Cue) { c.minGap = d }
}

// Cue plays the collision click.
//
// Cue is safe for concurrent use.
type Cue struct {
	mu     sync.Mutex
	sink   sink
	mixer  *beep.Mixer
	freq   float64
	dur    time.Duration
	minGap time.Duration
	now    func() time.Time
	last   time.Time
	played int
}

// NewCue creates a silent cue. Call Open to attach it to the speaker.
func NewCue(opts ...Option) *Cue {
	c := &Cue{
		freq:   DefaultFrequency,
		dur:    DefaultDuration,
		minGap: DefaultMinGap,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Open initializes the speaker and starts the mixer. On error the cue stays
// silent.
func (c *Cue) Open() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.sink != nil {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("sound: init speaker: %w", err)
	}
	c.mixer = &beep.Mixer{}
	speaker.Play(c.mixer)
	c.sink = &mixerSink{mixer: c.mixer}
	slogger().Debug("sound: speaker ready", "rate", int(sampleRate))
	return nil
}

// Enabled reports whether the cue is attached to an output.
func (c *Cue) Enabled() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.sink != nil
}

// Hit plays a click unless the previous one is less than the minimum gap
// ago or the cue is silent. Returns whether a click was queued.
func (c *Cue) Hit() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.sink == nil {
		return false
	}
	now := c.now()
	if !c.last.IsZero() && now.Sub(c.last) < c.minGap {
		return false
	}
	c.last = now
	c.played++
	c.sink.add(beep.Take(sampleRate.N(c.dur), NewClickGenerator(sampleRate, c.freq, 0.25)))
	return true
}

// Played returns the number of queued clicks.
func (c *Cue) Played() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.played
}

// Close stops playback and closes the speaker. The cue is silent afterwards.
func (c *Cue) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.sink == nil {
		return
	}
	if c.mixer != nil {
		speaker.Lock()
		c.mixer.Clear()
		speaker.Unlock()
		speaker.Close()
		c.mixer = nil
	}
	c.sink = nil
}
