package boxplay

import (
	"errors"
	"fmt"
	"image"
	"image/color"

	"golang.org/x/image/font/gofont/gomono"

	"github.com/gogpu/boxplay/control"
	"github.com/gogpu/boxplay/entity"
	"github.com/gogpu/boxplay/physics"
	"github.com/gogpu/boxplay/render"
	"github.com/gogpu/boxplay/sound"
	"github.com/gogpu/boxplay/text"
)

// State is the application state of a Sandbox.
type State int

const (
	// Running means frames are being produced.
	Running State = iota
	// Stopped means a quit event was processed; Frame returns ErrStopped.
	Stopped
)

// String returns the name of the state.
func (s State) String() string {
	switch s {
	case Running:
		return "Running"
	case Stopped:
		return "Stopped"
	default:
		return "Unknown"
	}
}

// Sandbox owns the world, the entities, the controllers and the glyph cache,
// and produces one frame per Frame call.
type Sandbox struct {
	cfg     Config
	backend render.Backend

	world  *physics.World
	reg    *entity.Registry
	player *entity.Entity
	ctrls  []control.Controller
	input  *control.Input

	glyphs  *text.GlyphCache
	layouts *text.LayoutCache
	cue     *sound.Cue

	events   []Event
	state    State
	frames   uint64
	contacts uint64
	closed   bool
}

// New builds the world and the glyph cache and returns a running sandbox.
// The backend must outlive the sandbox; glyph drawables are uploaded to it.
//
// Every failure is a *StartupError naming the resource.
func New(backend render.Backend, opts ...Option) (*Sandbox, error) {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := cfg.Validate(); err != nil {
		return nil, startupError(ResourceConfig, err)
	}
	if backend == nil {
		return nil, startupError(ResourceRenderer, errors.New("nil backend"))
	}

	s := &Sandbox{
		cfg:     cfg,
		backend: backend,
		world:   physics.NewWorld(physics.WithIterations(cfg.Iterations)),
		reg:     entity.NewRegistry(),
		input:   control.NewInput(cfg.InputModel),
	}

	if err := s.populate(); err != nil {
		return nil, startupError(ResourceWorld, err)
	}

	glyphs, err := s.buildGlyphs()
	if err != nil {
		resource := ResourceFontFace
		if errors.Is(err, text.ErrGlyphUpload) {
			resource = ResourceTexture
		}
		return nil, startupError(resource, err)
	}
	s.glyphs = glyphs
	s.layouts = text.NewLayoutCache(glyphs, text.DefaultLayoutCacheSize)

	if cfg.Sound {
		s.attachSound()
	}

	Logger().Info("boxplay: sandbox ready",
		"boxes", s.reg.Len(),
		"controller", cfg.Controller.String(),
		"input", cfg.InputModel.String(),
		"font", glyphs.FontName(),
		"glyphs", glyphs.Len())
	return s, nil
}

// populate spawns BoxCount boxes on the diagonal. The last box is the player;
// the others are static.
func (s *Sandbox) populate() error {
	cfg := s.cfg
	size := cfg.BoxSize * cfg.UnitScale

	for i := 0; i < cfg.BoxCount; i++ {
		spec := entity.BoxSpec{
			Pos:      physics.V(float64(i)*size, float64(i)*size),
			W:        size,
			H:        size,
			Friction: cfg.Friction,
			Color:    color.RGBA{R: 255, G: uint8(i), B: 255, A: 255},
		}

		if i < cfg.BoxCount-1 {
			if _, err := entity.SpawnStatic(s.world, s.reg, spec); err != nil {
				return fmt.Errorf("box %d: %w", i, err)
			}
			continue
		}

		moment := physics.MomentForBox(cfg.Mass, size, size)
		player, err := entity.SpawnPlayer(s.world, s.reg, entity.PlayerSpec{
			BoxSpec: spec,
			Mass:    cfg.Mass,
			Design:  cfg.Controller,
			Tuning:  entity.DefaultAnchorTuning(cfg.Mass, moment, cfg.UnitScale),
		})
		if err != nil {
			return fmt.Errorf("player: %w", err)
		}
		s.player = player
	}

	tuning := cfg.controlTuning()
	for _, e := range s.reg.Playables() {
		c, err := control.New(s.world, e, tuning)
		if err != nil {
			return err
		}
		s.ctrls = append(s.ctrls, c)
	}
	if len(s.ctrls) == 0 {
		return ErrNoPlayable
	}
	return nil
}

func (s *Sandbox) buildGlyphs() (*text.GlyphCache, error) {
	opts := []text.CacheOption{text.WithGlyphFormat(s.cfg.GlyphFormat)}
	if s.cfg.FontPath == "" {
		return text.BuildGlyphCacheFromData(s.backend, gomono.TTF, s.cfg.PixelSize, opts...)
	}
	return text.BuildGlyphCache(s.backend, s.cfg.FontPath, s.cfg.PixelSize, opts...)
}

// attachSound opens the click cue and hooks it to player contacts. Audio
// failures only disable the cue.
func (s *Sandbox) attachSound() {
	s.cue = sound.NewCue()
	if err := s.cue.Open(); err != nil {
		Logger().Warn("boxplay: sound disabled", "err", err)
	}
	err := s.world.OnContact(s.player.Body, func(_, _ physics.BodyHandle) {
		s.contacts++
		s.cue.Hit()
	})
	if err != nil {
		Logger().Warn("boxplay: contact callback", "err", err)
	}
}

// Post queues an event for the next frame.
func (s *Sandbox) Post(ev Event) {
	s.events = append(s.events, ev)
}

// KeyDown queues a key press.
func (s *Sandbox) KeyDown(k control.Key) { s.Post(KeyDownEvent(k)) }

// KeyUp queues a key release.
func (s *Sandbox) KeyUp(k control.Key) { s.Post(KeyUpEvent(k)) }

// Quit queues a quit request.
func (s *Sandbox) Quit() { s.Post(QuitEvent()) }

// Frame runs one frame: input, control, damping, step, render.
//
// A quit event stops the sandbox after this frame completes. Render content
// errors such as a missing overlay glyph are returned and should end the
// loop. Stale handle errors from the controllers are logged and the frame
// continues.
func (s *Sandbox) Frame() error {
	if s.state == Stopped {
		return ErrStopped
	}

	s.handleEvents()

	if dir, ok := s.input.Tick(); ok {
		s.steer(dir)
	}
	if err := control.DampAll(s.ctrls, physics.FixedStep); err != nil {
		Logger().Warn("boxplay: damping", "err", err)
	}

	s.world.Step(physics.FixedStep)

	if err := s.render(); err != nil {
		return err
	}
	s.frames++

	if s.state == Stopped {
		Logger().Info("boxplay: stopped", "frames", s.frames)
	}
	return nil
}

func (s *Sandbox) handleEvents() {
	events := s.events
	s.events = s.events[:0]

	for _, ev := range events {
		switch ev.Kind {
		case EventKeyDown:
			if dir, ok := s.input.KeyDown(ev.Key); ok {
				s.steer(dir)
			}
		case EventKeyUp:
			if dir, ok := s.input.KeyUp(ev.Key); ok {
				s.steer(dir)
			}
		case EventQuit:
			s.state = Stopped
		}
	}
}

func (s *Sandbox) steer(dir physics.Vec2) {
	if _, err := control.Dispatch(s.ctrls, dir); err != nil {
		Logger().Warn("boxplay: steer", "dir", dir, "err", err)
	}
}

// render clears, fills one rectangle per entity with its top-left at the
// body position, draws the overlay and presents.
func (s *Sandbox) render() error {
	r := s.backend
	scale := s.cfg.UnitScale

	r.Clear(s.cfg.ClearColor)
	for _, e := range s.reg.All() {
		pos, ok := s.world.Position(e.Body)
		if !ok {
			continue
		}
		x := int(pos.X / scale)
		y := int(pos.Y / scale)
		r.FillRect(image.Rect(x, y, x+int(e.Size.X/scale), y+int(e.Size.Y/scale)), e.Color)
	}

	if s.cfg.Overlay != "" {
		if err := s.layouts.Draw(r, s.cfg.Overlay, s.cfg.OverlayOrigin); err != nil {
			return fmt.Errorf("boxplay: overlay: %w", err)
		}
	}

	if err := r.Present(); err != nil {
		return fmt.Errorf("boxplay: present: %w", err)
	}
	return nil
}

// Close releases the sound cue and the glyph cache in reverse acquisition
// order. The backend is not closed. Close is idempotent.
func (s *Sandbox) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	s.state = Stopped

	if s.cue != nil {
		s.cue.Close()
	}
	s.layouts.Clear()
	if err := s.glyphs.Close(); err != nil {
		return fmt.Errorf("boxplay: close glyphs: %w", err)
	}
	return nil
}

// Config returns the effective configuration.
func (s *Sandbox) Config() Config { return s.cfg }

// World returns the physics world.
func (s *Sandbox) World() *physics.World { return s.world }

// Registry returns the entity registry.
func (s *Sandbox) Registry() *entity.Registry { return s.reg }

// Player returns the playable entity.
func (s *Sandbox) Player() *entity.Entity { return s.player }

// Controllers returns the playable controllers in registry order.
func (s *Sandbox) Controllers() []control.Controller { return s.ctrls }

// Glyphs returns the overlay glyph cache.
func (s *Sandbox) Glyphs() *text.GlyphCache { return s.glyphs }

// State returns Running or Stopped.
func (s *Sandbox) State() State { return s.state }

// Frames returns the number of completed frames.
func (s *Sandbox) Frames() uint64 { return s.frames }

// Contacts returns the number of player contacts seen while sound is on.
func (s *Sandbox) Contacts() uint64 { return s.contacts }
