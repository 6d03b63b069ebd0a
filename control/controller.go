package control

import (
	"errors"
	"fmt"

	"github.com/gogpu/boxplay/entity"
	"github.com/gogpu/boxplay/physics"
)

// Damping and speed defaults of the two designs.
const (
	// DirectDamping is the per-second velocity decay of the direct design.
	DirectDamping = 0.0625
	// DirectGain scales the unit direction before the unit conversion.
	DirectGain = 2.0

	// AnchoredDamping is the per-second velocity decay of the anchor.
	AnchoredDamping = 0.25
	// AnchoredSpeed is the anchor speed in pixels per second.
	AnchoredSpeed = 150.0

	// RestSpeed is the speed in world units per second below which damping
	// snaps the velocity to zero and the controller becomes Idle.
	RestSpeed = 1e-3
)

// ErrNotPlayable is returned when a controller is requested for an entity
// without a Playable payload.
var ErrNotPlayable = errors.New("control: entity is not playable")

// State is the controller state.
type State int

const (
	// Idle means the controlled body is at rest.
	Idle State = iota
	// Moving means the last steer set a non-zero velocity that has not
	// decayed to rest yet.
	Moving
)

// String returns the name of the state.
func (s State) String() string {
	switch s {
	case Idle:
		return "Idle"
	case Moving:
		return "Moving"
	default:
		return "Unknown"
	}
}

// Tuning holds the tunable constants of both designs.
type Tuning struct {
	// UnitScale converts pixels to world units.
	UnitScale float64

	DirectGain    float64
	DirectDamping float64

	AnchoredSpeed   float64
	AnchoredDamping float64
}

// DefaultTuning returns the default constants for the given unit scale.
func DefaultTuning(unitScale float64) Tuning {
	return Tuning{
		UnitScale:       unitScale,
		DirectGain:      DirectGain,
		DirectDamping:   DirectDamping,
		AnchoredSpeed:   AnchoredSpeed,
		AnchoredDamping: AnchoredDamping,
	}
}

// Controller steers one playable entity.
type Controller interface {
	// Entity returns the steered entity.
	Entity() *entity.Entity

	// Body returns the body whose velocity is written.
	Body() physics.BodyHandle

	// Steer replaces the controlled velocity with dir scaled by the design
	// speed. It does not accumulate with the previous velocity.
	Steer(dir physics.Vec2) error

	// Damp multiplies the controlled velocity by 1 - damping*dt.
	Damp(dt float64) error

	// State returns Idle or Moving.
	State() State

	// Direction returns the direction of the last non-zero steer.
	Direction() physics.Vec2

	// Damping returns the per-second damping coefficient.
	Damping() float64
}

// New creates the controller matching the entity's Playable design.
func New(w *physics.World, e *entity.Entity, t Tuning) (Controller, error) {
	if e == nil || e.Playable == nil {
		return nil, ErrNotPlayable
	}
	switch e.Playable.Design {
	case entity.Direct:
		return NewDirect(w, e, t), nil
	case entity.Anchored:
		return NewAnchored(w, e, t), nil
	default:
		return nil, fmt.Errorf("control: unknown design %v", e.Playable.Design)
	}
}

// base implements the velocity bookkeeping shared by both designs.
type base struct {
	world   *physics.World
	ent     *entity.Entity
	body    physics.BodyHandle
	scale   float64
	damping float64

	state State
	dir   physics.Vec2
}

func (b *base) Entity() *entity.Entity   { return b.ent }
func (b *base) Body() physics.BodyHandle { return b.body }
func (b *base) State() State             { return b.state }
func (b *base) Direction() physics.Vec2  { return b.dir }
func (b *base) Damping() float64         { return b.damping }

func (b *base) Steer(dir physics.Vec2) error {
	if err := b.world.SetVelocity(b.body, dir.Mul(b.scale)); err != nil {
		return fmt.Errorf("control: steer: %w", err)
	}
	if dir.IsZero() {
		b.state = Idle
		return nil
	}
	b.dir = dir
	b.state = Moving
	return nil
}

func (b *base) Damp(dt float64) error {
	v, ok := b.world.Velocity(b.body)
	if !ok {
		return fmt.Errorf("control: damp: %w", physics.ErrInvalidHandle)
	}
	if v.IsZero() {
		b.state = Idle
		return nil
	}

	factor := 1 - b.damping*dt
	if factor < 0 {
		factor = 0
	}
	v = v.Mul(factor)
	if v.Len() < RestSpeed {
		v = physics.Vec2{}
		b.state = Idle
	}
	if err := b.world.SetVelocity(b.body, v); err != nil {
		return fmt.Errorf("control: damp: %w", err)
	}
	return nil
}

// Direct writes velocity onto the player body.
type Direct struct {
	base
}

// NewDirect creates a direct controller for e.
// Velocity = direction * DirectGain * UnitScale.
func NewDirect(w *physics.World, e *entity.Entity, t Tuning) *Direct {
	return &Direct{base{
		world:   w,
		ent:     e,
		body:    e.Body,
		scale:   t.DirectGain * t.UnitScale,
		damping: t.DirectDamping,
	}}
}

// Anchored writes velocity onto the kinematic anchor; the pivot and gear
// constraints pull the player body after it.
type Anchored struct {
	base
}

// NewAnchored creates an anchored controller for e.
// Velocity = direction * UnitScale * AnchoredSpeed.
func NewAnchored(w *physics.World, e *entity.Entity, t Tuning) *Anchored {
	return &Anchored{base{
		world:   w,
		ent:     e,
		body:    e.ControlledBody(),
		scale:   t.UnitScale * t.AnchoredSpeed,
		damping: t.AnchoredDamping,
	}}
}

// Dispatch steers the first controller and ignores the rest, so at most one
// playable is mutated per input event. Returns the steered controller, or nil
// if ctrls is empty.
func Dispatch(ctrls []Controller, dir physics.Vec2) (Controller, error) {
	if len(ctrls) == 0 {
		return nil, nil
	}
	c := ctrls[0]
	return c, c.Steer(dir)
}

// DampAll applies damping to every controller.
func DampAll(ctrls []Controller, dt float64) error {
	var errs []error
	for _, c := range ctrls {
		if err := c.Damp(dt); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
