package entity

import (
	"fmt"
	"image/color"

	"github.com/gogpu/boxplay/physics"
)

// BoxSpec describes the box geometry and surface of a spawned entity.
type BoxSpec struct {
	Pos        physics.Vec2
	W, H       float64
	Friction   float64
	Elasticity float64
	Color      color.RGBA
}

// AnchorTuning holds the constraint limits of the anchored design.
type AnchorTuning struct {
	// PivotMaxForce caps the force pulling the player onto the anchor.
	PivotMaxForce float64
	// GearMaxForce caps the torque locking the player rotation to the anchor.
	GearMaxForce float64
	// GearMaxBias caps the angular correction speed in rad/s.
	GearMaxBias float64
}

// DefaultAnchorTuning returns limits that let the pivot accelerate the player
// at up to 1000 px/s² and the gear at up to 50 rad/s².
func DefaultAnchorTuning(mass, moment, unitScale float64) AnchorTuning {
	return AnchorTuning{
		PivotMaxForce: 1000 * mass * unitScale,
		GearMaxForce:  50 * moment,
		GearMaxBias:   1.2,
	}
}

// PlayerSpec describes the playable entity.
type PlayerSpec struct {
	BoxSpec
	Mass   float64
	Design Design

	// Tuning is used by the anchored design only. A zero value selects
	// DefaultAnchorTuning with a unit scale of 1.
	Tuning AnchorTuning
}

// SpawnStatic adds an immovable box.
func SpawnStatic(w *physics.World, r *Registry, spec BoxSpec) (*Entity, error) {
	body, err := w.CreateBody(physics.Static, 0, 0, spec.Pos)
	if err != nil {
		return nil, fmt.Errorf("entity: static body: %w", err)
	}
	shape, err := w.CreateShape(body, physics.Box{W: spec.W, H: spec.H}, spec.Friction, spec.Elasticity)
	if err != nil {
		_ = w.RemoveBody(body)
		return nil, fmt.Errorf("entity: static shape: %w", err)
	}

	return r.Add(&Entity{
		Body:  body,
		Shape: shape,
		Size:  physics.V(spec.W, spec.H),
		Color: spec.Color,
	}), nil
}

// SpawnPlayer adds a dynamic box with a Playable payload.
// For the anchored design it also creates the kinematic anchor at the same
// position and couples it to the player with a pivot and a gear constraint.
func SpawnPlayer(w *physics.World, r *Registry, spec PlayerSpec) (*Entity, error) {
	moment := physics.MomentForBox(spec.Mass, spec.W, spec.H)
	body, err := w.CreateBody(physics.Dynamic, spec.Mass, moment, spec.Pos)
	if err != nil {
		return nil, fmt.Errorf("entity: player body: %w", err)
	}
	shape, err := w.CreateShape(body, physics.Box{W: spec.W, H: spec.H}, spec.Friction, spec.Elasticity)
	if err != nil {
		_ = w.RemoveBody(body)
		return nil, fmt.Errorf("entity: player shape: %w", err)
	}

	playable := &Playable{Design: spec.Design}
	if spec.Design == Anchored {
		if err := attachAnchor(w, body, spec, moment, playable); err != nil {
			_ = w.RemoveBody(body)
			return nil, err
		}
	}

	return r.Add(&Entity{
		Body:     body,
		Shape:    shape,
		Size:     physics.V(spec.W, spec.H),
		Color:    spec.Color,
		Playable: playable,
	}), nil
}

func attachAnchor(w *physics.World, body physics.BodyHandle, spec PlayerSpec, moment float64, p *Playable) error {
	tuning := spec.Tuning
	if tuning == (AnchorTuning{}) {
		tuning = DefaultAnchorTuning(spec.Mass, moment, 1)
	}

	anchor, err := w.CreateBody(physics.Kinematic, 0, 0, spec.Pos)
	if err != nil {
		return fmt.Errorf("entity: anchor body: %w", err)
	}

	// The pivot only cancels relative velocity (no positional correction),
	// the gear keeps the player from spinning relative to the anchor.
	pivotParams := physics.DefaultConstraintParams()
	pivotParams.MaxBias = 0
	pivotParams.MaxForce = tuning.PivotMaxForce
	pivot, err := w.CreateConstraint(physics.Pivot, anchor, body, pivotParams)
	if err != nil {
		_ = w.RemoveBody(anchor)
		return fmt.Errorf("entity: anchor pivot: %w", err)
	}

	gearParams := physics.DefaultConstraintParams()
	gearParams.ErrorBias = 0
	gearParams.MaxBias = tuning.GearMaxBias
	gearParams.MaxForce = tuning.GearMaxForce
	gear, err := w.CreateConstraint(physics.Gear, anchor, body, gearParams)
	if err != nil {
		_ = w.RemoveBody(anchor)
		return fmt.Errorf("entity: anchor gear: %w", err)
	}

	p.Anchor = anchor
	p.Pivot = pivot
	p.Gear = gear
	return nil
}
