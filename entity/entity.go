package entity

import (
	"image/color"

	"github.com/gogpu/boxplay/physics"
)

// ID identifies an entity within a Registry.
type ID uint32

// Design selects how a playable entity is driven.
type Design int

const (
	// Direct writes input velocity straight onto the player body.
	Direct Design = iota
	// Anchored writes input velocity onto a kinematic anchor body that a
	// pivot and a gear constraint pull the player toward.
	Anchored
)

// String returns the name of the design.
func (d Design) String() string {
	switch d {
	case Direct:
		return "direct"
	case Anchored:
		return "anchored"
	default:
		return "unknown"
	}
}

// ParseDesign parses "direct" or "anchored".
func ParseDesign(s string) (Design, bool) {
	switch s {
	case "direct":
		return Direct, true
	case "anchored":
		return Anchored, true
	default:
		return Direct, false
	}
}

// Playable marks an entity as steerable.
type Playable struct {
	Design Design

	// Anchor is the kinematic anchor body. Zero for the direct design.
	Anchor physics.BodyHandle

	// Pivot and Gear couple the anchor to the player body. Zero for the
	// direct design.
	Pivot physics.ConstraintHandle
	Gear  physics.ConstraintHandle
}

// Entity is a box living in the physics world.
type Entity struct {
	ID    ID
	Body  physics.BodyHandle
	Shape physics.ShapeHandle

	// Size is the box size in world units.
	Size physics.Vec2

	Color color.RGBA

	// Playable is nil for entities that do not respond to input.
	Playable *Playable
}

// IsPlayable reports whether e carries a Playable payload.
func (e *Entity) IsPlayable() bool {
	return e.Playable != nil
}

// ControlledBody returns the body whose velocity input writes to: the anchor
// for anchored players, the entity body otherwise.
func (e *Entity) ControlledBody() physics.BodyHandle {
	if e.Playable != nil && e.Playable.Design == Anchored && e.Playable.Anchor != 0 {
		return e.Playable.Anchor
	}
	return e.Body
}
