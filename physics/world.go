package physics

import (
	"fmt"
	"math"

	"github.com/jakecoffman/cp"

	"github.com/gogpu/boxplay/internal/arena"
)

// FixedStep is the simulation timestep in seconds.
const FixedStep = 1.0 / 60.0

// Infinity is used for the mass and moment of static and kinematic bodies.
var Infinity = math.Inf(1)

// Kind is the semantic kind of a body.
type Kind int

const (
	// Static bodies never move.
	Static Kind = iota
	// Dynamic bodies are fully simulated.
	Dynamic
	// Kinematic bodies ignore forces and are driven by their velocity.
	Kinematic
)

// String returns the name of the kind.
func (k Kind) String() string {
	switch k {
	case Static:
		return "Static"
	case Dynamic:
		return "Dynamic"
	case Kinematic:
		return "Kinematic"
	default:
		return "Unknown"
	}
}

// BodyHandle is an opaque reference to a body owned by a World.
type BodyHandle uint64

// ShapeHandle is an opaque reference to a shape owned by a World.
type ShapeHandle uint64

// ConstraintHandle is an opaque reference to a constraint owned by a World.
type ConstraintHandle uint64

// Box is axis-aligned box geometry centered on its body.
type Box struct {
	W, H float64
}

// MomentForBox returns the moment of inertia of a solid box of the given mass.
func MomentForBox(mass, w, h float64) float64 {
	return cp.MomentForBox(mass, w, h)
}

type bodyEntry struct {
	body        *cp.Body
	kind        Kind
	shapes      []ShapeHandle
	constraints []ConstraintHandle

	// collisionType is non-zero once OnContact registered a callback.
	collisionType cp.CollisionType
}

type shapeEntry struct {
	shape *cp.Shape
	body  BodyHandle
}

type constraintEntry struct {
	constraint *cp.Constraint
	kind       ConstraintKind
	a, b       BodyHandle
}

// Option configures a World during creation.
type Option func(*worldOptions)

type worldOptions struct {
	gravity    Vec2
	iterations int
}

func defaultWorldOptions() worldOptions {
	return worldOptions{
		iterations: 10,
	}
}

// WithGravity sets the global gravity. The default is zero gravity.
func WithGravity(g Vec2) Option {
	return func(o *worldOptions) {
		o.gravity = g
	}
}

// WithIterations sets the number of solver iterations per step.
// Values below 1 keep the default of 10.
func WithIterations(n int) Option {
	return func(o *worldOptions) {
		if n > 0 {
			o.iterations = n
		}
	}
}

// World owns all bodies, shapes and constraints of a simulation.
//
// World is NOT safe for concurrent use.
type World struct {
	space       *cp.Space
	bodies      *arena.Arena[*bodyEntry]
	shapes      *arena.Arena[*shapeEntry]
	constraints *arena.Arena[*constraintEntry]

	lastCollisionType cp.CollisionType
	ticks             uint64
}

// NewWorld creates an empty world.
func NewWorld(opts ...Option) *World {
	o := defaultWorldOptions()
	for _, opt := range opts {
		opt(&o)
	}

	space := cp.NewSpace()
	space.SetGravity(o.gravity.toCP())
	//nolint:gosec // G115: iterations is validated positive
	space.Iterations = uint(o.iterations)

	return &World{
		space:       space,
		bodies:      arena.New[*bodyEntry](),
		shapes:      arena.New[*shapeEntry](),
		constraints: arena.New[*constraintEntry](),
	}
}

// CreateBody adds a body of the given kind at pos.
// mass and moment are only used for dynamic bodies and must be positive;
// static and kinematic bodies have infinite mass and moment.
func (w *World) CreateBody(kind Kind, mass, moment float64, pos Vec2) (BodyHandle, error) {
	var body *cp.Body
	switch kind {
	case Static:
		body = cp.NewStaticBody()
	case Kinematic:
		body = cp.NewKinematicBody()
	case Dynamic:
		if !(mass > 0) || !(moment > 0) {
			return 0, fmt.Errorf("%w: mass=%g moment=%g", ErrInvalidMass, mass, moment)
		}
		body = cp.NewBody(mass, moment)
	default:
		return 0, fmt.Errorf("physics: unknown body kind %d", kind)
	}

	body.SetPosition(pos.toCP())
	w.space.AddBody(body)

	h := BodyHandle(w.bodies.Insert(&bodyEntry{body: body, kind: kind}))
	body.UserData = h

	slogger().Debug("physics: body created", "kind", kind, "x", pos.X, "y", pos.Y)
	return h, nil
}

// CreateShape attaches box geometry to body.
// Attaching a shape to a static body activates it against that shape, since
// static geometry is otherwise asleep.
func (w *World) CreateShape(body BodyHandle, box Box, friction, elasticity float64) (ShapeHandle, error) {
	be, ok := w.bodies.Get(arena.Handle(body))
	if !ok {
		return 0, ErrInvalidHandle
	}
	if !(box.W > 0) || !(box.H > 0) {
		return 0, fmt.Errorf("%w: %gx%g", ErrInvalidShape, box.W, box.H)
	}

	shape := cp.NewBox(be.body, box.W, box.H, 0)
	shape.SetFriction(friction)
	shape.SetElasticity(elasticity)
	if be.collisionType != 0 {
		shape.SetCollisionType(be.collisionType)
	}
	w.space.AddShape(shape)

	if be.kind == Static {
		be.body.ActivateStatic(shape)
	}

	h := ShapeHandle(w.shapes.Insert(&shapeEntry{shape: shape, body: body}))
	be.shapes = append(be.shapes, h)
	return h, nil
}

// RemoveBody removes a body, its shapes and every constraint referencing it.
// All of their handles become invalid.
func (w *World) RemoveBody(body BodyHandle) error {
	be, ok := w.bodies.Get(arena.Handle(body))
	if !ok {
		return ErrInvalidHandle
	}

	for _, ch := range append([]ConstraintHandle(nil), be.constraints...) {
		_ = w.RemoveConstraint(ch)
	}
	for _, sh := range be.shapes {
		if se, ok := w.shapes.Remove(arena.Handle(sh)); ok {
			w.space.RemoveShape(se.shape)
		}
	}
	w.space.RemoveBody(be.body)
	be.body.UserData = nil
	w.bodies.Remove(arena.Handle(body))

	slogger().Debug("physics: body removed", "kind", be.kind, "shapes", len(be.shapes))
	return nil
}

// Step advances the simulation by dt seconds.
// Non-positive dt is ignored.
func (w *World) Step(dt float64) {
	if !(dt > 0) {
		return
	}
	w.space.Step(dt)
	w.ticks++
}

// Ticks returns the number of completed steps.
func (w *World) Ticks() uint64 {
	return w.ticks
}

// Valid reports whether body refers to a live body.
func (w *World) Valid(body BodyHandle) bool {
	return w.bodies.Contains(arena.Handle(body))
}

// ShapeValid reports whether shape refers to a live shape.
func (w *World) ShapeValid(shape ShapeHandle) bool {
	return w.shapes.Contains(arena.Handle(shape))
}

// Len returns the number of live bodies.
func (w *World) Len() int {
	return w.bodies.Len()
}

// Kind returns the kind of body.
func (w *World) Kind(body BodyHandle) (Kind, bool) {
	be, ok := w.bodies.Get(arena.Handle(body))
	if !ok {
		return 0, false
	}
	return be.kind, true
}

// Mass returns the mass of body. Static and kinematic bodies report Infinity.
func (w *World) Mass(body BodyHandle) (float64, bool) {
	be, ok := w.bodies.Get(arena.Handle(body))
	if !ok {
		return 0, false
	}
	if be.kind != Dynamic {
		return Infinity, true
	}
	return be.body.Mass(), true
}

// Moment returns the moment of inertia of body.
// Static and kinematic bodies report Infinity.
func (w *World) Moment(body BodyHandle) (float64, bool) {
	be, ok := w.bodies.Get(arena.Handle(body))
	if !ok {
		return 0, false
	}
	if be.kind != Dynamic {
		return Infinity, true
	}
	return be.body.Moment(), true
}

// Position returns the position of body.
func (w *World) Position(body BodyHandle) (Vec2, bool) {
	be, ok := w.bodies.Get(arena.Handle(body))
	if !ok {
		return Vec2{}, false
	}
	return fromCP(be.body.Position()), true
}

// Angle returns the rotation of body in radians.
func (w *World) Angle(body BodyHandle) (float64, bool) {
	be, ok := w.bodies.Get(arena.Handle(body))
	if !ok {
		return 0, false
	}
	return be.body.Angle(), true
}

// Velocity returns the linear velocity of body.
func (w *World) Velocity(body BodyHandle) (Vec2, bool) {
	be, ok := w.bodies.Get(arena.Handle(body))
	if !ok {
		return Vec2{}, false
	}
	return fromCP(be.body.Velocity()), true
}

// SetVelocity replaces the linear velocity of a dynamic or kinematic body.
func (w *World) SetVelocity(body BodyHandle, v Vec2) error {
	be, ok := w.bodies.Get(arena.Handle(body))
	if !ok {
		return ErrInvalidHandle
	}
	if be.kind == Static {
		return ErrStaticBody
	}
	be.body.SetVelocityVector(v.toCP())
	return nil
}

// ApplyImpulse applies impulse at localPoint in body coordinates.
// Only dynamic bodies respond; kinematic bodies ignore impulses.
func (w *World) ApplyImpulse(body BodyHandle, impulse, localPoint Vec2) error {
	be, ok := w.bodies.Get(arena.Handle(body))
	if !ok {
		return ErrInvalidHandle
	}
	if be.kind == Static {
		return ErrStaticBody
	}
	if be.kind == Dynamic {
		be.body.ApplyImpulseAtLocalPoint(impulse.toCP(), localPoint.toCP())
	}
	return nil
}

// Bodies returns the handles of all live bodies in creation-slot order.
func (w *World) Bodies() []BodyHandle {
	hs := w.bodies.Handles()
	out := make([]BodyHandle, len(hs))
	for i, h := range hs {
		out[i] = BodyHandle(h)
	}
	return out
}
