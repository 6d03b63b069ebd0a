package physics

import (
	"fmt"
	"math"

	"github.com/jakecoffman/cp"

	"github.com/gogpu/boxplay/internal/arena"
)

// ConstraintKind selects the coupling created by CreateConstraint.
type ConstraintKind int

const (
	// Pivot couples the linear motion of two bodies at a shared point,
	// cancelling relative velocity up to MaxForce/MaxBias.
	Pivot ConstraintKind = iota
	// Gear locks the relative angular velocity of two bodies.
	Gear
)

// String returns the name of the constraint kind.
func (k ConstraintKind) String() string {
	switch k {
	case Pivot:
		return "Pivot"
	case Gear:
		return "Gear"
	default:
		return "Unknown"
	}
}

// ConstraintParams holds the tuning of a constraint.
// Fields not meaningful for a kind are ignored.
type ConstraintParams struct {
	// AnchorA and AnchorB are the pivot points in body-local coordinates.
	AnchorA, AnchorB Vec2

	// Phase and Ratio configure a gear. Ratio 0 is treated as 1.
	Phase, Ratio float64

	// MaxForce is the largest force the solver may apply.
	MaxForce float64

	// MaxBias is the largest speed at which joint error is corrected.
	MaxBias float64

	// ErrorBias is the fraction of joint error left uncorrected after one second.
	ErrorBias float64
}

// DefaultConstraintParams returns the solver defaults: unlimited force and
// bias, and 10% of error corrected every 1/60 s.
func DefaultConstraintParams() ConstraintParams {
	return ConstraintParams{
		Ratio:     1,
		MaxForce:  Infinity,
		MaxBias:   Infinity,
		ErrorBias: math.Pow(1.0-0.1, 60.0),
	}
}

// CreateConstraint couples bodies a and b.
// The constraint references both bodies without owning them and is removed
// automatically when either body is removed.
func (w *World) CreateConstraint(kind ConstraintKind, a, b BodyHandle, params ConstraintParams) (ConstraintHandle, error) {
	if a == b {
		return 0, ErrSameBody
	}
	ea, ok := w.bodies.Get(arena.Handle(a))
	if !ok {
		return 0, fmt.Errorf("body a: %w", ErrInvalidHandle)
	}
	eb, ok := w.bodies.Get(arena.Handle(b))
	if !ok {
		return 0, fmt.Errorf("body b: %w", ErrInvalidHandle)
	}

	var c *cp.Constraint
	switch kind {
	case Pivot:
		c = cp.NewPivotJoint2(ea.body, eb.body, params.AnchorA.toCP(), params.AnchorB.toCP())
	case Gear:
		ratio := params.Ratio
		if ratio == 0 {
			ratio = 1
		}
		c = cp.NewGearJoint(ea.body, eb.body, params.Phase, ratio)
	default:
		return 0, fmt.Errorf("physics: unknown constraint kind %d", kind)
	}

	c.SetMaxForce(params.MaxForce)
	c.SetMaxBias(params.MaxBias)
	c.SetErrorBias(params.ErrorBias)
	w.space.AddConstraint(c)

	h := ConstraintHandle(w.constraints.Insert(&constraintEntry{constraint: c, kind: kind, a: a, b: b}))
	ea.constraints = append(ea.constraints, h)
	eb.constraints = append(eb.constraints, h)

	slogger().Debug("physics: constraint created", "kind", kind)
	return h, nil
}

// RemoveConstraint removes a constraint and invalidates its handle.
// The coupled bodies are left untouched.
func (w *World) RemoveConstraint(c ConstraintHandle) error {
	ce, ok := w.constraints.Remove(arena.Handle(c))
	if !ok {
		return ErrInvalidHandle
	}
	w.space.RemoveConstraint(ce.constraint)

	for _, bh := range [2]BodyHandle{ce.a, ce.b} {
		if be, ok := w.bodies.Get(arena.Handle(bh)); ok {
			be.constraints = removeHandle(be.constraints, c)
		}
	}
	return nil
}

// ConstraintValid reports whether c refers to a live constraint.
func (w *World) ConstraintValid(c ConstraintHandle) bool {
	return w.constraints.Contains(arena.Handle(c))
}

func removeHandle(hs []ConstraintHandle, h ConstraintHandle) []ConstraintHandle {
	for i, x := range hs {
		if x == h {
			return append(hs[:i], hs[i+1:]...)
		}
	}
	return hs
}
