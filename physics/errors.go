package physics

import "errors"

// Sentinel errors for the physics package.
var (
	// ErrInvalidHandle is returned when a handle is zero or refers to an
	// object that has been removed from the world.
	ErrInvalidHandle = errors.New("physics: invalid or stale handle")

	// ErrInvalidMass is returned when a dynamic body is created with a
	// non-positive mass or moment of inertia.
	ErrInvalidMass = errors.New("physics: dynamic body needs positive mass and moment")

	// ErrInvalidShape is returned for boxes with a non-positive width or height.
	ErrInvalidShape = errors.New("physics: box must have positive width and height")

	// ErrStaticBody is returned when a caller tries to drive a static body.
	ErrStaticBody = errors.New("physics: static bodies cannot be driven")

	// ErrSameBody is returned when a constraint would couple a body to itself.
	ErrSameBody = errors.New("physics: constraint needs two distinct bodies")
)
