// Package physics provides the rigid-body world behind the sandbox.
//
// World wraps a Chipmunk space (github.com/jakecoffman/cp) and owns every body,
// shape and constraint added to it. Callers receive opaque, generation-checked
// handles; removing a body invalidates its handle together with the handles of
// its shapes and of every constraint that references it.
//
// # Stepping
//
// Step must be called with the same dt every frame. The sandbox uses
// [FixedStep] (1/60 s) regardless of wall-clock jitter.
//
// # Ownership of transforms
//
// After a body is created the World is the only writer of its position.
// Callers steer bodies through SetVelocity, ApplyImpulse, or by moving a
// kinematic anchor that a constraint pulls a dynamic body toward.
//
// # Body kinds
//
//   - Static: never moves; its shapes are activated once when attached.
//   - Dynamic: fully simulated; mass and moment must be positive.
//   - Kinematic: ignores forces and collisions, driven only by its velocity.
package physics
