// Package entity defines the sandbox entities and their link to the physics world.
//
// An [Entity] is a box: one body, one shape, a render size and a color. The
// player is an ordinary entity carrying an optional [Playable] payload that
// describes how input reaches it. The [Registry] keeps entities in spawn order,
// which is the order used for rendering and for picking the steered entity.
package entity
