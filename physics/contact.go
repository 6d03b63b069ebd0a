package physics

import (
	"github.com/jakecoffman/cp"

	"github.com/gogpu/boxplay/internal/arena"
)

// ContactFunc is called when a watched body starts touching another body.
type ContactFunc func(self, other BodyHandle)

// OnContact registers fn to run whenever body begins a contact.
// The callback runs inside Step; it must not add or remove bodies.
// Registering twice on the same body replaces the callback.
func (w *World) OnContact(body BodyHandle, fn ContactFunc) error {
	be, ok := w.bodies.Get(arena.Handle(body))
	if !ok {
		return ErrInvalidHandle
	}

	if be.collisionType == 0 {
		w.lastCollisionType++
		be.collisionType = w.lastCollisionType
		for _, sh := range be.shapes {
			if se, ok := w.shapes.Get(arena.Handle(sh)); ok {
				se.shape.SetCollisionType(be.collisionType)
			}
		}
	}

	handler := w.space.NewWildcardCollisionHandler(be.collisionType)
	handler.BeginFunc = func(arb *cp.Arbiter, _ *cp.Space, _ interface{}) bool {
		a, b := arb.Bodies()
		other := b
		if a.UserData != body {
			other = a
		}
		if oh, ok := other.UserData.(BodyHandle); ok && fn != nil {
			fn(body, oh)
		}
		return true
	}
	return nil
}
