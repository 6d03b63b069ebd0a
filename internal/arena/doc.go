// Package arena provides generation-checked slot storage for opaque handles.
//
// Values inserted into an [Arena] are addressed by a [Handle] that packs a slot
// index and a generation counter. Removing a value bumps the slot generation,
// so every handle that pointed at it stops resolving instead of aliasing the
// next value stored in the same slot.
//
//	a := arena.New[*cp.Body]()
//	h := a.Insert(body)
//	b, ok := a.Get(h)
//	a.Remove(h)
//	_, ok = a.Get(h) // false: h is stale
//
// # Thread Safety
//
// Arena is NOT safe for concurrent use. It is owned by the single goroutine
// that owns the physics world or renderer it backs.
package arena
