package arena

// Handle addresses a value stored in an Arena.
// The zero Handle never resolves.
type Handle uint64

// Index returns the slot index encoded in h.
func (h Handle) Index() uint32 {
	return uint32(h)
}

// Generation returns the slot generation encoded in h.
func (h Handle) Generation() uint32 {
	return uint32(h >> 32)
}

// IsZero reports whether h is the zero handle.
func (h Handle) IsZero() bool {
	return h == 0
}

func makeHandle(index, gen uint32) Handle {
	return Handle(uint64(gen)<<32 | uint64(index))
}

// slot holds one value and the generation of the handle that owns it.
// Generations start at 1 so that the zero Handle is never live.
type slot[V any] struct {
	value V
	gen   uint32
	live  bool
}

// Arena stores values in reusable slots addressed by generation-checked handles.
type Arena[V any] struct {
	slots []slot[V]
	free  []uint32
	count int
}

// New creates an empty arena.
func New[V any]() *Arena[V] {
	return &Arena[V]{}
}

// Insert stores v and returns its handle.
func (a *Arena[V]) Insert(v V) Handle {
	var idx uint32
	if n := len(a.free); n > 0 {
		idx = a.free[n-1]
		a.free = a.free[:n-1]
	} else {
		//nolint:gosec // G115: slot count is bounded by memory long before 2^32
		idx = uint32(len(a.slots))
		a.slots = append(a.slots, slot[V]{})
	}

	s := &a.slots[idx]
	s.gen++
	if s.gen == 0 {
		s.gen = 1
	}
	s.value = v
	s.live = true
	a.count++

	return makeHandle(idx, s.gen)
}

// Get returns the value addressed by h.
// Returns (zero, false) if h is zero, stale, or out of range.
func (a *Arena[V]) Get(h Handle) (V, bool) {
	s := a.lookup(h)
	if s == nil {
		var zero V
		return zero, false
	}
	return s.value, true
}

// Set replaces the value addressed by h.
// Returns false if h does not resolve.
func (a *Arena[V]) Set(h Handle, v V) bool {
	s := a.lookup(h)
	if s == nil {
		return false
	}
	s.value = v
	return true
}

// Contains reports whether h resolves to a live value.
func (a *Arena[V]) Contains(h Handle) bool {
	return a.lookup(h) != nil
}

// Remove deletes the value addressed by h and invalidates h.
// Returns the removed value and true, or (zero, false) if h did not resolve.
func (a *Arena[V]) Remove(h Handle) (V, bool) {
	s := a.lookup(h)
	if s == nil {
		var zero V
		return zero, false
	}

	v := s.value
	var zero V
	s.value = zero
	s.live = false
	s.gen++
	if s.gen == 0 {
		s.gen = 1
	}
	a.free = append(a.free, h.Index())
	a.count--

	return v, true
}

// Len returns the number of live values.
func (a *Arena[V]) Len() int {
	return a.count
}

// Each calls fn for every live value in slot order.
// Iteration stops early if fn returns false.
// fn must not insert into or remove from the arena.
func (a *Arena[V]) Each(fn func(Handle, V) bool) {
	for i := range a.slots {
		s := &a.slots[i]
		if !s.live {
			continue
		}
		//nolint:gosec // G115: see Insert
		if !fn(makeHandle(uint32(i), s.gen), s.value) {
			return
		}
	}
}

// Handles returns the handles of all live values in slot order.
func (a *Arena[V]) Handles() []Handle {
	out := make([]Handle, 0, a.count)
	a.Each(func(h Handle, _ V) bool {
		out = append(out, h)
		return true
	})
	return out
}

func (a *Arena[V]) lookup(h Handle) *slot[V] {
	if h.IsZero() {
		return nil
	}
	idx := h.Index()
	if int(idx) >= len(a.slots) {
		return nil
	}
	s := &a.slots[idx]
	if !s.live || s.gen != h.Generation() {
		return nil
	}
	return s
}
