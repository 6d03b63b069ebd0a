package control

import "github.com/gogpu/boxplay/physics"

// Key is a logical direction key.
type Key int

const (
	// KeyUnknown is any key the sandbox does not interpret.
	KeyUnknown Key = iota
	// KeyUp moves toward -y (W).
	KeyUp
	// KeyDown moves toward +y (S).
	KeyDown
	// KeyLeft moves toward -x (A).
	KeyLeft
	// KeyRight moves toward +x (D).
	KeyRight

	numKeys
)

// String returns the name of the key.
func (k Key) String() string {
	switch k {
	case KeyUp:
		return "up"
	case KeyDown:
		return "down"
	case KeyLeft:
		return "left"
	case KeyRight:
		return "right"
	default:
		return "unknown"
	}
}

// KeyForRune maps W/A/S/D (either case) to a direction key.
func KeyForRune(r rune) Key {
	switch r {
	case 'w', 'W':
		return KeyUp
	case 's', 'S':
		return KeyDown
	case 'a', 'A':
		return KeyLeft
	case 'd', 'D':
		return KeyRight
	default:
		return KeyUnknown
	}
}

// DirectionFor returns the unit direction of a single key press.
// Only the pressed key contributes; KeyUnknown yields the zero vector.
func DirectionFor(k Key) physics.Vec2 {
	var d physics.Vec2
	switch k {
	case KeyUp:
		d.Y -= 1
	case KeyDown:
		d.Y += 1
	case KeyLeft:
		d.X -= 1
	case KeyRight:
		d.X += 1
	}
	return d
}

// HeldKeys tracks which direction keys are currently down.
// The zero value has no keys held.
type HeldKeys struct {
	down [numKeys]bool
}

// Press marks k as held.
func (h *HeldKeys) Press(k Key) {
	if k > KeyUnknown && k < numKeys {
		h.down[k] = true
	}
}

// Release marks k as released.
func (h *HeldKeys) Release(k Key) {
	if k > KeyUnknown && k < numKeys {
		h.down[k] = false
	}
}

// Held reports whether k is down.
func (h *HeldKeys) Held(k Key) bool {
	return k > KeyUnknown && k < numKeys && h.down[k]
}

// Any reports whether any direction key is down.
func (h *HeldKeys) Any() bool {
	for k := KeyUp; k < numKeys; k++ {
		if h.down[k] {
			return true
		}
	}
	return false
}

// Direction combines all held keys. Opposing keys cancel on their axis.
// Diagonals are not normalized, matching the per-axis unit steps.
func (h *HeldKeys) Direction() physics.Vec2 {
	var d physics.Vec2
	for k := KeyUp; k < numKeys; k++ {
		if h.down[k] {
			d = d.Add(DirectionFor(k))
		}
	}
	return d
}
