package control

import (
	"testing"

	"github.com/gogpu/boxplay/physics"
)

func TestKeyForRune(t *testing.T) {
	tests := []struct {
		r    rune
		want Key
	}{
		{'w', KeyUp}, {'W', KeyUp},
		{'s', KeyDown}, {'S', KeyDown},
		{'a', KeyLeft}, {'A', KeyLeft},
		{'d', KeyRight}, {'D', KeyRight},
		{'q', KeyUnknown}, {' ', KeyUnknown}, {0, KeyUnknown},
	}
	for _, tt := range tests {
		if got := KeyForRune(tt.r); got != tt.want {
			t.Errorf("KeyForRune(%q) = %v, want %v", tt.r, got, tt.want)
		}
	}
}

func TestDirectionFor(t *testing.T) {
	tests := []struct {
		key  Key
		want physics.Vec2
	}{
		{KeyUp, physics.V(0, -1)},
		{KeyDown, physics.V(0, 1)},
		{KeyLeft, physics.V(-1, 0)},
		{KeyRight, physics.V(1, 0)},
		{KeyUnknown, physics.Vec2{}},
	}
	for _, tt := range tests {
		if got := DirectionFor(tt.key); got != tt.want {
			t.Errorf("DirectionFor(%v) = %v, want %v", tt.key, got, tt.want)
		}
	}
}

func TestHeldKeys_OpposingKeysCancel(t *testing.T) {
	var h HeldKeys
	h.Press(KeyLeft)
	h.Press(KeyRight)
	if d := h.Direction(); !d.IsZero() {
		t.Errorf("left+right = %v, want zero", d)
	}

	h.Press(KeyUp)
	if d := h.Direction(); d != physics.V(0, -1) {
		t.Errorf("left+right+up = %v, want (0,-1)", d)
	}

	h.Release(KeyLeft)
	if d := h.Direction(); d != physics.V(1, -1) {
		t.Errorf("right+up = %v, want (1,-1)", d)
	}
}

func TestHeldKeys_IgnoresUnknown(t *testing.T) {
	var h HeldKeys
	h.Press(KeyUnknown)
	h.Press(Key(42))
	if h.Any() {
		t.Error("unknown keys were recorded")
	}
	if h.Held(Key(-1)) {
		t.Error("Held reported an out-of-range key")
	}
}
