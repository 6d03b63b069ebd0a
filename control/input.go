package control

import "github.com/gogpu/boxplay/physics"

// InputModel selects how key events become directions.
type InputModel int

const (
	// InputDiscrete applies the direction of each key-down event once and
	// ignores key-up events.
	InputDiscrete InputModel = iota
	// InputHeld recombines all held keys every tick and stops on release.
	InputHeld
)

// String returns the name of the model.
func (m InputModel) String() string {
	switch m {
	case InputDiscrete:
		return "discrete"
	case InputHeld:
		return "held"
	default:
		return "unknown"
	}
}

// ParseInputModel parses "discrete" or "held".
func ParseInputModel(s string) (InputModel, bool) {
	switch s {
	case "discrete":
		return InputDiscrete, true
	case "held":
		return InputHeld, true
	default:
		return InputDiscrete, false
	}
}

// Input converts key events into steering commands according to a model.
//
// Input is NOT safe for concurrent use.
type Input struct {
	model InputModel
	held  HeldKeys
}

// NewInput creates an Input for the given model.
func NewInput(model InputModel) *Input {
	return &Input{model: model}
}

// Model returns the input model.
func (in *Input) Model() InputModel {
	return in.model
}

// KeyDown handles a key press. It returns the direction to steer with and
// whether a steer should happen now. Unknown keys are ignored.
func (in *Input) KeyDown(k Key) (physics.Vec2, bool) {
	if k == KeyUnknown {
		return physics.Vec2{}, false
	}
	if in.model == InputHeld {
		in.held.Press(k)
		return in.held.Direction(), true
	}
	return DirectionFor(k), true
}

// KeyUp handles a key release. The discrete model never reacts to it.
func (in *Input) KeyUp(k Key) (physics.Vec2, bool) {
	if in.model != InputHeld || k == KeyUnknown || !in.held.Held(k) {
		return physics.Vec2{}, false
	}
	in.held.Release(k)
	return in.held.Direction(), true
}

// Tick returns the per-tick steer of the held model: the combined direction
// while any key is down. Releasing the last key already steered to zero in
// KeyUp. The discrete model never steers on tick.
func (in *Input) Tick() (physics.Vec2, bool) {
	if in.model != InputHeld || !in.held.Any() {
		return physics.Vec2{}, false
	}
	return in.held.Direction(), true
}
