package boxplay

import "github.com/gogpu/boxplay/control"

// EventKind is the kind of an input event.
type EventKind int

const (
	// EventKeyDown is a key press.
	EventKeyDown EventKind = iota
	// EventKeyUp is a key release.
	EventKeyUp
	// EventQuit requests shutdown after the current frame.
	EventQuit
)

// String returns the name of the kind.
func (k EventKind) String() string {
	switch k {
	case EventKeyDown:
		return "KeyDown"
	case EventKeyUp:
		return "KeyUp"
	case EventQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Event is an input event in driver-neutral form.
type Event struct {
	Kind EventKind
	Key  control.Key
}

// KeyDownEvent returns a key press event.
func KeyDownEvent(k control.Key) Event { return Event{Kind: EventKeyDown, Key: k} }

// KeyUpEvent returns a key release event.
func KeyUpEvent(k control.Key) Event { return Event{Kind: EventKeyUp, Key: k} }

// QuitEvent returns a quit event.
func QuitEvent() Event { return Event{Kind: EventQuit} }
