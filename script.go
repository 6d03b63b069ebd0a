package boxplay

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/gogpu/boxplay/control"
)

// MaxRepeat is the largest accepted step repeat count.
const MaxRepeat = 1 << 20

// Script is an EventSource that replays a fixed key sequence, one step per
// frame. Headless runs and tests use it instead of a keyboard.
//
// The textual form is a comma separated list of steps:
//
//	d      press D this frame
//	^d     release D this frame
//	-      no input this frame
//	q      quit
//	d*10   repeat the step for 10 frames
//
// Example: "d*3,-*30,^d,w,q".
type Script struct {
	steps [][]Event
}

// NewScript returns a script delivering steps[i] on frame i.
func NewScript(steps ...[]Event) *Script {
	return &Script{steps: steps}
}

// ParseScript parses the textual form.
func ParseScript(src string) (*Script, error) {
	s := &Script{}
	if strings.TrimSpace(src) == "" {
		return s, nil
	}
	for _, tok := range strings.Split(src, ",") {
		tok = strings.TrimSpace(tok)
		body, count := tok, 1
		if i := strings.IndexByte(tok, '*'); i >= 0 {
			n, err := strconv.Atoi(tok[i+1:])
			if err != nil || n < 1 || n > MaxRepeat {
				return nil, fmt.Errorf("boxplay: script step %q: repeat count must be 1..%d", tok, MaxRepeat)
			}
			body, count = tok[:i], n
		}

		step, err := parseStep(body)
		if err != nil {
			return nil, err
		}
		for range count {
			s.steps = append(s.steps, step)
		}
	}
	return s, nil
}

func parseStep(body string) ([]Event, error) {
	switch body {
	case "-":
		return nil, nil
	case "q":
		return []Event{QuitEvent()}, nil
	}

	release := strings.HasPrefix(body, "^")
	keyText := strings.TrimPrefix(body, "^")
	r, size := utf8.DecodeRuneInString(keyText)
	if size == 0 || size != len(keyText) {
		return nil, fmt.Errorf("boxplay: script step %q: want one key", body)
	}
	k := control.KeyForRune(r)
	if k == control.KeyUnknown {
		return nil, fmt.Errorf("boxplay: script step %q: unknown key", body)
	}
	if release {
		return []Event{KeyUpEvent(k)}, nil
	}
	return []Event{KeyDownEvent(k)}, nil
}

// Len returns the number of scripted frames.
func (s *Script) Len() int {
	return len(s.steps)
}

// Poll implements EventSource.
func (s *Script) Poll(frame uint64) []Event {
	if frame >= uint64(len(s.steps)) {
		return nil
	}
	return s.steps[frame]
}
