package input

import "math"

// DefaultStep is how far one arrow key press moves the rectangle, in normalized device units.
const DefaultStep float32 = 0.025

// Key is a backend-independent key identifier. Backends translate their native key codes to it.
type Key int

const (
	KeyUnknown Key = iota
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
)

func (k Key) String() string {
	switch k {
	case KeyLeft:
		return "left"
	case KeyRight:
		return "right"
	case KeyUp:
		return "up"
	case KeyDown:
		return "down"
	}
	return "unknown"
}

// Action is the transition a key event reports.
type Action int

const (
	Release Action = iota
	Press
	Repeat
)

// Event is one key transition delivered by the window system.
type Event struct {
	Key    Key
	Action Action
}

// Position is the 2D offset applied to the rectangle at draw time.
type Position struct {
	X, Y float32
}

// State is the application state shared between the key handler (writer) and the render loop (reader).
// Both run on the same thread, so no locking is done.
type State struct {
	Position Position
	Step     float32
	presses  int
}

// NewState returns a state at the origin. A step that is not a positive finite number falls back
// to DefaultStep.
func NewState(step float32) *State {
	if !(step > 0) || math.IsInf(float64(step), 0) {
		step = DefaultStep
	}
	return &State{Step: step}
}

// Presses returns how many press events moved the position.
func (s *State) Presses() int {
	return s.presses
}

// Handle applies ev to s. Only press transitions of the four arrow keys move the position;
// releases, repeats and other keys are ignored.
func Handle(ev Event, s *State) {
	if ev.Action != Press {
		return
	}
	switch ev.Key {
	case KeyLeft:
		s.Position.X -= s.Step
	case KeyRight:
		s.Position.X += s.Step
	case KeyUp:
		s.Position.Y += s.Step
	case KeyDown:
		s.Position.Y -= s.Step
	default:
		return
	}
	s.presses++
}
