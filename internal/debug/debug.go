package debug

import (
	"fmt"

	"rectangle/internal/input"
)

// updateInterval: only rebuild the caption every N frames to limit allocations and title updates.
const updateInterval = 30

// Stats counts frames and builds a window caption showing the current position. Off by default.
type Stats struct {
	Enabled    bool
	base       string
	frameCount uint64
	caption    string
}

// New returns stats for a window whose normal caption is base.
func New(base string, enabled bool) *Stats {
	return &Stats{Enabled: enabled, base: base}
}

// Frame records a finished frame. It returns the caption and true when the caption changed
// and should be pushed to the window; otherwise "", false.
func (s *Stats) Frame(st *input.State) (string, bool) {
	s.frameCount++
	if !s.Enabled {
		return "", false
	}
	if s.caption != "" && s.frameCount%updateInterval != 0 {
		return "", false
	}
	c := fmt.Sprintf("%s | x=%.3f y=%.3f | presses=%d | frames=%d",
		s.base, st.Position.X, st.Position.Y, st.Presses(), s.frameCount)
	if c == s.caption {
		return "", false
	}
	s.caption = c
	return c, true
}
