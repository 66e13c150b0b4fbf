package glbackend

import (
	"testing"

	"github.com/go-gl/glfw/v3.3/glfw"

	"rectangle/internal/input"
)

func TestMapKey(t *testing.T) {
	tests := []struct {
		in   glfw.Key
		want input.Key
	}{
		{glfw.KeyLeft, input.KeyLeft},
		{glfw.KeyRight, input.KeyRight},
		{glfw.KeyUp, input.KeyUp},
		{glfw.KeyDown, input.KeyDown},
		{glfw.KeyA, input.KeyUnknown},
		{glfw.KeyEscape, input.KeyUnknown},
	}
	for _, tt := range tests {
		if got := mapKey(tt.in); got != tt.want {
			t.Errorf("mapKey(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestMapAction(t *testing.T) {
	if mapAction(glfw.Press) != input.Press || mapAction(glfw.Repeat) != input.Repeat || mapAction(glfw.Release) != input.Release {
		t.Fatal("action mapping mismatch")
	}
}

func TestOnKeyForwardsToHandler(t *testing.T) {
	b := &Backend{}
	b.onKey(nil, glfw.KeyLeft, 0, glfw.Press, 0)

	var got []input.Event
	b.SetKeyHandler(func(ev input.Event) { got = append(got, ev) })
	b.onKey(nil, glfw.KeyUp, 0, glfw.Press, 0)
	b.onKey(nil, glfw.KeyUp, 0, glfw.Release, 0)

	want := []input.Event{{Key: input.KeyUp, Action: input.Press}, {Key: input.KeyUp, Action: input.Release}}
	if len(got) != len(want) || got[0] != want[0] || got[1] != want[1] {
		t.Fatalf("events = %v, want %v", got, want)
	}
}
