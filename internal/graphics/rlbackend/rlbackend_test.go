//go:build raylib

package rlbackend

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl32"

	"rectangle/internal/graphics"
	"rectangle/internal/input"
)

func TestToScreen(t *testing.T) {
	tests := []struct {
		in   mgl32.Vec3
		want rl.Vector2
	}{
		{mgl32.Vec3{0, 0, 0}, rl.NewVector2(400, 300)},
		{mgl32.Vec3{-1, 1, 0}, rl.NewVector2(0, 0)},
		{mgl32.Vec3{1, -1, 0}, rl.NewVector2(800, 600)},
		{mgl32.Vec3{0.025, 0.025, 0}, rl.NewVector2(410, 292.5)},
	}
	for _, tt := range tests {
		got := toScreen(tt.in, 800, 600)
		if !mgl32.FloatEqualThreshold(got.X, tt.want.X, 1e-4) || !mgl32.FloatEqualThreshold(got.Y, tt.want.Y, 1e-4) {
			t.Errorf("toScreen(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestMapKey(t *testing.T) {
	if mapKey(rl.KeyLeft) != input.KeyLeft || mapKey(rl.KeyRight) != input.KeyRight ||
		mapKey(rl.KeyUp) != input.KeyUp || mapKey(rl.KeyDown) != input.KeyDown {
		t.Fatal("arrow key mapping mismatch")
	}
	if mapKey(rl.KeySpace) != input.KeyUnknown {
		t.Fatal("space should be unmapped")
	}
}

func TestToColor(t *testing.T) {
	tests := []struct {
		in   graphics.Color
		want rl.Color
	}{
		{graphics.Color{R: 1, G: 0, B: 0.2, A: 1}, rl.NewColor(255, 0, 51, 255)},
		{graphics.Color{R: 0.2, G: 0.3, B: 0.3, A: 1}, rl.NewColor(51, 77, 77, 255)},
		{graphics.Color{R: 1.5, G: -0.5, B: 300, A: -2}, rl.NewColor(255, 0, 255, 0)},
	}
	for _, tt := range tests {
		if got := toColor(tt.in); got != tt.want {
			t.Errorf("toColor(%+v) = %+v, want %+v", tt.in, got, tt.want)
		}
	}
}
