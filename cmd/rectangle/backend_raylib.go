//go:build raylib

package main

import (
	"rectangle/internal/config"
	"rectangle/internal/graphics"
	"rectangle/internal/graphics/rlbackend"
)

func openBackend(p config.Prefs) (graphics.Backend, error) {
	b, err := rlbackend.Open(rlbackend.Config{
		Width:      p.Window.Width,
		Height:     p.Window.Height,
		Title:      p.Window.Title,
		ShapeColor: graphics.ColorFrom(p.ShapeColor),
	})
	if err != nil {
		return nil, err
	}
	return b, nil
}
