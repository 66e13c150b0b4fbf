package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"

	"rectangle/internal/input"
)

// DefaultPath is the config file read when no -config flag is given, relative to the working directory.
const DefaultPath = "config/rectangle.yaml"

// Environment overrides applied by ApplyEnv.
const (
	EnvMoveStep    = "RECTANGLE_MOVE_STEP"
	EnvTitle       = "RECTANGLE_TITLE"
	EnvShowStats   = "RECTANGLE_SHOW_STATS"
	EnvApplyOffset = "RECTANGLE_APPLY_OFFSET"
)

// Window describes the window the demo opens.
type Window struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

// Prefs holds the demo settings. Every field has a default, so an absent file is fine.
type Prefs struct {
	Window     Window     `yaml:"window"`
	MoveStep   float32    `yaml:"move_step"`
	Background [4]float32 `yaml:"background"`
	ShapeColor [4]float32 `yaml:"shape_color"`
	// ApplyOffset translates the rectangle by the tracked position. When false the position is
	// tracked but the rectangle stays at the origin.
	ApplyOffset bool   `yaml:"apply_offset"`
	ShowStats   bool   `yaml:"show_stats"`
	LogPath     string `yaml:"log_path"`
}

// Default returns an 800x600 "Simple Rectangle" window, a 0.025 step and a teal background.
func Default() Prefs {
	return Prefs{
		Window:      Window{Width: 800, Height: 600, Title: "Simple Rectangle"},
		MoveStep:    input.DefaultStep,
		Background:  [4]float32{0.2, 0.3, 0.3, 1.0},
		ShapeColor:  [4]float32{1.0, 0.5, 0.2, 1.0},
		ApplyOffset: true,
	}
}

// Load reads prefs from path, layered over Default. A missing file returns Default() and no error.
// An unreadable or invalid file returns Default() together with the error so the caller can warn.
func Load(path string) (Prefs, error) {
	p := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return p, nil
		}
		return Default(), fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &p); err != nil {
		return Default(), fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := p.Validate(); err != nil {
		return Default(), fmt.Errorf("config %s: %w", path, err)
	}
	return p, nil
}

// Save writes prefs to path as YAML, creating the directory if needed.
func Save(path string, p Prefs) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	data, err := yaml.Marshal(p)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate reports settings the demo cannot run with.
func (p Prefs) Validate() error {
	if p.Window.Width <= 0 || p.Window.Height <= 0 {
		return fmt.Errorf("window size %dx%d must be positive", p.Window.Width, p.Window.Height)
	}
	if !validStep(float64(p.MoveStep)) {
		return fmt.Errorf("move_step %v must be a positive number", p.MoveStep)
	}
	for _, c := range []struct {
		name string
		rgba [4]float32
	}{{"background", p.Background}, {"shape_color", p.ShapeColor}} {
		for _, v := range c.rgba {
			if !(v >= 0 && v <= 1) {
				return fmt.Errorf("%s %v: components must be in [0, 1]", c.name, c.rgba)
			}
		}
	}
	return nil
}

// validStep is false for NaN, infinities and non-positive values.
func validStep(f float64) bool {
	return f > 0 && !math.IsInf(f, 0)
}

// ApplyEnv overrides p from RECTANGLE_* environment variables. Values that do not parse are
// skipped and reported in the returned error; valid ones are still applied.
func ApplyEnv(p *Prefs) error {
	var errs []error
	if v, ok := os.LookupEnv(EnvTitle); ok && v != "" {
		p.Window.Title = v
	}
	if v, ok := os.LookupEnv(EnvMoveStep); ok {
		f, err := strconv.ParseFloat(v, 32)
		switch {
		case err != nil:
			errs = append(errs, fmt.Errorf("%s: %w", EnvMoveStep, err))
		case !validStep(f):
			errs = append(errs, fmt.Errorf("%s: %v must be positive", EnvMoveStep, f))
		default:
			p.MoveStep = float32(f)
		}
	}
	for _, flag := range []struct {
		name string
		dst  *bool
	}{{EnvShowStats, &p.ShowStats}, {EnvApplyOffset, &p.ApplyOffset}} {
		name, dst := flag.name, flag.dst
		v, ok := os.LookupEnv(name)
		if !ok {
			continue
		}
		b, err := strconv.ParseBool(v)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", name, err))
			continue
		}
		*dst = b
	}
	return errors.Join(errs...)
}
