package main

import (
	"errors"
	"flag"
	"io"
	"os"

	"rectangle/internal/config"
	"rectangle/internal/debug"
	"rectangle/internal/env"
	"rectangle/internal/graphics"
	"rectangle/internal/input"
	"rectangle/internal/logger"
	"rectangle/internal/shape"
)

// opener creates the window and GPU backend from prefs.
type opener func(config.Prefs) (graphics.Backend, error)

func main() {
	os.Exit(run(os.Args[1:], openBackend, os.Stderr))
}

// run returns the process exit code: 0 after the window is closed, -1 on any initialisation failure.
// Errors are written to errOut.
func run(args []string, open opener, errOut io.Writer) int {
	fs := flag.NewFlagSet("rectangle", flag.ContinueOnError)
	fs.SetOutput(errOut)
	configPath := fs.String("config", config.DefaultPath, "path to the YAML config file")
	envPath := fs.String("env", ".env", "path to an optional .env file")
	if err := fs.Parse(args); err != nil {
		return -1
	}

	envErr := env.Load(*envPath)
	prefs, cfgErr := config.Load(*configPath)
	var saveErr error
	if _, err := os.Stat(*configPath); errors.Is(err, os.ErrNotExist) {
		saveErr = config.Save(*configPath, prefs)
	}
	applyErr := config.ApplyEnv(&prefs)

	log := logger.New(prefs.LogPath, errOut)
	for _, err := range []error{envErr, cfgErr, saveErr, applyErr} {
		if err != nil {
			log.Logf("warning: %v", err)
		}
	}

	b, err := open(prefs)
	if err != nil {
		log.Errorf("%v", err)
		return -1
	}
	defer b.Close()
	log.Logf("window %dx%d %q open", prefs.Window.Width, prefs.Window.Height, prefs.Window.Title)

	st := input.NewState(prefs.MoveStep)
	frames, err := graphics.Run(b, st, graphics.Options{
		Mesh:        shape.Rectangle(),
		Background:  graphics.ColorFrom(prefs.Background),
		ApplyOffset: prefs.ApplyOffset,
		Stats:       debug.New(prefs.Window.Title, prefs.ShowStats),
	})
	if err != nil {
		log.Errorf("%v", err)
		return -1
	}
	log.Logf("closed after %d frames, %d presses, position (%.3f, %.3f)",
		frames, st.Presses(), st.Position.X, st.Position.Y)
	return 0
}
