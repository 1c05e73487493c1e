package app

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/quickwheel/quickwheel/internal/action"
	"github.com/quickwheel/quickwheel/internal/engine"
	"github.com/quickwheel/quickwheel/internal/logging"
	"github.com/quickwheel/quickwheel/internal/logging/events"
	"github.com/quickwheel/quickwheel/internal/persist"
	"github.com/quickwheel/quickwheel/internal/ui"
	"github.com/quickwheel/quickwheel/internal/wheel"
)

// Config describes user-provided application options. Zero values defer to
// the stored settings; non-zero overrides apply for this session only.
type Config struct {
	ConfigPath          string
	DwellMs             int
	AutoContinueExtraMs int
	WheelRadius         int
	InnerRadius         int
	SuppressionClear    string
}

// Run bootstraps the graph store and engine and executes the Bubble Tea
// program.
func Run(cfg Config) error {
	fileStore := persist.NewFileStore(cfg.ConfigPath)
	doc, err := fileStore.Load()
	fallback := false
	if err != nil {
		logging.Warn(fmt.Sprintf("config load failed, using default graph: %v", err))
		doc = wheel.DefaultDocument()
		fallback = true
	}
	events.App.GraphLoaded(len(doc.Folders), fallback)

	applyOverrides(&doc.Settings, cfg)

	graph := wheel.NewStore(doc, func(d *wheel.Document) {
		if saveErr := fileStore.Save(d); saveErr != nil {
			logging.Error(saveErr)
		}
	})

	eng := engine.New(graph, action.NewDispatcher(), nil)
	if cfg.SuppressionClear == "observe" {
		eng.SetSuppressionClear(engine.ClearOnObservation)
	}

	model := ui.NewModel(eng, fallback)
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseAllMotion())
	_, err = program.Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	return err
}

func applyOverrides(s *wheel.Settings, cfg Config) {
	if cfg.DwellMs > 0 {
		s.DwellMs = cfg.DwellMs
	}
	if cfg.AutoContinueExtraMs >= 0 {
		s.AutoContinueExtraMs = cfg.AutoContinueExtraMs
	}
	if cfg.WheelRadius > 0 {
		s.WheelRadius = cfg.WheelRadius
	}
	if cfg.InnerRadius > 0 {
		s.InnerRadius = cfg.InnerRadius
	}
}
