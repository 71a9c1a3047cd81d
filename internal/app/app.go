package app

import (
	"log"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/kyaoi/mdsheet/internal/config"
	"github.com/kyaoi/mdsheet/internal/sheet"
	"github.com/kyaoi/mdsheet/internal/ui"
)

// Run executes the Bubble Tea program showing target inside a bottom sheet.
func Run(cfg config.Config, target string) error {
	state, err := LoadInitialState(target)
	if err != nil {
		return err
	}
	state.Style = cfg.UI.Style
	state.FPS = cfg.UI.FPS
	return runProgram(state, cfg)
}

// NewIntegrator builds the spring selected by cfg.
func NewIntegrator(cfg config.Config) sheet.Integrator {
	if cfg.Spring.Model == config.ModelDamped {
		return sheet.NewDampedSpring(cfg.UI.FPS, cfg.Spring.Frequency, cfg.Spring.Damping)
	}
	return sheet.LinearSpring{}
}

func runProgram(state ui.State, cfg config.Config) error {
	mouse := tea.WithMouseCellMotion()
	if cfg.UI.Mouse == "all" {
		mouse = tea.WithMouseAllMotion()
	}
	model := ui.NewModel(state, NewIntegrator(cfg))
	defer model.Close()

	log.Printf("app: starting with %s spring at %d fps", cfg.Spring.Model, cfg.UI.FPS)
	program := tea.NewProgram(model, tea.WithAltScreen(), mouse)
	_, err := program.Run()
	return err
}
