package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/olegsobolev/tui-langton/internal/config"
	"github.com/olegsobolev/tui-langton/internal/storage"
)

// sessionStage tracks which screen an SSH session is on.
type sessionStage int

const (
	stageSetup sessionStage = iota
	stageSim
)

// SessionModel chains the setup form and the simulation inside a single
// Bubble Tea program, as needed for SSH sessions where only one program
// runs per connection.
type SessionModel struct {
	stage    sessionStage
	setup    SetupModel
	sim      Model
	store    *storage.Store
	defaults config.Config
	width    int
	height   int
}

// NewSessionModel creates a session starting at the setup form.
func NewSessionModel(store *storage.Store, defaults config.Config, width, height int) SessionModel {
	return SessionModel{
		setup:    NewSetupModel(defaults),
		store:    store,
		defaults: defaults,
		width:    width,
		height:   height,
	}
}

// Init initializes the current stage.
func (m SessionModel) Init() tea.Cmd {
	return m.setup.Init()
}

// Update delegates to the current stage and switches stages when the
// setup form completes.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if size, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = size.Width
		m.height = size.Height
	}

	switch m.stage {
	case stageSetup:
		updated, cmd := m.setup.Update(msg)
		m.setup = updated.(SetupModel)

		if m.setup.cancelled {
			return m, tea.Quit
		}
		if cfg := m.setup.Result(); cfg != nil {
			m.stage = stageSim
			m.sim = NewModel(*cfg, m.store, m.width, m.height)
			return m, m.sim.Init()
		}
		return m, cmd

	default:
		updated, cmd := m.sim.Update(msg)
		m.sim = updated.(Model)
		return m, cmd
	}
}

// View renders the current stage.
func (m SessionModel) View() string {
	if m.stage == stageSetup {
		return m.setup.View()
	}
	return m.sim.View()
}
