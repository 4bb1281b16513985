package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/olegsobolev/tui-langton/internal/config"
)

// Setup form field order.
const (
	fieldRule = iota
	fieldGridSize
	fieldSpeed
	fieldCount
)

var (
	setupTitleStyle = lipgloss.NewStyle().Bold(true)
	setupLabelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	setupErrorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

// setupKeyMap defines the key bindings for the setup form.
type setupKeyMap struct {
	Next   key.Binding
	Prev   key.Binding
	Submit key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the help footer.
func (k setupKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Submit, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k setupKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Next, k.Prev}, {k.Submit, k.Quit}}
}

func defaultSetupKeyMap() setupKeyMap {
	return setupKeyMap{
		Next: key.NewBinding(
			key.WithKeys("tab", "down"),
			key.WithHelp("tab", "next field"),
		),
		Prev: key.NewBinding(
			key.WithKeys("shift+tab", "up"),
			key.WithHelp("S-tab", "prev field"),
		),
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "start"),
		),
		Quit: key.NewBinding(
			key.WithKeys("esc", "ctrl+c"),
			key.WithHelp("esc", "cancel"),
		),
	}
}

// SetupModel is the Bubble Tea model for collecting run parameters:
// rule, grid size and speed. All validation happens here, before any
// simulation is constructed.
type SetupModel struct {
	inputs  []textinput.Model
	focused int
	errMsg  string
	keys    setupKeyMap
	help    help.Model

	result    *config.Config
	cancelled bool
}

// NewSetupModel creates a setup form prefilled from defaults.
func NewSetupModel(defaults config.Config) SetupModel {
	inputs := make([]textinput.Model, fieldCount)

	rule := textinput.New()
	rule.Placeholder = "RL"
	rule.SetValue(defaults.Rule)
	rule.CharLimit = 64
	rule.Focus()
	inputs[fieldRule] = rule

	size := textinput.New()
	size.Placeholder = "150"
	size.SetValue(strconv.Itoa(defaults.GridSize))
	size.CharLimit = 4
	inputs[fieldGridSize] = size

	speed := textinput.New()
	speed.Placeholder = "10"
	speed.SetValue(strconv.Itoa(defaults.MovesPerSecond))
	speed.CharLimit = 4
	inputs[fieldSpeed] = speed

	return SetupModel{
		inputs: inputs,
		keys:   defaultSetupKeyMap(),
		help:   help.New(),
	}
}

// Result returns the collected config, or nil if the form was cancelled.
func (m SetupModel) Result() *config.Config {
	return m.result
}

// Init initializes the form.
func (m SetupModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages for the form.
func (m SetupModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.cancelled = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Next):
			return m.focusField((m.focused + 1) % fieldCount), nil

		case key.Matches(msg, m.keys.Prev):
			return m.focusField((m.focused + fieldCount - 1) % fieldCount), nil

		case key.Matches(msg, m.keys.Submit):
			return m.submit()
		}

	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
	}

	var cmd tea.Cmd
	m.inputs[m.focused], cmd = m.inputs[m.focused].Update(msg)
	return m, cmd
}

// focusField moves focus to the given field.
func (m SetupModel) focusField(i int) SetupModel {
	m.inputs[m.focused].Blur()
	m.focused = i
	m.inputs[m.focused].Focus()
	return m
}

// submit validates the form; on success it stores the result and quits.
func (m SetupModel) submit() (tea.Model, tea.Cmd) {
	cfg, err := m.collect()
	if err != nil {
		m.errMsg = err.Error()
		return m, nil
	}

	m.errMsg = ""
	m.result = &cfg
	return m, tea.Quit
}

// collect reads the form into a config and validates it.
func (m SetupModel) collect() (config.Config, error) {
	cfg := config.Default()
	cfg.Rule = strings.TrimSpace(m.inputs[fieldRule].Value())

	size, err := strconv.Atoi(strings.TrimSpace(m.inputs[fieldGridSize].Value()))
	if err != nil {
		return cfg, fmt.Errorf("grid size must be a number")
	}
	cfg.GridSize = size

	speed, err := strconv.Atoi(strings.TrimSpace(m.inputs[fieldSpeed].Value()))
	if err != nil {
		return cfg, fmt.Errorf("moves per second must be a number")
	}
	cfg.MovesPerSecond = speed

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// View renders the form.
func (m SetupModel) View() string {
	var sb strings.Builder

	sb.WriteString(setupTitleStyle.Render("Langton's Ant"))
	sb.WriteString("\n\n")

	labels := [fieldCount]string{
		"Rule (L/R sequence or preset name)",
		fmt.Sprintf("Grid size (%d-%d)", config.MinGridSize, config.MaxGridSize),
		fmt.Sprintf("Moves per second %v", config.Speeds),
	}
	for i, in := range m.inputs {
		sb.WriteString(setupLabelStyle.Render(labels[i]))
		sb.WriteString("\n")
		sb.WriteString(in.View())
		sb.WriteString("\n\n")
	}

	if m.errMsg != "" {
		sb.WriteString(setupErrorStyle.Render(m.errMsg))
		sb.WriteString("\n\n")
	}

	sb.WriteString(m.help.View(m.keys))
	return sb.String()
}

// RunSetup shows the setup form and returns the collected config, or nil
// if the user cancelled.
func RunSetup(defaults config.Config) (*config.Config, error) {
	p := tea.NewProgram(NewSetupModel(defaults), tea.WithAltScreen())

	final, err := p.Run()
	if err != nil {
		return nil, err
	}

	m, ok := final.(SetupModel)
	if !ok {
		return nil, fmt.Errorf("tui: unexpected final model %T", final)
	}
	return m.Result(), nil
}
