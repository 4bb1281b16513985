package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/olegsobolev/tui-langton/internal/ant"
	"github.com/olegsobolev/tui-langton/internal/config"
	"github.com/olegsobolev/tui-langton/internal/palette"
	"github.com/olegsobolev/tui-langton/internal/storage"
)

// Rows reserved around the board: two HUD lines on top, one help line below.
const (
	hudRows    = 2
	footerRows = 1
)

// Model is the Bubble Tea model driving one simulation session.
// Each frame it advances the engine by the configured number of moves,
// then renders the grid and HUD. The engine is mutated here and nowhere
// else.
type Model struct {
	sim    *ant.Sim
	cfg    config.Config
	styles []lipgloss.Style
	canvas *Canvas
	store  *storage.Store
	keys   *KeyMapper

	fps          int
	movesPerTick int

	width  int
	height int

	paused    bool
	quitting  bool
	recorded  bool // run already written to the store
	startedAt time.Time
}

// NewModel creates a session model from a validated config.
func NewModel(cfg config.Config, store *storage.Store, width, height int) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	rule := ant.MustParseRule(cfg.Rule) // validated by config.Validate
	fps, moves := config.SpeedPlan(cfg.MovesPerSecond)

	return Model{
		sim:          ant.NewSim(rule, cfg.GridSize),
		cfg:          cfg,
		styles:       buildStyles(palette.Generate(rule.Len(), cfg.Seed)),
		canvas:       NewCanvas(width, height),
		store:        store,
		keys:         NewKeyMapper(),
		fps:          fps,
		movesPerTick: moves,
		width:        width,
		height:       height,
		startedAt:    time.Now(),
	}
}

// Init starts the frame loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.fps)
}

// Update handles messages and advances the session state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.canvas.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keys.MapKey(msg) {
	case ActionQuit:
		m.recordRun()
		m.quitting = true
		return m, tea.Quit

	case ActionPause:
		m.paused = !m.paused

	case ActionRestart:
		m.recordRun()
		m.sim = ant.NewSim(ant.MustParseRule(m.cfg.Rule), m.cfg.GridSize)
		m.recorded = false
		m.paused = false
		m.startedAt = time.Now()

	case ActionFaster:
		m.setSpeed(config.FasterSpeed(m.cfg.MovesPerSecond))

	case ActionSlower:
		m.setSpeed(config.SlowerSpeed(m.cfg.MovesPerSecond))
	}

	return m, nil
}

// setSpeed switches the moves-per-second plan; the new frame rate takes
// effect on the next tick.
func (m *Model) setSpeed(mps int) {
	m.cfg.MovesPerSecond = mps
	m.fps, m.movesPerTick = config.SpeedPlan(mps)
}

// handleTick advances the simulation by one frame's worth of moves.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if !m.paused && !m.sim.Stalled() {
		m.sim.Advance(m.movesPerTick)
	}

	// A stalled ant ends the run: record it once, keep displaying the
	// final board.
	if m.sim.Stalled() && !m.recorded {
		m.recordRun()
	}

	return m, tickCmd(m.fps)
}

// recordRun writes the run to the history store, once per run.
// Best effort: a missing or failing store never interrupts the session.
func (m *Model) recordRun() {
	if m.store == nil || m.recorded {
		return
	}
	snap := m.sim.Snapshot()
	if snap.Iterations == 0 {
		return
	}

	//nolint:errcheck // Best-effort save, session continues regardless
	m.store.SaveRun(storage.RunRecord{
		Rule:       snap.Rule,
		GridSize:   snap.Dim,
		Iterations: snap.Iterations,
		Stalled:    snap.State == ant.StateStalled,
		Duration:   time.Since(m.startedAt),
	})
	m.recorded = true
}

// View renders the current frame.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.canvas.Clear()
	m.drawHUD()
	m.drawBoard()
	m.drawFooter()

	return renderCanvas(m.canvas, m.styles)
}

// drawHUD draws the status lines above the board.
func (m Model) drawHUD() {
	snap := m.sim.Snapshot()

	status := ""
	switch {
	case snap.State == ant.StateStalled:
		status = "  [stalled at boundary]"
	case m.paused:
		status = "  [paused]"
	}

	hud := fmt.Sprintf(" Langton's Ant · rule %s  %d×%d  moves: %d  speed: %d/s%s",
		snap.Rule, snap.Dim, snap.Dim, snap.Iterations, m.cfg.MovesPerSecond, status)
	m.canvas.DrawText(0, 0, hud)

	for x := 0; x < m.canvas.Width(); x++ {
		m.canvas.Set(x, 1, '─', DefaultColor)
	}
}

// drawBoard draws the visible part of the grid with the ant on top.
// Grids smaller than the viewport are centered; larger ones scroll to
// keep the ant in view.
func (m Model) drawBoard() {
	grid := m.sim.Grid()
	a := m.sim.Ant()
	dim := grid.Dim()

	viewW := m.canvas.Width()
	viewH := m.canvas.Height() - hudRows - footerRows
	if viewW <= 0 || viewH <= 0 {
		return
	}

	// offX/offY: canvas position of grid cell (0,0); startX/startY: first
	// visible grid column/row.
	offX, startX := viewportAxis(dim, viewW, a.X)
	offY, startY := viewportAxis(dim, viewH, a.Y)

	for vy := 0; vy < viewH; vy++ {
		gy := startY + vy
		if gy >= dim {
			break
		}
		for vx := 0; vx < viewW; vx++ {
			gx := startX + vx
			if gx >= dim {
				break
			}
			c := grid.At(gx, gy)
			if c == ant.Unpainted {
				continue
			}
			m.canvas.Set(offX+vx, hudRows+offY+vy, paintedRune, c)
		}
	}

	m.canvas.Set(offX+(a.X-startX), hudRows+offY+(a.Y-startY), antGlyph(a.Facing), DefaultColor)
}

// viewportAxis solves one axis of the viewport: where to place the grid on
// the canvas (offset) and which grid cell is the first visible (start).
func viewportAxis(dim, view, antPos int) (offset, start int) {
	if dim <= view {
		return (view - dim) / 2, 0
	}
	start = antPos - view/2
	if start < 0 {
		start = 0
	}
	if start > dim-view {
		start = dim - view
	}
	return 0, start
}

// antGlyph points the way the ant faces.
func antGlyph(f ant.Facing) rune {
	switch f {
	case ant.North:
		return '▲'
	case ant.East:
		return '▶'
	case ant.South:
		return '▼'
	default:
		return '◀'
	}
}

// drawFooter draws the key help line under the board.
func (m Model) drawFooter() {
	m.canvas.DrawText(0, m.canvas.Height()-1, " space pause · r restart · +/- speed · q quit")
}

// Run starts a local simulation session and blocks until it ends.
func Run(cfg config.Config, store *storage.Store, width, height int) error {
	p := tea.NewProgram(
		NewModel(cfg, store, width, height),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
