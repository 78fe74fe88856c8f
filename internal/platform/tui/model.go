package tui

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/hitbox/internal/core"
	"github.com/vovakirdan/hitbox/internal/engine"
)

const (
	idleTickRate = 10                     // Idle checks per second
	idleReset    = 300 * time.Millisecond // Key gap that ends an acceleration streak
)

// NudgeStep is the distance one key press moves an element. Each repeated
// press in the same direction adds acceleration/10, capped at speed/10.
func NudgeStep(base, speed, acceleration float64, streak int) float64 {
	step := base + float64(streak)*acceleration/10
	if limit := speed / 10; limit > 0 {
		step = math.Min(step, math.Max(limit, base))
	}
	return step
}

// Model is the Bubble Tea model for the nudge viewer.
type Model struct {
	eng      *engine.Engine
	moving   string
	collider string
	origin   map[string]core.Vec2F
	base     float64
	keys     NudgeKeyMap
	help     help.Model
	now      func() time.Time

	streak   int
	lastDir  core.Vec2F
	lastKey  time.Time
	collides bool
	err      error
	quitting bool
}

// NewModel creates a nudge model moving one element against another.
// base is the distance of the first press in a streak.
func NewModel(eng *engine.Engine, moving, collider string, base float64) Model {
	m := Model{
		eng:      eng,
		moving:   moving,
		collider: collider,
		origin:   make(map[string]core.Vec2F),
		base:     base,
		keys:     DefaultNudgeKeyMap(),
		help:     help.New(),
		now:      time.Now,
	}
	for _, name := range []string{moving, collider} {
		if el, ok := eng.Element(name); ok {
			m.origin[name] = el.Pos
		}
	}
	m.refresh()
	return m
}

// Init starts the idle ticker.
func (m Model) Init() tea.Cmd {
	return tickCmd(idleTickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		if !m.lastKey.IsZero() && time.Time(msg).Sub(m.lastKey) > idleReset {
			m.streak = 0
		}
		return m, tickCmd(idleTickRate)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case key.Matches(msg, m.keys.Swap):
		m.moving, m.collider = m.collider, m.moving
		m.streak = 0
		return m, nil
	case key.Matches(msg, m.keys.Reset):
		m.reset()
		return m, nil
	case key.Matches(msg, m.keys.Up):
		m.nudge(core.V2(0.0, -1.0))
	case key.Matches(msg, m.keys.Down):
		m.nudge(core.V2(0.0, 1.0))
	case key.Matches(msg, m.keys.Left):
		m.nudge(core.V2(-1.0, 0.0))
	case key.Matches(msg, m.keys.Right):
		m.nudge(core.V2(1.0, 0.0))
	}
	return m, nil
}

func (m *Model) nudge(dir core.Vec2F) {
	now := m.now()
	if dir == m.lastDir && now.Sub(m.lastKey) <= idleReset {
		m.streak++
	} else {
		m.streak = 0
	}
	m.lastDir = dir
	m.lastKey = now

	step := NudgeStep(m.base, m.eng.Speed(), m.eng.Acceleration(), m.streak)
	if err := m.eng.MoveElement(m.moving, dir.X*step, dir.Y*step); err != nil {
		m.err = err
		return
	}
	m.refresh()
}

func (m *Model) reset() {
	for name, pos := range m.origin {
		el, ok := m.eng.Element(name)
		if !ok {
			continue
		}
		//nolint:errcheck // element was just resolved
		m.eng.MoveElement(name, pos.X-el.Pos.X, pos.Y-el.Pos.Y)
	}
	m.streak = 0
	m.refresh()
}

func (m *Model) refresh() {
	m.collides, m.err = m.eng.CollisionBetweenColliderAndMovingObject(m.moving, m.collider)
}

// Collides returns the last verdict.
func (m Model) Collides() bool {
	return m.collides
}

// Err returns the last query error, if any.
func (m Model) Err() error {
	return m.err
}

// View renders the current state.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(RenderTitle("hitbox nudge"))
	sb.WriteString(RenderDim(fmt.Sprintf("  moving %s against %s", m.moving, m.collider)))
	sb.WriteString("\n\n")

	for _, name := range []string{m.moving, m.collider} {
		pos := "missing"
		if el, ok := m.eng.Element(name); ok {
			if s, err := el.PosJSON(); err == nil {
				pos = s
			}
		}
		fmt.Fprintf(&sb, "  %-12s %s\n", name, pos)
	}

	step := NudgeStep(m.base, m.eng.Speed(), m.eng.Acceleration(), m.streak)
	sb.WriteString(RenderDim(fmt.Sprintf("\n  step %.2f\n\n", step)))

	if m.err != nil {
		sb.WriteString("  " + RenderError(m.err))
	} else {
		sb.WriteString("  " + RenderVerdict(m.collides))
	}
	sb.WriteString("\n\n")
	sb.WriteString(m.help.View(m.keys))
	return sb.String()
}

// Run starts the Bubble Tea program for the nudge viewer.
func Run(eng *engine.Engine, moving, collider string, base float64) error {
	p := tea.NewProgram(
		NewModel(eng, moving, collider, base),
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
