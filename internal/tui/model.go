package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/typetest/internal/model"
	"github.com/verte-zerg/typetest/internal/scoring"
	"github.com/verte-zerg/typetest/internal/session"
)

const tickInterval = 100 * time.Millisecond

// tickMsg carries the attempt it was scheduled for so stale chains die out.
type tickMsg struct {
	at      time.Time
	attempt int
}

// Model implements the Bubble Tea typing UI.
type Model struct {
	machine   *session.Machine
	state     session.State
	liveTimer bool
	now       func() time.Time
	attempt   int

	input textinput.Model

	sampleText string
	timeText   string
	wpmText    string
	levelText  string
	controls   session.Controls

	width  int
	height int
}

var (
	correctStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0"))
	incorrectStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
	pendingStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	currentWordStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A"))
	footerStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	labelStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	activeTierStyle  = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#F0F0F0")).
				Bold(true).
				Padding(0, 1).
				Border(lipgloss.RoundedBorder(), true).
				BorderForeground(lipgloss.Color("#C89A3A"))
	inactiveTierStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#B0B0B0")).
				Padding(0, 1).
				Border(lipgloss.RoundedBorder(), true).
				BorderForeground(lipgloss.Color("#4A4A4A"))
	enabledButtonStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#F0F0F0")).
				Padding(0, 1).
				Border(lipgloss.RoundedBorder(), true).
				BorderForeground(lipgloss.Color("#C89A3A"))
	disabledButtonStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#4A4A4A")).
				Padding(0, 1).
				Border(lipgloss.RoundedBorder(), true).
				BorderForeground(lipgloss.Color("#2E2E2E"))
)

// NewModel constructs a typing TUI model.
func NewModel(machine *session.Machine, cfg model.Config) *Model {
	input := textinput.New()
	input.Prompt = "> "
	input.Placeholder = "press enter to start"

	m := &Model{
		machine:   machine,
		liveTimer: cfg.LiveTimer,
		now:       time.Now,
		input:     input,
		timeText:  scoring.FormatSeconds(0),
	}
	m.state = session.NewState(cfg.Difficulty)
	m.controls = m.state.Controls
	m.dispatch(session.Init{})
	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.input.Width = max(m.contentWidth()-lipgloss.Width(m.input.Prompt)-1, 1)
		return m, nil
	case tickMsg:
		if !m.state.Running() || msg.attempt != m.attempt {
			return m, nil
		}
		m.dispatch(session.Tick{At: msg.at})
		return m, tickCmd(m.attempt)
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyEnter:
			return m, m.handleEnter()
		case tea.KeyCtrlR:
			return m, m.dispatch(session.Retry{})
		case tea.KeyTab:
			return m, m.cycleTier(1)
		case tea.KeyShiftTab:
			return m, m.cycleTier(-1)
		default:
			return m, m.updateInput(msg)
		}
	default:
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
}

func (m *Model) handleEnter() tea.Cmd {
	switch {
	case m.controls.Start:
		cmd := m.dispatch(session.Start{At: m.now()})
		if !m.state.Running() {
			return cmd
		}
		m.attempt++
		if m.liveTimer {
			return tea.Batch(cmd, tickCmd(m.attempt))
		}
		return cmd
	case m.controls.Stop:
		return m.dispatch(session.Stop{At: m.now()})
	default:
		return nil
	}
}

func (m *Model) cycleTier(step int) tea.Cmd {
	tiers := model.Tiers()
	idx := 0
	for i, tier := range tiers {
		if tier == m.state.Tier {
			idx = i
			break
		}
	}
	next := tiers[(idx+step+len(tiers))%len(tiers)]
	return m.dispatch(session.ChangeDifficulty{Tier: next})
}

func (m *Model) updateInput(msg tea.KeyMsg) tea.Cmd {
	if !m.input.Focused() {
		return nil
	}
	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if value := m.input.Value(); value != before {
		m.dispatch(session.Input{Text: value})
	}
	return cmd
}

// dispatch applies ev to the session and performs the resulting effects.
func (m *Model) dispatch(ev session.Event) tea.Cmd {
	var effects []session.Effect
	m.state, effects = m.machine.Apply(m.state, ev)
	var cmds []tea.Cmd
	for _, e := range effects {
		if cmd := m.applyEffect(e); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return tea.Batch(cmds...)
}

func (m *Model) applyEffect(e session.Effect) tea.Cmd {
	switch e.Kind {
	case session.EffectSetSample:
		m.sampleText = e.Text
	case session.EffectClearInput:
		m.input.Reset()
	case session.EffectFocusInput:
		return m.input.Focus()
	case session.EffectSetTime:
		m.timeText = e.Text
	case session.EffectSetWPM:
		m.wpmText = e.Text
	case session.EffectSetLevel:
		m.levelText = e.Text
	case session.EffectSetControls:
		m.controls = e.Controls
		if !e.Controls.Stop {
			m.input.Blur()
		}
	}
	return nil
}

func tickCmd(attempt int) tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg{at: t, attempt: attempt}
	})
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.sampleText == "" {
		return ""
	}
	width := m.contentWidth()
	sections := []string{
		m.renderTiers(),
		"",
		lipgloss.NewStyle().Width(width).Render(m.renderSample(width)),
		"",
		m.input.View(),
		"",
		m.renderControls(),
		m.renderFooter(),
	}
	if m.height == 0 || m.height >= 16 {
		sections = append(sections, footerStyle.Render(helpText))
	}
	content := lipgloss.JoinVertical(lipgloss.Left, sections...)
	if m.width == 0 || m.height == 0 {
		return content
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

const helpText = "enter start/stop · ctrl+r retry · tab difficulty · esc quit"

func (m *Model) contentWidth() int {
	if m.width == 0 {
		return 0
	}
	return max(int(float64(m.width)*0.70), 1)
}

func (m *Model) renderSample(width int) string {
	target := []rune(m.sampleText)
	var typed []rune
	cursorIndex := -1
	if m.state.Running() || m.state.Phase == session.PhaseStopped {
		typed = []rune(m.input.Value())
	}
	if m.state.Running() && len(typed) < len(target) {
		cursorIndex = len(typed)
	}
	return wrapStyledRunes(buildStyledRunes(target, typed, cursorIndex), width)
}

func (m *Model) renderTiers() string {
	tiers := model.Tiers()
	cells := make([]string, 0, len(tiers)+1)
	cells = append(cells, labelStyle.Render("Difficulty "))
	for _, tier := range tiers {
		style := inactiveTierStyle
		if tier == m.state.Tier {
			style = activeTierStyle
		}
		cells = append(cells, style.Render(string(tier)))
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, cells...)
}

func (m *Model) renderControls() string {
	return lipgloss.JoinHorizontal(lipgloss.Center,
		renderButton("Start", m.controls.Start),
		renderButton("Stop", m.controls.Stop),
		renderButton("Retry", m.controls.Retry),
	)
}

func renderButton(label string, enabled bool) string {
	if enabled {
		return enabledButtonStyle.Render(label)
	}
	return disabledButtonStyle.Render(label)
}

func (m *Model) renderFooter() string {
	segments := []string{fmt.Sprintf("Time %ss", m.timeText)}
	if m.wpmText != "" {
		segments = append(segments, fmt.Sprintf("%s WPM", m.wpmText))
	}
	if m.state.Result != nil {
		segments = append(segments, fmt.Sprintf("%d/%d words", m.state.Result.CorrectWordCount, m.state.Result.SampleWordCount))
	}
	if m.levelText != "" {
		segments = append(segments, fmt.Sprintf("Level %s", m.levelText))
	}
	return footerStyle.Render(strings.Join(segments, " · "))
}
