// Package session implements the typing test state machine as a pure
// transition function. The UI feeds it events and applies the effects.
package session

import (
	"strconv"
	"time"

	"github.com/verte-zerg/typetest/internal/model"
	"github.com/verte-zerg/typetest/internal/scoring"
)

// Phase is the coarse state of a test session.
type Phase int

// Session phases.
const (
	PhaseIdle Phase = iota
	PhaseRunning
	PhaseStopped
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseRunning:
		return "running"
	case PhaseStopped:
		return "stopped"
	default:
		return "unknown"
	}
}

// Controls holds the enabled flags of the three buttons.
type Controls struct {
	Start bool
	Stop  bool
	Retry bool
}

// State is the full session state. Attempt is non-nil only while running.
type State struct {
	Phase    Phase
	Tier     model.Tier
	Sample   string
	Attempt  *model.Attempt
	Controls Controls
	Result   *model.ScoreResult
}

// NewState returns the initial idle state for tier.
func NewState(tier model.Tier) State {
	if _, ok := model.ParseTier(string(tier)); !ok {
		tier = model.TierEasy
	}
	return State{
		Phase:    PhaseIdle,
		Tier:     tier,
		Controls: Controls{Start: true, Stop: false, Retry: true},
	}
}

// Running reports whether an attempt is active.
func (s State) Running() bool {
	return s.Attempt != nil
}

// Event is an input to the state machine.
type Event interface {
	isEvent()
}

// Init selects the first sample for display.
type Init struct{}

// ChangeDifficulty switches the selected tier.
type ChangeDifficulty struct {
	Tier model.Tier
}

// Start begins an attempt at the given instant.
type Start struct {
	At time.Time
}

// Input replaces the typed text of the active attempt.
type Input struct {
	Text string
}

// Stop ends the active attempt at the given instant.
type Stop struct {
	At time.Time
}

// Retry resets the session to idle.
type Retry struct{}

// Tick refreshes the live time display.
type Tick struct {
	At time.Time
}

func (Init) isEvent()             {}
func (ChangeDifficulty) isEvent() {}
func (Start) isEvent()            {}
func (Input) isEvent()            {}
func (Stop) isEvent()             {}
func (Retry) isEvent()            {}
func (Tick) isEvent()             {}

// EffectKind identifies a UI side effect.
type EffectKind int

// Effect kinds.
const (
	EffectSetSample EffectKind = iota
	EffectClearInput
	EffectFocusInput
	EffectSetTime
	EffectSetWPM
	EffectSetLevel
	EffectSetControls
)

// Effect is a side effect for the UI to apply. Text is used by the Set*
// display effects, Controls by EffectSetControls.
type Effect struct {
	Kind     EffectKind
	Text     string
	Controls Controls
}

// Selector picks a sample sentence for a tier.
type Selector interface {
	Select(tier model.Tier) string
}

// Machine applies events to states.
type Machine struct {
	selector Selector
}

// NewMachine returns a Machine drawing samples from selector.
func NewMachine(selector Selector) *Machine {
	return &Machine{selector: selector}
}

// Apply returns the state after ev and the effects the UI must perform.
// The input state is not modified.
func (m *Machine) Apply(s State, ev Event) (State, []Effect) {
	switch ev := ev.(type) {
	case Init:
		return m.showSample(s)
	case ChangeDifficulty:
		return m.changeDifficulty(s, ev)
	case Start:
		return m.start(s, ev)
	case Input:
		return input(s, ev)
	case Stop:
		return stop(s, ev)
	case Retry:
		return retry(s)
	case Tick:
		return tick(s, ev)
	default:
		return s, nil
	}
}

func (m *Machine) showSample(s State) (State, []Effect) {
	s.Sample = m.selector.Select(s.Tier)
	return s, []Effect{{Kind: EffectSetSample, Text: s.Sample}}
}

func (m *Machine) changeDifficulty(s State, ev ChangeDifficulty) (State, []Effect) {
	tier, ok := model.ParseTier(string(ev.Tier))
	if !ok {
		tier = model.TierEasy
	}
	s.Tier = tier
	if s.Running() {
		return s, nil
	}
	return m.showSample(s)
}

func (m *Machine) start(s State, ev Start) (State, []Effect) {
	if !s.Controls.Start || s.Running() {
		return s, nil
	}
	s, effects := m.showSample(s)
	s.Phase = PhaseRunning
	s.Result = nil
	s.Attempt = &model.Attempt{SampleText: s.Sample, StartTime: ev.At}
	s.Controls = Controls{Start: false, Stop: true, Retry: false}
	effects = append(effects,
		Effect{Kind: EffectClearInput},
		Effect{Kind: EffectFocusInput},
		Effect{Kind: EffectSetControls, Controls: s.Controls},
		Effect{Kind: EffectSetTime, Text: scoring.FormatSeconds(0)},
	)
	return s, effects
}

func input(s State, ev Input) (State, []Effect) {
	if !s.Running() {
		return s, nil
	}
	attempt := *s.Attempt
	attempt.TypedText = ev.Text
	s.Attempt = &attempt
	return s, nil
}

func stop(s State, ev Stop) (State, []Effect) {
	if !s.Running() {
		return s, nil
	}
	elapsed := ev.At.Sub(s.Attempt.StartTime)
	result := scoring.Score(s.Attempt.SampleText, s.Attempt.TypedText, elapsed)
	s.Phase = PhaseStopped
	s.Attempt = nil
	s.Result = &result
	s.Controls = Controls{Start: true, Stop: false, Retry: true}
	return s, []Effect{
		{Kind: EffectSetTime, Text: scoring.FormatSeconds(result.ElapsedMs)},
		{Kind: EffectSetWPM, Text: strconv.Itoa(result.WPM)},
		{Kind: EffectSetLevel, Text: string(s.Tier)},
		{Kind: EffectSetControls, Controls: s.Controls},
	}
}

func retry(s State) (State, []Effect) {
	if !s.Controls.Retry {
		return s, nil
	}
	s.Phase = PhaseIdle
	s.Attempt = nil
	s.Result = nil
	s.Controls.Start = true
	s.Controls.Stop = false
	return s, []Effect{
		{Kind: EffectSetTime, Text: scoring.FormatSeconds(0)},
		{Kind: EffectSetWPM, Text: ""},
		{Kind: EffectSetLevel, Text: ""},
		{Kind: EffectClearInput},
		{Kind: EffectSetControls, Controls: s.Controls},
	}
}

func tick(s State, ev Tick) (State, []Effect) {
	if !s.Running() {
		return s, nil
	}
	ms := float64(ev.At.Sub(s.Attempt.StartTime)) / float64(time.Millisecond)
	return s, []Effect{{Kind: EffectSetTime, Text: scoring.FormatSeconds(ms)}}
}
