// Package console runs the typing test over plain line-based I/O.
package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/verte-zerg/typetest/internal/model"
	"github.com/verte-zerg/typetest/internal/report"
	"github.com/verte-zerg/typetest/internal/session"
)

// Runner drives a session from a reader and writes prompts and results.
type Runner struct {
	machine *session.Machine
	tier    model.Tier
	in      *bufio.Reader
	out     io.Writer
	now     func() time.Time
}

// NewRunner constructs a Runner. A nil clock uses time.Now.
func NewRunner(machine *session.Machine, tier model.Tier, in io.Reader, out io.Writer, now func() time.Time) *Runner {
	if now == nil {
		now = time.Now
	}
	return &Runner{
		machine: machine,
		tier:    tier,
		in:      bufio.NewReader(in),
		out:     out,
		now:     now,
	}
}

// Run plays attempts until the input ends or the user types q.
func (r *Runner) Run() error {
	state, _ := r.machine.Apply(session.NewState(r.tier), session.Init{})
	for {
		var effects []session.Effect
		state, effects = r.machine.Apply(state, session.Start{At: r.now()})
		if err := r.printSample(state, effects); err != nil {
			return err
		}
		typed, readErr := r.readLine()
		if readErr != nil && !errors.Is(readErr, io.EOF) {
			return fmt.Errorf("failed to read input: %w", readErr)
		}
		state, _ = r.machine.Apply(state, session.Input{Text: typed})
		state, _ = r.machine.Apply(state, session.Stop{At: r.now()})
		if state.Result != nil {
			if err := report.RenderResult(r.out, state.Tier, *state.Result); err != nil {
				return fmt.Errorf("failed to write result: %w", err)
			}
		}
		if readErr != nil {
			return nil
		}

		if _, err := fmt.Fprint(r.out, "\nPress Enter to try again, or q to quit: "); err != nil {
			return fmt.Errorf("failed to write prompt: %w", err)
		}
		answer, err := r.readLine()
		if err != nil && !errors.Is(err, io.EOF) {
			return fmt.Errorf("failed to read input: %w", err)
		}
		if err != nil || strings.EqualFold(strings.TrimSpace(answer), "q") {
			return nil
		}
		state, _ = r.machine.Apply(state, session.Retry{})
	}
}

func (r *Runner) printSample(state session.State, effects []session.Effect) error {
	sample := state.Sample
	for _, e := range effects {
		if e.Kind == session.EffectSetSample {
			sample = e.Text
		}
	}
	_, err := fmt.Fprintf(r.out, "\n[%s]\n%s\n> ", state.Tier, sample)
	if err != nil {
		return fmt.Errorf("failed to write sample: %w", err)
	}
	return nil
}

func (r *Runner) readLine() (string, error) {
	line, err := r.in.ReadString('\n')
	return strings.TrimRight(line, "\r\n"), err
}
