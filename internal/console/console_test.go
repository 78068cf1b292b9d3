package console

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/verte-zerg/typetest/internal/catalog"
	"github.com/verte-zerg/typetest/internal/model"
	"github.com/verte-zerg/typetest/internal/session"
)

type firstSource struct{}

func (firstSource) Intn(int) int { return 0 }

func stepClock(step time.Duration) func() time.Time {
	now := time.Date(2024, 5, 6, 7, 8, 9, 0, time.UTC)
	return func() time.Time {
		t := now
		now = now.Add(step)
		return t
	}
}

func newMachine() *session.Machine {
	return session.NewMachine(catalog.NewProviderWithSource(catalog.Default(), firstSource{}))
}

func TestRunMediumExactSample(t *testing.T) {
	sample := catalog.Default().Pool(model.TierMedium)[0]
	in := strings.NewReader(sample + "\nq\n")
	var out bytes.Buffer
	r := NewRunner(newMachine(), model.TierMedium, in, &out, stepClock(30*time.Second))
	if err := r.Run(); err != nil {
		t.Fatalf("run: %v", err)
	}
	got := out.String()
	if !strings.Contains(got, sample) {
		t.Fatalf("expected sample in output:\n%s", got)
	}
	// 10 words in 30s.
	for _, want := range []string{"[medium]", "30.00", "20", "10/10", "medium"} {
		if !strings.Contains(got, want) {
			t.Fatalf("expected %q in output:\n%s", want, got)
		}
	}
}

func TestRunRetriesUntilQuit(t *testing.T) {
	in := strings.NewReader("the quick\n\nthe\nQ\n")
	var out bytes.Buffer
	r := NewRunner(newMachine(), model.TierEasy, in, &out, stepClock(6*time.Second))
	if err := r.Run(); err != nil {
		t.Fatalf("run: %v", err)
	}
	if n := strings.Count(out.String(), "[easy]"); n != 2 {
		t.Fatalf("expected 2 attempts, got %d:\n%s", n, out.String())
	}
	if !strings.Contains(out.String(), "2/9") || !strings.Contains(out.String(), "1/9") {
		t.Fatalf("expected both attempt scores:\n%s", out.String())
	}
}

func TestRunStopsAtEOF(t *testing.T) {
	in := strings.NewReader("the quick brown")
	var out bytes.Buffer
	r := NewRunner(newMachine(), "unknown", in, &out, stepClock(time.Minute))
	if err := r.Run(); err != nil {
		t.Fatalf("run: %v", err)
	}
	got := out.String()
	if !strings.Contains(got, "[easy]") || !strings.Contains(got, "3/9") {
		t.Fatalf("expected scored easy attempt:\n%s", got)
	}
	if strings.Contains(got, "try again") {
		t.Fatalf("expected no retry prompt after EOF:\n%s", got)
	}
}
