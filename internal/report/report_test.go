package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/verte-zerg/typetest/internal/catalog"
	"github.com/verte-zerg/typetest/internal/model"
)

func TestRenderResult(t *testing.T) {
	var buf bytes.Buffer
	res := model.ScoreResult{CorrectWordCount: 7, SampleWordCount: 9, ElapsedMs: 12340, WPM: 34}
	if err := RenderResult(&buf, model.TierHard, res); err != nil {
		t.Fatalf("render: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"Time (s)", "12.34", "WPM", "34", "7/9", "hard"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output:\n%s", want, out)
		}
	}
}

func TestRenderCatalogSingleTier(t *testing.T) {
	var buf bytes.Buffer
	if err := RenderCatalog(&buf, catalog.Default(), model.TierEasy); err != nil {
		t.Fatalf("render: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected header plus 3 rows, got %d:\n%s", len(lines), buf.String())
	}
	if strings.Contains(buf.String(), "medium") {
		t.Fatalf("expected only easy rows")
	}
	if !strings.Contains(lines[1], "The quick brown fox jumps over the lazy dog.") {
		t.Fatalf("unexpected first row: %q", lines[1])
	}
}

func TestRenderCatalogAllTiers(t *testing.T) {
	var buf bytes.Buffer
	if err := RenderCatalog(&buf, catalog.Default()); err != nil {
		t.Fatalf("render: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 10 {
		t.Fatalf("expected header plus 9 rows, got %d", len(lines))
	}
}
