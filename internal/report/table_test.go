package report

import "testing"

func TestFormatTableAlignsColumns(t *testing.T) {
	headers := []string{"Level", "#", "Sentence"}
	rows := [][]string{
		{"easy", "1", "A cat."},
		{"medium", "12", "Rain."},
	}
	rightAlign := map[int]bool{1: true}

	lines := formatTable(headers, rows, rightAlign)
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(lines))
	}
	if lines[0] != "Level   # Sentence" {
		t.Fatalf("unexpected header line: %q", lines[0])
	}
	if lines[1] != "easy    1 A cat." {
		t.Fatalf("unexpected row line: %q", lines[1])
	}
	if lines[2] != "medium 12 Rain." {
		t.Fatalf("unexpected row line: %q", lines[2])
	}
}

func TestFormatTableWideRunes(t *testing.T) {
	lines := formatTable(nil, [][]string{{"日本", "x"}, {"ab", "y"}}, nil)
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	if lines[1] != "ab   y" {
		t.Fatalf("expected padding by display width, got %q", lines[1])
	}
}
