package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/verte-zerg/typetest/internal/model"
)

func TestLoadSentencesSkipsBlankLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "easy.txt")
	if err := os.WriteFile(path, []byte("First line.\n\n  Second line.  \n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	got, err := LoadSentences(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(got) != 2 || got[0] != "First line." || got[1] != "Second line." {
		t.Fatalf("unexpected sentences: %q", got)
	}
}

func TestLoadSentencesEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.txt")
	if err := os.WriteFile(path, []byte("\n \n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := LoadSentences(path); err == nil {
		t.Fatalf("expected error for empty file")
	}
}

func TestLoadDir(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "medium.txt"), []byte("Medium one.\nMedium two.\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	pools, err := LoadDir(dir)
	if err != nil {
		t.Fatalf("load dir: %v", err)
	}
	if len(pools) != 1 || len(pools[model.TierMedium]) != 2 {
		t.Fatalf("unexpected pools: %v", pools)
	}
}

func TestLoadDirWithoutTierFiles(t *testing.T) {
	if _, err := LoadDir(t.TempDir()); err == nil {
		t.Fatalf("expected error for directory without tier files")
	}
}

func TestMerge(t *testing.T) {
	base := map[model.Tier][]string{model.TierEasy: {"a"}, model.TierHard: {"b"}}
	extra := map[model.Tier][]string{model.TierHard: {"c"}, model.TierMedium: nil}
	got := Merge(base, extra)
	if got[model.TierEasy][0] != "a" || got[model.TierHard][0] != "c" {
		t.Fatalf("unexpected merge: %v", got)
	}
	if _, ok := got[model.TierMedium]; ok {
		t.Fatalf("expected empty extra tier to be skipped")
	}
}
