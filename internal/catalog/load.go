package catalog

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/verte-zerg/typetest/internal/model"
)

// LoadSentences reads one sentence per line from the provided file path.
func LoadSentences(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := file.Close(); cerr != nil {
			// Best-effort close for read-only text file.
			_ = cerr
		}
	}()

	var sentences []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		sentences = append(sentences, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(sentences) == 0 {
		return nil, fmt.Errorf("text file is empty: %s", path)
	}
	return sentences, nil
}

// LoadDir reads <tier>.txt files from dir. Missing files are skipped.
func LoadDir(dir string) (map[model.Tier][]string, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to stat texts directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("texts path is not a directory: %s", dir)
	}
	pools := map[model.Tier][]string{}
	for _, tier := range model.Tiers() {
		path := filepath.Join(dir, string(tier)+".txt")
		sentences, err := LoadSentences(path)
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				continue
			}
			return nil, fmt.Errorf("failed to load %s texts: %w", tier, err)
		}
		pools[tier] = sentences
	}
	if len(pools) == 0 {
		return nil, fmt.Errorf("no tier text files in %s", dir)
	}
	return pools, nil
}

// Merge returns base with every non-empty tier of extra replacing it.
func Merge(base, extra map[model.Tier][]string) map[model.Tier][]string {
	out := make(map[model.Tier][]string, len(base)+len(extra))
	for tier, pool := range base {
		out[tier] = pool
	}
	for tier, pool := range extra {
		if len(pool) > 0 {
			out[tier] = pool
		}
	}
	return out
}
