package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/verte-zerg/typetest/internal/catalog"
	"github.com/verte-zerg/typetest/internal/model"
	"github.com/verte-zerg/typetest/internal/scoring"
)

// RenderResult prints the time, WPM and level of a finished attempt.
func RenderResult(w io.Writer, tier model.Tier, res model.ScoreResult) error {
	rows := [][]string{
		{"Time (s)", scoring.FormatSeconds(res.ElapsedMs)},
		{"WPM", strconv.Itoa(res.WPM)},
		{"Correct words", fmt.Sprintf("%d/%d", res.CorrectWordCount, res.SampleWordCount)},
		{"Level", string(tier)},
	}
	return writeLines(w, formatTable(nil, rows, map[int]bool{1: true}))
}

// RenderCatalog prints the sentences of the given tiers, or all tiers when none are given.
func RenderCatalog(w io.Writer, c *catalog.Catalog, tiers ...model.Tier) error {
	if len(tiers) == 0 {
		tiers = model.Tiers()
	}
	headers := []string{"Level", "#", "Words", "Sentence"}
	var rows [][]string
	for _, tier := range tiers {
		for i, sentence := range c.Pool(tier) {
			rows = append(rows, []string{
				string(tier),
				strconv.Itoa(i + 1),
				strconv.Itoa(len(scoring.Normalize(sentence))),
				sentence,
			})
		}
	}
	return writeLines(w, formatTable(headers, rows, map[int]bool{1: true, 2: true}))
}

func writeLines(w io.Writer, lines []string) error {
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
