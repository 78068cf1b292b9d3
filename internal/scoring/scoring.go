// Package scoring compares typed text against a sample and computes WPM.
package scoring

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/verte-zerg/typetest/internal/model"
)

const stripSet = `.,!?;:/()[]"'`

var punctStripper = newStripper(stripSet)

func newStripper(set string) *strings.Replacer {
	pairs := make([]string, 0, len(set)*2)
	for _, r := range set {
		pairs = append(pairs, string(r), "")
	}
	return strings.NewReplacer(pairs...)
}

// Normalize lowercases text, strips punctuation, and splits it into words.
func Normalize(text string) []string {
	text = strings.TrimFunc(text, isSeparator)
	if text == "" {
		return []string{}
	}
	text = punctStripper.Replace(text)
	text = strings.ToLower(text)
	return strings.FieldsFunc(text, isSeparator)
}

// isSeparator reports whether r is word-separating whitespace. The set is
// the ECMAScript WhiteSpace and LineTerminator runes: U+FEFF separates,
// U+0085 does not.
func isSeparator(r rune) bool {
	switch r {
	case '\t', '\n', '\v', '\f', '\r', ' ',
		'\u00a0', '\u1680', '\u2028', '\u2029', '\u202f', '\u205f', '\u3000', '\ufeff':
		return true
	}
	return r >= '\u2000' && r <= '\u200a'
}

// CountCorrectWords counts positional word matches between sample and typed.
// Words past the shorter sequence are ignored.
func CountCorrectWords(sample, typed string) int {
	sampleWords := Normalize(sample)
	typedWords := Normalize(typed)
	limit := min(len(sampleWords), len(typedWords))
	correct := 0
	for i := 0; i < limit; i++ {
		if sampleWords[i] == typedWords[i] {
			correct++
		}
	}
	return correct
}

// CalculateWPM converts a correct word count over elapsed milliseconds to WPM.
func CalculateWPM(correctWords int, elapsedMs float64) int {
	if elapsedMs <= 0 || math.IsNaN(elapsedMs) {
		return 0
	}
	minutes := elapsedMs / 60000.0
	wpm := math.Floor(float64(correctWords)/minutes + 0.5)
	switch {
	case math.IsInf(wpm, 0) || math.IsNaN(wpm) || wpm <= 0:
		return 0
	case wpm >= float64(math.MaxInt):
		return math.MaxInt
	default:
		return int(wpm)
	}
}

// Score builds the result for a finished attempt.
func Score(sample, typed string, elapsed time.Duration) model.ScoreResult {
	elapsedMs := float64(elapsed) / float64(time.Millisecond)
	if elapsedMs < 0 {
		elapsedMs = 0
	}
	correct := CountCorrectWords(sample, typed)
	return model.ScoreResult{
		CorrectWordCount: correct,
		SampleWordCount:  len(Normalize(sample)),
		ElapsedMs:        elapsedMs,
		WPM:              CalculateWPM(correct, elapsedMs),
	}
}

// FormatSeconds renders milliseconds as seconds with two decimals.
func FormatSeconds(ms float64) string {
	if ms < 0 {
		ms = 0
	}
	return strconv.FormatFloat(ms/1000, 'f', 2, 64)
}
