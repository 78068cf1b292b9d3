// Package model defines shared data structures.
package model

import (
	"strings"
	"time"
)

// Tier is a difficulty category selecting a sentence pool.
type Tier string

// Known tiers.
const (
	TierEasy   Tier = "easy"
	TierMedium Tier = "medium"
	TierHard   Tier = "hard"
)

// Tiers returns all tiers in display order.
func Tiers() []Tier {
	return []Tier{TierEasy, TierMedium, TierHard}
}

// ParseTier maps a user-supplied name to a Tier.
func ParseTier(s string) (Tier, bool) {
	switch Tier(strings.ToLower(strings.TrimSpace(s))) {
	case TierEasy:
		return TierEasy, true
	case TierMedium:
		return TierMedium, true
	case TierHard:
		return TierHard, true
	default:
		return "", false
	}
}

// Config defines test settings.
type Config struct {
	Difficulty Tier
	LiveTimer  bool
	Plain      bool
	TextsDir   string
}

// Attempt is the in-flight typing attempt.
type Attempt struct {
	SampleText string
	StartTime  time.Time
	TypedText  string
}

// ScoreResult captures the outcome of a stopped attempt.
type ScoreResult struct {
	CorrectWordCount int
	SampleWordCount  int
	ElapsedMs        float64
	WPM              int
}
