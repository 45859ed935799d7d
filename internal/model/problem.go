// Package model holds the normalized LeetCode records produced by the parser.
// Records are plain values; none of them refer to each other except Problem.Desc,
// which carries a serialized copy of a Question.
package model

import "math"

// StatusNull is the status recorded when the platform reports none.
const StatusNull = "Null"

// Level is a problem difficulty: 0 unknown, 1 easy, 2 medium, 3 hard.
type Level int

const (
	LevelUnknown Level = iota
	LevelEasy
	LevelMedium
	LevelHard
)

// LevelFromDifficulty maps the GraphQL difficulty word by its first letter.
func LevelFromDifficulty(word string) Level {
	if word == "" {
		return LevelUnknown
	}
	switch word[0] {
	case 'E':
		return LevelEasy
	case 'M':
		return LevelMedium
	case 'H':
		return LevelHard
	default:
		return LevelUnknown
	}
}

func (l Level) String() string {
	switch l {
	case LevelEasy:
		return "Easy"
	case LevelMedium:
		return "Medium"
	case LevelHard:
		return "Hard"
	default:
		return "Unknown"
	}
}

// Problem is one catalog entry.
type Problem struct {
	Category string `json:"category"`

	// FID is the user-facing problem number; ID is the internal question id.
	FID int `json:"fid"`
	ID  int `json:"id"`

	Level   Level  `json:"level"`
	Locked  bool   `json:"locked"`
	Name    string `json:"name"`
	Slug    string `json:"slug"`
	Starred bool   `json:"starred"`
	Status  string `json:"status"`

	// Percent is the acceptance rate in [0, 100]. It is NaN when nothing was ever
	// submitted; callers treat non-finite values as "no data".
	Percent float64 `json:"percent"`

	// Desc is empty unless the problem was built from a question detail, in which
	// case it holds that Question as JSON.
	Desc string `json:"desc"`
}

// HasPercent reports whether Percent carries data.
func (p Problem) HasPercent() bool {
	return !math.IsNaN(p.Percent) && !math.IsInf(p.Percent, 0)
}

// Percent returns accepted/submitted*100. A zero submitted count yields NaN or +Inf,
// which is kept so "never submitted" stays distinct from "0% accepted".
func Percent(accepted, submitted float64) float64 {
	return accepted / submitted * 100
}

// PercentTolerance is how far a percent computed from raw counts may drift from
// one parsed out of the platform's rounded display string.
const PercentTolerance = 0.5

// PercentsAgree reports whether two acceptance percents match within PercentTolerance.
func PercentsAgree(a, b float64) bool {
	if math.IsNaN(a) || math.IsNaN(b) || math.IsInf(a, 0) || math.IsInf(b, 0) {
		return false
	}
	return math.Abs(a-b) <= PercentTolerance
}
