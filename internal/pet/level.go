package pet

import "fmt"

// LevelingMode selects how many levels a single conversion can award.
type LevelingMode string

const (
	// LevelingSingle awards at most one level per conversion, however many
	// threshold multiples the conversion spans.
	LevelingSingle LevelingMode = "single"
	// LevelingPerBoundary awards one level for every threshold multiple
	// crossed.
	LevelingPerBoundary LevelingMode = "per_boundary"
)

// ParseLevelingMode validates a configured leveling mode.
// An empty string selects LevelingSingle.
func ParseLevelingMode(s string) (LevelingMode, error) {
	switch LevelingMode(s) {
	case "", LevelingSingle:
		return LevelingSingle, nil
	case LevelingPerBoundary:
		return LevelingPerBoundary, nil
	default:
		return "", fmt.Errorf("pet: unknown leveling mode %q", s)
	}
}

// LevelsGained returns how many levels the step total moving from oldTotal
// to newTotal awards. A boundary is crossed when
// floor(newTotal/threshold) > floor(oldTotal/threshold).
func LevelsGained(oldTotal, newTotal, threshold int, mode LevelingMode) int {
	if threshold <= 0 || newTotal <= oldTotal {
		return 0
	}
	crossed := newTotal/threshold - oldTotal/threshold
	if crossed <= 0 {
		return 0
	}
	if mode == LevelingPerBoundary {
		return crossed
	}
	return 1
}
