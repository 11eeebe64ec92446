package loop

import "github.com/tomz197/quiver/internal/config"

// Scoring, by throws needed to clear a level
const (
	ScoreSingleThrow = config.MaxScore     // Cleared with the first throw
	ScoreFewThrows   = config.MaxScore / 2 // Fewer than fewThrows
	ScoreManyThrows  = config.MaxScore / 5

	fewThrows = 5
)

// LevelScore returns the score for clearing a level in the given number of throws.
func LevelScore(throws int) int {
	switch {
	case throws == 1:
		return ScoreSingleThrow
	case throws < fewThrows:
		return ScoreFewThrows
	default:
		return ScoreManyThrows
	}
}
