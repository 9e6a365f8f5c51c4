package engine

import (
	"math"
	"time"

	"github.com/kimranazman/mymandarin/pkg/models"
)

// Snapshot assembles the read-only statistics view. It is recomputed on
// every call from the live progress map and stats; nothing here is
// persisted.
func (e *Engine) Snapshot() models.Statistics {
	e.mu.Lock()
	defer e.mu.Unlock()

	var stats models.Statistics

	// Histogram of the whole catalog by current level
	for _, w := range e.catalog.AllWords() {
		stats.LevelCounts[e.levelLocked(w.Pinyin)]++
	}
	stats.NewCount = stats.LevelCounts[0]
	stats.LearningCount = stats.LevelCounts[1] + stats.LevelCounts[2]
	stats.MasteredCount = stats.LevelCounts[4] + stats.LevelCounts[5]

	// Accuracy over every retained review record, not session-scoped
	correct, total := 0, 0
	for _, p := range e.progress {
		for _, rec := range p.History {
			total++
			if rec.Correct {
				correct++
			}
		}
	}
	if total > 0 {
		stats.Accuracy = int(math.Round(100 * float64(correct) / float64(total)))
	}

	stats.DueToday = len(e.dueLocked(time.Now()))

	stats.TotalReviews = e.stats.TotalReviews
	stats.CurrentStreak = e.stats.CurrentStreak
	stats.LongestStreak = e.stats.LongestStreak
	stats.LastStudyDate = e.stats.LastStudyDate
	stats.QuizHistory = append([]models.QuizSession(nil), e.stats.QuizHistory...)

	return stats
}
