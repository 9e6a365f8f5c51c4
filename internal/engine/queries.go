package engine

import (
	"time"

	"github.com/kimranazman/mymandarin/internal/srs"
	"github.com/kimranazman/mymandarin/pkg/models"
)

// AllWords returns every catalog word.
func (e *Engine) AllWords() []models.Word {
	return e.catalog.AllWords()
}

// WordsByCategory returns the catalog words of one category.
func (e *Engine) WordsByCategory(category string) []models.Word {
	return e.catalog.WordsByCategory(category)
}

// Categories returns the catalog category names.
func (e *Engine) Categories() []string {
	return e.catalog.Categories()
}

// DueForReview returns the words that should be reviewed now: words never
// seen before plus words whose next review time has passed.
func (e *Engine) DueForReview() []models.Word {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.dueLocked(time.Now())
}

// StruggleWords returns low-mastery words with repeated failures, flagged
// for prioritized practice.
func (e *Engine) StruggleWords() []models.Word {
	e.mu.Lock()
	defer e.mu.Unlock()

	var words []models.Word
	for _, w := range e.catalog.AllWords() {
		if e.scheduler.IsStruggling(e.progress[w.Pinyin]) {
			words = append(words, w)
		}
	}
	return words
}

// ByLevel returns the catalog words currently at the given srs level.
// Words without a progress record count as level 0.
func (e *Engine) ByLevel(level int) []models.Word {
	e.mu.Lock()
	defer e.mu.Unlock()

	var words []models.Word
	for _, w := range e.catalog.AllWords() {
		if e.levelLocked(w.Pinyin) == level {
			words = append(words, w)
		}
	}
	return words
}

func (e *Engine) dueLocked(now time.Time) []models.Word {
	var due []models.Word
	for _, w := range e.catalog.AllWords() {
		if e.scheduler.IsDue(e.progress[w.Pinyin], now) {
			due = append(due, w)
		}
	}
	return due
}

func (e *Engine) levelLocked(wordID string) int {
	if p, ok := e.progress[wordID]; ok {
		return p.SRSLevel
	}
	return srs.MinLevel
}
