// Package srs implements the fixed six-level spaced repetition scale used
// to schedule vocabulary reviews.
package srs

import (
	"time"

	"github.com/kimranazman/mymandarin/pkg/models"
)

const (
	// MinLevel marks a word that has never been answered correctly.
	MinLevel = 0
	// MaxLevel marks a mastered word.
	MaxLevel = 5
	// HistoryCap bounds the per-word review history.
	HistoryCap = 10
)

// Leveled implements the level-based scheduling rule: each correct answer
// moves a word one level up, each incorrect answer drops it two levels,
// and the level picks the next review interval from a fixed table.
type Leveled struct {
	// Review intervals in days, indexed by level.
	Intervals [MaxLevel + 1]int
	// How many levels an incorrect answer costs.
	LevelDrop int
}

// NewLeveled creates a scheduler with the default interval table.
func NewLeveled() *Leveled {
	return &Leveled{
		Intervals: [MaxLevel + 1]int{0, 1, 3, 7, 14, 30},
		LevelDrop: 2,
	}
}

// Interval returns the number of days until the next review for a level.
// Out-of-range levels are clamped into the table.
func (l *Leveled) Interval(level int) int {
	if level < MinLevel {
		level = MinLevel
	}
	if level > MaxLevel {
		level = MaxLevel
	}
	return l.Intervals[level]
}

// NewProgress creates the first progress record for a word. A correct
// first answer starts the word at level 1; an incorrect one leaves it
// at level 0.
func (l *Leveled) NewProgress(wordID string, rec models.ReviewRecord) *models.Progress {
	p := &models.Progress{
		WordID:  wordID,
		History: []models.ReviewRecord{rec},
	}
	if rec.Correct {
		p.SRSLevel = 1
		p.CorrectCount = 1
		p.Streak = 1
	} else {
		p.SRSLevel = 0
		p.IncorrectCount = 1
	}
	p.LastReviewed = rec.Timestamp
	p.NextReview = rec.Timestamp.AddDate(0, 0, l.Interval(p.SRSLevel))
	return p
}

// Process applies one review outcome to an existing progress record.
// A word that has been seen before never returns to level 0: an incorrect
// answer floors at level 1, so "attempted and struggling" stays
// distinguishable from "never attempted".
func (l *Leveled) Process(p *models.Progress, rec models.ReviewRecord) {
	if rec.Correct {
		p.SRSLevel++
		if p.SRSLevel > MaxLevel {
			p.SRSLevel = MaxLevel
		}
		p.CorrectCount++
		p.Streak++
	} else {
		p.SRSLevel -= l.LevelDrop
		if p.SRSLevel < 1 {
			p.SRSLevel = 1
		}
		p.IncorrectCount++
		p.Streak = 0
	}

	p.LastReviewed = rec.Timestamp
	p.NextReview = rec.Timestamp.AddDate(0, 0, l.Interval(p.SRSLevel))

	// Prepend the new record and keep only the most recent entries.
	p.History = append([]models.ReviewRecord{rec}, p.History...)
	if len(p.History) > HistoryCap {
		p.History = p.History[:HistoryCap]
	}
}

// IsDue reports whether a word should be reviewed now. A missing record
// means the word has never been studied and is always due.
func (l *Leveled) IsDue(p *models.Progress, now time.Time) bool {
	if p == nil {
		return true
	}
	return !p.NextReview.After(now)
}

// IsMastered reports whether a word sits in the top two levels.
func (l *Leveled) IsMastered(p *models.Progress) bool {
	return p != nil && p.SRSLevel >= MaxLevel-1
}

// IsStruggling flags words at low mastery with repeated failures.
func (l *Leveled) IsStruggling(p *models.Progress) bool {
	return p != nil && p.SRSLevel <= 1 && p.IncorrectCount >= 2
}
