package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshotEmptyEngine(t *testing.T) {
	e, _ := newTestEngine(t)

	snap := e.Snapshot()

	assert.Equal(t, [6]int{5, 0, 0, 0, 0, 0}, snap.LevelCounts)
	assert.Equal(t, 5, snap.NewCount)
	assert.Equal(t, 0, snap.LearningCount)
	assert.Equal(t, 0, snap.MasteredCount)
	// No history anywhere means 0, not a division by zero
	assert.Equal(t, 0, snap.Accuracy)
	assert.Equal(t, 5, snap.DueToday)
	assert.Empty(t, snap.LastStudyDate)
}

func TestSnapshotAccuracy(t *testing.T) {
	e, _ := newTestEngine(t)

	// Two words, each with one correct and one incorrect review
	e.RecordReview("yī", true, "multiple_choice", 0)
	e.RecordReview("yī", false, "multiple_choice", 0)
	e.RecordReview("èr", false, "multiple_choice", 0)
	e.RecordReview("èr", true, "multiple_choice", 0)

	assert.Equal(t, 50, e.Snapshot().Accuracy)
}

func TestSnapshotAccuracyRounds(t *testing.T) {
	e, _ := newTestEngine(t)

	// 2 of 3 correct → 66.7 → 67
	e.RecordReview("yī", true, "multiple_choice", 0)
	e.RecordReview("yī", true, "multiple_choice", 0)
	e.RecordReview("yī", false, "multiple_choice", 0)

	assert.Equal(t, 67, e.Snapshot().Accuracy)
}

func TestSnapshotLevelCounts(t *testing.T) {
	e, _ := newTestEngine(t)

	e.RecordReview("yī", true, "multiple_choice", 0) // level 1
	e.RecordReview("èr", true, "multiple_choice", 0) // level 1
	e.RecordReview("èr", true, "multiple_choice", 0) // level 2
	for i := 0; i < 5; i++ {                         // level 5
		e.RecordReview("sān", true, "multiple_choice", 0)
	}

	snap := e.Snapshot()
	assert.Equal(t, [6]int{2, 1, 1, 0, 0, 1}, snap.LevelCounts)
	assert.Equal(t, 2, snap.NewCount)
	assert.Equal(t, 2, snap.LearningCount)
	assert.Equal(t, 1, snap.MasteredCount)
}

func TestDueForReviewFreshCatalog(t *testing.T) {
	e, _ := newTestEngine(t)

	due := e.DueForReview()
	assert.Len(t, due, 5, "every word of a fresh catalog is due")
}

func TestDueForReviewAfterCorrectAnswer(t *testing.T) {
	e, _ := newTestEngine(t)

	// A correct answer schedules the word one day out
	e.RecordReview("yī", true, "multiple_choice", 0)
	assert.Len(t, e.DueForReview(), 4)

	// An incorrect answer on a new word keeps it due (level 0, interval 0)
	e.RecordReview("èr", false, "multiple_choice", 0)
	assert.Len(t, e.DueForReview(), 4)
}

func TestStruggleWords(t *testing.T) {
	e, _ := newTestEngine(t)

	// Two failures at low level flag the word
	e.RecordReview("yī", false, "multiple_choice", 0)
	e.RecordReview("yī", false, "multiple_choice", 0)

	// High-level word with old failures is not struggling
	e.RecordReview("èr", false, "multiple_choice", 0)
	e.RecordReview("èr", false, "multiple_choice", 0)
	for i := 0; i < 4; i++ {
		e.RecordReview("èr", true, "multiple_choice", 0)
	}

	struggles := e.StruggleWords()
	require.Len(t, struggles, 1)
	assert.Equal(t, "yī", struggles[0].Pinyin)
}

func TestByLevelPartitionsCatalog(t *testing.T) {
	e, _ := newTestEngine(t)

	e.RecordReview("yī", true, "multiple_choice", 0)
	e.RecordReview("mā ma", true, "multiple_choice", 0)
	e.RecordReview("mā ma", true, "multiple_choice", 0)

	assert.Len(t, e.ByLevel(0), 3, "unreviewed words count as level 0")
	assert.Len(t, e.ByLevel(1), 1)
	assert.Len(t, e.ByLevel(2), 1)
	assert.Empty(t, e.ByLevel(5))
}

func TestCatalogPassthrough(t *testing.T) {
	e, _ := newTestEngine(t)

	assert.Len(t, e.AllWords(), 5)
	assert.Equal(t, []string{"Numbers", "Family"}, e.Categories())
	assert.Len(t, e.WordsByCategory("Family"), 2)
	assert.Empty(t, e.WordsByCategory("Food"))
}
