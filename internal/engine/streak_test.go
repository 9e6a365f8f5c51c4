package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func day(s string) time.Time {
	d, err := time.Parse(dayFormat, s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestStreakConsecutiveDays(t *testing.T) {
	e, _ := newTestEngine(t)

	e.recordStudyEvent(day("2026-03-01"))
	e.recordStudyEvent(day("2026-03-02"))
	e.recordStudyEvent(day("2026-03-03"))

	assert.Equal(t, 3, e.stats.CurrentStreak)
	assert.Equal(t, 3, e.stats.LongestStreak)
	assert.Equal(t, "2026-03-03", e.stats.LastStudyDate)
}

func TestStreakResetsAfterGap(t *testing.T) {
	e, _ := newTestEngine(t)

	e.recordStudyEvent(day("2026-03-01"))
	e.recordStudyEvent(day("2026-03-02"))
	e.recordStudyEvent(day("2026-03-05"))

	assert.Equal(t, 1, e.stats.CurrentStreak)
	// The two-day run before the gap is remembered
	assert.Equal(t, 2, e.stats.LongestStreak)
}

func TestStreakSameDayReviewsCountOnce(t *testing.T) {
	e, _ := newTestEngine(t)

	at := day("2026-03-01")
	e.recordStudyEvent(at.Add(9 * time.Hour))
	e.recordStudyEvent(at.Add(13 * time.Hour))
	e.recordStudyEvent(at.Add(21 * time.Hour))

	assert.Equal(t, []string{"2026-03-01"}, e.stats.StudyDays)
	assert.Equal(t, 1, e.stats.CurrentStreak)
}

func TestStreakThroughRecordReview(t *testing.T) {
	e, _ := newTestEngine(t)

	e.RecordReview("yī", true, "multiple_choice", 0)
	e.RecordReview("èr", false, "multiple_choice", 0)

	assert.Equal(t, 1, e.stats.CurrentStreak)
	assert.Equal(t, time.Now().Format(dayFormat), e.stats.LastStudyDate)
}

func TestStudyDaysCapped(t *testing.T) {
	e, _ := newTestEngine(t)

	start := day("2024-01-01")
	for i := 0; i < 400; i++ {
		e.recordStudyEvent(start.AddDate(0, 0, i))
	}

	assert.Len(t, e.stats.StudyDays, studyDayCap)
	// Oldest entries are dropped, the most recent kept
	assert.Equal(t, start.AddDate(0, 0, 400-studyDayCap).Format(dayFormat), e.stats.StudyDays[0])
	assert.Equal(t, start.AddDate(0, 0, 399).Format(dayFormat), e.stats.StudyDays[studyDayCap-1])
	assert.Equal(t, studyDayCap, e.stats.CurrentStreak)
}

func TestComputeStreakEmpty(t *testing.T) {
	assert.Equal(t, 0, computeStreak(nil))
	assert.Equal(t, 1, computeStreak([]string{"2026-03-01"}))
}

func TestComputeStreakUnsortedDays(t *testing.T) {
	// Order in the stored slice must not matter
	assert.Equal(t, 3, computeStreak([]string{"2026-03-03", "2026-03-01", "2026-03-02"}))
	assert.Equal(t, 2, computeStreak([]string{"2026-03-05", "2026-02-27", "2026-03-04", "2026-03-01"}))
}

func TestStreakFromUnsortedRestoredDays(t *testing.T) {
	e, _ := newTestEngine(t)

	// A restored snapshot may carry study days out of order
	e.stats.StudyDays = []string{"2026-03-02", "2026-03-01"}
	e.recordStudyEvent(day("2026-03-03"))

	assert.Equal(t, 3, e.stats.CurrentStreak)
	assert.Equal(t, []string{"2026-03-01", "2026-03-02", "2026-03-03"}, e.stats.StudyDays)
}
