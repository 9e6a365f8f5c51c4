package engine

import (
	"sort"
	"time"
)

// dayFormat is the calendar-day granularity for study dates. Lexical
// order of formatted dates matches chronological order.
const dayFormat = "2006-01-02"

// recordStudyEvent notes that a review happened at the given time and
// recomputes the study-day streaks. Called once per review with the
// engine lock held.
//
// The streak is recomputed from scratch on every event rather than
// updated incrementally: the study-day log is capped at 365 entries so
// the walk stays cheap, and a full recompute cannot drift across day
// boundaries or repeated same-day reviews.
func (e *Engine) recordStudyEvent(now time.Time) {
	day := now.Format(dayFormat)

	if !containsDay(e.stats.StudyDays, day) {
		e.stats.StudyDays = append(e.stats.StudyDays, day)
		// A restored snapshot may hold days out of order; sorting keeps
		// the cap dropping the true oldest entries
		sort.Strings(e.stats.StudyDays)
		if len(e.stats.StudyDays) > studyDayCap {
			e.stats.StudyDays = e.stats.StudyDays[len(e.stats.StudyDays)-studyDayCap:]
		}
	}

	e.stats.CurrentStreak = computeStreak(e.stats.StudyDays)
	if e.stats.CurrentStreak > e.stats.LongestStreak {
		e.stats.LongestStreak = e.stats.CurrentStreak
	}
	e.stats.LastStudyDate = day
}

// computeStreak walks the distinct study days from the most recent
// backwards, counting while each adjacent pair is exactly one day apart.
// The walk sorts its own copy rather than trusting stored order.
func computeStreak(days []string) int {
	if len(days) == 0 {
		return 0
	}

	sorted := append([]string(nil), days...)
	sort.Strings(sorted)

	streak := 1
	for i := len(sorted) - 1; i > 0; i-- {
		cur, err := time.Parse(dayFormat, sorted[i])
		if err != nil {
			break
		}
		prev, err := time.Parse(dayFormat, sorted[i-1])
		if err != nil {
			break
		}
		if cur.Sub(prev) != 24*time.Hour {
			break
		}
		streak++
	}
	return streak
}

func containsDay(days []string, day string) bool {
	for _, d := range days {
		if d == day {
			return true
		}
	}
	return false
}
