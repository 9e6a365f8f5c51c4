package models

import "time"

// Progress tracks a learner's history with a single word. Records are
// created lazily on the first review of a word.
type Progress struct {
	WordID         string         `json:"word_id"`
	CorrectCount   int            `json:"correct_count"`
	IncorrectCount int            `json:"incorrect_count"`
	LastReviewed   time.Time      `json:"last_reviewed"`
	NextReview     time.Time      `json:"next_review"`
	SRSLevel       int            `json:"srs_level"` // 0 = never answered correctly, 5 = mastered
	Streak         int            `json:"streak"`    // consecutive correct answers for this word
	History        []ReviewRecord `json:"history"`   // newest first, capped
}

// ReviewRecord captures a single review outcome. Immutable once created.
type ReviewRecord struct {
	Timestamp      time.Time `json:"timestamp"`
	Correct        bool      `json:"correct"`
	Mode           string    `json:"mode"`
	ResponseTimeMs int       `json:"response_time_ms,omitempty"` // 0 when not measured
}
