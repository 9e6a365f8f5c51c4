package models

import "time"

// QuizSession summarizes one completed quiz run. The engine assigns the
// ID and timestamp when the session is recorded.
type QuizSession struct {
	ID                   string    `json:"id"`
	Timestamp            time.Time `json:"timestamp"`
	Mode                 string    `json:"mode"` // e.g. "multiple_choice", "text_input"
	Difficulty           string    `json:"difficulty"`
	Category             string    `json:"category"` // empty means all categories
	TotalWords           int       `json:"total_words"`
	CorrectWords         int       `json:"correct_words"`
	IncorrectWords       int       `json:"incorrect_words"`
	FirstAttemptCorrect  int       `json:"first_attempt_correct"`
	SecondAttemptCorrect int       `json:"second_attempt_correct"`
	Duration             int       `json:"duration"` // Duration in seconds
	WordIDs              []string  `json:"word_ids"` // pinyin keys reviewed in this session
}
