package models

// UserStats is the process-wide learning aggregate for the single learner.
type UserStats struct {
	QuizHistory   []QuizSession `json:"quiz_history"` // newest first, capped
	TotalReviews  int           `json:"total_reviews"`
	CurrentStreak int           `json:"current_streak"` // consecutive study days
	LongestStreak int           `json:"longest_streak"`
	LastStudyDate string        `json:"last_study_date"` // YYYY-MM-DD
	StudyDays     []string      `json:"study_days"`      // distinct YYYY-MM-DD, oldest first, capped
}

// Statistics is the read-only snapshot assembled for display. It is
// recomputed on demand and never persisted.
type Statistics struct {
	LevelCounts   [6]int        `json:"level_counts"` // histogram over srs levels 0-5
	MasteredCount int           `json:"mastered_count"`
	LearningCount int           `json:"learning_count"`
	NewCount      int           `json:"new_count"`
	Accuracy      int           `json:"accuracy"` // percentage over all review history
	DueToday      int           `json:"due_today"`
	TotalReviews  int           `json:"total_reviews"`
	CurrentStreak int           `json:"current_streak"`
	LongestStreak int           `json:"longest_streak"`
	LastStudyDate string        `json:"last_study_date"`
	QuizHistory   []QuizSession `json:"quiz_history"`
}
