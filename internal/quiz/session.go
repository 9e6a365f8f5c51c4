package quiz

import (
	"time"

	"github.com/kimranazman/mymandarin/internal/engine"
	"github.com/kimranazman/mymandarin/pkg/models"
)

// Session accumulates the outcomes of one quiz run. Every answer is fed
// to the engine as a review event; Finish records the aggregate session.
type Session struct {
	engine     *engine.Engine
	mode       Mode
	difficulty Difficulty
	category   string
	started    time.Time

	total         int
	firstAttempt  int
	secondAttempt int
	correctByWord map[string]bool
	wordIDs       []string
}

// Start begins a quiz session over the given scope.
func (q *Quiz) Start(mode Mode, difficulty Difficulty, category string) *Session {
	return &Session{
		engine:        q.engine,
		mode:          mode,
		difficulty:    difficulty,
		category:      category,
		started:       time.Now(),
		correctByWord: make(map[string]bool),
	}
}

// Answer records one attempt at a question. attempt is 1-based. The first
// attempt is the review event that drives the word's progress; retries
// only affect the session counters.
func (s *Session) Answer(word models.Word, correct bool, attempt int, responseTimeMs int) {
	if attempt == 1 {
		s.engine.RecordReview(word.Pinyin, correct, string(s.mode), responseTimeMs)
		s.total++
		s.wordIDs = append(s.wordIDs, word.Pinyin)
	}
	if correct {
		s.correctByWord[word.Pinyin] = true
		switch attempt {
		case 1:
			s.firstAttempt++
		case 2:
			s.secondAttempt++
		}
	}
}

// Finish closes the session and records it with the engine. Returns the
// stored session with its assigned id.
func (s *Session) Finish() models.QuizSession {
	correct := 0
	for _, id := range s.wordIDs {
		if s.correctByWord[id] {
			correct++
		}
	}

	session := models.QuizSession{
		Mode:                 string(s.mode),
		Difficulty:           string(s.difficulty),
		Category:             s.category,
		TotalWords:           s.total,
		CorrectWords:         correct,
		IncorrectWords:       s.total - correct,
		FirstAttemptCorrect:  s.firstAttempt,
		SecondAttemptCorrect: s.secondAttempt,
		Duration:             int(time.Since(s.started).Seconds()),
		WordIDs:              s.wordIDs,
	}

	return s.engine.RecordSession(session)
}
