// Package engine owns the learner's mutable state: the per-word progress
// map and the aggregate stats. All mutation goes through its methods, and
// every mutation triggers a persistence write as a side effect. In-memory
// state is the source of truth during a session; the durable copy is only
// read back at startup.
package engine

import (
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/kimranazman/mymandarin/internal/catalog"
	"github.com/kimranazman/mymandarin/internal/srs"
	"github.com/kimranazman/mymandarin/pkg/models"
)

const (
	// quizHistoryCap bounds the recorded session log.
	quizHistoryCap = 100
	// studyDayCap bounds the distinct study day log.
	studyDayCap = 365
)

// SnapshotStore is the durable storage for the two engine state blobs.
// Loads substitute empty defaults for missing or unreadable snapshots.
type SnapshotStore interface {
	LoadProgress() (map[string]*models.Progress, error)
	SaveProgress(map[string]*models.Progress) error
	LoadStats() (*models.UserStats, error)
	SaveStats(*models.UserStats) error
	Reset() error
}

// Engine tracks mastery of the catalog words and schedules reviews.
type Engine struct {
	mu        sync.Mutex
	catalog   *catalog.Catalog
	store     SnapshotStore
	scheduler *srs.Leveled

	progress map[string]*models.Progress
	stats    *models.UserStats
}

// New creates an engine over the given catalog, restoring state from the
// snapshot store. Load failures degrade to empty state and are never fatal.
func New(cat *catalog.Catalog, store SnapshotStore) *Engine {
	e := &Engine{
		catalog:   cat,
		store:     store,
		scheduler: srs.NewLeveled(),
	}

	progress, err := store.LoadProgress()
	if err != nil {
		log.Printf("starting with empty progress: %v", err)
		progress = make(map[string]*models.Progress)
	}
	// A hand-edited or truncated snapshot can hold null entries that
	// unmarshal as nil pointers; drop them so the word reads as never
	// reviewed instead of crashing a later lookup.
	for id, p := range progress {
		if p == nil {
			log.Printf("dropping empty progress entry for %q", id)
			delete(progress, id)
		}
	}
	e.progress = progress

	stats, err := store.LoadStats()
	if err != nil {
		log.Printf("starting with empty stats: %v", err)
		stats = &models.UserStats{}
	}
	e.stats = stats

	return e
}

// RecordReview applies one review outcome to a word. Unknown word keys are
// not an error: the word is treated as seen for the first time and a fresh
// progress record is created. responseTimeMs of 0 means not measured.
func (e *Engine) RecordReview(wordID string, correct bool, mode string, responseTimeMs int) models.Progress {
	e.mu.Lock()
	defer e.mu.Unlock()

	now := time.Now()
	rec := models.ReviewRecord{
		Timestamp:      now,
		Correct:        correct,
		Mode:           mode,
		ResponseTimeMs: responseTimeMs,
	}

	p, ok := e.progress[wordID]
	if !ok {
		p = e.scheduler.NewProgress(wordID, rec)
		e.progress[wordID] = p
	} else {
		e.scheduler.Process(p, rec)
	}

	e.stats.TotalReviews++
	e.recordStudyEvent(now)
	e.persist()

	return copyProgress(p)
}

// GetProgress returns the progress record for a word, or false when the
// word has never been reviewed.
func (e *Engine) GetProgress(wordID string) (models.Progress, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	p, ok := e.progress[wordID]
	if !ok {
		return models.Progress{}, false
	}
	return copyProgress(p), true
}

// RecordSession appends a completed quiz session to the history, assigning
// a fresh id and timestamp. Session contents are not validated; the quiz
// flow is trusted to supply consistent totals. Returns the stored session.
func (e *Engine) RecordSession(session models.QuizSession) models.QuizSession {
	e.mu.Lock()
	defer e.mu.Unlock()

	session.ID = uuid.New().String()
	session.Timestamp = time.Now()

	e.stats.QuizHistory = append([]models.QuizSession{session}, e.stats.QuizHistory...)
	if len(e.stats.QuizHistory) > quizHistoryCap {
		e.stats.QuizHistory = e.stats.QuizHistory[:quizHistoryCap]
	}

	e.persist()
	return session
}

// ResetAll clears every progress record, the stats, and the durable
// snapshots. Resetting an already empty engine is a no-op.
func (e *Engine) ResetAll() {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.progress = make(map[string]*models.Progress)
	e.stats = &models.UserStats{}

	if err := e.store.Reset(); err != nil {
		log.Printf("failed to clear snapshots: %v", err)
	}
}

// persist writes the state blobs after a mutation. Failures are logged and
// swallowed: the in-memory state stays authoritative. The stats blob is
// only written once there is something worth keeping, so a fresh install
// doesn't persist an empty record.
func (e *Engine) persist() {
	if err := e.store.SaveProgress(e.progress); err != nil {
		log.Printf("failed to save progress: %v", err)
	}

	if e.stats.TotalReviews > 0 || len(e.stats.QuizHistory) > 0 {
		if err := e.store.SaveStats(e.stats); err != nil {
			log.Printf("failed to save stats: %v", err)
		}
	}
}

// copyProgress returns a defensive copy with its own history slice.
func copyProgress(p *models.Progress) models.Progress {
	out := *p
	out.History = append([]models.ReviewRecord(nil), p.History...)
	return out
}
