package database

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"log"

	"github.com/kimranazman/mymandarin/pkg/models"
)

// Snapshot keys for the two engine state blobs.
const (
	progressKey = "progress"
	statsKey    = "stats"
)

// SnapshotRepository handles database operations for the serialized
// engine state: the per-word progress map and the learner stats.
type SnapshotRepository struct{}

// NewSnapshotRepository creates a new repository instance
func NewSnapshotRepository() *SnapshotRepository {
	return &SnapshotRepository{}
}

// LoadProgress returns the persisted progress map. A missing or corrupt
// snapshot yields an empty map, never an error — the engine always starts
// with usable state.
func (r *SnapshotRepository) LoadProgress() (map[string]*models.Progress, error) {
	progress := make(map[string]*models.Progress)

	data, err := r.load(progressKey)
	if err != nil {
		return nil, err
	}
	if data == nil {
		return progress, nil
	}

	if err := json.Unmarshal(data, &progress); err != nil {
		// Corrupt snapshot is treated as absent
		log.Printf("discarding unreadable progress snapshot: %v", err)
		return make(map[string]*models.Progress), nil
	}
	return progress, nil
}

// SaveProgress persists the progress map.
func (r *SnapshotRepository) SaveProgress(progress map[string]*models.Progress) error {
	data, err := json.Marshal(progress)
	if err != nil {
		return fmt.Errorf("failed to marshal progress: %v", err)
	}
	return r.save(progressKey, data)
}

// LoadStats returns the persisted learner stats, or empty defaults when
// the snapshot is missing or unreadable.
func (r *SnapshotRepository) LoadStats() (*models.UserStats, error) {
	stats := &models.UserStats{}

	data, err := r.load(statsKey)
	if err != nil {
		return nil, err
	}
	if data == nil {
		return stats, nil
	}

	if err := json.Unmarshal(data, stats); err != nil {
		log.Printf("discarding unreadable stats snapshot: %v", err)
		return &models.UserStats{}, nil
	}
	return stats, nil
}

// SaveStats persists the learner stats.
func (r *SnapshotRepository) SaveStats(stats *models.UserStats) error {
	data, err := json.Marshal(stats)
	if err != nil {
		return fmt.Errorf("failed to marshal stats: %v", err)
	}
	return r.save(statsKey, data)
}

// Reset removes both snapshots. Removing snapshots that don't exist is
// not an error.
func (r *SnapshotRepository) Reset() error {
	_, err := DB.Exec("DELETE FROM snapshots WHERE key IN ($1, $2)", progressKey, statsKey)
	if err != nil {
		return fmt.Errorf("failed to reset snapshots: %v", err)
	}
	return nil
}

func (r *SnapshotRepository) load(key string) ([]byte, error) {
	var data string
	err := DB.Get(&data, "SELECT data FROM snapshots WHERE key = $1", key)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load snapshot %q: %v", key, err)
	}
	return []byte(data), nil
}

func (r *SnapshotRepository) save(key string, data []byte) error {
	var err error

	if DB.DriverName() == "postgres" {
		_, err = DB.Exec(`
			INSERT INTO snapshots (key, data, updated_at)
			VALUES ($1, $2, NOW())
			ON CONFLICT (key) DO UPDATE SET
				data = EXCLUDED.data,
				updated_at = NOW()
		`, key, string(data))
	} else {
		// SQLite: INSERT OR REPLACE instead of ON CONFLICT ... RETURNING
		_, err = DB.Exec(`
			INSERT OR REPLACE INTO snapshots (key, data, updated_at)
			VALUES ($1, $2, CURRENT_TIMESTAMP)
		`, key, string(data))
	}

	if err != nil {
		return fmt.Errorf("failed to save snapshot %q: %v", key, err)
	}
	return nil
}
