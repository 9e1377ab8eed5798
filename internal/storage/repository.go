package storage

import (
	"github.com/Drakonfox/Hard-to-Die/internal/game"
)

// Repository persists finished-run records. Active runs never touch
// storage; only outcomes are written, for the leaderboard.
type Repository interface {
	SaveRunRecord(rec *game.RunRecord) error
	// GetTopRuns returns the best finished runs ordered by levels cleared,
	// then rage points.
	GetTopRuns(limit int) ([]game.RunRecord, error)
}
