package storage

import (
	"github.com/Drakonfox/Hard-to-Die/internal/game"

	"gorm.io/gorm"
)

type sqliteRepository struct {
	db *gorm.DB
}

func NewSQLiteRepository(db *gorm.DB) Repository {
	return &sqliteRepository{db: db}
}

func (r *sqliteRepository) SaveRunRecord(rec *game.RunRecord) error {
	return r.db.Create(rec).Error
}

// GetTopRuns returns top N finished runs ordered by LevelsCleared desc,
// then RagePoints desc.
func (r *sqliteRepository) GetTopRuns(limit int) ([]game.RunRecord, error) {
	if limit <= 0 {
		limit = 10
	}
	var records []game.RunRecord
	if err := r.db.Model(&game.RunRecord{}).
		Order("levels_cleared DESC").
		Order("rage_points DESC").
		Limit(limit).
		Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}
