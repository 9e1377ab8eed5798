package storage

import (
	"github.com/Drakonfox/Hard-to-Die/internal/game"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// OpenAndMigrate opens the run-record database and keeps the schema
// updated via AutoMigrate. Pass a file path for a durable leaderboard or
// "file::memory:?cache=shared" to keep records for the process lifetime
// only.
func OpenAndMigrate(dataSourceName string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(dataSourceName), &gorm.Config{})
	if err != nil {
		return nil, err
	}
	if err := db.AutoMigrate(&game.RunRecord{}); err != nil {
		return nil, err
	}
	return db, nil
}
