package database

import (
	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/sqlite"

	"video-share/pkg/store"
)

// Open connects to the sqlite database at path and creates any missing
// tables. Use ":memory:" for a throwaway database.
func Open(path string) (*gorm.DB, error) {
	db, err := gorm.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}
	if err := store.AutoMigrate(db); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}
