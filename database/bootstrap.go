// database/bootstrap.go
package database

import (
	"fmt"
	"log"
	"strings"
	"time"

	sqlite "github.com/glebarez/sqlite" // CGO-free driver
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"travelplanner/entities"
)

// Open connects to PostgreSQL when databaseURL is a postgres URL and to the
// SQLite file at sqlitePath otherwise, then migrates the schema.
func Open(databaseURL, sqlitePath string) (*gorm.DB, error) {
	cfg := &gorm.Config{NowFunc: func() time.Time { return time.Now().UTC() }}

	var (
		db  *gorm.DB
		err error
	)
	if isPostgresURL(databaseURL) {
		log.Printf("[db] using postgres")
		db, err = gorm.Open(postgres.Open(databaseURL), cfg)
	} else {
		log.Printf("[db] using sqlite at %s", sqlitePath)
		db, err = gorm.Open(sqlite.Open(sqlitePath), cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := db.AutoMigrate(&entities.Itinerary{}); err != nil {
		return nil, fmt.Errorf("automigrate: %w", err)
	}
	return db, nil
}

func isPostgresURL(u string) bool {
	u = strings.ToLower(strings.TrimSpace(u))
	return strings.HasPrefix(u, "postgres://") || strings.HasPrefix(u, "postgresql://")
}

// Close releases the underlying connection pool.
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
