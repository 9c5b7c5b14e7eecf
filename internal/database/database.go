package database

import (
	"fmt"
	"log"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"

	"github.com/VitalyVL1/filmorate/internal/models"
	"github.com/VitalyVL1/filmorate/internal/storage"
)

// Connect opens the database connection, runs migrations and seeds the
// reference-data catalogs.
func Connect(dsn string) (*gorm.DB, error) {
	// Configure GORM logger
	customLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags), // io writer
		logger.Config{
			SlowThreshold:             200 * time.Millisecond, // Slow SQL threshold
			LogLevel:                  logger.Warn,            // Log level
			IgnoreRecordNotFoundError: true,                   // Ignore ErrRecordNotFound error for logger
			Colorful:                  true,                   // Enable color
		},
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: customLogger,
	})
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	log.Println("Database connection established.")

	err = db.AutoMigrate(
		&models.User{},
		&models.Friendship{},
		&models.Mpa{},
		&models.Genre{},
		&models.Film{},
		&models.Like{},
	)
	if err != nil {
		return nil, fmt.Errorf("migrate database: %w", err)
	}

	if err := seedCatalogs(db); err != nil {
		return nil, fmt.Errorf("seed catalogs: %w", err)
	}

	log.Println("Database migrated successfully.")
	return db, nil
}

// seedCatalogs inserts the fixed genre and MPA entries with their reserved
// ids. Re-running is a no-op; the id sequences are advanced past the seeds so
// administrative inserts do not collide with them.
func seedCatalogs(db *gorm.DB) error {
	genres := storage.SeedGenres()
	if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&genres).Error; err != nil {
		return err
	}
	ratings := storage.SeedMpa()
	if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&ratings).Error; err != nil {
		return err
	}

	for _, table := range []string{"genres", "mpa"} {
		err := db.Exec(
			fmt.Sprintf("SELECT setval(pg_get_serial_sequence('%s', 'id'), (SELECT MAX(id) FROM %s))", table, table),
		).Error
		if err != nil {
			return err
		}
	}
	return nil
}
