package database

import (
	"fmt"
	"log"
	"os"
	"time"

	"placebook/backend/internal/models"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// Connect initializes the database connection and runs migrations.
// driver is "postgres" (default) or "sqlite".
func Connect(driver, dsn string) {
	var err error

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

	DB, err = Open(driver, dsn, customLogger)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	log.Println("Database connection established.")

	if err := Migrate(DB); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	log.Println("Database migrated successfully.")
}

// Open opens a gorm connection for driver without migrating it.
func Open(driver, dsn string, gormLogger logger.Interface) (*gorm.DB, error) {
	cfg := &gorm.Config{
		Logger:         gormLogger,
		TranslateError: true,
	}

	switch driver {
	case "", "postgres":
		return gorm.Open(postgres.Open(dsn), cfg)
	case "sqlite":
		return OpenSQLite(dsn, cfg)
	}
	return nil, fmt.Errorf("unsupported database driver %q", driver)
}

// OpenSQLite opens an SQLite database with foreign keys enforced.
// In-memory databases are pinned to a single connection so every query sees
// the same data.
func OpenSQLite(dsn string, cfg *gorm.Config) (*gorm.DB, error) {
	if cfg == nil {
		cfg = &gorm.Config{Logger: logger.Default.LogMode(logger.Silent), TranslateError: true}
	}

	db, err := gorm.Open(sqlite.Open(dsn), cfg)
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.Exec("PRAGMA foreign_keys = ON").Error; err != nil {
		return nil, err
	}
	return db, nil
}

// Migrate creates or updates the schema.
func Migrate(db *gorm.DB) error {
	if err := db.SetupJoinTable(&models.Place{}, "SharedWith", &models.PlaceShare{}); err != nil {
		return err
	}
	return db.AutoMigrate(&models.User{}, &models.Category{}, &models.Place{}, &models.PlaceShare{}, &models.Friendship{})
}
