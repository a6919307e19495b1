package database

import (
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/ryanwiwcharyk/moodlog/internal/config"
	"github.com/ryanwiwcharyk/moodlog/internal/model"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// SchemaVersion is bumped on any structural change to the domain tables.
// A stored version that does not match triggers a destructive recreate.
const SchemaVersion = 7

// schemaMeta is a single-row table recording which schema version the
// domain tables were created under.
type schemaMeta struct {
	ID      uint `gorm:"primarykey"`
	Version int  `gorm:"not null"`
}

func (schemaMeta) TableName() string {
	return "schema_meta"
}

// Connect opens the database handle using GORM. The handle is built once at
// process start and passed to every component that needs it; nothing in this
// package holds onto it.
func Connect(cfg *config.AppConfig) (*gorm.DB, error) {
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%d sslmode=%s TimeZone=%s",
		cfg.DBHost,
		cfg.DBUser,
		cfg.DBPassword,
		cfg.DBName,
		cfg.DBPort,
		cfg.DBSslMode,
		cfg.DBTimezone,
	)

	logLevel := logger.Silent
	if cfg.AppEnv == "development" {
		logLevel = logger.Info
	}

	gormLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  logLevel,
			IgnoreRecordNotFoundError: true,
			Colorful:                  true,
		},
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: gormLogger,
		// Unique-index violations surface as gorm.ErrDuplicatedKey.
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	log.Println("Database connection established successfully.")
	return db, nil
}

// Migrate brings the schema to SchemaVersion and seeds the mood type
// reference table. On a version mismatch from a prior run the domain tables
// are dropped and recreated empty. That is the deliberate fallback for this
// service, not an error; there are no forward or backward migration scripts.
func Migrate(db *gorm.DB) error {
	if db == nil {
		return fmt.Errorf("database connection is not initialized")
	}

	if err := db.AutoMigrate(&schemaMeta{}); err != nil {
		return fmt.Errorf("failed to migrate schema_meta: %w", err)
	}

	var meta schemaMeta
	err := db.First(&meta).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		// Fresh database.
	case err != nil:
		return fmt.Errorf("failed to read schema version: %w", err)
	case meta.Version != SchemaVersion:
		log.Printf("Schema version mismatch (stored %d, want %d). Dropping and recreating domain tables; existing data is discarded.",
			meta.Version, SchemaVersion)
		if err := db.Migrator().DropTable(
			&model.MoodHistory{}, &model.UserMood{}, &model.MoodType{}, &model.User{},
		); err != nil {
			return fmt.Errorf("failed to drop domain tables: %w", err)
		}
	}

	if err := db.AutoMigrate(
		&model.User{}, &model.MoodType{}, &model.UserMood{}, &model.MoodHistory{},
	); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	if err := seedMoodTypes(db); err != nil {
		return fmt.Errorf("failed to seed mood types: %w", err)
	}

	meta.ID = 1
	meta.Version = SchemaVersion
	if err := db.Save(&meta).Error; err != nil {
		return fmt.Errorf("failed to record schema version: %w", err)
	}

	log.Println("Database migration completed successfully.")
	return nil
}

// seedMoodTypes inserts any missing rows of the fixed mood reference set.
// Existing rows are left untouched so the id space stays stable.
func seedMoodTypes(db *gorm.DB) error {
	for _, moodType := range model.SeedMoodTypes() {
		var existing model.MoodType
		err := db.Where("id = ?", moodType.ID).First(&existing).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			if err := db.Create(&moodType).Error; err != nil {
				return err
			}
			continue
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// Ping checks the database connection.
func Ping(db *gorm.DB) error {
	if db == nil {
		return fmt.Errorf("database connection is not initialized")
	}
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB for ping: %w", err)
	}
	return sqlDB.Ping()
}

// Close closes the database connection.
func Close(db *gorm.DB) {
	if db == nil {
		return
	}
	sqlDB, err := db.DB()
	if err != nil {
		return
	}
	if err := sqlDB.Close(); err != nil {
		log.Printf("Error closing database connection: %v\n", err)
		return
	}
	log.Println("Database connection closed.")
}
