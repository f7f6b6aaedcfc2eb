package pkg

import (
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/school-hub/school-service/internal/config"
	"github.com/school-hub/school-service/internal/models"
)

// InitDatabase opens the postgres connection, runs migrations and creates
// the indexes GORM tags cannot express.
func InitDatabase(cfg *config.Config) (*gorm.DB, error) {
	gormLogLevel := logger.Warn
	if cfg.Environment == "development" {
		gormLogLevel = logger.Info
	}

	db, err := gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{
		Logger: logger.Default.LogMode(gormLogLevel),
		// Unique violations become gorm.ErrDuplicatedKey so the service
		// layer can map them to a typed conflict error.
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database instance: %w", err)
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(time.Hour)

	if err := migrate(db); err != nil {
		return nil, err
	}

	return db, nil
}

func migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.User{},
		&models.Student{},
		&models.Event{},
		&models.Sport{},
		&models.Achievement{},
		&models.Announcement{},
		&models.Notification{},
		&models.NotificationRead{},
		&models.Grade{},
		&models.TimetableSlot{},
	)
	if err != nil {
		return fmt.Errorf("auto migration failed: %w", err)
	}

	// A student identity (name, grade) must be unique among active
	// students only; soft-deleted rows may collide freely.
	err = db.Exec(`CREATE UNIQUE INDEX IF NOT EXISTS idx_students_active_identity
		ON students (name, grade) WHERE is_active`).Error
	if err != nil {
		return fmt.Errorf("failed to create student identity index: %w", err)
	}

	return nil
}
