package database

import (
	"fmt"
	"path/filepath"
	"runtime"
	"time"

	"github.com/susthoma/diabetes-diet-bot/internal/config"
	"github.com/susthoma/diabetes-diet-bot/internal/database/migrations"
	"github.com/susthoma/diabetes-diet-bot/internal/logger"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// User is a registered chat user with their onboarding profile. Name
// and Age stay empty until onboarding completes.
type User struct {
	gorm.Model
	TelegramID int64 `gorm:"uniqueIndex"`
	Username   string
	FirstName  string
	LastName   string
	Name       string
	Age        int `gorm:"default:0"`
}

// Onboarded reports whether the user finished the onboarding step.
func (u *User) Onboarded() bool {
	return u.Name != "" && u.Age > 0
}

// DisplayName returns the profile name, falling back to the telegram
// first name before onboarding.
func (u *User) DisplayName() string {
	if u.Name != "" {
		return u.Name
	}
	if u.FirstName != "" {
		return u.FirstName
	}
	return "মা"
}

// GlucoseReading is one stored blood glucose measurement in mmol/L.
// Readings are never updated after creation, only deleted.
type GlucoseReading struct {
	gorm.Model
	UserID     uint `gorm:"index"`
	User       User
	Value      float64
	Context    string
	RecordedAt time.Time `gorm:"index"`
}

func NewPostgresDB(cfg config.DBConfig) (*gorm.DB, error) {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.DBName)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// SQL migrations live next to this file; registered migrations run
	// before AutoMigrate fills in the rest.
	_, filename, _, ok := runtime.Caller(0)
	if !ok {
		return nil, fmt.Errorf("failed to get current file path")
	}
	migrationsDir := filepath.Join(filepath.Dir(filename), "migrations")

	if err := migrations.LoadSQLMigrations(db, migrationsDir); err != nil {
		return nil, fmt.Errorf("failed to load migrations: %w", err)
	}

	if err := migrations.RunMigrations(db); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	if err := db.AutoMigrate(&User{}, &GlucoseReading{}); err != nil {
		return nil, fmt.Errorf("failed to auto-migrate database: %w", err)
	}

	logger.Info("Database connection established and migrations completed")
	return db, nil
}
