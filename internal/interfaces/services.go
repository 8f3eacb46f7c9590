package interfaces

import (
	"context"
	"time"

	"github.com/susthoma/diabetes-diet-bot/internal/database"
	"github.com/susthoma/diabetes-diet-bot/internal/glucose"
)

// UserServiceInterface defines the contract for user operations
type UserServiceInterface interface {
	RegisterUser(ctx context.Context, telegramID int64, username, firstName, lastName string) (*database.User, error)
	GetUserByTelegramID(ctx context.Context, telegramID int64) (*database.User, error)
	UpdateProfile(ctx context.Context, userID uint, name string, age int) (*database.User, error)
}

// GlucoseServiceInterface defines the contract for glucose reading operations
type GlucoseServiceInterface interface {
	AddReading(ctx context.Context, userID uint, value float64, readingCtx glucose.Context, recordedAt time.Time) (*database.GlucoseReading, error)
	GetUserReadings(ctx context.Context, userID uint) ([]database.GlucoseReading, error)
	DeleteReading(ctx context.Context, userID uint, readingID uint) error
}
