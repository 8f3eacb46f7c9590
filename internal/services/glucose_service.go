package services

import (
	"context"
	"fmt"
	"time"

	"github.com/susthoma/diabetes-diet-bot/internal/database"
	apperrors "github.com/susthoma/diabetes-diet-bot/internal/errors"
	"github.com/susthoma/diabetes-diet-bot/internal/glucose"
	"gorm.io/gorm"
)

type GlucoseService struct {
	db *gorm.DB
}

func NewGlucoseService(db *gorm.DB) *GlucoseService {
	return &GlucoseService{db: db}
}

// AddReading inserts a reading and returns it with the store-assigned
// id.
func (s *GlucoseService) AddReading(ctx context.Context, userID uint, value float64, readingCtx glucose.Context, recordedAt time.Time) (*database.GlucoseReading, error) {
	record := &database.GlucoseReading{
		UserID:     userID,
		Value:      value,
		Context:    string(readingCtx),
		RecordedAt: recordedAt,
	}

	if err := s.db.WithContext(ctx).Create(record).Error; err != nil {
		return nil, apperrors.NewStoreError(err).WithContext("user_id", userID)
	}

	return record, nil
}

// GetUserReadings returns all readings for a user, most recent first.
func (s *GlucoseService) GetUserReadings(ctx context.Context, userID uint) ([]database.GlucoseReading, error) {
	var readings []database.GlucoseReading
	if err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("recorded_at DESC").
		Find(&readings).Error; err != nil {
		return nil, apperrors.NewStoreError(err).WithContext("user_id", userID)
	}
	return readings, nil
}

// DeleteReading removes one reading by id, scoped to its owner so a
// stale callback cannot delete another user's row.
func (s *GlucoseService) DeleteReading(ctx context.Context, userID uint, readingID uint) error {
	result := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&database.GlucoseReading{}, readingID)
	if result.Error != nil {
		return apperrors.NewStoreError(result.Error).WithContext("reading_id", readingID)
	}
	if result.RowsAffected == 0 {
		return apperrors.New(apperrors.ErrorTypeStore, "READING_NOT_FOUND",
			fmt.Sprintf("glucose reading %d not found", readingID))
	}
	return nil
}
