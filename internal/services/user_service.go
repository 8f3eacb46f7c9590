package services

import (
	"context"
	"errors"

	"github.com/susthoma/diabetes-diet-bot/internal/database"
	apperrors "github.com/susthoma/diabetes-diet-bot/internal/errors"
	"gorm.io/gorm"
)

type UserService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

// RegisterUser fetches the user for a telegram id, creating the row on
// first contact.
func (s *UserService) RegisterUser(ctx context.Context, telegramID int64, username, firstName, lastName string) (*database.User, error) {
	user := &database.User{
		TelegramID: telegramID,
		Username:   username,
		FirstName:  firstName,
		LastName:   lastName,
	}

	result := s.db.WithContext(ctx).FirstOrCreate(user, database.User{TelegramID: telegramID})
	if result.Error != nil {
		return nil, apperrors.NewStoreError(result.Error).WithContext("telegram_id", telegramID)
	}

	return user, nil
}

// GetUserByTelegramID gets a user by their telegram id.
func (s *UserService) GetUserByTelegramID(ctx context.Context, telegramID int64) (*database.User, error) {
	var user database.User
	if err := s.db.WithContext(ctx).Where("telegram_id = ?", telegramID).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.New(apperrors.ErrorTypeStore, "USER_NOT_FOUND",
				"user not found").WithContext("telegram_id", telegramID)
		}
		return nil, apperrors.NewStoreError(err).WithContext("telegram_id", telegramID)
	}
	return &user, nil
}

// UpdateProfile stores the onboarding profile (display name and age).
// The same call serves later profile updates; nothing else ever mutates
// the profile.
func (s *UserService) UpdateProfile(ctx context.Context, userID uint, name string, age int) (*database.User, error) {
	updates := map[string]interface{}{"name": name, "age": age}
	if err := s.db.WithContext(ctx).Model(&database.User{}).Where("id = ?", userID).Updates(updates).Error; err != nil {
		return nil, apperrors.NewStoreError(err).WithContext("user_id", userID)
	}

	var user database.User
	if err := s.db.WithContext(ctx).First(&user, userID).Error; err != nil {
		return nil, apperrors.NewStoreError(err).WithContext("user_id", userID)
	}
	return &user, nil
}
