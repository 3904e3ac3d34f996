package user

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/fkhayef/giftbox/internal/database"
)

// Repository handles user data persistence
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new user repository with database dependency injected
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a new user into the database
func (r *Repository) Create(ctx context.Context, user *User) error {
	if err := database.Conn(ctx, r.db).Create(user).Error; err != nil {
		if database.IsUniqueViolation(err) {
			return ErrNameInUse
		}
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// GetByName retrieves a user by display name
func (r *Repository) GetByName(ctx context.Context, name string) (*User, error) {
	user := &User{}
	err := database.Conn(ctx, r.db).Where("name = ?", name).First(user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user by name: %w", err)
	}
	return user, nil
}

// GetByID retrieves a user by their ID
func (r *Repository) GetByID(ctx context.Context, id string) (*User, error) {
	user := &User{}
	err := database.Conn(ctx, r.db).Where("id = ?", id).First(user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return user, nil
}

// Delete removes a user from the database
func (r *Repository) Delete(ctx context.Context, id string) error {
	result := database.Conn(ctx, r.db).Where("id = ?", id).Delete(&User{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete user: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}
