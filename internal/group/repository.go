package group

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/fkhayef/giftbox/internal/database"
)

// Repository handles group data persistence
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new group repository
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a new group into the database
func (r *Repository) Create(ctx context.Context, group *Group) error {
	if err := database.Conn(ctx, r.db).Create(group).Error; err != nil {
		if database.IsUniqueViolation(err) {
			return ErrGroupNameTaken
		}
		return fmt.Errorf("failed to create group: %w", err)
	}
	return nil
}

// GetByName retrieves a group by its unique name
func (r *Repository) GetByName(ctx context.Context, name string) (*Group, error) {
	group := &Group{}
	err := database.Conn(ctx, r.db).Where("name = ?", name).First(group).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get group: %w", err)
	}
	return group, nil
}

// GetByID retrieves a group by its ID
func (r *Repository) GetByID(ctx context.Context, id string) (*Group, error) {
	group := &Group{}
	err := database.Conn(ctx, r.db).Where("id = ?", id).First(group).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get group: %w", err)
	}
	return group, nil
}
