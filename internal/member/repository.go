package member

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/fkhayef/giftbox/internal/database"
)

// Repository handles membership data persistence
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new membership repository
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a membership without touching its associations
func (r *Repository) Create(ctx context.Context, m *Membership) error {
	err := database.Conn(ctx, r.db).Omit(clause.Associations).Create(m).Error
	if err != nil {
		if database.IsUniqueViolation(err) {
			return ErrMemberAlreadyExists
		}
		return fmt.Errorf("failed to create membership: %w", err)
	}
	return nil
}

// ListByGroup retrieves all memberships of a group with their users, newest first
func (r *Repository) ListByGroup(ctx context.Context, groupID string) ([]*Membership, error) {
	var members []*Membership
	err := database.Conn(ctx, r.db).
		Preload("User").
		Where("group_id = ?", groupID).
		Order("joined_at DESC").
		Order("id DESC").
		Find(&members).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list members: %w", err)
	}
	return members, nil
}

// GetByID retrieves a membership of groupID
func (r *Repository) GetByID(ctx context.Context, groupID, id string) (*Membership, error) {
	m := &Membership{}
	err := database.Conn(ctx, r.db).
		Preload("User").
		Where("id = ? AND group_id = ?", id, groupID).
		First(m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get member: %w", err)
	}
	return m, nil
}

// Exists reports whether membership id belongs to groupID
func (r *Repository) Exists(ctx context.Context, groupID, id string) (bool, error) {
	var count int64
	err := database.Conn(ctx, r.db).Model(&Membership{}).
		Where("id = ? AND group_id = ?", id, groupID).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check member: %w", err)
	}
	return count > 0, nil
}

// ExistsForUser reports whether userID already belongs to groupID
func (r *Repository) ExistsForUser(ctx context.Context, groupID, userID string) (bool, error) {
	var count int64
	err := database.Conn(ctx, r.db).Model(&Membership{}).
		Where("group_id = ? AND user_id = ?", groupID, userID).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check membership: %w", err)
	}
	return count > 0, nil
}

// CountByUser counts the memberships still referencing userID
func (r *Repository) CountByUser(ctx context.Context, userID string) (int64, error) {
	var count int64
	err := database.Conn(ctx, r.db).Model(&Membership{}).
		Where("user_id = ?", userID).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count memberships: %w", err)
	}
	return count, nil
}

// Delete removes a membership from groupID
func (r *Repository) Delete(ctx context.Context, groupID, id string) error {
	result := database.Conn(ctx, r.db).
		Where("id = ? AND group_id = ?", id, groupID).
		Delete(&Membership{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete membership: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrMemberNotFound
	}
	return nil
}
