package gift

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/fkhayef/giftbox/internal/database"
)

// Repository handles gift data persistence. Every query is scoped by group id.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new gift repository
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a new gift
func (r *Repository) Create(ctx context.Context, gift *Gift) error {
	if err := database.Conn(ctx, r.db).Create(gift).Error; err != nil {
		return fmt.Errorf("failed to create gift: %w", err)
	}
	return nil
}

// GetByID retrieves a gift belonging to groupID
func (r *Repository) GetByID(ctx context.Context, groupID, id string) (*Gift, error) {
	gift := &Gift{}
	err := database.Conn(ctx, r.db).
		Where("id = ? AND group_id = ?", id, groupID).
		First(gift).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get gift: %w", err)
	}
	return gift, nil
}

// ListByGroup retrieves the group's gifts newest first, optionally for one member
func (r *Repository) ListByGroup(ctx context.Context, groupID, memberID string) ([]*Gift, error) {
	q := database.Conn(ctx, r.db).Where("group_id = ?", groupID)
	if memberID != "" {
		q = q.Where("member_id = ?", memberID)
	}

	var gifts []*Gift
	if err := q.Order("created_at DESC").Order("id DESC").Find(&gifts).Error; err != nil {
		return nil, fmt.Errorf("failed to list gifts: %w", err)
	}
	return gifts, nil
}

// Update applies column updates to a gift in groupID.
// Returns (nil, nil) when no such gift exists in the group.
func (r *Repository) Update(ctx context.Context, groupID, id string, updates map[string]interface{}) (*Gift, error) {
	if len(updates) > 0 {
		result := database.Conn(ctx, r.db).Model(&Gift{}).
			Where("id = ? AND group_id = ?", id, groupID).
			Updates(updates)
		if result.Error != nil {
			return nil, fmt.Errorf("failed to update gift: %w", result.Error)
		}
	}
	return r.GetByID(ctx, groupID, id)
}

// TogglePurchased flips the purchased flag in a single statement
func (r *Repository) TogglePurchased(ctx context.Context, groupID, id string) (*Gift, error) {
	result := database.Conn(ctx, r.db).Model(&Gift{}).
		Where("id = ? AND group_id = ?", id, groupID).
		Update("purchased", gorm.Expr("NOT purchased"))
	if result.Error != nil {
		return nil, fmt.Errorf("failed to toggle gift: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, nil
	}
	return r.GetByID(ctx, groupID, id)
}

// Delete removes a gift from groupID
func (r *Repository) Delete(ctx context.Context, groupID, id string) error {
	result := database.Conn(ctx, r.db).
		Where("id = ? AND group_id = ?", id, groupID).
		Delete(&Gift{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete gift: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrGiftNotFound
	}
	return nil
}

// DeleteByMember removes every gift in groupID addressed to memberID
func (r *Repository) DeleteByMember(ctx context.Context, groupID, memberID string) (int64, error) {
	result := database.Conn(ctx, r.db).
		Where("group_id = ? AND member_id = ?", groupID, memberID).
		Delete(&Gift{})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to delete member gifts: %w", result.Error)
	}
	return result.RowsAffected, nil
}
