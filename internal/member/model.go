package member

import (
	"time"

	"gorm.io/gorm"

	"github.com/fkhayef/giftbox/internal/group"
	"github.com/fkhayef/giftbox/internal/user"
	"github.com/fkhayef/giftbox/pkg/objectid"
)

// Membership links a user to a group; a user joins a group at most once
type Membership struct {
	ID       string    `gorm:"primaryKey;size:24"`
	UserID   string    `gorm:"size:24;not null;uniqueIndex:idx_membership_user_group"`
	GroupID  string    `gorm:"size:24;not null;uniqueIndex:idx_membership_user_group;index"`
	JoinedAt time.Time `gorm:"autoCreateTime;index"`

	// Populated by Preload
	User  user.User   `gorm:"foreignKey:UserID"`
	Group group.Group `gorm:"foreignKey:GroupID"`
}

// BeforeCreate assigns the identifier
func (m *Membership) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = objectid.New()
	}
	return nil
}
