package gift

import (
	"time"

	"gorm.io/gorm"

	"github.com/fkhayef/giftbox/pkg/objectid"
)

// Gift is an idea for a present, owned by a group and optionally addressed to one member
type Gift struct {
	ID          string    `gorm:"primaryKey;size:24" json:"id"`
	Title       string    `gorm:"size:200;not null" json:"title"`
	Description *string   `gorm:"type:text" json:"description,omitempty"`
	URL         *string   `gorm:"type:text" json:"url,omitempty"`
	Purchased   bool      `gorm:"not null" json:"purchased"`
	CreatedAt   time.Time `gorm:"index" json:"createdAt"`
	GroupID     string    `gorm:"size:24;not null;index" json:"groupId"`
	MemberID    *string   `gorm:"size:24;index" json:"memberId,omitempty"`
}

// BeforeCreate assigns the identifier
func (g *Gift) BeforeCreate(tx *gorm.DB) error {
	if g.ID == "" {
		g.ID = objectid.New()
	}
	return nil
}
