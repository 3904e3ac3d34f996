package group

import (
	"time"

	"gorm.io/gorm"

	"github.com/fkhayef/giftbox/pkg/objectid"
)

// Group is the tenant: every member and gift belongs to exactly one group
type Group struct {
	ID           string    `gorm:"primaryKey;size:24" json:"id"`
	Name         string    `gorm:"size:100;not null;uniqueIndex" json:"name"`
	PasswordHash string    `gorm:"not null" json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
}

// BeforeCreate assigns the identifier
func (g *Group) BeforeCreate(tx *gorm.DB) error {
	if g.ID == "" {
		g.ID = objectid.New()
	}
	return nil
}
