package user

import (
	"time"

	"gorm.io/gorm"

	"github.com/fkhayef/giftbox/pkg/objectid"
)

// User represents a person by display name. Groups add people through
// memberships, so the password hash is a random throwaway.
type User struct {
	ID           string    `gorm:"primaryKey;size:24" json:"id"`
	Name         string    `gorm:"size:50;not null;uniqueIndex" json:"name"`
	PasswordHash string    `gorm:"not null" json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
}

// BeforeCreate assigns the identifier
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = objectid.New()
	}
	return nil
}
