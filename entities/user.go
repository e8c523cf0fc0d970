package entities

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Username  string    `gorm:"size:64;uniqueIndex;not null" json:"username"`
	Email     string    `gorm:"size:128;uniqueIndex;not null" json:"email"`
	FirstName string    `gorm:"size:64" json:"first_name"`
	LastName  string    `gorm:"size:64" json:"last_name"`
	Password  string    `gorm:"size:128;not null" json:"-"`
	IsActive  bool      `gorm:"default:false" json:"is_active"`
	AvatarURL string    `json:"avatar_url,omitempty"`

	// Tokens issued before this moment are refused by the auth middleware.
	PasswordChangedAt *time.Time `json:"-"`

	Timestamp
}

func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}

// UserUniqueToken is the single-use credential mailed out for account
// activation and password set. The unique index on UserID keeps at most one
// live token per user.
type UserUniqueToken struct {
	Token  uuid.UUID `gorm:"type:uuid;primary_key" json:"token"`
	UserID uuid.UUID `gorm:"type:uuid;uniqueIndex;not null" json:"user_id"`

	User *User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}
