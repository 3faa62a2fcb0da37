package models

import (
	"time"
)

// User is the user resource. PasswordHash travels as "password" in the
// resource payload because the REST mock is a dumb JSON store; the Auth
// Store strips it before exposing a session user.
type User struct {
	ID           string     `gorm:"type:varchar(36);primaryKey" json:"id"`
	Email        string     `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string     `gorm:"not null" json:"password,omitempty"`
	Name         string     `gorm:"not null" json:"name"`
	Bio          string     `gorm:"type:text" json:"bio,omitempty"`
	AvatarURL    string     `gorm:"size:255" json:"avatarUrl,omitempty"`
	Favorites    StringList `gorm:"type:json;default:'[]'" json:"favorites"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
}

func (User) TableName() string {
	return "users"
}

// WithoutPassword returns a copy safe to hold as the session user.
func (u User) WithoutPassword() User {
	u.PasswordHash = ""
	return u
}
