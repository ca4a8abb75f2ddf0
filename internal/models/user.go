package models

import (
	"time"
)

// User represents a registered account. The numeric row id never leaves the
// storage layer; UserID is the external identifier tasks reference.
type User struct {
	ID           uint      `gorm:"primaryKey" json:"-"`
	UserID       string    `gorm:"uniqueIndex;not null" json:"userId"`
	Email        string    `gorm:"uniqueIndex;not null" json:"email" validate:"required,email"`
	DisplayName  string    `gorm:"not null" json:"displayName"`
	PasswordHash string    `gorm:"not null" json:"-"`
	PasswordSalt string    `gorm:"not null" json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// PublicUser is the view returned by register and login. It never carries
// credential material.
type PublicUser struct {
	UserID      string `json:"userId"`
	Email       string `json:"email"`
	DisplayName string `json:"displayName"`
}

// PublicProfile is the view returned by the profile endpoint.
type PublicProfile struct {
	UID         string    `json:"uid"`
	Email       string    `json:"email"`
	DisplayName string    `json:"displayName"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Public returns the register/login view of the user.
func (u *User) Public() PublicUser {
	return PublicUser{UserID: u.UserID, Email: u.Email, DisplayName: u.DisplayName}
}

// Profile returns the profile view of the user.
func (u *User) Profile() PublicProfile {
	return PublicProfile{UID: u.UserID, Email: u.Email, DisplayName: u.DisplayName, CreatedAt: u.CreatedAt}
}
