package models

import (
	"time"
)

type User struct {
	Username       string // Primary identifier, alphanumeric/underscore/hyphen only
	Email          string
	PasswordHash   string
	FirstName      string
	LastName       string
	SecondLastName *string // Optional
	IsAdmin        bool
	EmailVerified  bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// UserUpdate carries a partial profile update. Nil fields are left unchanged.
type UserUpdate struct {
	Email          *string
	FirstName      *string
	LastName       *string
	SecondLastName *string
}
