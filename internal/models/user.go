package models

import (
	"errors"
	"time"
)

// ErrUserExists is returned when a signup collides with an already
// registered email, either on the pre-check or on the store's unique index.
var ErrUserExists = errors.New("user already exists")

// User is a stored credential record. Only the bcrypt hash of the
// password is ever persisted.
type User struct {
	ID           string    `json:"userId"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"` // don’t expose hash
	CreatedAt    time.Time `json:"-"`
}
