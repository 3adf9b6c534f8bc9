package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the identity record. Email doubles as the login identifier.
type User struct {
	ID           uuid.UUID `db:"id"`
	Email        string    `db:"email"`
	PasswordHash string    `db:"password"`
	FirstName    string    `db:"first_name"`
	LastName     string    `db:"last_name"`
	IsActive     bool      `db:"is_active"`
	DateJoined   time.Time `db:"date_joined"`
	UpdatedAt    time.Time `db:"updated_at"`
}

// Profile is one-to-one with User and tracks email verification.
type Profile struct {
	BaseSimple
	UserID        uuid.UUID `db:"user_id"`
	EmailVerified bool      `db:"email_verified"`
}
