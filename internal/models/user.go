package models

import (
	"time"

	"github.com/google/uuid"
)

// UserDB represents a user record in the database
type UserDB struct {
	ID           uuid.UUID `db:"id"`            // Primary key
	Username     string    `db:"username"`      // Unique username
	Email        string    `db:"email"`         // Unique email
	PasswordHash string    `db:"password_hash"` // bcrypt hash, never serialized
	CreatedAt    time.Time `db:"created_at"`    // Creation timestamp
}

// User is the public API representation of a user. The password hash is
// deliberately absent.
type User struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	CreatedAt string `json:"createdAt"`
}

// ToAPI converts a database row to its public representation.
func (u *UserDB) ToAPI() *User {
	return &User{
		ID:        u.ID.String(),
		Username:  u.Username,
		Email:     u.Email,
		CreatedAt: u.CreatedAt.Format(TimestampFormat),
	}
}
