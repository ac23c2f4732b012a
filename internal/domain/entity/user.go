package entity

import (
	"time"
)

// User is the aggregate root for the user domain.
// Password holds the bcrypt hash and is never serialized to clients;
// every outward-facing representation goes through Sanitized.
type User struct {
	ID        string
	Name      string
	Email     string
	Password  string
	Phone     string
	Avatar    string
	CreatedAt time.Time
}

// SanitizedUser is the wire shape returned to clients. It never carries
// the password hash.
type SanitizedUser struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Avatar    string    `json:"avatar"`
	CreatedAt time.Time `json:"createdAt"`
}

// Sanitized strips the password hash from the record.
func (u *User) Sanitized() SanitizedUser {
	return SanitizedUser{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Phone:     u.Phone,
		Avatar:    u.Avatar,
		CreatedAt: u.CreatedAt,
	}
}
