package models

import "time"

type UserStatus string

const (
	UserStatusActive   UserStatus = "active"
	UserStatusInactive UserStatus = "inactive"
)

// User is an administrative account of the office, not a citizen record.
type User struct {
	ID           int64      `json:"id"`
	Username     string     `json:"username"`
	Email        string     `json:"email"`
	PasswordHash string     `json:"-"` // Never serialize to JSON
	CpNumber     string     `json:"cp_number"`
	Role         string     `json:"role"`
	Status       UserStatus `json:"status"`
	CreatedAt    time.Time  `json:"created_at"`
	LastLogout   *time.Time `json:"last_logout"`
}

// SessionUser is the sanitized projection stored in the session row and
// returned by the auth endpoints.
type SessionUser struct {
	ID         int64      `json:"id"`
	Username   string     `json:"username"`
	Email      string     `json:"email"`
	CpNumber   string     `json:"cp_number"`
	Role       string     `json:"role"`
	LastLogout *time.Time `json:"last_logout"`
}

// Project strips everything a client must never see.
func (u *User) Project() *SessionUser {
	return &SessionUser{
		ID:         u.ID,
		Username:   u.Username,
		Email:      u.Email,
		CpNumber:   u.CpNumber,
		Role:       u.Role,
		LastLogout: u.LastLogout,
	}
}
