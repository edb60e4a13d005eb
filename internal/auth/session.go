package auth

import (
	"time"

	"github.com/google/uuid"

	"orgtracker/internal/models"
)

// Session is the role-bearing record handed to the shell after a successful
// authentication.
type Session struct {
	Token      string      `json:"token"`
	UserID     uint64      `json:"user_id"`
	Username   string      `json:"username"`
	Role       models.Role `json:"role"`
	FullName   string      `json:"full_name"`
	LoggedInAt time.Time   `json:"logged_in_at"`
}

// NewSession creates a session for an authenticated user.
func NewSession(user *models.User) *Session {
	return &Session{
		Token:      uuid.NewString(),
		UserID:     user.ID,
		Username:   user.Username,
		Role:       user.Role,
		FullName:   user.FullName,
		LoggedInAt: time.Now(),
	}
}
