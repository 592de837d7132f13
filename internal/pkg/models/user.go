package models

import (
	"time"
)

// User represents a chat participant as returned by the API
type User struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// LoggedInUserResponse is the body of GET /auth/me
type LoggedInUserResponse struct {
	User User `json:"user"`
}
