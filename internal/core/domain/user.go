package domain

import "time"

// User is an account able to obtain credentials.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// Identity returns the request identity this user authenticates as.
func (u *User) Identity() Identity {
	return Identity{UserID: u.ID, Role: u.Role}
}
