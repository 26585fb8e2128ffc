package model

import "time"

// UserID uniquely identifies a user across the system. Identity itself is
// external; the engine only needs a stable key.
type UserID string

// User is a game participant
type User struct {
	ID        UserID
	Name      string
	Email     string
	CreatedAt time.Time
}
