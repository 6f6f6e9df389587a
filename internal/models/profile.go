// ABOUTME: Profile, role, chat message, and connected device models.
// ABOUTME: Roles gate which commands and API routes are available.
package models

import (
	"time"

	"github.com/google/uuid"
)

// Role is the account role: athlete or coach.
type Role string

const (
	RoleAthlete Role = "athlete"
	RoleCoach   Role = "coach"
)

// IsValidRole checks if a string is a known role.
func IsValidRole(s string) bool {
	return s == string(RoleAthlete) || s == string(RoleCoach)
}

// Profile is the active account for this store.
type Profile struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      Role      `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

// NewProfile creates a Profile with generated UUID and current timestamp.
func NewProfile(name, email string, role Role) *Profile {
	return &Profile{
		ID:        uuid.New(),
		Name:      name,
		Email:     email,
		Role:      role,
		CreatedAt: time.Now(),
	}
}

// Message is one chat message between athlete and coach.
type Message struct {
	ID     uuid.UUID `json:"id"`
	From   string    `json:"from"`
	Role   Role      `json:"role"`
	Body   string    `json:"body"`
	SentAt time.Time `json:"sent_at"`
}

// NewMessage creates a Message with generated UUID and current timestamp.
func NewMessage(from string, role Role, body string) *Message {
	return &Message{
		ID:     uuid.New(),
		From:   from,
		Role:   role,
		Body:   body,
		SentAt: time.Now(),
	}
}

// Device is a linked wearable or sensor. Tracked by name only; reading
// device data is out of scope.
type Device struct {
	Name     string    `json:"name"`
	Kind     string    `json:"kind"`
	LinkedAt time.Time `json:"linked_at"`
}
