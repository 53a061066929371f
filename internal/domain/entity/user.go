// Package entity contains the core business objects of the project.
package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// User is an employee who can hold assets and receive overdue notifications.
type User struct {
	ID        uuid.UUID `json:"id"`         // The Global Unique Identifier (GUID) for the user.
	Email     string    `json:"email"`      // Primary contact address; required for the email channel.
	FirstName string    `json:"first_name"` // The user's given name.
	LastName  string    `json:"last_name"`  // The user's family name.
	FCMToken  string    `json:"fcm_token"`  // Registered push token; empty means no push device.
	CreatedAt time.Time `json:"created_at"` // Timestamp of when this user account was created.
	UpdatedAt time.Time `json:"updated_at"` // Timestamp of the last modification.
}

// FullName returns the user's display name built from first and last name.
func (u *User) FullName() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}

// HasPushDevice reports whether a push token is registered for the user.
func (u *User) HasPushDevice() bool {
	return u.FCMToken != ""
}
