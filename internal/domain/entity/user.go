// Package entity defines the core domain entities and validation logic for
// the application: users, their profiles, and feed items.
package entity

import "time"

// User represents an account record owned by the identity system.
// This service never creates or deletes users; it only reads them to
// confirm existence and to resolve phone numbers to canonical user IDs.
type User struct {
	ID          string
	PhoneNumber string
	CreatedAt   time.Time
}
