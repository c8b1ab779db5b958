// Package repository defines the datastore collaborator interfaces.
// Implementations report "no rows" as an absent result, never as an error;
// any error returned from these interfaces is an unexpected datastore
// failure.
package repository

import "context"

// UserRepository reads user records for existence checks and identifier
// resolution. Users are owned by an external identity system; this service
// never writes them.
type UserRepository interface {
	// ExistsByID reports whether a user with the given ID exists.
	ExistsByID(ctx context.Context, userID string) (bool, error)
	// ResolveIDByPhone returns the canonical user ID for a phone number,
	// or "" when no such user exists. Phone-number lookups must go through
	// this before any write keyed by user ID.
	ResolveIDByPhone(ctx context.Context, phoneNumber string) (string, error)
}
