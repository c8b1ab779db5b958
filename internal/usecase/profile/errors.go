// Package profile provides use cases for managing user profile entities.
// It implements business logic for creating and retrieving profiles,
// including user resolution and interaction with the profile repository.
package profile

import "errors"

// Sentinel errors for profile use case operations.
var (
	// ErrUserNotFound indicates that the referenced user does not exist.
	// It is returned when neither the user ID nor the phone number
	// resolves to a known user.
	ErrUserNotFound = errors.New("user not found")

	// ErrProfileNotFound indicates that the user exists but has no profile.
	ErrProfileNotFound = errors.New("profile not found")

	// ErrDuplicateProfile indicates that a profile already exists for the user.
	// Each user can have at most one profile.
	ErrDuplicateProfile = errors.New("profile already exists for this user")
)
