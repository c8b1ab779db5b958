package repository

import (
	"context"
	"errors"

	"profeed/internal/domain/entity"
)

// ErrDuplicateProfile is returned by ProfileRepository.Create when the
// user_id uniqueness constraint rejects the insert. The constraint, not the
// caller's pre-insert check, is the real one-profile-per-user guarantee, so
// a race between two create requests surfaces here.
var ErrDuplicateProfile = errors.New("profile already exists for user")

type ProfileRepository interface {
	// GetByUserID returns the profile for a user, or (nil, nil) when absent.
	GetByUserID(ctx context.Context, userID string) (*entity.Profile, error)
	// GetByPhone returns the profile whose owner has the given phone number,
	// or (nil, nil) when absent. The phone number lives on the users table,
	// so the lookup joins users and returns profile columns only.
	GetByPhone(ctx context.Context, phoneNumber string) (*entity.Profile, error)
	// ExistsByUserID reports whether a profile exists for the user.
	ExistsByUserID(ctx context.Context, userID string) (bool, error)
	// Create inserts a profile row. Returns ErrDuplicateProfile when the
	// uniqueness constraint on user_id is violated.
	Create(ctx context.Context, profile *entity.Profile) error
}
