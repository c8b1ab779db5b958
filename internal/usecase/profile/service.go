package profile

import (
	"context"
	"errors"
	"fmt"
	"time"

	"profeed/internal/domain/entity"
	"profeed/internal/repository"
)

// CreateInput represents the input parameters for creating a new profile.
// Either UserID or PhoneNumber identifies the owner; when both are set,
// UserID takes precedence and PhoneNumber is ignored.
type CreateInput struct {
	UserID         string
	PhoneNumber    string
	Headline       string
	Summary        string
	Skills         []string
	Certifications []string
	Languages      []string
	Score          float64
	ShareURL       string
}

// Service provides profile management use cases.
// It resolves users, enforces the one-profile-per-user rule, and delegates
// persistence to the repositories.
type Service struct {
	Users    repository.UserRepository
	Profiles repository.ProfileRepository
}

// Create creates a new profile for the resolved user.
// Resolution prefers UserID over PhoneNumber. Returns ErrUserNotFound when
// no user matches, and ErrDuplicateProfile when the user already has a
// profile. The duplicate pre-check is advisory; a concurrent insert is
// caught by the database constraint and reported the same way.
func (s *Service) Create(ctx context.Context, in CreateInput) (*entity.Profile, error) {
	userID, err := s.resolveUser(ctx, in.UserID, in.PhoneNumber)
	if err != nil {
		return nil, err
	}

	exists, err := s.Profiles.ExistsByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("check existing profile: %w", err)
	}
	if exists {
		return nil, ErrDuplicateProfile
	}

	p := &entity.Profile{
		UserID:         userID,
		Headline:       in.Headline,
		Summary:        in.Summary,
		Skills:         in.Skills,
		Certifications: in.Certifications,
		Languages:      in.Languages,
		Score:          in.Score,
		ShareURL:       in.ShareURL,
		CreatedAt:      time.Now(),
	}

	if err := s.Profiles.Create(ctx, p); err != nil {
		if errors.Is(err, repository.ErrDuplicateProfile) {
			return nil, ErrDuplicateProfile
		}
		return nil, fmt.Errorf("create profile: %w", err)
	}
	return p, nil
}

// GetByUserID retrieves the profile for the given user ID.
// Returns ErrUserNotFound when the user does not exist, and
// ErrProfileNotFound when the user exists but has no profile.
func (s *Service) GetByUserID(ctx context.Context, userID string) (*entity.Profile, error) {
	p, err := s.Profiles.GetByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get profile by user ID: %w", err)
	}
	if p != nil {
		return p, nil
	}

	exists, err := s.Users.ExistsByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("check user existence: %w", err)
	}
	if !exists {
		return nil, ErrUserNotFound
	}
	return nil, ErrProfileNotFound
}

// GetByPhone retrieves the profile for the user with the given phone number.
// Returns ErrUserNotFound when no user has that phone number, and
// ErrProfileNotFound when the user exists but has no profile.
func (s *Service) GetByPhone(ctx context.Context, phone string) (*entity.Profile, error) {
	p, err := s.Profiles.GetByPhone(ctx, phone)
	if err != nil {
		return nil, fmt.Errorf("get profile by phone: %w", err)
	}
	if p != nil {
		return p, nil
	}

	userID, err := s.Users.ResolveIDByPhone(ctx, phone)
	if err != nil {
		return nil, fmt.Errorf("resolve user by phone: %w", err)
	}
	if userID == "" {
		return nil, ErrUserNotFound
	}
	return nil, ErrProfileNotFound
}

// resolveUser resolves the owner user ID from the given identifiers.
// UserID takes precedence; PhoneNumber is consulted only when UserID is empty.
func (s *Service) resolveUser(ctx context.Context, userID, phone string) (string, error) {
	if userID != "" {
		exists, err := s.Users.ExistsByID(ctx, userID)
		if err != nil {
			return "", fmt.Errorf("check user existence: %w", err)
		}
		if !exists {
			return "", ErrUserNotFound
		}
		return userID, nil
	}

	resolved, err := s.Users.ResolveIDByPhone(ctx, phone)
	if err != nil {
		return "", fmt.Errorf("resolve user by phone: %w", err)
	}
	if resolved == "" {
		return "", ErrUserNotFound
	}
	return resolved, nil
}
