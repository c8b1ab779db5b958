package feed

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"profeed/internal/common/pagination"
	"profeed/internal/domain/entity"
	"profeed/internal/repository"
)

// IngestInput represents the input parameters for ingesting a new feed.
// Category is accepted for validation parity with upstream producers but is
// not part of the stored record.
type IngestInput struct {
	Title    string
	Summary  string
	Category string
	URL      string
}

// Service provides feed listing and ingestion use cases.
// SystemUserID identifies the fixed owner of platform-generated feeds and is
// injected from configuration at startup.
type Service struct {
	Repo         repository.FeedRepository
	SystemUserID string
}

// PaginatedFeeds represents one page of feeds with pagination metadata.
type PaginatedFeeds struct {
	Feeds      []*entity.Feed
	Pagination pagination.Metadata
}

// ListByUser retrieves one page of feeds owned by the given user, newest
// first. The count and data queries share the same owner filter.
func (s *Service) ListByUser(ctx context.Context, userID string, params pagination.Params) (*PaginatedFeeds, error) {
	total, err := s.Repo.CountByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("count feeds by user: %w", err)
	}

	offset := pagination.CalculateOffset(params.Page, params.Limit)
	feeds, err := s.Repo.ListByUser(ctx, userID, offset, params.Limit)
	if err != nil {
		return nil, fmt.Errorf("list feeds by user: %w", err)
	}

	return &PaginatedFeeds{
		Feeds:      feeds,
		Pagination: pagination.Describe(total, params.Page, params.Limit),
	}, nil
}

// ListPublic retrieves one page of platform-generated feeds, which are the
// feeds owned by the system user.
func (s *Service) ListPublic(ctx context.Context, params pagination.Params) (*PaginatedFeeds, error) {
	return s.ListByUser(ctx, s.SystemUserID, params)
}

// ListAll retrieves one page of feeds across all users, newest first.
func (s *Service) ListAll(ctx context.Context, params pagination.Params) (*PaginatedFeeds, error) {
	total, err := s.Repo.CountAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("count feeds: %w", err)
	}

	offset := pagination.CalculateOffset(params.Page, params.Limit)
	feeds, err := s.Repo.ListAll(ctx, offset, params.Limit)
	if err != nil {
		return nil, fmt.Errorf("list feeds: %w", err)
	}

	return &PaginatedFeeds{
		Feeds:      feeds,
		Pagination: pagination.Describe(total, params.Page, params.Limit),
	}, nil
}

// Ingest stores a new platform-generated feed owned by the system user.
// The source is derived from the URL's hostname. The image URL is left nil;
// it is filled in later by the enrichment job. Returns ErrSystemUserMissing
// when the configured system user does not exist.
func (s *Service) Ingest(ctx context.Context, in IngestInput) (*entity.Feed, error) {
	f := &entity.Feed{
		ID:        uuid.NewString(),
		UserID:    s.SystemUserID,
		Source:    entity.DeriveSource(in.URL),
		Title:     in.Title,
		URL:       in.URL,
		Content:   in.Summary,
		CreatedAt: time.Now(),
	}

	if err := s.Repo.Create(ctx, f); err != nil {
		if errors.Is(err, repository.ErrFeedOwnerMissing) {
			return nil, ErrSystemUserMissing
		}
		return nil, fmt.Errorf("create feed: %w", err)
	}
	return f, nil
}
