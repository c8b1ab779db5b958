package repository

import (
	"context"
	"errors"

	"profeed/internal/domain/entity"
)

// ErrFeedOwnerMissing is returned by FeedRepository.Create when the insert
// violates the foreign key to the users table, i.e. the configured owner id
// does not exist.
var ErrFeedOwnerMissing = errors.New("feed owner does not exist")

// FeedRepository persists and pages feed items. The count and list methods
// for a given filter use identical predicates; a divergence between the two
// produces inconsistent pagination metadata.
type FeedRepository interface {
	// ListByUser returns feeds owned by userID ordered by created_at DESC,
	// sliced by offset/limit.
	ListByUser(ctx context.Context, userID string, offset, limit int) ([]*entity.Feed, error)
	// CountByUser returns the total number of feeds owned by userID.
	CountByUser(ctx context.Context, userID string) (int64, error)
	// ListAll returns feeds for every user ordered by created_at DESC,
	// sliced by offset/limit.
	ListAll(ctx context.Context, offset, limit int) ([]*entity.Feed, error)
	// CountAll returns the total number of feeds.
	CountAll(ctx context.Context) (int64, error)
	// Create inserts a feed row. Returns ErrFeedOwnerMissing when the
	// owner foreign key is violated.
	Create(ctx context.Context, feed *entity.Feed) error
}
