package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"profeed/internal/domain/entity"
	"profeed/internal/repository"
)

type FeedRepo struct {
	db Querier
}

func NewFeedRepo(db Querier) repository.FeedRepository {
	return &FeedRepo{db: db}
}

const feedColumns = `id, user_id, source, title, url, content, image_firebase_url, created_at`

// The WHERE clause here must stay in sync with CountByUser: the two queries
// share a filter predicate so count and page contents never diverge.
func (repo *FeedRepo) ListByUser(ctx context.Context, userID string, offset, limit int) ([]*entity.Feed, error) {
	const query = `
SELECT ` + feedColumns + `
FROM feeds
WHERE user_id = $1
ORDER BY created_at DESC
LIMIT $2 OFFSET $3`
	rows, err := repo.db.QueryContext(ctx, query, userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("ListByUser: %w", err)
	}
	defer func() { _ = rows.Close() }()
	return scanFeeds(rows, limit)
}

func (repo *FeedRepo) CountByUser(ctx context.Context, userID string) (int64, error) {
	const query = `SELECT COUNT(*) FROM feeds WHERE user_id = $1`
	var count int64
	if err := repo.db.QueryRowContext(ctx, query, userID).Scan(&count); err != nil {
		return 0, fmt.Errorf("CountByUser: %w", err)
	}
	return count, nil
}

func (repo *FeedRepo) ListAll(ctx context.Context, offset, limit int) ([]*entity.Feed, error) {
	const query = `
SELECT ` + feedColumns + `
FROM feeds
ORDER BY created_at DESC
LIMIT $1 OFFSET $2`
	rows, err := repo.db.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("ListAll: %w", err)
	}
	defer func() { _ = rows.Close() }()
	return scanFeeds(rows, limit)
}

func (repo *FeedRepo) CountAll(ctx context.Context) (int64, error) {
	const query = `SELECT COUNT(*) FROM feeds`
	var count int64
	if err := repo.db.QueryRowContext(ctx, query).Scan(&count); err != nil {
		return 0, fmt.Errorf("CountAll: %w", err)
	}
	return count, nil
}

func (repo *FeedRepo) Create(ctx context.Context, feed *entity.Feed) error {
	const query = `
INSERT INTO feeds (id, user_id, source, title, url, content, image_firebase_url, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := repo.db.ExecContext(ctx, query,
		feed.ID, feed.UserID, feed.Source, feed.Title,
		feed.URL, feed.Content, feed.ImageURL, feed.CreatedAt)
	if err != nil {
		if isForeignKeyViolation(err) {
			return repository.ErrFeedOwnerMissing
		}
		return fmt.Errorf("Create: %w", err)
	}
	return nil
}

func scanFeeds(rows *sql.Rows, capacity int) ([]*entity.Feed, error) {
	feeds := make([]*entity.Feed, 0, capacity)
	for rows.Next() {
		var feed entity.Feed
		if err := rows.Scan(&feed.ID, &feed.UserID, &feed.Source, &feed.Title,
			&feed.URL, &feed.Content, &feed.ImageURL, &feed.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		feeds = append(feeds, &feed)
	}
	return feeds, rows.Err()
}
