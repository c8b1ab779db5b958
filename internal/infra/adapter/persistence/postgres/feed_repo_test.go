package postgres_test

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"

	"profeed/internal/domain/entity"
	pg "profeed/internal/infra/adapter/persistence/postgres"
	"profeed/internal/repository"
)

func feedRows(feeds ...*entity.Feed) *sqlmock.Rows {
	rows := sqlmock.NewRows([]string{
		"id", "user_id", "source", "title", "url",
		"content", "image_firebase_url", "created_at",
	})
	for _, f := range feeds {
		rows.AddRow(f.ID, f.UserID, f.Source, f.Title, f.URL,
			f.Content, f.ImageURL, f.CreatedAt)
	}
	return rows
}

func TestFeedRepo_ListByUser(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	now := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	mock.ExpectQuery(regexp.QuoteMeta("WHERE user_id = $1")).
		WithArgs("user-1", 20, 40).
		WillReturnRows(feedRows(&entity.Feed{
			ID: "feed-1", UserID: "user-1", Source: "tmz.com",
			Title: "t", URL: "https://www.tmz.com/x", Content: "c", CreatedAt: now,
		}))

	repo := pg.NewFeedRepo(db)
	got, err := repo.ListByUser(context.Background(), "user-1", 40, 20)
	if err != nil {
		t.Fatalf("ListByUser err=%v", err)
	}
	if len(got) != 1 || got[0].ID != "feed-1" {
		t.Fatalf("got %d feeds, want the single seeded row", len(got))
	}
	if got[0].ImageURL != nil {
		t.Errorf("ImageURL=%v, want nil", *got[0].ImageURL)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestFeedRepo_ListByUser_Empty(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectQuery(regexp.QuoteMeta("WHERE user_id = $1")).
		WithArgs("user-2", 20, 0).
		WillReturnRows(feedRows())

	repo := pg.NewFeedRepo(db)
	got, err := repo.ListByUser(context.Background(), "user-2", 0, 20)
	if err != nil {
		t.Fatalf("ListByUser err=%v", err)
	}
	if got == nil || len(got) != 0 {
		t.Fatalf("got %v, want empty non-nil slice", got)
	}
}

func TestFeedRepo_CountByUser(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM feeds WHERE user_id = $1")).
		WithArgs("user-1").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(150)))

	repo := pg.NewFeedRepo(db)
	count, err := repo.CountByUser(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("CountByUser err=%v", err)
	}
	if count != 150 {
		t.Errorf("count=%d, want 150", count)
	}
}

func TestFeedRepo_ListAll(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	now := time.Now()
	mock.ExpectQuery("FROM feeds").
		WithArgs(10, 0).
		WillReturnRows(feedRows(
			&entity.Feed{ID: "feed-2", UserID: "u2", Source: "a.com", Title: "t2", URL: "u", Content: "c", CreatedAt: now},
			&entity.Feed{ID: "feed-1", UserID: "u1", Source: "b.com", Title: "t1", URL: "u", Content: "c", CreatedAt: now.Add(-time.Hour)},
		))

	repo := pg.NewFeedRepo(db)
	got, err := repo.ListAll(context.Background(), 0, 10)
	if err != nil || len(got) != 2 {
		t.Fatalf("ListAll err=%v len=%d", err, len(got))
	}
}

func TestFeedRepo_Create(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	now := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO feeds")).
		WithArgs("feed-1", "system-user", "tmz.com", "title",
			"https://www.tmz.com/x", "content", nil, now).
		WillReturnResult(sqlmock.NewResult(0, 1))

	repo := pg.NewFeedRepo(db)
	err := repo.Create(context.Background(), &entity.Feed{
		ID: "feed-1", UserID: "system-user", Source: "tmz.com",
		Title: "title", URL: "https://www.tmz.com/x", Content: "content",
		CreatedAt: now,
	})
	if err != nil {
		t.Fatalf("Create err=%v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

// The owner foreign key failing means the configured system user row is
// missing; that is a caller-fixable condition, not an internal error.
func TestFeedRepo_Create_ForeignKeyViolation(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO feeds")).
		WillReturnError(&pgconn.PgError{Code: "23503", ConstraintName: "feeds_user_id_fkey"})

	repo := pg.NewFeedRepo(db)
	err := repo.Create(context.Background(), &entity.Feed{ID: "feed-1", UserID: "nope"})
	if !errors.Is(err, repository.ErrFeedOwnerMissing) {
		t.Fatalf("err=%v, want ErrFeedOwnerMissing", err)
	}
}
