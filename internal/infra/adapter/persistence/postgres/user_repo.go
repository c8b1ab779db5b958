package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"profeed/internal/repository"
)

type UserRepo struct {
	db Querier
}

func NewUserRepo(db Querier) repository.UserRepository {
	return &UserRepo{db: db}
}

func (repo *UserRepo) ExistsByID(ctx context.Context, userID string) (bool, error) {
	const query = `SELECT EXISTS(SELECT 1 FROM users WHERE id = $1)`
	var exists bool
	if err := repo.db.QueryRowContext(ctx, query, userID).Scan(&exists); err != nil {
		return false, fmt.Errorf("ExistsByID: %w", err)
	}
	return exists, nil
}

func (repo *UserRepo) ResolveIDByPhone(ctx context.Context, phoneNumber string) (string, error) {
	const query = `SELECT id FROM users WHERE phone_number = $1`
	var id string
	err := repo.db.QueryRowContext(ctx, query, phoneNumber).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("ResolveIDByPhone: %w", err)
	}
	return id, nil
}
