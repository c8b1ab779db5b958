package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"profeed/internal/domain/entity"
	"profeed/internal/repository"
)

type ProfileRepo struct {
	db Querier
}

func NewProfileRepo(db Querier) repository.ProfileRepository {
	return &ProfileRepo{db: db}
}

// profileColumns is the shared select list. GetByPhone joins against users
// but must return exactly these columns so the two fetch paths produce
// identical records.
const profileColumns = `p.user_id, p.headline, p.summary, p.skills, p.certifications, p.languages, p.score, p.share_url, p.created_at`

func (repo *ProfileRepo) GetByUserID(ctx context.Context, userID string) (*entity.Profile, error) {
	const query = `
SELECT ` + profileColumns + `
FROM profiles p
WHERE p.user_id = $1`
	profile, err := scanProfile(repo.db.QueryRowContext(ctx, query, userID))
	if err != nil {
		return nil, fmt.Errorf("GetByUserID: %w", err)
	}
	return profile, nil
}

func (repo *ProfileRepo) GetByPhone(ctx context.Context, phoneNumber string) (*entity.Profile, error) {
	const query = `
SELECT ` + profileColumns + `
FROM profiles p
INNER JOIN users u ON p.user_id = u.id
WHERE u.phone_number = $1`
	profile, err := scanProfile(repo.db.QueryRowContext(ctx, query, phoneNumber))
	if err != nil {
		return nil, fmt.Errorf("GetByPhone: %w", err)
	}
	return profile, nil
}

func (repo *ProfileRepo) ExistsByUserID(ctx context.Context, userID string) (bool, error) {
	const query = `SELECT EXISTS(SELECT 1 FROM profiles WHERE user_id = $1)`
	var exists bool
	if err := repo.db.QueryRowContext(ctx, query, userID).Scan(&exists); err != nil {
		return false, fmt.Errorf("ExistsByUserID: %w", err)
	}
	return exists, nil
}

func (repo *ProfileRepo) Create(ctx context.Context, profile *entity.Profile) error {
	const query = `
INSERT INTO profiles (user_id, headline, summary, skills, certifications, languages, score, share_url, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	skills, err := json.Marshal(stringList(profile.Skills))
	if err != nil {
		return fmt.Errorf("Create: marshal skills: %w", err)
	}
	certifications, err := json.Marshal(stringList(profile.Certifications))
	if err != nil {
		return fmt.Errorf("Create: marshal certifications: %w", err)
	}
	languages, err := json.Marshal(stringList(profile.Languages))
	if err != nil {
		return fmt.Errorf("Create: marshal languages: %w", err)
	}

	_, err = repo.db.ExecContext(ctx, query,
		profile.UserID, profile.Headline, profile.Summary,
		skills, certifications, languages,
		profile.Score, profile.ShareURL, profile.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return repository.ErrDuplicateProfile
		}
		return fmt.Errorf("Create: %w", err)
	}
	return nil
}

// scanProfile scans a single profile row, converting sql.ErrNoRows into the
// absent result (nil, nil).
func scanProfile(row *sql.Row) (*entity.Profile, error) {
	var p entity.Profile
	var skills, certifications, languages []byte
	err := row.Scan(&p.UserID, &p.Headline, &p.Summary,
		&skills, &certifications, &languages,
		&p.Score, &p.ShareURL, &p.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("scan: %w", err)
	}
	if err := json.Unmarshal(skills, &p.Skills); err != nil {
		return nil, fmt.Errorf("unmarshal skills: %w", err)
	}
	if err := json.Unmarshal(certifications, &p.Certifications); err != nil {
		return nil, fmt.Errorf("unmarshal certifications: %w", err)
	}
	if err := json.Unmarshal(languages, &p.Languages); err != nil {
		return nil, fmt.Errorf("unmarshal languages: %w", err)
	}
	return &p, nil
}

// stringList normalizes nil slices to empty ones so the stored JSON is
// always an array, never null.
func stringList(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
