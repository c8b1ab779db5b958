package db

import "database/sql"

// MigrateUp creates the schema this service reads and writes. The users
// table is owned by the identity system in production; it is created here
// too so local and test environments are self contained.
//
// Constraint notes:
//   - profiles.user_id is the primary key, which is the uniqueness
//     constraint backing the one-profile-per-user invariant. Application
//     level pre-checks are advisory only.
//   - feeds.user_id references users(id); ingestion relies on this foreign
//     key to detect a missing system user.
func MigrateUp(database *sql.DB) error {
	if _, err := database.Exec(`
CREATE TABLE IF NOT EXISTS users (
    id           TEXT PRIMARY KEY,
    phone_number TEXT NOT NULL UNIQUE,
    created_at   TIMESTAMPTZ NOT NULL DEFAULT now()
)`); err != nil {
		return err
	}

	if _, err := database.Exec(`
CREATE TABLE IF NOT EXISTS profiles (
    user_id        TEXT PRIMARY KEY REFERENCES users(id),
    headline       TEXT NOT NULL DEFAULT '',
    summary        TEXT NOT NULL DEFAULT '',
    skills         JSONB NOT NULL DEFAULT '[]',
    certifications JSONB NOT NULL DEFAULT '[]',
    languages      JSONB NOT NULL DEFAULT '[]',
    score          NUMERIC(5,2) NOT NULL DEFAULT 0,
    share_url      TEXT NOT NULL DEFAULT '',
    created_at     TIMESTAMPTZ NOT NULL DEFAULT now()
)`); err != nil {
		return err
	}

	if _, err := database.Exec(`
CREATE TABLE IF NOT EXISTS feeds (
    id                 TEXT PRIMARY KEY,
    user_id            TEXT NOT NULL REFERENCES users(id),
    source             TEXT NOT NULL,
    title              TEXT NOT NULL,
    url                TEXT NOT NULL,
    content            TEXT NOT NULL,
    image_firebase_url TEXT,
    created_at         TIMESTAMPTZ NOT NULL DEFAULT now()
)`); err != nil {
		return err
	}

	indexes := []string{
		// every list query orders by created_at DESC
		`CREATE INDEX IF NOT EXISTS idx_feeds_created_at ON feeds(created_at DESC)`,
		// per-user (and public/system-user) feed pages
		`CREATE INDEX IF NOT EXISTS idx_feeds_user_created_at ON feeds(user_id, created_at DESC)`,
		// phone-number lookups resolve users and join profiles
		`CREATE INDEX IF NOT EXISTS idx_users_phone_number ON users(phone_number)`,
	}
	for _, idx := range indexes {
		if _, err := database.Exec(idx); err != nil {
			return err
		}
	}

	return nil
}

// MigrateDown drops the tables owned by this service in dependency order.
// The users table is dropped last because profiles and feeds reference it.
// Use with caution: this deletes all data in the affected tables.
func MigrateDown(database *sql.DB) error {
	dropStatements := []string{
		`DROP TABLE IF EXISTS feeds`,
		`DROP TABLE IF EXISTS profiles`,
		`DROP TABLE IF EXISTS users`,
	}
	for _, stmt := range dropStatements {
		if _, err := database.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}
