// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
)

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

// DriverName maps a configured database type to its database/sql driver.
func DriverName(databaseType string) (string, error) {
	switch databaseType {
	case "postgres", "postgresql":
		return "postgres", nil
	case "sqlite", "":
		return "sqlite", nil
	default:
		return "", fmt.Errorf("unsupported database type %q", databaseType)
	}
}

const schema = `
-- Tracked sites; a site with no moderator rows is known but empty
CREATE TABLE IF NOT EXISTS site (
    id TEXT PRIMARY KEY,
    updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);

-- Moderators, ordered per site by position
CREATE TABLE IF NOT EXISTS moderator (
    site_id TEXT NOT NULL REFERENCES site(id) ON DELETE CASCADE,
    position INTEGER NOT NULL,
    user_id BIGINT NOT NULL,
    name TEXT NOT NULL,
    PRIMARY KEY (site_id, position)
);

CREATE INDEX IF NOT EXISTS idx_moderator_user_id ON moderator(user_id);
`
