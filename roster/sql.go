// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package roster

import (
	"context"
	"database/sql"
	"fmt"
	"sort"

	"github.com/danielhkuo/pingbot/models"
)

// SQLSource loads the roster from the site and moderator tables.
type SQLSource struct {
	DB *sql.DB
}

func (s SQLSource) Name() string {
	return "database"
}

func (s SQLSource) Load(ctx context.Context) (models.Roster, error) {
	r := models.Roster{}

	rows, err := s.DB.QueryContext(ctx, `SELECT id FROM site`)
	if err != nil {
		return nil, &LoadError{Source: s.Name(), Err: fmt.Errorf("query sites: %w", err)}
	}
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			rows.Close()
			return nil, &LoadError{Source: s.Name(), Err: err}
		}
		r[id] = []models.Moderator{}
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, &LoadError{Source: s.Name(), Err: err}
	}

	rows, err = s.DB.QueryContext(ctx, `
		SELECT site_id, user_id, name
		FROM moderator
		ORDER BY site_id, position
	`)
	if err != nil {
		return nil, &LoadError{Source: s.Name(), Err: fmt.Errorf("query moderators: %w", err)}
	}
	defer rows.Close()

	for rows.Next() {
		var site string
		var m models.Moderator
		if err := rows.Scan(&site, &m.ID, &m.Name); err != nil {
			return nil, &LoadError{Source: s.Name(), Err: err}
		}
		r[site] = append(r[site], m)
	}
	if err := rows.Err(); err != nil {
		return nil, &LoadError{Source: s.Name(), Err: err}
	}

	return r, nil
}

// Save replaces the database contents with r in a single transaction.
func (s SQLSource) Save(ctx context.Context, r models.Roster) error {
	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM moderator`); err != nil {
		return fmt.Errorf("clear moderators: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM site`); err != nil {
		return fmt.Errorf("clear sites: %w", err)
	}

	siteIDs := make([]string, 0, len(r))
	for id := range r {
		siteIDs = append(siteIDs, id)
	}
	sort.Strings(siteIDs)

	for _, id := range siteIDs {
		if _, err := tx.ExecContext(ctx, `INSERT INTO site (id) VALUES ($1)`, id); err != nil {
			return fmt.Errorf("insert site %s: %w", id, err)
		}
		for pos, m := range r[id] {
			_, err := tx.ExecContext(ctx, `
				INSERT INTO moderator (site_id, position, user_id, name)
				VALUES ($1, $2, $3, $4)
			`, id, pos, m.ID, m.Name)
			if err != nil {
				return fmt.Errorf("insert moderator %s/%d: %w", id, m.ID, err)
			}
		}
	}

	return tx.Commit()
}
