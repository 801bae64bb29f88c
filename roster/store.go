// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package roster

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"sync/atomic"
	"time"

	"github.com/danielhkuo/pingbot/metrics"
	"github.com/danielhkuo/pingbot/models"
)

var (
	ErrUnknownSite  = errors.New("unknown site")
	ErrNoModerators = errors.New("site has no moderators")
)

// LoadError reports a roster source that could not be read or parsed.
type LoadError struct {
	Source string
	Err    error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("loading roster from %s: %v", e.Source, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// Source produces a complete roster.
type Source interface {
	Name() string
	Load(ctx context.Context) (models.Roster, error)
}

type snapshot struct {
	roster   models.Roster
	names    map[models.UserID]string
	loadedAt time.Time
}

// Store holds the current roster. Reload swaps in a new snapshot atomically,
// so lookups never see a partially loaded roster.
type Store struct {
	current atomic.Pointer[snapshot]
}

func NewStore() *Store {
	s := &Store{}
	s.current.Store(&snapshot{
		roster: models.Roster{},
		names:  map[models.UserID]string{},
	})
	return s
}

// Reload replaces the roster with the contents of src. On failure the
// previous roster stays in effect and the returned error is a *LoadError.
func (s *Store) Reload(ctx context.Context, src Source) error {
	r, err := src.Load(ctx)
	if err != nil {
		metrics.RosterReloads.WithLabelValues("error").Inc()
		var loadErr *LoadError
		if errors.As(err, &loadErr) {
			return err
		}
		return &LoadError{Source: src.Name(), Err: err}
	}

	s.Replace(r)
	metrics.RosterReloads.WithLabelValues("ok").Inc()
	slog.Info("roster loaded", "source", src.Name(), "sites", len(r), "counts", describe(r))
	return nil
}

// Replace installs r as the current roster. The store keeps its own copy.
func (s *Store) Replace(r models.Roster) {
	snap := &snapshot{
		roster:   make(models.Roster, len(r)),
		names:    make(map[models.UserID]string),
		loadedAt: time.Now(),
	}
	for site, mods := range r {
		snap.roster[site] = append([]models.Moderator{}, mods...)
		for _, m := range mods {
			snap.names[m.ID] = m.Name
		}
	}
	s.current.Store(snap)
	metrics.RosterSites.Set(float64(len(snap.roster)))
}

// Lookup returns a copy of the moderators of a canonical site ID.
func (s *Store) Lookup(siteID string) ([]models.Moderator, error) {
	mods, ok := s.current.Load().roster[siteID]
	if !ok {
		return nil, ErrUnknownSite
	}
	if len(mods) == 0 {
		return nil, ErrNoModerators
	}
	return append([]models.Moderator{}, mods...), nil
}

// Sites returns the tracked site IDs in sorted order.
func (s *Store) Sites() []string {
	r := s.current.Load().roster
	ids := make([]string, 0, len(r))
	for id := range r {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Name returns the display name the roster has for a user, from any site.
func (s *Store) Name(id models.UserID) (string, bool) {
	name, ok := s.current.Load().names[id]
	return name, ok
}

func (s *Store) LoadedAt() time.Time {
	return s.current.Load().loadedAt
}

func describe(r models.Roster) string {
	parts := make([]string, 0, len(r))
	for site, mods := range r {
		parts = append(parts, fmt.Sprintf("%s (%d)", site, len(mods)))
	}
	sort.Strings(parts)
	return strings.Join(parts, ", ")
}
