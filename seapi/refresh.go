// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package seapi

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/danielhkuo/pingbot/models"
)

// siteDomains covers the site keys whose domain isn't {key}.stackexchange.com.
var siteDomains = map[string]string{
	"so":        "stackoverflow.com",
	"su":        "superuser.com",
	"sf":        "serverfault.com",
	"askubuntu": "askubuntu.com",
}

// SiteDomain maps a roster site key to the domain the API knows it by.
func SiteDomain(key string) string {
	if d, ok := siteDomains[key]; ok {
		return d
	}
	return key + ".stackexchange.com"
}

// ModeratorLister is the part of Client that Refresh needs.
type ModeratorLister interface {
	Moderators(ctx context.Context, domain string) ([]User, error)
}

// Refresh rebuilds every site of old from the API's current moderator lists.
// Employees and the Community user are left out. Chat IDs can't be learned
// from the API, so each moderator keeps the ID old has for their name, or -1.
func Refresh(ctx context.Context, api ModeratorLister, old models.Roster) (models.Roster, error) {
	out := make(models.Roster, len(old))
	for site, known := range old {
		users, err := api.Moderators(ctx, SiteDomain(site))
		if err != nil {
			return nil, fmt.Errorf("refreshing %s: %w", site, err)
		}

		mods := []models.Moderator{}
		for _, u := range users {
			if u.IsEmployee || u.UserID <= 0 {
				continue
			}
			mods = append(mods, models.Moderator{ID: chatID(known, u.DisplayName), Name: u.DisplayName})
		}
		slog.Info("refreshed site", "site", site, "before", len(known), "after", len(mods))
		out[site] = mods
	}
	return out, nil
}

func chatID(known []models.Moderator, name string) models.UserID {
	for _, m := range known {
		if m.Name == name {
			return m.ID
		}
	}
	return -1
}
