// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/pingbot/auth"
	"github.com/danielhkuo/pingbot/cliparse"
	"github.com/danielhkuo/pingbot/middleware"
	"github.com/danielhkuo/pingbot/models"
	"github.com/danielhkuo/pingbot/roster"
	"github.com/danielhkuo/pingbot/sites"
)

type RosterHandler struct {
	store  *roster.Store
	source roster.Source
	cfg    cliparse.Config
}

// NewRosterHandler serves store. source is what POST /roster/reload reads;
// it may be nil, in which case reloads are refused.
func NewRosterHandler(store *roster.Store, source roster.Source, cfg cliparse.Config) *RosterHandler {
	return &RosterHandler{store: store, source: source, cfg: cfg}
}

// ListSites handles GET /sites
func (h *RosterHandler) ListSites(w http.ResponseWriter, r *http.Request) {
	resp := models.SitesResponse{Sites: []models.SiteSummary{}}
	for _, id := range h.store.Sites() {
		mods, err := h.store.Lookup(id)
		if err != nil && !errors.Is(err, roster.ErrNoModerators) {
			slog.Error("failed to look up site", "site", id, "error", err)
			continue
		}
		resp.Sites = append(resp.Sites, models.SiteSummary{
			ID:         id,
			Name:       sites.DisplayName(id),
			Moderators: len(mods),
		})
	}
	middleware.JSONResponse(w, http.StatusOK, resp)
}

// GetModerators handles GET /sites/{site}/moderators. The site may be given
// by any alias.
func (h *RosterHandler) GetModerators(w http.ResponseWriter, r *http.Request) {
	siteID := sites.Canonicalize(r.PathValue("site"))
	if siteID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "site is required")
		return
	}

	mods, err := h.store.Lookup(siteID)
	switch {
	case errors.Is(err, roster.ErrUnknownSite):
		middleware.ErrorResponse(w, http.StatusNotFound, "Unknown site")
		return
	case errors.Is(err, roster.ErrNoModerators):
		mods = []models.Moderator{}
	case err != nil:
		slog.Error("failed to look up site", "site", siteID, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Roster error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.SiteModeratorsResponse{
		Site:       siteID,
		Name:       sites.DisplayName(siteID),
		Moderators: mods,
	})
}

// Reload handles POST /roster/reload
func (h *RosterHandler) Reload(w http.ResponseWriter, r *http.Request) {
	adminKey := r.Header.Get("X-Admin-Key")
	if err := auth.ValidateAdminKey(auth.ScopeRoster, adminKey, h.cfg.AdminKeySalt); err != nil {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Invalid admin key")
		return
	}
	if h.source == nil {
		middleware.ErrorResponse(w, http.StatusServiceUnavailable, "No roster source configured")
		return
	}

	if err := h.store.Reload(r.Context(), h.source); err != nil {
		slog.Error("roster reload failed", "source", h.source.Name(), "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.ReloadResponse{
		Sites:    len(h.store.Sites()),
		LoadedAt: h.store.LoadedAt(),
	})
}
