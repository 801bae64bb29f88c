// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"

	"github.com/danielhkuo/pingbot/middleware"
	"github.com/danielhkuo/pingbot/models"
	"github.com/danielhkuo/pingbot/presence"
)

type PresenceHandler struct {
	primary   presence.Source
	secondary presence.Source
}

// NewPresenceHandler reports on the given rooms. secondary may be nil.
func NewPresenceHandler(primary, secondary presence.Source) *PresenceHandler {
	return &PresenceHandler{primary: primary, secondary: secondary}
}

// Get handles GET /presence
func (h *PresenceHandler) Get(w http.ResponseWriter, r *http.Request) {
	resp := models.PresenceResponse{Primary: roomPresence(h.primary)}
	if h.secondary != nil {
		secondary := roomPresence(h.secondary)
		resp.Secondary = &secondary
	}
	middleware.JSONResponse(w, http.StatusOK, resp)
}

func roomPresence(src presence.Source) models.RoomPresence {
	return models.RoomPresence{
		Present:  src.Present().Sorted(),
		Pingable: src.Pingable().Sorted(),
	}
}
