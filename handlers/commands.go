// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/danielhkuo/pingbot/command"
	"github.com/danielhkuo/pingbot/metrics"
	"github.com/danielhkuo/pingbot/middleware"
	"github.com/danielhkuo/pingbot/models"
)

type CommandHandler struct {
	dispatcher *command.Dispatcher
}

func NewCommandHandler(dispatcher *command.Dispatcher) *CommandHandler {
	return &CommandHandler{dispatcher: dispatcher}
}

// Run handles POST /commands. It returns the reply the bot would post for
// the message without posting it.
func (h *CommandHandler) Run(w http.ResponseWriter, r *http.Request) {
	var req models.CommandRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if strings.TrimSpace(req.Content) == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "content is required")
		return
	}

	msg := models.Message{
		OwnerID: req.PosterID,
		Content: req.Content,
		Source:  req.Source,
	}
	cmd, reply, err := h.dispatcher.Respond(msg)
	if err != nil {
		metrics.DispatchFailures.WithLabelValues("respond").Inc()
		slog.Error("error answering command",
			"request_id", middleware.RequestID(r.Context()),
			"intent", cmd.Intent,
			"error", err,
		)
		middleware.ErrorResponse(w, http.StatusInternalServerError, command.ReplyFailed)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.CommandResponse{
		Intent: cmd.Intent,
		Reply:  reply,
	})
}
