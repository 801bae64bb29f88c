// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and helper functions.

# Request IDs and Logging

	handler := middleware.WithRequestID(mux)
	mux.HandleFunc("GET /sites", middleware.WithLogging(h.ListSites))

WithRequestID assigns a UUID (or keeps the caller's X-Request-ID) and stores
it in the request context. WithLogging logs request start (method, path,
remote) and completion (duration_ms) with that request_id attached.

# Rate Limiting

	limiter := middleware.NewLimiter(cfg.CommandRPS, cfg.CommandBurst, cfg.AdminKeySalt)
	mux.HandleFunc("POST /commands", middleware.RateLimit(limiter, h.Run))

Each client gets its own golang.org/x/time/rate token bucket, keyed by a
salted hash of its IP. Requests over budget get 429 with Retry-After.

# CORS Middleware

Allows methods GET, POST, OPTIONS with headers Content-Type, X-Admin-Key and
X-Request-ID.

# JSON Helpers

	middleware.JSONResponse(w, http.StatusOK, data)
	middleware.ErrorResponse(w, http.StatusBadRequest, "message")

ParseJSONBody rejects unknown fields and bodies over 64 KiB.

# Client IP Extraction

	ip := middleware.GetClientIP(r)

Checks X-Forwarded-For, then X-Real-IP, then RemoteAddr.
*/
package middleware
