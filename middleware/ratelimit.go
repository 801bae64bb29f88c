// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package middleware

import (
	"net/http"
	"sync"

	"golang.org/x/time/rate"

	"github.com/danielhkuo/pingbot/auth"
)

// Limiter holds one token bucket per client.
type Limiter struct {
	mu    sync.Mutex
	m     map[string]*rate.Limiter
	rps   float64
	burst int
	salt  string
}

// NewLimiter allows each client rps requests per second with the given burst.
// Clients are keyed by their IP hashed with salt.
func NewLimiter(rps float64, burst int, salt string) *Limiter {
	return &Limiter{
		m:     make(map[string]*rate.Limiter),
		rps:   rps,
		burst: burst,
		salt:  salt,
	}
}

func (l *Limiter) get(key string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()
	if lim, ok := l.m[key]; ok {
		return lim
	}
	lim := rate.NewLimiter(rate.Limit(l.rps), l.burst)
	l.m[key] = lim
	return lim
}

// Allow reports whether the client at ip may make a request now.
func (l *Limiter) Allow(ip string) bool {
	return l.get(auth.HashIP(ip, l.salt)).Allow()
}

// RateLimit rejects requests over the client's budget with 429
func RateLimit(l *Limiter, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !l.Allow(GetClientIP(r)) {
			w.Header().Set("Retry-After", "1")
			ErrorResponse(w, http.StatusTooManyRequests, "Too many commands, slow down")
			return
		}
		next(w, r)
	}
}
