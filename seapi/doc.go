// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package seapi fetches moderator lists from the Stack Exchange API and
// merges them into a roster. It backs `pingbot-admin regenerate`.
package seapi
