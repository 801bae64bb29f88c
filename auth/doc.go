// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth provides admin key and ID generation utilities.

# Admin Keys

Admin keys use HMAC-SHA256 over a scope name with the server salt:

	adminKey := auth.GenerateAdminKey(auth.ScopeRoster, salt)
	err := auth.ValidateAdminKey(auth.ScopeRoster, adminKey, salt)

The key is URL-safe base64 encoded without padding. Since it's deterministic,
operators can print it with `pingbot-admin admin-key` and the server can
validate it without storing anything. Changing ADMIN_KEY_SALT rotates every key.

# ID Generation

Random hex IDs for log correlation:

	id, err := auth.GenerateID(6)  // 12 hex characters

# IP Hashing

Rate limiter buckets are keyed by a salted hash of the client address:

	hash := auth.HashIP(ipAddress, salt)

Returns first 8 bytes (16 hex chars) of HMAC-SHA256.
*/
package auth
