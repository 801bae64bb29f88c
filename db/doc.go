// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db manages the optional SQL roster database.

# Schema

CreateSchema creates the tables if they don't exist:

	err := db.CreateSchema(conn)

Safe to call on every startup.

# Tables

site: one row per tracked site

  - id: canonical site ID (primary key)
  - updated_at: last import time

moderator: roster entries

  - site_id: references site(id), cascades on delete
  - position: order within the site's list
  - user_id: chat user ID (-1 when unknown)
  - name: display name

A site row without moderator rows is a tracked site that currently has no
moderators.

# Drivers

DriverName maps DATABASE_TYPE to a registered driver:

	sqlite   → "sqlite"   (modernc.org/sqlite)
	postgres → "postgres" (github.com/lib/pq)

Queries use $N placeholders, which both drivers accept.
*/
package db
