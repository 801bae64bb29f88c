// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package roster holds the per-site moderator lists.

# Store

A Store is created empty and filled by Reload:

	store := roster.NewStore()
	err := store.Reload(ctx, roster.FileSource{Path: "moderators.json"})

Reload builds a complete new snapshot and swaps it in with an atomic pointer
store. Concurrent Lookup calls see either the old roster or the new one, never
a mix. A failed reload returns a *LoadError and leaves the previous roster in
place.

# Lookup

	mods, err := store.Lookup("math")

Lookup distinguishes two failures:

  - ErrUnknownSite: the site is not in the roster
  - ErrNoModerators: the site is tracked but its list is empty

# Sources

  - FileSource: JSON, or YAML for .yaml/.yml files
  - SQLSource: the site and moderator tables (see package db)

Documents must carry a top-level "moderators" key; a document without it fails
with ErrMissingModerators wrapped in a LoadError.

# Watching

Watcher reloads the store when the roster file changes, debounced so that an
editor's write-and-rename lands as a single reload.
*/
package roster
