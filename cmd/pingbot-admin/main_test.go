// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danielhkuo/pingbot/auth"
	"github.com/danielhkuo/pingbot/roster"
)

func runApp(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	app := newApp()
	app.Writer = &out
	app.ErrWriter = &out
	err := app.Run(append([]string{"pingbot-admin"}, args...))
	return out.String(), err
}

func TestImportExport(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "moderators.json")
	require.NoError(t, os.WriteFile(file, []byte(`{"moderators": {"math": [{"id": 1, "name": "Alice"}, {"id": 2, "name": "Bob"}], "hsm": []}}`), 0o644))
	dbURL := filepath.Join(dir, "roster.db")

	out, err := runApp(t, "import", "--database-url", dbURL, file)
	require.NoError(t, err)
	assert.Contains(t, out, "imported 2 sites")

	out, err = runApp(t, "export", "--database-url", dbURL)
	require.NoError(t, err)

	r, err := roster.DecodeJSON(strings.NewReader(out))
	require.NoError(t, err)
	require.Len(t, r["math"], 2)
	assert.Equal(t, "Alice", r["math"][0].Name)
	assert.Contains(t, r, "hsm")
}

func TestImportRequiresFile(t *testing.T) {
	_, err := runApp(t, "import", "--database-url", filepath.Join(t.TempDir(), "x.db"))
	assert.Error(t, err)
}

func TestImportRejectsBadDatabaseType(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "moderators.json")
	require.NoError(t, os.WriteFile(file, []byte(`{"moderators": {}}`), 0o644))

	_, err := runApp(t, "import", "--database-url", "x", "--database-type", "oracle", file)
	assert.Error(t, err)
}

func TestAdminKey(t *testing.T) {
	out, err := runApp(t, "admin-key", "--salt", "pepper")
	require.NoError(t, err)
	assert.Equal(t, auth.GenerateAdminKey(auth.ScopeRoster, "pepper"), strings.TrimSpace(out))
	assert.NoError(t, auth.ValidateAdminKey(auth.ScopeRoster, strings.TrimSpace(out), "pepper"))
}

func TestRegenerateMissingFile(t *testing.T) {
	_, err := runApp(t, "regenerate", filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}
