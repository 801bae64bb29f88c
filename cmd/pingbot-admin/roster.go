// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package main

import (
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
	"github.com/urfave/cli/v2"
	_ "modernc.org/sqlite"

	"github.com/danielhkuo/pingbot/auth"
	"github.com/danielhkuo/pingbot/db"
	"github.com/danielhkuo/pingbot/roster"
	"github.com/danielhkuo/pingbot/seapi"
)

var cmdRegenerate = &cli.Command{
	Name:      "regenerate",
	Usage:     "refresh every site in a roster file from the Stack Exchange API",
	ArgsUsage: "[FILE]",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:    "api-key",
			Usage:   "Stack Exchange API app key (optional, raises quota)",
			EnvVars: []string{"SE_API_KEY"},
		},
		&cli.StringFlag{
			Name:   "api-url",
			Usage:  "API base URL",
			Value:  seapi.DefaultBaseURL,
			Hidden: true,
		},
	},
	Action: runRegenerate,
}

func runRegenerate(cctx *cli.Context) error {
	path := cctx.Args().First()
	if path == "" {
		path = "moderators.json"
	}

	old, err := roster.FileSource{Path: path}.Load(cctx.Context)
	if err != nil {
		return err
	}

	client := seapi.NewClient(cctx.String("api-key"))
	client.BaseURL = cctx.String("api-url")
	updated, err := seapi.Refresh(cctx.Context, client, old)
	if err != nil {
		return err
	}

	if err := roster.UpdateFile(path, updated); err != nil {
		return err
	}
	fmt.Fprintf(cctx.App.Writer, "updated %d sites in %s (backup at %s.backup)\n", len(updated), path, path)
	return nil
}

var cmdImport = &cli.Command{
	Name:      "import",
	Usage:     "replace the database roster with the contents of a roster file",
	ArgsUsage: "FILE",
	Flags:     dbFlags,
	Action: func(cctx *cli.Context) error {
		if cctx.Args().Len() != 1 {
			return fmt.Errorf("expected exactly one roster file")
		}
		r, err := roster.FileSource{Path: cctx.Args().First()}.Load(cctx.Context)
		if err != nil {
			return err
		}

		conn, err := openDB(cctx)
		if err != nil {
			return err
		}
		defer conn.Close()

		if err := (roster.SQLSource{DB: conn}).Save(cctx.Context, r); err != nil {
			return err
		}
		fmt.Fprintf(cctx.App.Writer, "imported %d sites\n", len(r))
		return nil
	},
}

var cmdExport = &cli.Command{
	Name:  "export",
	Usage: "print the database roster as a JSON roster file",
	Flags: dbFlags,
	Action: func(cctx *cli.Context) error {
		conn, err := openDB(cctx)
		if err != nil {
			return err
		}
		defer conn.Close()

		r, err := roster.SQLSource{DB: conn}.Load(cctx.Context)
		if err != nil {
			return err
		}
		return roster.WriteJSON(cctx.App.Writer, r)
	},
}

var cmdAdminKey = &cli.Command{
	Name:  "admin-key",
	Usage: "print the admin API key derived from the server salt",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:     "salt",
			Usage:    "admin key salt of the server",
			Required: true,
			EnvVars:  []string{"ADMIN_KEY_SALT"},
		},
		&cli.StringFlag{
			Name:  "scope",
			Usage: "key scope",
			Value: auth.ScopeRoster,
		},
	},
	Action: func(cctx *cli.Context) error {
		fmt.Fprintln(cctx.App.Writer, auth.GenerateAdminKey(cctx.String("scope"), cctx.String("salt")))
		return nil
	},
}

func openDB(cctx *cli.Context) (*sql.DB, error) {
	driver, err := db.DriverName(cctx.String("database-type"))
	if err != nil {
		return nil, err
	}
	conn, err := sql.Open(driver, cctx.String("database-url"))
	if err != nil {
		return nil, err
	}
	if err := db.CreateSchema(conn); err != nil {
		conn.Close()
		return nil, err
	}
	return conn, nil
}
