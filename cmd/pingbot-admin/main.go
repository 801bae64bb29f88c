package main

import (
	"fmt"
	"os"

	_ "github.com/joho/godotenv/autoload"
	"github.com/urfave/cli/v2"
)

func main() {
	if err := run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(-1)
	}
}

var dbFlags = []cli.Flag{
	&cli.StringFlag{
		Name:     "database-url",
		Usage:    "database holding the roster tables",
		Required: true,
		EnvVars:  []string{"DATABASE_URL"},
	},
	&cli.StringFlag{
		Name:    "database-type",
		Usage:   "sqlite or postgres",
		Value:   "sqlite",
		EnvVars: []string{"DATABASE_TYPE"},
	},
}

func run(args []string) error {
	app := newApp()
	return app.Run(args)
}

func newApp() *cli.App {
	app := &cli.App{
		Name:  "pingbot-admin",
		Usage: "operator tools for the ping bot roster",
	}
	app.Commands = []*cli.Command{
		cmdRegenerate,
		cmdImport,
		cmdExport,
		cmdAdminKey,
	}
	return app
}
