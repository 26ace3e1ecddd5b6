package commands

import (
	"github.com/urfave/cli/v3"

	"github.com/dohr-michael/todo/internal/config"
)

// NewRootCommand returns the top-level CLI command.
func NewRootCommand() *cli.Command {
	return &cli.Command{
		Name:    "todo",
		Usage:   "Track TODOs from the command line",
		Version: "0.1.0",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to config file",
				Value:   config.ConfigPath(),
			},
			&cli.StringFlag{
				Name:  "store",
				Usage: "Storage backend: sqlite or memory",
			},
			&cli.StringFlag{
				Name:  "db",
				Usage: "Path to the SQLite database",
			},
			&cli.StringFlag{
				Name:    "timezone",
				Aliases: []string{"tz"},
				Usage:   "IANA timezone for timestamps (default: host timezone)",
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "Output format: table, json or yaml",
			},
			&cli.BoolFlag{
				Name:  "seed",
				Usage: "Add two example TODOs before running the command",
			},
			&cli.BoolFlag{
				Name:  "debug",
				Usage: "Enable debug logging",
			},
		},
		Commands: []*cli.Command{
			NewListCommand(),
			NewShowCommand(),
			NewAddCommand(),
			NewUpdateCommand(),
			NewDeleteCommand(),
		},
		DefaultCommand: "list",
	}
}
