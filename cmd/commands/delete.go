package commands

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"
)

// NewDeleteCommand returns the delete subcommand.
func NewDeleteCommand() *cli.Command {
	return &cli.Command{
		Name:      "delete",
		Aliases:   []string{"rm"},
		Usage:     "Delete a TODO",
		ArgsUsage: "<id>",
		Action:    runDelete,
	}
}

func runDelete(_ context.Context, cmd *cli.Command) error {
	id, err := parseID(cmd)
	if err != nil {
		return err
	}

	e, err := newEnv(cmd)
	if err != nil {
		return err
	}

	store, err := e.openStore(cmd)
	if err != nil {
		return err
	}
	defer store.Close()

	removed, err := store.Delete(id)
	if err != nil {
		return describe(id, err)
	}

	fmt.Fprintf(e.out, "Deleted TODO with ID: %d (%s)\n", removed.ID, removed.Name)
	return nil
}
