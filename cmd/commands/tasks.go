package commands

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"
)

// NewListCommand returns the list subcommand.
func NewListCommand() *cli.Command {
	return &cli.Command{
		Name:    "list",
		Aliases: []string{"ls"},
		Usage:   "List all TODOs",
		Action:  runTasksList,
	}
}

// NewShowCommand returns the show subcommand.
func NewShowCommand() *cli.Command {
	return &cli.Command{
		Name:      "show",
		Usage:     "Show TODO details",
		ArgsUsage: "<id>",
		Action:    runTasksShow,
	}
}

func runTasksList(_ context.Context, cmd *cli.Command) error {
	e, err := newEnv(cmd)
	if err != nil {
		return err
	}

	store, err := e.openStore(cmd)
	if err != nil {
		return err
	}
	defer store.Close()

	list, err := store.List()
	if err != nil {
		return fmt.Errorf("list todos: %w", err)
	}

	return e.printList(list)
}

func runTasksShow(_ context.Context, cmd *cli.Command) error {
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

	t, err := store.Get(id)
	if err != nil {
		return describe(id, err)
	}

	return e.printTask(t)
}
