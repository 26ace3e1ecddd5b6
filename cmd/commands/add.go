package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/dohr-michael/todo/internal/todo"
)

// NewAddCommand returns the add subcommand.
func NewAddCommand() *cli.Command {
	return &cli.Command{
		Name:      "add",
		Usage:     "Add a TODO",
		ArgsUsage: "<name>",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "text",
				Aliases: []string{"t"},
				Usage:   "Free-text note",
			},
			&cli.StringFlag{
				Name:    "due",
				Aliases: []string{"d"},
				Usage:   `Due date ("2006/01/02 15:04:05", "2006-01-02" or RFC 3339)`,
			},
			&cli.StringFlag{
				Name:    "priority",
				Aliases: []string{"p"},
				Usage:   "Low, Medium or High (default from config, Medium)",
			},
		},
		Action: runAdd,
	}
}

func runAdd(_ context.Context, cmd *cli.Command) error {
	name := strings.TrimSpace(strings.Join(cmd.Args().Slice(), " "))
	if name == "" {
		return fmt.Errorf("usage: todo add <name>")
	}

	e, err := newEnv(cmd)
	if err != nil {
		return err
	}

	priorityText := e.cfg.Defaults.Priority
	if cmd.IsSet("priority") {
		priorityText = cmd.String("priority")
	}
	priority, err := todo.ParsePriority(priorityText)
	if err != nil {
		return err
	}

	intent := todo.CreateIntent{Name: name, Priority: priority}
	if cmd.IsSet("text") {
		text := cmd.String("text")
		intent.Text = &text
	}
	if cmd.IsSet("due") {
		due, err := todo.ParseDate(cmd.String("due"), e.loc)
		if err != nil {
			return err
		}
		intent.DueDate = &due
	}

	store, err := e.openStore(cmd)
	if err != nil {
		return err
	}
	defer store.Close()

	id, err := store.Add(intent)
	if err != nil {
		return fmt.Errorf("add todo: %w", err)
	}

	fmt.Fprintf(e.out, "Added new TODO with ID: %d\n", id)
	return nil
}
