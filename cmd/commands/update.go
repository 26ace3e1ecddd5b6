package commands

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/dohr-michael/todo/internal/todo"
)

// NewUpdateCommand returns the update subcommand.
func NewUpdateCommand() *cli.Command {
	return &cli.Command{
		Name:      "update",
		Usage:     "Update fields of a TODO; omitted fields are left unchanged",
		ArgsUsage: "<id>",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "name",
				Aliases: []string{"n"},
				Usage:   "New name",
			},
			&cli.StringFlag{
				Name:    "text",
				Aliases: []string{"t"},
				Usage:   "New note",
			},
			&cli.StringFlag{
				Name:    "due",
				Aliases: []string{"d"},
				Usage:   "New due date",
			},
			&cli.StringFlag{
				Name:    "status",
				Aliases: []string{"s"},
				Usage:   `Pending, InProgress ("in progress") or Completed`,
			},
			&cli.StringFlag{
				Name:    "priority",
				Aliases: []string{"p"},
				Usage:   "Low, Medium or High",
			},
			&cli.BoolFlag{
				Name:  "clear-text",
				Usage: "Remove the note",
			},
			&cli.BoolFlag{
				Name:  "clear-due",
				Usage: "Remove the due date",
			},
		},
		Action: runUpdate,
	}
}

func runUpdate(_ context.Context, cmd *cli.Command) error {
	id, err := parseID(cmd)
	if err != nil {
		return err
	}

	e, err := newEnv(cmd)
	if err != nil {
		return err
	}

	intent, err := buildUpdateIntent(cmd, e)
	if err != nil {
		return err
	}

	store, err := e.openStore(cmd)
	if err != nil {
		return err
	}
	defer store.Close()

	if err := store.Update(id, intent); err != nil {
		return describe(id, err)
	}

	fmt.Fprintf(e.out, "Updated TODO with ID: %d\n", id)
	return nil
}

// buildUpdateIntent parses every set flag so bad input is rejected before
// the store is opened.
func buildUpdateIntent(cmd *cli.Command, e *env) (todo.UpdateIntent, error) {
	var u todo.UpdateIntent

	if cmd.IsSet("name") {
		name := cmd.String("name")
		u.Name = &name
	}
	if cmd.IsSet("text") {
		text := cmd.String("text")
		u.Text = &text
	}
	if cmd.IsSet("due") {
		due, err := todo.ParseDate(cmd.String("due"), e.loc)
		if err != nil {
			return u, err
		}
		u.DueDate = &due
	}
	if cmd.IsSet("status") {
		status, err := todo.ParseStatus(cmd.String("status"))
		if err != nil {
			return u, err
		}
		u.Status = &status
	}
	if cmd.IsSet("priority") {
		priority, err := todo.ParsePriority(cmd.String("priority"))
		if err != nil {
			return u, err
		}
		u.Priority = &priority
	}
	u.ClearText = cmd.Bool("clear-text")
	u.ClearDueDate = cmd.Bool("clear-due")

	return u, u.Validate()
}
