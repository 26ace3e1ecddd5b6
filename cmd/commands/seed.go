package commands

import (
	"log/slog"
	"time"

	"github.com/dohr-michael/todo/internal/todo"
)

// seed adds the two example TODOs used for demos. Stores never seed
// themselves, and a store that already holds tasks is left alone.
func seed(store todo.Store, loc *time.Location) error {
	existing, err := store.List()
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		slog.Debug("store not empty, skipping seed", "count", len(existing))
		return nil
	}

	due := time.Date(2023, 12, 31, 23, 59, 59, 0, time.UTC).In(loc)
	examples := []todo.CreateIntent{
		{Name: "First Task", Priority: todo.PriorityHigh, DueDate: &due},
		{Name: "Second Task", Priority: todo.PriorityLow},
	}
	for _, c := range examples {
		if _, err := store.Add(c); err != nil {
			return err
		}
	}
	return nil
}
