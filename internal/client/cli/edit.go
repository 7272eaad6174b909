package cli

import (
	"context"
	"flag"
	"fmt"

	"github.com/habitkeeper/habitkeeper/internal/validation"
	"github.com/habitkeeper/habitkeeper/pkg/api"
)

func (c *Cli) runEdit(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("edit", flag.ContinueOnError)
	id := fs.Int64("id", 0, "Habit id (required)")
	name := fs.String("name", "", "New habit name")
	desc := fs.String("desc", "", "New habit description")

	if err := fs.Parse(args); err != nil {
		return err
	}

	if *id == 0 {
		return fmt.Errorf("-id is required")
	}

	// Отправляем только явно переданные флаги, остальное не меняется
	var upd api.UpdateHabitRequest
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "name":
			upd.Name = name
		case "desc":
			upd.Description = desc
		}
	})

	if upd.Name == nil && upd.Description == nil {
		return fmt.Errorf("nothing to update: pass -name and/or -desc")
	}

	if upd.Name != nil {
		if err := validation.ValidateHabitName(*upd.Name); err != nil {
			return fmt.Errorf("invalid habit name: %w", err)
		}
	}

	habit, err := c.apiClient.UpdateHabit(ctx, *id, upd)
	if err != nil {
		return err
	}

	fmt.Printf("✓ Habit #%d updated: %s\n", habit.ID, habit.Name)
	return nil
}
