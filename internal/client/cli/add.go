package cli

import (
	"context"
	"flag"
	"fmt"

	"github.com/habitkeeper/habitkeeper/internal/validation"
)

func (c *Cli) runAdd(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("add", flag.ContinueOnError)
	name := fs.String("name", "", "Habit name (required)")
	desc := fs.String("desc", "", "Habit description")

	if err := fs.Parse(args); err != nil {
		return err
	}

	if err := validation.ValidateHabitName(*name); err != nil {
		return fmt.Errorf("invalid habit name: %w", err)
	}

	habit, err := c.apiClient.CreateHabit(ctx, *name, *desc)
	if err != nil {
		return err
	}

	fmt.Printf("✓ Habit #%d %q created.\n", habit.ID, habit.Name)
	return nil
}
