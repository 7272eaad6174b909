package cli

import (
	"context"
	"fmt"
	"strconv"
)

func (c *Cli) runDone(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: habitkeeper done <id>")
	}

	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid habit id: %q", args[0])
	}

	habit, err := c.apiClient.ToggleHabit(ctx, id)
	if err != nil {
		return err
	}

	if habit.Completed {
		fmt.Printf("✓ Habit #%d %q marked as done.\n", habit.ID, habit.Name)
	} else {
		fmt.Printf("Habit #%d %q marked as not done.\n", habit.ID, habit.Name)
	}

	return nil
}
