package cli

import (
	"context"
	"fmt"
	"strconv"
)

func (c *Cli) runDelete(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: habitkeeper delete <id>")
	}

	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid habit id: %q", args[0])
	}

	if err := c.apiClient.DeleteHabit(ctx, id); err != nil {
		return err
	}

	fmt.Printf("✓ Habit #%d deleted.\n", id)
	return nil
}
