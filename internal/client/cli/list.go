package cli

import (
	"context"
	"fmt"
)

func (c *Cli) runList(ctx context.Context) error {
	habits, err := c.apiClient.ListHabits(ctx)
	if err != nil {
		return err
	}

	if len(habits) == 0 {
		fmt.Println("No habits yet. Add one with 'habitkeeper add -name <name>'.")
		return nil
	}

	for _, habit := range habits {
		marker := "[ ]"
		if habit.Completed {
			marker = "[x]"
		}

		fmt.Printf("%s #%d %s", marker, habit.ID, habit.Name)
		if habit.Description != "" {
			fmt.Printf(" - %s", habit.Description)
		}
		fmt.Println()
	}

	return nil
}
