package cli

import (
	"context"
	"fmt"
)

func (c *Cli) runWhoami(ctx context.Context) error {
	user, err := c.apiClient.Me(ctx)
	if err != nil {
		return err
	}

	fmt.Printf("Username: %s\n", user.Username)
	fmt.Printf("User id:  %d\n", user.ID)
	fmt.Printf("Since:    %s\n", user.CreatedAt.Format("2006-01-02"))

	return nil
}
