package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/habitkeeper/habitkeeper/internal/client/session"
)

func (c *Cli) runLogout(ctx context.Context) error {
	err := c.sessions.Delete(ctx)
	if err != nil {
		if errors.Is(err, session.ErrSessionNotFound) {
			fmt.Println("No active session.")
			return nil
		}
		return fmt.Errorf("failed to delete session: %w", err)
	}

	fmt.Println("✓ Logged out.")
	return nil
}
