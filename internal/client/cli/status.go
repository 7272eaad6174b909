package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/habitkeeper/habitkeeper/internal/client/session"
)

func (c *Cli) runStatus(ctx context.Context) error {
	sess, err := c.sessions.Get(ctx)
	if err != nil {
		if errors.Is(err, session.ErrSessionNotFound) {
			fmt.Println("Not logged in.")
			return nil
		}
		return fmt.Errorf("failed to load session: %w", err)
	}

	fmt.Printf("Logged in as: %s\n", sess.Username)

	if sess.Expired() {
		fmt.Println("Session: expired, please login again")
		return nil
	}

	remaining := time.Until(time.Unix(sess.ExpiresAt, 0)).Round(time.Second)
	fmt.Printf("Session: valid for %s\n", remaining)

	return nil
}
