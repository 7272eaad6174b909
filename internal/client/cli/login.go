package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/habitkeeper/habitkeeper/internal/client/session"
)

func (c *Cli) runLogin(ctx context.Context) error {
	fmt.Println("=== Login ===")
	fmt.Println()

	username, err := readInput("Username: ")
	if err != nil {
		return fmt.Errorf("failed to read username: %w", err)
	}

	password, err := readPassword("Password: ")
	if err != nil {
		return fmt.Errorf("failed to read password: %w", err)
	}

	fmt.Println()
	fmt.Println("Authenticating...")

	result, err := c.apiClient.Login(ctx, username, password)
	if err != nil {
		return err
	}

	// Сохраняем токен локально, дальше он подставляется в каждый запрос
	sess := &session.Session{
		Username:    username,
		AccessToken: result.AccessToken,
		ExpiresAt:   time.Now().Unix() + result.ExpiresIn,
	}

	if err := c.sessions.Save(ctx, sess); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}

	fmt.Println()
	fmt.Println("✓ Login successful!")
	fmt.Printf("Username: %s\n", username)
	fmt.Printf("Token expires in: %d seconds\n", result.ExpiresIn)

	return nil
}
