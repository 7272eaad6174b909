package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/habitkeeper/habitkeeper/internal/client/api"
	"github.com/habitkeeper/habitkeeper/internal/client/session"
)

// Cli объединяет API клиент и локальное хранилище сессии
type Cli struct {
	apiClient *api.Client
	sessions  session.Store
}

// New создает новый CLI
func New(apiClient *api.Client, sessions session.Store) *Cli {
	return &Cli{
		apiClient: apiClient,
		sessions:  sessions,
	}
}

// Run выполняет команду с аргументами
func (c *Cli) Run(ctx context.Context, command string, args []string) error {
	var err error

	switch command {
	case "register":
		err = c.runRegister(ctx)
	case "login":
		err = c.runLogin(ctx)
	case "logout":
		err = c.runLogout(ctx)
	case "status":
		err = c.runStatus(ctx)
	case "whoami":
		err = c.runWhoami(ctx)
	case "list":
		err = c.runList(ctx)
	case "add":
		err = c.runAdd(ctx, args)
	case "edit":
		err = c.runEdit(ctx, args)
	case "done":
		err = c.runDone(ctx, args)
	case "delete":
		err = c.runDelete(ctx, args)
	default:
		PrintUsage()
		return fmt.Errorf("unknown command: %s", command)
	}

	// Сессия сброшена после 401, пользователю остается только re-login
	if errors.Is(err, api.ErrSessionExpired) {
		return fmt.Errorf("session expired, please login again")
	}
	if errors.Is(err, api.ErrNotAuthenticated) {
		return fmt.Errorf("not logged in, please run 'habitkeeper login' first")
	}

	return err
}

// PrintUsage печатает справку по командам
func PrintUsage() {
	fmt.Println("Usage: habitkeeper [flags] <command> [args]")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  register              Register a new account")
	fmt.Println("  login                 Log in and store the session")
	fmt.Println("  logout                Remove the stored session")
	fmt.Println("  status                Show current session info")
	fmt.Println("  whoami                Show the account the server sees")
	fmt.Println("  list                  List your habits")
	fmt.Println("  add -name N [-desc D] Add a new habit")
	fmt.Println("  edit -id I [-name N] [-desc D]  Edit a habit")
	fmt.Println("  done <id>             Toggle habit completion")
	fmt.Println("  delete <id>           Delete a habit")
}
