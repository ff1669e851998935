// Package cli wires the chatsdk client into the harborctl command.
package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/harborchat/harbor/pkg/chatsdk"
	"github.com/harborchat/harbor/pkg/slogx"
	"github.com/harborchat/harbor/pkg/tokenstore"
	"github.com/harborchat/harbor/pkg/tokenstore/sqlite"
)

const usage = `usage: harborctl <command> [args]

commands:
  login <username> <password>               authenticate with a username
  login-email <email> <password>            authenticate with an email address
  register <email> <name> <user> <pass>     register a new account
  whoami                                    show the authenticated user
  logout                                    end the current session
`

// App holds the assembled collaborators for one harborctl invocation.
type App struct {
	client *chatsdk.Client
	log    *slog.Logger
	out    io.Writer
	closer func() error
}

// New builds the token store, logger and SDK client from cfg.
func New(cfg Config, out io.Writer) (*App, error) {
	log := slogx.New(slogx.Config{
		Service: "harborctl",
		Level:   cfg.LogLevel,
		Format:  cfg.LogFormat,
	})

	store, closer, err := newTokenStore(cfg)
	if err != nil {
		return nil, err
	}

	client := chatsdk.New(chatsdk.Config{
		BaseURL:    cfg.BaseURL,
		TokenStore: store,
		Logger:     log,
	})

	return &App{
		client: client,
		log:    log,
		out:    out,
		closer: closer,
	}, nil
}

// Close releases the token store if it holds resources.
func (a *App) Close() error {
	if a.closer == nil {
		return nil
	}
	return a.closer()
}

// Run dispatches a single command.
func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		fmt.Fprint(a.out, usage)
		return fmt.Errorf("missing command")
	}

	switch args[0] {
	case "login":
		if len(args) != 3 {
			return fmt.Errorf("usage: harborctl login <username> <password>")
		}
		token, err := a.client.Login(ctx, args[1], args[2])
		if err != nil {
			return err
		}
		fmt.Fprintf(a.out, "logged in as %s\n", token.UserID)
		return nil

	case "login-email":
		if len(args) != 3 {
			return fmt.Errorf("usage: harborctl login-email <email> <password>")
		}
		token, err := a.client.LoginWithEmail(ctx, args[1], args[2])
		if err != nil {
			return err
		}
		fmt.Fprintf(a.out, "logged in as %s\n", token.UserID)
		return nil

	case "register":
		if len(args) != 5 {
			return fmt.Errorf("usage: harborctl register <email> <name> <username> <password>")
		}
		user, err := a.client.Signup(ctx, chatsdk.RegistrationRequest{
			Email:    args[1],
			Name:     args[2],
			Username: args[3],
			Password: args[4],
		})
		if err != nil {
			return err
		}
		fmt.Fprintf(a.out, "registered user %s\n", user.ID)
		return nil

	case "whoami":
		user, err := a.client.Me(ctx)
		if err != nil {
			return err
		}
		fmt.Fprintf(a.out, "%s (%s)\n", user.Username, user.ID)
		return nil

	case "logout":
		if err := a.client.Logout(ctx); err != nil {
			return err
		}
		fmt.Fprintln(a.out, "logged out")
		return nil

	default:
		fmt.Fprint(a.out, usage)
		return fmt.Errorf("unknown command %q", args[0])
	}
}

// newTokenStore builds the configured token store. The returned closer is
// nil for stores without resources to release.
func newTokenStore(cfg Config) (chatsdk.TokenStore, func() error, error) {
	switch cfg.TokenStore {
	case "memory":
		return tokenstore.NewMemory(), nil, nil

	case "file":
		return tokenstore.NewFile(cfg.TokenFile, cfg.TokenPassphrase), nil, nil

	case "sqlite":
		store, err := sqlite.NewStore(cfg.DatabaseFile)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open token database: %w", err)
		}
		if err := store.ApplyMigrations(); err != nil {
			_ = store.Close()
			return nil, nil, fmt.Errorf("failed to migrate token database: %w", err)
		}
		return store, store.Close, nil

	default:
		return nil, nil, fmt.Errorf("unknown token store %q", cfg.TokenStore)
	}
}
