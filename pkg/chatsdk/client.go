package chatsdk

import (
	"log/slog"
	"strings"
)

// Config collects the collaborators a Client depends on. Each collaborator
// is expressed as a narrow interface so callers can substitute their own
// implementations (notably scripted transports in tests).
type Config struct {
	// BaseURL is the root URL of the chat service, e.g.
	// "https://chat.example.com". Ignored when Transport is set.
	BaseURL string

	// Transport sends requests. Defaults to an HTTPTransport for BaseURL.
	Transport Transport

	// TokenStore persists the session token of successful logins.
	// Defaults to an in-memory store scoped to this Client.
	TokenStore TokenStore

	// Logger receives debug logs for each exchange. Defaults to
	// slog.Default().
	Logger *slog.Logger
}

// Client is a client for the Harbor chat service REST API. It owns no
// long-lived state beyond its collaborators: every call builds its own
// request, performs a single exchange, and classifies the outcome.
//
// Clients are safe for concurrent use provided the configured Transport
// and TokenStore are.
type Client struct {
	transport Transport
	tokens    TokenStore
	log       *slog.Logger
}

// New creates a Client from cfg, filling in defaults for any collaborator
// left unset.
func New(cfg Config) *Client {
	transport := cfg.Transport
	if transport == nil {
		transport = NewHTTPTransport(strings.TrimSuffix(cfg.BaseURL, "/"))
	}

	tokens := cfg.TokenStore
	if tokens == nil {
		tokens = &memoryTokenStore{}
	}

	log := cfg.Logger
	if log == nil {
		log = slog.Default()
	}

	return &Client{
		transport: transport,
		tokens:    tokens,
		log:       log,
	}
}
