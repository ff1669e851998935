package chatsdk

import (
	"context"
	"errors"
	"sync"
)

// ErrNoToken is returned by TokenStore.Get when no token has been saved.
var ErrNoToken = errors.New("chatsdk: no token stored")

// TokenStore persists the current session token between exchanges.
//
// The SDK consumes exactly two operations: Get to restore a previously
// saved token, and Save to persist the token of a successful login. Save
// is called at most once per successful login exchange and never on any
// failure path. Storage format and durability are the implementation's
// concern; see the tokenstore package for ready-made implementations.
type TokenStore interface {
	// Get returns the stored token, or ErrNoToken when absent.
	Get(ctx context.Context) (Token, error)

	// Save stores the token, replacing any previously stored one.
	Save(ctx context.Context, token Token) error
}

// memoryTokenStore is the default TokenStore used when none is configured.
// It keeps the token for the lifetime of the process only.
type memoryTokenStore struct {
	mu    sync.RWMutex
	token Token
	set   bool
}

func (s *memoryTokenStore) Get(_ context.Context) (Token, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.set {
		return Token{}, ErrNoToken
	}
	return s.token, nil
}

func (s *memoryTokenStore) Save(_ context.Context, token Token) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.token = token
	s.set = true
	return nil
}
