package tokenstore

import (
	"context"
	"sync"

	"github.com/harborchat/harbor/pkg/chatsdk"
)

// Memory keeps the token in process memory. The zero value is ready to use.
type Memory struct {
	mu    sync.RWMutex
	token chatsdk.Token
	set   bool
}

// NewMemory creates an empty in-memory token store.
func NewMemory() *Memory {
	return &Memory{}
}

// Get returns the stored token, or chatsdk.ErrNoToken when absent.
func (s *Memory) Get(_ context.Context) (chatsdk.Token, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.set {
		return chatsdk.Token{}, chatsdk.ErrNoToken
	}
	return s.token, nil
}

// Save stores the token, replacing any previously stored one.
func (s *Memory) Save(_ context.Context, token chatsdk.Token) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.token = token
	s.set = true
	return nil
}
