package auth

import (
	"context"
	"sync"
)

// MockVerifier implements Verifier for unit tests. Tokens are mapped to
// identities explicitly; unknown tokens fail with the configured error.
type MockVerifier struct {
	mu     sync.RWMutex
	tokens map[string]*AdminUser
	err    error
}

// NewMockVerifier creates an empty mock verifier.
func NewMockVerifier() *MockVerifier {
	return &MockVerifier{tokens: make(map[string]*AdminUser)}
}

// AddToken registers a token that verifies to the given identity.
func (m *MockVerifier) AddToken(token string, user *AdminUser) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.tokens[token] = user
}

// FailWith makes every verification fail with err.
func (m *MockVerifier) FailWith(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.err = err
}

// Verify resolves the token against the registered set.
func (m *MockVerifier) Verify(_ context.Context, token string) (*AdminUser, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.err != nil {
		return nil, m.err
	}
	if user, ok := m.tokens[token]; ok {
		return user, nil
	}
	return nil, ErrInvalidToken
}

// Compile-time interface check
var _ Verifier = (*MockVerifier)(nil)
