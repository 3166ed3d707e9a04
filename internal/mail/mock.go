package mail

import (
	"context"
	"sync"
)

// MockMailer records sent messages for unit tests.
type MockMailer struct {
	mu   sync.Mutex
	sent []Message

	// Err, when set, is returned by every Send.
	Err error

	// done is closed after the expected number of sends, when armed
	// via Expect. Lets tests wait for fire-and-forget dispatch.
	done    chan struct{}
	pending int
}

// NewMockMailer creates an empty recording mailer.
func NewMockMailer() *MockMailer {
	return &MockMailer{}
}

// Expect arms the mailer to signal after n Send calls.
func (m *MockMailer) Expect(n int) <-chan struct{} {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.done = make(chan struct{})
	m.pending = n
	return m.done
}

// Send records the message and returns the configured error, if any.
func (m *MockMailer) Send(_ context.Context, msg Message) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sent = append(m.sent, msg)
	if m.pending > 0 {
		m.pending--
		if m.pending == 0 {
			close(m.done)
		}
	}
	return m.Err
}

// Sent returns a copy of all recorded messages.
func (m *MockMailer) Sent() []Message {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]Message(nil), m.sent...)
}

// Compile-time interface check
var _ Mailer = (*MockMailer)(nil)
