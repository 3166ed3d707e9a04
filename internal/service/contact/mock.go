package contact

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// MockService implements Service in memory for unit tests.
type MockService struct {
	mu       sync.RWMutex
	contacts map[string]*Contact

	// Err, when set, is returned by every operation.
	Err error
}

// NewMockService creates an empty mock store.
func NewMockService() *MockService {
	return &MockService{contacts: make(map[string]*Contact)}
}

func (m *MockService) Create(_ context.Context, params CreateParams) (*Contact, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return nil, m.Err
	}

	c := &Contact{
		ID:        uuid.NewString(),
		FullName:  strings.TrimSpace(params.FullName),
		Email:     strings.ToLower(strings.TrimSpace(params.Email)),
		Phone:     strings.TrimSpace(params.Phone),
		Subject:   strings.TrimSpace(params.Subject),
		Message:   strings.TrimSpace(params.Message),
		Status:    StatusNew,
		CreatedAt: time.Now().UTC(),
	}
	m.contacts[c.ID] = c
	return cloneContact(c), nil
}

func (m *MockService) List(_ context.Context) ([]*Contact, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.Err != nil {
		return nil, m.Err
	}

	out := make([]*Contact, 0, len(m.contacts))
	for _, c := range m.contacts {
		out = append(out, cloneContact(c))
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (m *MockService) Get(_ context.Context, id string) (*Contact, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.Err != nil {
		return nil, m.Err
	}

	c, ok := m.contacts[id]
	if !ok {
		return nil, ErrNotFound
	}
	return cloneContact(c), nil
}

func (m *MockService) UpdateStatus(_ context.Context, id string, st Status) (*Contact, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return nil, m.Err
	}
	if !st.Valid() {
		return nil, ErrInvalidStatus
	}

	c, ok := m.contacts[id]
	if !ok {
		return nil, ErrNotFound
	}
	c.Status = st
	return cloneContact(c), nil
}

func (m *MockService) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return m.Err
	}

	if _, ok := m.contacts[id]; !ok {
		return ErrNotFound
	}
	delete(m.contacts, id)
	return nil
}

// Clear removes all contacts (useful for test cleanup).
func (m *MockService) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.contacts = make(map[string]*Contact)
}

func cloneContact(c *Contact) *Contact {
	cp := *c
	return &cp
}

// Compile-time interface check
var _ Service = (*MockService)(nil)
