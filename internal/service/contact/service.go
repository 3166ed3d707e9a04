// Package contact owns the contact-inquiry entity and its persistence.
package contact

import (
	"context"
	"errors"
	"time"
)

// Service errors
var (
	ErrNotFound      = errors.New("contact not found")
	ErrInvalidStatus = errors.New("invalid status")
)

// Status tracks where an inquiry sits in the owner's inbox workflow.
type Status string

// Allowed status values. Every stored contact carries exactly one.
const (
	StatusNew     Status = "new"
	StatusRead    Status = "read"
	StatusReplied Status = "replied"
)

// Valid reports whether s is one of the allowed status values.
func (s Status) Valid() bool {
	switch s {
	case StatusNew, StatusRead, StatusReplied:
		return true
	}
	return false
}

// Contact is a single inquiry submitted through the contact form.
type Contact struct {
	ID        string
	FullName  string
	Email     string
	Phone     string
	Subject   string
	Message   string
	Status    Status
	CreatedAt time.Time
}

// CreateParams carries the validated fields for a new inquiry.
type CreateParams struct {
	FullName string
	Email    string
	Phone    string
	Subject  string
	Message  string
}

// Service defines contact persistence operations.
//
// Implementations must normalize input data:
//   - Email: lowercase and trim whitespace
//   - FullName, Subject, Message: trim whitespace
//
// List returns contacts sorted by creation time, newest first.
type Service interface {
	Create(ctx context.Context, params CreateParams) (*Contact, error)
	List(ctx context.Context) ([]*Contact, error)
	Get(ctx context.Context, id string) (*Contact, error)
	UpdateStatus(ctx context.Context, id string, status Status) (*Contact, error)
	Delete(ctx context.Context, id string) error
}
