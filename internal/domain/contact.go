package domain

import (
	"context"
	"errors"
	"time"
)

// Sentinel errors for contact submissions.
var (
	ErrMissingFields  = errors.New("all fields are required")
	ErrDispatchFailed = errors.New("notification dispatch failed")
)

// ContactMessage represents a message submitted through the contact form.
// Messages are immutable once persisted.
// swagger:model ContactMessage
type ContactMessage struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Subject     string    `json:"subject"`
	Message     string    `json:"message"`
	SubmittedAt time.Time `json:"submitted_at"`
}

// NewContactMessage returns a new ContactMessage with the given fields.
// ID is set by the repository on create.
func NewContactMessage(name, email, subject, message string, submittedAt time.Time) *ContactMessage {
	return &ContactMessage{
		Name:        name,
		Email:       email,
		Subject:     subject,
		Message:     message,
		SubmittedAt: submittedAt,
	}
}

// ContactRepository defines the interface for contact message storage
type ContactRepository interface {
	Create(ctx context.Context, m *ContactMessage) error
	List(ctx context.Context, params PaginationParams) ([]*ContactMessage, int, error)
}

// ContactService defines the contract for the contact submission pipeline.
type ContactService interface {
	// Submit validates the submission, persists it, and dispatches the
	// owner notification and submitter acknowledgement emails. It returns
	// a user-facing confirmation message on success.
	Submit(ctx context.Context, name, email, subject, message string) (string, error)
	ListMessages(ctx context.Context, params PaginationParams) ([]*ContactMessage, int, error)
}
