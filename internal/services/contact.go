package services

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"contacthub/internal/domain"
)

const contactConfirmation = "Your message has been sent. Thank you for reaching out!"

var emailRegexp = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

type contactService struct {
	repo   domain.ContactRepository
	emails domain.EmailService
}

// NewContactService creates a ContactService with the given repository and email service.
func NewContactService(repo domain.ContactRepository, emails domain.EmailService) domain.ContactService {
	return &contactService{repo: repo, emails: emails}
}

// Submit runs the contact pipeline: validate, persist, then dispatch the
// owner notification and submitter acknowledgement concurrently. The record
// is written strictly before either send is attempted; the dispatch step is
// all-or-nothing. A dispatch failure leaves the persisted record in place,
// so the caller sees an error even though the message was stored.
func (s *contactService) Submit(ctx context.Context, name, email, subject, message string) (string, error) {
	if strings.TrimSpace(name) == "" ||
		strings.TrimSpace(email) == "" ||
		strings.TrimSpace(subject) == "" ||
		strings.TrimSpace(message) == "" {
		return "", domain.ErrMissingFields
	}
	if !emailRegexp.MatchString(email) {
		return "", domain.ErrInvalidEmail
	}

	record := domain.NewContactMessage(name, email, subject, message, time.Now())
	if err := s.repo.Create(ctx, record); err != nil {
		return "", fmt.Errorf("failed to store contact message: %w", err)
	}

	data := &domain.ContactEmailData{
		Name:    name,
		Email:   email,
		Subject: subject,
		Message: message,
	}
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return s.emails.SendOwnerNotification(gctx, data) })
	g.Go(func() error { return s.emails.SendSubmitterAcknowledgement(gctx, data) })
	if err := g.Wait(); err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrDispatchFailed, err)
	}

	return contactConfirmation, nil
}

func (s *contactService) ListMessages(ctx context.Context, params domain.PaginationParams) ([]*domain.ContactMessage, int, error) {
	messages, total, err := s.repo.List(ctx, params)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list contact messages: %w", err)
	}
	return messages, total, nil
}
