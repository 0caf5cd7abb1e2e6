package domain

import (
	"context"
	"errors"
	"time"
)

// Sentinel errors for newsletter subscriptions.
var (
	ErrInvalidEmail      = errors.New("invalid email address")
	ErrAlreadySubscribed = errors.New("email already subscribed")
)

// Subscriber represents a newsletter subscriber. Email is unique across
// all subscribers; comparison is exact, with no case normalization.
// swagger:model Subscriber
type Subscriber struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	SubscribedAt time.Time `json:"subscribed_at"`
}

// NewSubscriber returns a new Subscriber. ID is set by the repository on create.
func NewSubscriber(email string, subscribedAt time.Time) *Subscriber {
	return &Subscriber{Email: email, SubscribedAt: subscribedAt}
}

// SubscriberRepository defines the interface for subscriber storage.
// Create must return ErrAlreadySubscribed when the store's uniqueness
// constraint rejects the insert; that constraint is the authoritative
// duplicate guard.
type SubscriberRepository interface {
	Create(ctx context.Context, s *Subscriber) error
	GetByEmail(ctx context.Context, email string) (*Subscriber, error)
	List(ctx context.Context, params PaginationParams) ([]*Subscriber, int, error)
}

// SubscriptionService defines the contract for the subscription pipeline.
type SubscriptionService interface {
	// Subscribe validates the email, checks uniqueness, and persists a new
	// subscriber. It returns a user-facing confirmation message on success.
	Subscribe(ctx context.Context, email string) (string, error)
	ListSubscribers(ctx context.Context, params PaginationParams) ([]*Subscriber, int, error)
}
