package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"contacthub/internal/domain"
)

const subscribeConfirmation = "You have been subscribed to the newsletter."

type subscriptionService struct {
	repo domain.SubscriberRepository
}

// NewSubscriptionService creates a SubscriptionService with the given repository.
func NewSubscriptionService(repo domain.SubscriberRepository) domain.SubscriptionService {
	return &subscriptionService{repo: repo}
}

// Subscribe validates the address and inserts a new subscriber. The email is
// used exactly as given, with no trimming or case normalization. The lookup
// before the insert is an early exit only; two concurrent submissions of the
// same address can both pass it, and the store's unique constraint is the
// authoritative guard. The repository reports that violation as
// ErrAlreadySubscribed, which is treated the same as the early exit.
func (s *subscriptionService) Subscribe(ctx context.Context, email string) (string, error) {
	if !emailRegexp.MatchString(email) {
		return "", domain.ErrInvalidEmail
	}

	existing, err := s.repo.GetByEmail(ctx, email)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return "", fmt.Errorf("failed to check existing subscriber: %w", err)
	}
	if existing != nil {
		return "", domain.ErrAlreadySubscribed
	}

	subscriber := domain.NewSubscriber(email, time.Now())
	if err := s.repo.Create(ctx, subscriber); err != nil {
		if errors.Is(err, domain.ErrAlreadySubscribed) {
			return "", domain.ErrAlreadySubscribed
		}
		return "", fmt.Errorf("failed to store subscriber: %w", err)
	}

	return subscribeConfirmation, nil
}

func (s *subscriptionService) ListSubscribers(ctx context.Context, params domain.PaginationParams) ([]*domain.Subscriber, int, error) {
	subscribers, total, err := s.repo.List(ctx, params)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list subscribers: %w", err)
	}
	return subscribers, total, nil
}
