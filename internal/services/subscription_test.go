package services

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"contacthub/internal/domain"
)

// fakeSubscriberRepo implements domain.SubscriberRepository for tests.
type fakeSubscriberRepo struct {
	byEmail   map[string]*domain.Subscriber
	getErr    error
	createErr error
}

func newFakeSubscriberRepo() *fakeSubscriberRepo {
	return &fakeSubscriberRepo{byEmail: make(map[string]*domain.Subscriber)}
}

func (f *fakeSubscriberRepo) Create(ctx context.Context, s *domain.Subscriber) error {
	if f.createErr != nil {
		return f.createErr
	}
	if _, ok := f.byEmail[s.Email]; ok {
		return domain.ErrAlreadySubscribed
	}
	s.ID = "created-1"
	f.byEmail[s.Email] = s
	return nil
}

func (f *fakeSubscriberRepo) GetByEmail(ctx context.Context, email string) (*domain.Subscriber, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	if s, ok := f.byEmail[email]; ok {
		return s, nil
	}
	return nil, sql.ErrNoRows
}

func (f *fakeSubscriberRepo) List(ctx context.Context, params domain.PaginationParams) ([]*domain.Subscriber, int, error) {
	var out []*domain.Subscriber
	for _, s := range f.byEmail {
		out = append(out, s)
	}
	return out, len(out), nil
}

func TestSubscriptionService_Subscribe_InvalidEmail(t *testing.T) {
	tests := []string{
		"",
		"bad",
		"no-at-sign.com",
		"missing@tld",
		"spaces in@x.com",
		"@x.com",
	}

	for _, email := range tests {
		t.Run(email, func(t *testing.T) {
			repo := newFakeSubscriberRepo()
			svc := NewSubscriptionService(repo)

			_, err := svc.Subscribe(context.Background(), email)
			require.ErrorIs(t, err, domain.ErrInvalidEmail)
			assert.Empty(t, repo.byEmail)
		})
	}
}

func TestSubscriptionService_Subscribe_Success(t *testing.T) {
	repo := newFakeSubscriberRepo()
	svc := NewSubscriptionService(repo)

	confirmation, err := svc.Subscribe(context.Background(), "a@b.com")
	require.NoError(t, err)
	assert.NotEmpty(t, confirmation)
	require.Len(t, repo.byEmail, 1)
	assert.False(t, repo.byEmail["a@b.com"].SubscribedAt.IsZero())
}

func TestSubscriptionService_Subscribe_Duplicate(t *testing.T) {
	repo := newFakeSubscriberRepo()
	svc := NewSubscriptionService(repo)

	_, err := svc.Subscribe(context.Background(), "a@b.com")
	require.NoError(t, err)

	// Second submission is rejected and the store is unchanged.
	_, err = svc.Subscribe(context.Background(), "a@b.com")
	require.ErrorIs(t, err, domain.ErrAlreadySubscribed)
	assert.Len(t, repo.byEmail, 1)
}

func TestSubscriptionService_Subscribe_DuplicateOnInsert(t *testing.T) {
	// The pre-check passes but a concurrent insert wins the race; the
	// constraint violation surfaced by the repository is a normal duplicate.
	repo := newFakeSubscriberRepo()
	repo.createErr = domain.ErrAlreadySubscribed
	svc := NewSubscriptionService(repo)

	_, err := svc.Subscribe(context.Background(), "a@b.com")
	require.ErrorIs(t, err, domain.ErrAlreadySubscribed)
}

func TestSubscriptionService_Subscribe_CaseSensitive(t *testing.T) {
	repo := newFakeSubscriberRepo()
	svc := NewSubscriptionService(repo)

	_, err := svc.Subscribe(context.Background(), "a@b.com")
	require.NoError(t, err)

	// No normalization: a differently-cased address is a distinct subscriber.
	_, err = svc.Subscribe(context.Background(), "A@b.com")
	require.NoError(t, err)
	assert.Len(t, repo.byEmail, 2)
}

func TestSubscriptionService_Subscribe_StoreErrors(t *testing.T) {
	t.Run("lookup error", func(t *testing.T) {
		repo := newFakeSubscriberRepo()
		repo.getErr = assert.AnError
		svc := NewSubscriptionService(repo)

		_, err := svc.Subscribe(context.Background(), "a@b.com")
		require.Error(t, err)
		require.NotErrorIs(t, err, domain.ErrAlreadySubscribed)
	})

	t.Run("insert error", func(t *testing.T) {
		repo := newFakeSubscriberRepo()
		repo.createErr = assert.AnError
		svc := NewSubscriptionService(repo)

		_, err := svc.Subscribe(context.Background(), "a@b.com")
		require.Error(t, err)
		require.NotErrorIs(t, err, domain.ErrAlreadySubscribed)
	})
}
