package services

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"contacthub/internal/domain"
)

// fakeContactRepo implements domain.ContactRepository for tests.
type fakeContactRepo struct {
	created   []*domain.ContactMessage
	createErr error
}

func (f *fakeContactRepo) Create(ctx context.Context, m *domain.ContactMessage) error {
	if f.createErr != nil {
		return f.createErr
	}
	m.ID = "created-1"
	f.created = append(f.created, m)
	return nil
}

func (f *fakeContactRepo) List(ctx context.Context, params domain.PaginationParams) ([]*domain.ContactMessage, int, error) {
	return f.created, len(f.created), nil
}

// fakeEmailService implements domain.EmailService for tests. The two sends
// run concurrently, so counters are guarded.
type fakeEmailService struct {
	mu         sync.Mutex
	ownerCalls int
	ackCalls   int
	ownerErr   error
	ackErr     error
	lastData   *domain.ContactEmailData
}

func (f *fakeEmailService) SendOwnerNotification(ctx context.Context, data *domain.ContactEmailData) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.ownerCalls++
	f.lastData = data
	return f.ownerErr
}

func (f *fakeEmailService) SendSubmitterAcknowledgement(ctx context.Context, data *domain.ContactEmailData) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.ackCalls++
	return f.ackErr
}

func (f *fakeEmailService) sends() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.ownerCalls + f.ackCalls
}

func TestContactService_Submit_Validation(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		fields  [4]string // name, email, subject, message
		wantErr error
	}{
		{"missing name", [4]string{"", "ana@x.com", "Hi", "Hello"}, domain.ErrMissingFields},
		{"missing email", [4]string{"Ana", "", "Hi", "Hello"}, domain.ErrMissingFields},
		{"missing subject", [4]string{"Ana", "ana@x.com", "", "Hello"}, domain.ErrMissingFields},
		{"missing message", [4]string{"Ana", "ana@x.com", "Hi", ""}, domain.ErrMissingFields},
		{"whitespace only", [4]string{"   ", "ana@x.com", "Hi", "Hello"}, domain.ErrMissingFields},
		{"malformed email", [4]string{"Ana", "not-an-email", "Hi", "Hello"}, domain.ErrInvalidEmail},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeContactRepo{}
			emails := &fakeEmailService{}
			svc := NewContactService(repo, emails)

			_, err := svc.Submit(ctx, tt.fields[0], tt.fields[1], tt.fields[2], tt.fields[3])
			require.ErrorIs(t, err, tt.wantErr)
			// No side effects on validation failure.
			assert.Empty(t, repo.created)
			assert.Zero(t, emails.sends())
		})
	}
}

func TestContactService_Submit_PersistenceFailure(t *testing.T) {
	repo := &fakeContactRepo{createErr: assert.AnError}
	emails := &fakeEmailService{}
	svc := NewContactService(repo, emails)

	_, err := svc.Submit(context.Background(), "Ana", "ana@x.com", "Hi", "Hello")
	require.Error(t, err)
	require.NotErrorIs(t, err, domain.ErrDispatchFailed)
	// No emails when the write fails.
	assert.Zero(t, emails.sends())
}

func TestContactService_Submit_DispatchFailure(t *testing.T) {
	tests := []struct {
		name     string
		ownerErr error
		ackErr   error
	}{
		{"owner send fails", assert.AnError, nil},
		{"acknowledgement send fails", nil, assert.AnError},
		{"both fail", assert.AnError, assert.AnError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeContactRepo{}
			emails := &fakeEmailService{ownerErr: tt.ownerErr, ackErr: tt.ackErr}
			svc := NewContactService(repo, emails)

			_, err := svc.Submit(context.Background(), "Ana", "ana@x.com", "Hi", "Hello")
			require.ErrorIs(t, err, domain.ErrDispatchFailed)
			// The record stays persisted even though dispatch failed.
			assert.Len(t, repo.created, 1)
		})
	}
}

func TestContactService_Submit_Success(t *testing.T) {
	repo := &fakeContactRepo{}
	emails := &fakeEmailService{}
	svc := NewContactService(repo, emails)

	confirmation, err := svc.Submit(context.Background(), "Ana", "ana@x.com", "Hi", "Hello")
	require.NoError(t, err)
	assert.NotEmpty(t, confirmation)

	require.Len(t, repo.created, 1)
	record := repo.created[0]
	assert.Equal(t, "Ana", record.Name)
	assert.Equal(t, "ana@x.com", record.Email)
	assert.Equal(t, "Hi", record.Subject)
	assert.Equal(t, "Hello", record.Message)
	assert.False(t, record.SubmittedAt.IsZero())

	assert.Equal(t, 1, emails.ownerCalls)
	assert.Equal(t, 1, emails.ackCalls)
	require.NotNil(t, emails.lastData)
	assert.Equal(t, "ana@x.com", emails.lastData.Email)
}

func TestContactService_Submit_NoDedup(t *testing.T) {
	repo := &fakeContactRepo{}
	emails := &fakeEmailService{}
	svc := NewContactService(repo, emails)

	for i := 0; i < 2; i++ {
		_, err := svc.Submit(context.Background(), "Ana", "ana@x.com", "Hi", "Hello")
		require.NoError(t, err)
	}
	// Identical payloads produce independent records and sends.
	assert.Len(t, repo.created, 2)
	assert.Equal(t, 4, emails.sends())
}
