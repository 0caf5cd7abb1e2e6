package postgres

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"contacthub/internal/domain"
)

func TestSubscriberRepository_Create(t *testing.T) {
	ctx := context.Background()
	subscribed := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		email   string
		mock    func(mock sqlmock.Sqlmock)
		wantErr bool
		errIs   error
	}{
		{
			name:  "success",
			email: "a@b.com",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`INSERT INTO subscribers`).
					WithArgs("a@b.com", subscribed).
					WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("sub-uuid-1"))
			},
		},
		{
			name:  "unique violation returns ErrAlreadySubscribed",
			email: "taken@b.com",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`INSERT INTO subscribers`).
					WillReturnError(&pq.Error{Code: "23505"})
			},
			wantErr: true,
			errIs:   domain.ErrAlreadySubscribed,
		},
		{
			name:  "db error",
			email: "a@b.com",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`INSERT INTO subscribers`).
					WillReturnError(sql.ErrConnDone)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			tt.mock(mock)
			repo := NewSubscriberRepository(db)
			err = repo.Create(ctx, domain.NewSubscriber(tt.email, subscribed))
			if tt.wantErr {
				require.Error(t, err)
				if tt.errIs != nil {
					require.ErrorIs(t, err, tt.errIs)
				}
			} else {
				require.NoError(t, err)
			}
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestSubscriberRepository_GetByEmail(t *testing.T) {
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(`SELECT id, email, subscribed_at`).
			WithArgs("a@b.com").
			WillReturnRows(sqlmock.NewRows([]string{"id", "email", "subscribed_at"}).
				AddRow("sub-1", "a@b.com", time.Now()))

		repo := NewSubscriberRepository(db)
		s, err := repo.GetByEmail(ctx, "a@b.com")
		require.NoError(t, err)
		assert.Equal(t, "a@b.com", s.Email)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("not found", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(`SELECT id, email, subscribed_at`).
			WithArgs("nobody@b.com").
			WillReturnError(sql.ErrNoRows)

		repo := NewSubscriberRepository(db)
		_, err = repo.GetByEmail(ctx, "nobody@b.com")
		require.True(t, errors.Is(err, sql.ErrNoRows))
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestSubscriberRepository_List(t *testing.T) {
	ctx := context.Background()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM subscribers`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery(`SELECT id, email, subscribed_at`).
		WithArgs(20, 0).
		WillReturnRows(sqlmock.NewRows([]string{"id", "email", "subscribed_at"}).
			AddRow("sub-1", "a@b.com", time.Now()))

	repo := NewSubscriberRepository(db)
	subscribers, total, err := repo.List(ctx, domain.PaginationParams{Page: 1, PageSize: 20})
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	require.Len(t, subscribers, 1)
	assert.Equal(t, "a@b.com", subscribers[0].Email)
	require.NoError(t, mock.ExpectationsWereMet())
}
