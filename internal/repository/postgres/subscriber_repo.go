package postgres

import (
	"context"
	"database/sql"

	"github.com/lib/pq"

	"contacthub/internal/domain"
)

// uniqueViolation is the Postgres error code for unique-constraint violations.
const uniqueViolation = "23505"

type subscriberRepository struct {
	DB *sql.DB
}

func NewSubscriberRepository(db *sql.DB) domain.SubscriberRepository {
	return &subscriberRepository{DB: db}
}

func (r *subscriberRepository) Create(ctx context.Context, s *domain.Subscriber) error {
	query := `
		INSERT INTO subscribers (email, subscribed_at)
		VALUES ($1, $2)
		RETURNING id
	`
	err := r.DB.QueryRowContext(ctx, query, s.Email, s.SubscribedAt).Scan(&s.ID)
	if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == uniqueViolation {
		return domain.ErrAlreadySubscribed
	}
	return err
}

func (r *subscriberRepository) GetByEmail(ctx context.Context, email string) (*domain.Subscriber, error) {
	query := `
		SELECT id, email, subscribed_at
		FROM subscribers
		WHERE email = $1
	`
	s := &domain.Subscriber{}
	err := r.DB.QueryRowContext(ctx, query, email).Scan(&s.ID, &s.Email, &s.SubscribedAt)
	if err != nil {
		return nil, err
	}
	return s, nil
}

func (r *subscriberRepository) List(ctx context.Context, params domain.PaginationParams) ([]*domain.Subscriber, int, error) {
	var total int
	if err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM subscribers`).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `
		SELECT id, email, subscribed_at
		FROM subscribers
		ORDER BY subscribed_at DESC
		LIMIT $1 OFFSET $2
	`
	rows, err := r.DB.QueryContext(ctx, query, params.PageSize, params.Offset())
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var subscribers []*domain.Subscriber
	for rows.Next() {
		s := &domain.Subscriber{}
		if err := rows.Scan(&s.ID, &s.Email, &s.SubscribedAt); err != nil {
			return nil, 0, err
		}
		subscribers = append(subscribers, s)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return subscribers, total, nil
}
