package postgres

import (
	"context"
	"database/sql"

	"contacthub/internal/domain"
)

type contactRepository struct {
	DB *sql.DB
}

func NewContactRepository(db *sql.DB) domain.ContactRepository {
	return &contactRepository{DB: db}
}

func (r *contactRepository) Create(ctx context.Context, m *domain.ContactMessage) error {
	query := `
		INSERT INTO contact_messages (name, email, subject, message, submitted_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	return r.DB.QueryRowContext(ctx, query, m.Name, m.Email, m.Subject, m.Message, m.SubmittedAt).Scan(&m.ID)
}

func (r *contactRepository) List(ctx context.Context, params domain.PaginationParams) ([]*domain.ContactMessage, int, error) {
	var total int
	if err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM contact_messages`).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `
		SELECT id, name, email, subject, message, submitted_at
		FROM contact_messages
		ORDER BY submitted_at DESC
		LIMIT $1 OFFSET $2
	`
	rows, err := r.DB.QueryContext(ctx, query, params.PageSize, params.Offset())
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var messages []*domain.ContactMessage
	for rows.Next() {
		m := &domain.ContactMessage{}
		if err := rows.Scan(&m.ID, &m.Name, &m.Email, &m.Subject, &m.Message, &m.SubmittedAt); err != nil {
			return nil, 0, err
		}
		messages = append(messages, m)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return messages, total, nil
}
