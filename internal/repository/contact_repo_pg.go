package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/happyfaces/facepaint/internal/domain"
)

type PGContactRepository struct {
	db *pgxpool.Pool
}

func NewContactRepository(db *pgxpool.Pool) ContactRepository {
	return &PGContactRepository{db: db}
}

func (r *PGContactRepository) Create(ctx context.Context, msg *domain.ContactMessage) error {
	msg.ID = uuid.NewString()
	if err := r.db.QueryRow(ctx, `INSERT INTO contact_messages (id, name, email, phone, message)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at`, msg.ID, msg.Name, msg.Email, msg.Phone, msg.Message).
		Scan(&msg.CreatedAt); err != nil {
		return storageErr("insert contact message", err)
	}
	return nil
}

func (r *PGContactRepository) List(ctx context.Context) ([]domain.ContactMessage, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name, email, phone, message, created_at FROM contact_messages ORDER BY created_at, id`)
	if err != nil {
		return nil, storageErr("list contact messages", err)
	}
	defer rows.Close()

	messages := make([]domain.ContactMessage, 0)
	for rows.Next() {
		var m domain.ContactMessage
		if err := rows.Scan(&m.ID, &m.Name, &m.Email, &m.Phone, &m.Message, &m.CreatedAt); err != nil {
			return nil, storageErr("scan contact message", err)
		}
		messages = append(messages, m)
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr("list contact messages", err)
	}
	return messages, nil
}

var _ ContactRepository = (*PGContactRepository)(nil)
