package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/campusmatch/campusmatch-backend/internal/domain"
	"github.com/campusmatch/campusmatch-backend/internal/repository"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type messageRepository struct {
	db *sqlx.DB
}

func NewMessageRepository(db *sqlx.DB) repository.MessageRepository {
	return &messageRepository{db: db}
}

func (r *messageRepository) Create(ctx context.Context, message *domain.Message) error {
	if message.ID == "" {
		message.ID = uuid.NewString()
	}

	query := `
		INSERT INTO messages (id, match_id, sender_id, receiver_id, content)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at
	`
	return r.db.QueryRowContext(ctx, query,
		message.ID, message.MatchID, message.SenderID, message.ReceiverID, message.Content,
	).Scan(&message.CreatedAt)
}

func (r *messageRepository) GetByMatch(ctx context.Context, matchID string) ([]*domain.Message, error) {
	var messages []*domain.Message
	query := `SELECT * FROM messages WHERE match_id = $1 ORDER BY created_at ASC, id ASC`
	err := r.db.SelectContext(ctx, &messages, query, matchID)
	return messages, err
}

func (r *messageRepository) GetLatestByMatch(ctx context.Context, matchID string) (*domain.Message, error) {
	var message domain.Message
	query := `SELECT * FROM messages WHERE match_id = $1 ORDER BY created_at DESC, id DESC LIMIT 1`
	err := r.db.GetContext(ctx, &message, query, matchID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &message, nil
}
