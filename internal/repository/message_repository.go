package repository

import (
	"context"

	"github.com/campusmatch/campusmatch-backend/internal/domain"
)

type MessageRepository interface {
	Create(ctx context.Context, message *domain.Message) error
	// GetByMatch returns the thread ordered oldest-first.
	GetByMatch(ctx context.Context, matchID string) ([]*domain.Message, error)
	// GetLatestByMatch returns the newest message or nil for an empty thread.
	GetLatestByMatch(ctx context.Context, matchID string) (*domain.Message, error)
}
