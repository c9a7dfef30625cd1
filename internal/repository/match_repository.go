package repository

import (
	"context"

	"github.com/campusmatch/campusmatch-backend/internal/domain"
)

type MatchRepository interface {
	// Create inserts a match for the canonicalized pair. Returns
	// domain.ErrMatchAlreadyExists when the pair's unique constraint fires,
	// which callers treat as "already matched, no-op".
	Create(ctx context.Context, match *domain.Match) error
	GetByID(ctx context.Context, id string) (*domain.Match, error)
	GetByUsers(ctx context.Context, user1ID, user2ID string) (*domain.Match, error)
	GetUserMatches(ctx context.Context, userID string) ([]*domain.Match, error)
	UpdateIcebreakers(ctx context.Context, matchID string, icebreakers []string) error
}
