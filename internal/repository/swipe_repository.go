package repository

import (
	"context"

	"github.com/campusmatch/campusmatch-backend/internal/domain"
)

type SwipeRepository interface {
	// Upsert inserts the swipe or overwrites the direction of an existing
	// (from, to) row. No history is kept.
	Upsert(ctx context.Context, swipe *domain.Swipe) error
	GetByUsers(ctx context.Context, fromID, toID string) (*domain.Swipe, error)
	// GetSwipedIDs returns every user id the given user has already decided on.
	GetSwipedIDs(ctx context.Context, fromID string) ([]string, error)
	// GetFrienderIDs returns, out of candidateIDs, the ids that have an
	// outstanding FRIEND swipe pointed at toID.
	GetFrienderIDs(ctx context.Context, toID string, candidateIDs []string) ([]string, error)
	// CountLikesReceived counts users with a RIGHT or FRIEND swipe at toID.
	CountLikesReceived(ctx context.Context, toID string) (int64, error)
}
