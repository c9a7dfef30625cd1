package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/campusmatch/campusmatch-backend/internal/domain"
	"github.com/campusmatch/campusmatch-backend/internal/repository"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

type swipeRepository struct {
	db *sqlx.DB
}

func NewSwipeRepository(db *sqlx.DB) repository.SwipeRepository {
	return &swipeRepository{db: db}
}

// Upsert relies on the (from_id, to_id) primary key: re-swiping the same
// target overwrites the stored direction instead of appending a row.
func (r *swipeRepository) Upsert(ctx context.Context, swipe *domain.Swipe) error {
	query := `
		INSERT INTO swipes (from_id, to_id, direction)
		VALUES ($1, $2, $3)
		ON CONFLICT (from_id, to_id)
		DO UPDATE SET direction = EXCLUDED.direction, updated_at = CURRENT_TIMESTAMP
		RETURNING created_at, updated_at
	`
	return r.db.QueryRowContext(ctx, query, swipe.FromID, swipe.ToID, swipe.Direction).
		Scan(&swipe.CreatedAt, &swipe.UpdatedAt)
}

func (r *swipeRepository) GetByUsers(ctx context.Context, fromID, toID string) (*domain.Swipe, error) {
	var swipe domain.Swipe
	query := `SELECT * FROM swipes WHERE from_id = $1 AND to_id = $2`
	err := r.db.GetContext(ctx, &swipe, query, fromID, toID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &swipe, nil
}

func (r *swipeRepository) GetSwipedIDs(ctx context.Context, fromID string) ([]string, error) {
	var ids []string
	query := `SELECT to_id FROM swipes WHERE from_id = $1`
	err := r.db.SelectContext(ctx, &ids, query, fromID)
	return ids, err
}

func (r *swipeRepository) GetFrienderIDs(ctx context.Context, toID string, candidateIDs []string) ([]string, error) {
	if len(candidateIDs) == 0 {
		return nil, nil
	}
	var ids []string
	query := `
		SELECT from_id FROM swipes
		WHERE to_id = $1 AND direction = $2 AND from_id = ANY($3)
	`
	err := r.db.SelectContext(ctx, &ids, query, toID, domain.DirectionFriend, pq.Array(candidateIDs))
	return ids, err
}

func (r *swipeRepository) CountLikesReceived(ctx context.Context, toID string) (int64, error) {
	var count int64
	query := `SELECT COUNT(*) FROM swipes WHERE to_id = $1 AND direction IN ($2, $3)`
	err := r.db.GetContext(ctx, &count, query, toID, domain.DirectionRight, domain.DirectionFriend)
	return count, err
}
