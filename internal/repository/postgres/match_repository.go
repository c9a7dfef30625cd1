package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/campusmatch/campusmatch-backend/internal/domain"
	"github.com/campusmatch/campusmatch-backend/internal/repository"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

type matchRepository struct {
	db *sqlx.DB
}

func NewMatchRepository(db *sqlx.DB) repository.MatchRepository {
	return &matchRepository{db: db}
}

// Create canonicalizes the pair and inserts with ON CONFLICT DO NOTHING.
// Losing the race to a concurrent opposite-direction swipe surfaces as
// ErrMatchAlreadyExists rather than a second row.
func (r *matchRepository) Create(ctx context.Context, match *domain.Match) error {
	user1ID, user2ID := domain.CanonicalPair(match.User1ID, match.User2ID)
	match.User1ID = user1ID
	match.User2ID = user2ID
	if match.ID == "" {
		match.ID = uuid.NewString()
	}

	query := `
		INSERT INTO matches (id, user1_id, user2_id, type)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (user1_id, user2_id) DO NOTHING
		RETURNING created_at
	`
	err := r.db.QueryRowContext(ctx, query, match.ID, user1ID, user2ID, match.Type).
		Scan(&match.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ErrMatchAlreadyExists
	}
	return err
}

func (r *matchRepository) GetByID(ctx context.Context, id string) (*domain.Match, error) {
	query := `SELECT id, user1_id, user2_id, type, icebreakers, created_at FROM matches WHERE id = $1`
	return r.scanMatch(r.db.QueryRowContext(ctx, query, id))
}

func (r *matchRepository) GetByUsers(ctx context.Context, user1ID, user2ID string) (*domain.Match, error) {
	user1ID, user2ID = domain.CanonicalPair(user1ID, user2ID)
	query := `SELECT id, user1_id, user2_id, type, icebreakers, created_at FROM matches WHERE user1_id = $1 AND user2_id = $2`
	return r.scanMatch(r.db.QueryRowContext(ctx, query, user1ID, user2ID))
}

func (r *matchRepository) GetUserMatches(ctx context.Context, userID string) ([]*domain.Match, error) {
	query := `
		SELECT id, user1_id, user2_id, type, icebreakers, created_at
		FROM matches
		WHERE user1_id = $1 OR user2_id = $1
		ORDER BY created_at DESC
	`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var matches []*domain.Match
	for rows.Next() {
		var m domain.Match
		if err := rows.Scan(&m.ID, &m.User1ID, &m.User2ID, &m.Type, pq.Array(&m.Icebreakers), &m.CreatedAt); err != nil {
			return nil, err
		}
		matches = append(matches, &m)
	}
	return matches, rows.Err()
}

func (r *matchRepository) UpdateIcebreakers(ctx context.Context, matchID string, icebreakers []string) error {
	query := `UPDATE matches SET icebreakers = $1 WHERE id = $2`
	result, err := r.db.ExecContext(ctx, query, pq.Array(icebreakers), matchID)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrMatchNotFound
	}
	return nil
}

func (r *matchRepository) scanMatch(row *sql.Row) (*domain.Match, error) {
	var m domain.Match
	err := row.Scan(&m.ID, &m.User1ID, &m.User2ID, &m.Type, pq.Array(&m.Icebreakers), &m.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrMatchNotFound
		}
		return nil, err
	}
	return &m, nil
}
