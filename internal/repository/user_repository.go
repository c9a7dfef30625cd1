package repository

import (
	"context"

	"github.com/campusmatch/campusmatch-backend/internal/domain"
)

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) error
	// ListCandidates returns users other than excludeIDs in insertion order.
	// Preference filtering happens in the feed usecase.
	ListCandidates(ctx context.Context, excludeIDs []string, limit int) ([]*domain.User, error)
}
