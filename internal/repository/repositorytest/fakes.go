// Package repositorytest provides in-memory repository fakes for usecase
// tests. Behavior mirrors the postgres implementations, including the
// sentinel errors and ordering guarantees callers rely on.
package repositorytest

import (
	"context"
	"time"

	"github.com/campusmatch/campusmatch-backend/internal/domain"
	"github.com/google/uuid"
)

type FakeUserRepo struct {
	users map[string]*domain.User
	order []string
}

func NewFakeUserRepo() *FakeUserRepo {
	return &FakeUserRepo{users: make(map[string]*domain.User)}
}

func (r *FakeUserRepo) Create(_ context.Context, user *domain.User) error {
	for _, u := range r.users {
		if u.Email == user.Email {
			return domain.ErrEmailTaken
		}
	}
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	r.users[user.ID] = user
	r.order = append(r.order, user.ID)
	return nil
}

func (r *FakeUserRepo) GetByID(_ context.Context, id string) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return u, nil
}

func (r *FakeUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *FakeUserRepo) Update(_ context.Context, user *domain.User) error {
	if _, ok := r.users[user.ID]; !ok {
		return domain.ErrUserNotFound
	}
	user.UpdatedAt = time.Now()
	r.users[user.ID] = user
	return nil
}

func (r *FakeUserRepo) ListCandidates(_ context.Context, excludeIDs []string, limit int) ([]*domain.User, error) {
	excluded := make(map[string]bool, len(excludeIDs))
	for _, id := range excludeIDs {
		excluded[id] = true
	}
	var out []*domain.User
	for _, id := range r.order {
		if excluded[id] {
			continue
		}
		out = append(out, r.users[id])
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

type FakeSwipeRepo struct {
	swipes map[[2]string]*domain.Swipe
}

func NewFakeSwipeRepo() *FakeSwipeRepo {
	return &FakeSwipeRepo{swipes: make(map[[2]string]*domain.Swipe)}
}

func (r *FakeSwipeRepo) Upsert(_ context.Context, swipe *domain.Swipe) error {
	key := [2]string{swipe.FromID, swipe.ToID}
	now := time.Now()
	if existing, ok := r.swipes[key]; ok {
		existing.Direction = swipe.Direction
		existing.UpdatedAt = now
		*swipe = *existing
		return nil
	}
	swipe.CreatedAt = now
	swipe.UpdatedAt = now
	stored := *swipe
	r.swipes[key] = &stored
	return nil
}

func (r *FakeSwipeRepo) GetByUsers(_ context.Context, fromID, toID string) (*domain.Swipe, error) {
	s, ok := r.swipes[[2]string{fromID, toID}]
	if !ok {
		return nil, nil
	}
	return s, nil
}

func (r *FakeSwipeRepo) GetSwipedIDs(_ context.Context, fromID string) ([]string, error) {
	var out []string
	for key := range r.swipes {
		if key[0] == fromID {
			out = append(out, key[1])
		}
	}
	return out, nil
}

func (r *FakeSwipeRepo) GetFrienderIDs(_ context.Context, toID string, candidateIDs []string) ([]string, error) {
	var out []string
	for _, id := range candidateIDs {
		if s, ok := r.swipes[[2]string{id, toID}]; ok && s.Direction == domain.DirectionFriend {
			out = append(out, id)
		}
	}
	return out, nil
}

func (r *FakeSwipeRepo) CountLikesReceived(_ context.Context, toID string) (int64, error) {
	var count int64
	for key, s := range r.swipes {
		if key[1] == toID && s.Direction.IsPositive() {
			count++
		}
	}
	return count, nil
}

type FakeMatchRepo struct {
	byID  map[string]*domain.Match
	pairs map[[2]string]string
	order []string
}

func NewFakeMatchRepo() *FakeMatchRepo {
	return &FakeMatchRepo{
		byID:  make(map[string]*domain.Match),
		pairs: make(map[[2]string]string),
	}
}

func (r *FakeMatchRepo) Create(_ context.Context, match *domain.Match) error {
	u1, u2 := domain.CanonicalPair(match.User1ID, match.User2ID)
	pair := [2]string{u1, u2}
	if _, ok := r.pairs[pair]; ok {
		return domain.ErrMatchAlreadyExists
	}
	match.User1ID, match.User2ID = u1, u2
	if match.ID == "" {
		match.ID = uuid.NewString()
	}
	match.CreatedAt = time.Now()
	r.byID[match.ID] = match
	r.pairs[pair] = match.ID
	r.order = append(r.order, match.ID)
	return nil
}

func (r *FakeMatchRepo) GetByID(_ context.Context, id string) (*domain.Match, error) {
	m, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrMatchNotFound
	}
	return m, nil
}

func (r *FakeMatchRepo) GetByUsers(_ context.Context, user1ID, user2ID string) (*domain.Match, error) {
	u1, u2 := domain.CanonicalPair(user1ID, user2ID)
	id, ok := r.pairs[[2]string{u1, u2}]
	if !ok {
		return nil, domain.ErrMatchNotFound
	}
	return r.byID[id], nil
}

func (r *FakeMatchRepo) GetUserMatches(_ context.Context, userID string) ([]*domain.Match, error) {
	var out []*domain.Match
	// newest first
	for i := len(r.order) - 1; i >= 0; i-- {
		m := r.byID[r.order[i]]
		if m.HasUser(userID) {
			out = append(out, m)
		}
	}
	return out, nil
}

func (r *FakeMatchRepo) UpdateIcebreakers(_ context.Context, matchID string, icebreakers []string) error {
	m, ok := r.byID[matchID]
	if !ok {
		return domain.ErrMatchNotFound
	}
	m.Icebreakers = icebreakers
	return nil
}

type FakeMessageRepo struct {
	byMatch map[string][]*domain.Message
}

func NewFakeMessageRepo() *FakeMessageRepo {
	return &FakeMessageRepo{byMatch: make(map[string][]*domain.Message)}
}

func (r *FakeMessageRepo) Create(_ context.Context, message *domain.Message) error {
	if message.ID == "" {
		message.ID = uuid.NewString()
	}
	message.CreatedAt = time.Now()
	r.byMatch[message.MatchID] = append(r.byMatch[message.MatchID], message)
	return nil
}

func (r *FakeMessageRepo) GetByMatch(_ context.Context, matchID string) ([]*domain.Message, error) {
	msgs := r.byMatch[matchID]
	out := make([]*domain.Message, len(msgs))
	copy(out, msgs)
	return out, nil
}

func (r *FakeMessageRepo) GetLatestByMatch(_ context.Context, matchID string) (*domain.Message, error) {
	msgs := r.byMatch[matchID]
	if len(msgs) == 0 {
		return nil, nil
	}
	return msgs[len(msgs)-1], nil
}
