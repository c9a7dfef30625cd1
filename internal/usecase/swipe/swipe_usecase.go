package swipe

import (
	"context"
	"fmt"
	"time"

	"github.com/campusmatch/campusmatch-backend/internal/domain"
	"github.com/campusmatch/campusmatch-backend/internal/infrastructure/gemini"
	"github.com/campusmatch/campusmatch-backend/internal/logger"
	"github.com/campusmatch/campusmatch-backend/internal/repository"
)

// LikeCounter is the cached likes-received counter. The DB is the source
// of truth; the counter is best-effort and repopulated on miss.
type LikeCounter interface {
	Get(ctx context.Context, userID string) (int64, bool, error)
	Set(ctx context.Context, userID string, count int64) error
	Incr(ctx context.Context, userID string) error
	Decr(ctx context.Context, userID string) error
}

// SwipeUseCase is the match engine: it records directional decisions and
// materializes at most one match per pair when interest becomes mutual.
type SwipeUseCase struct {
	swipeRepo    repository.SwipeRepository
	matchRepo    repository.MatchRepository
	userRepo     repository.UserRepository
	likes        LikeCounter
	geminiClient *gemini.GeminiClient
}

func NewSwipeUseCase(
	swipeRepo repository.SwipeRepository,
	matchRepo repository.MatchRepository,
	userRepo repository.UserRepository,
	likes LikeCounter,
	geminiClient *gemini.GeminiClient,
) *SwipeUseCase {
	return &SwipeUseCase{
		swipeRepo:    swipeRepo,
		matchRepo:    matchRepo,
		userRepo:     userRepo,
		likes:        likes,
		geminiClient: geminiClient,
	}
}

// SwipeRequest represents a swipe action
type SwipeRequest struct {
	ToID      string           `json:"toId" binding:"required"`
	Direction domain.Direction `json:"direction" binding:"required,oneof=LEFT RIGHT FRIEND"`
}

// SwipeResponse reports whether this swipe produced a new match. The
// match type is not included; the client refetches /matches for it.
type SwipeResponse struct {
	Success bool `json:"success"`
	Match   bool `json:"match"`
}

// RecordSwipe upserts the actor's decision and runs the match check.
//
// State machine per unordered pair: Unswiped -> OneSided -> Matched.
// LEFT short-circuits before the reverse lookup; a reverse LEFT keeps the
// pair OneSided; mutual RIGHT/FRIEND materializes exactly one match, with
// FRIEND on either side collapsing the type to FRIEND.
func (uc *SwipeUseCase) RecordSwipe(ctx context.Context, actorID string, req *SwipeRequest) (*SwipeResponse, error) {
	if !req.Direction.Valid() {
		return nil, domain.ErrInvalidDirection
	}
	if actorID == req.ToID {
		return nil, domain.ErrCannotSwipeSelf
	}
	if _, err := uc.userRepo.GetByID(ctx, req.ToID); err != nil {
		return nil, err
	}

	// prior direction is needed to keep the cached like counter honest
	// when a re-swipe flips between LEFT and RIGHT/FRIEND
	prior, err := uc.swipeRepo.GetByUsers(ctx, actorID, req.ToID)
	if err != nil {
		return nil, fmt.Errorf("failed to get prior swipe: %w", err)
	}

	swipe := &domain.Swipe{
		FromID:    actorID,
		ToID:      req.ToID,
		Direction: req.Direction,
	}
	if err := uc.swipeRepo.Upsert(ctx, swipe); err != nil {
		return nil, fmt.Errorf("failed to record swipe: %w", err)
	}

	uc.adjustLikeCounter(ctx, req.ToID, prior, req.Direction)

	response := &SwipeResponse{Success: true}

	// LEFT can never trigger a match
	if !req.Direction.IsPositive() {
		return response, nil
	}

	reverse, err := uc.swipeRepo.GetByUsers(ctx, req.ToID, actorID)
	if err != nil {
		return nil, fmt.Errorf("failed to get reverse swipe: %w", err)
	}
	if reverse == nil || !reverse.Direction.IsPositive() {
		return response, nil
	}

	// mutual interest: one FRIEND on either side collapses to a FRIEND match
	matchType := domain.MatchTypeDate
	if req.Direction == domain.DirectionFriend || reverse.Direction == domain.DirectionFriend {
		matchType = domain.MatchTypeFriend
	}

	created, match, err := uc.materializeMatch(ctx, actorID, req.ToID, matchType)
	if err != nil {
		logger.Error("match creation failed", "actor", actorID, "target", req.ToID, "err", err)
		return response, nil // the swipe itself succeeded
	}

	if created {
		response.Match = true
		if uc.geminiClient != nil {
			go uc.enrichMatch(match.ID, actorID, req.ToID)
		}
	}

	return response, nil
}

// materializeMatch creates the match row for the pair unless one exists.
// The read check is a fast path only; the unique constraint on the
// canonical pair is what guarantees at-most-one under concurrent swipes.
func (uc *SwipeUseCase) materializeMatch(ctx context.Context, user1ID, user2ID string, matchType domain.MatchType) (bool, *domain.Match, error) {
	existing, err := uc.matchRepo.GetByUsers(ctx, user1ID, user2ID)
	if err == nil {
		return false, existing, nil
	}
	if err != domain.ErrMatchNotFound {
		return false, nil, err
	}

	match := &domain.Match{
		User1ID: user1ID,
		User2ID: user2ID,
		Type:    matchType,
	}
	if err := uc.matchRepo.Create(ctx, match); err != nil {
		if err == domain.ErrMatchAlreadyExists {
			// lost the race to the opposite swipe; not an error
			return false, nil, nil
		}
		return false, nil, err
	}

	return true, match, nil
}

// LikesReceivedCount returns how many users have an outstanding RIGHT or
// FRIEND swipe at the given user. Cache-first with DB fallback.
func (uc *SwipeUseCase) LikesReceivedCount(ctx context.Context, userID string) (int64, error) {
	if count, ok, err := uc.likes.Get(ctx, userID); err == nil && ok {
		return count, nil
	}

	count, err := uc.swipeRepo.CountLikesReceived(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("failed to count likes: %w", err)
	}

	if err := uc.likes.Set(ctx, userID, count); err != nil {
		logger.Warn("failed to cache like count", "user", userID, "err", err)
	}

	return count, nil
}

func (uc *SwipeUseCase) adjustLikeCounter(ctx context.Context, targetID string, prior *domain.Swipe, direction domain.Direction) {
	priorPositive := prior != nil && prior.Direction.IsPositive()

	var err error
	switch {
	case direction.IsPositive() && !priorPositive:
		err = uc.likes.Incr(ctx, targetID)
	case !direction.IsPositive() && priorPositive:
		err = uc.likes.Decr(ctx, targetID)
	}
	if err != nil {
		logger.Warn("failed to adjust like counter", "user", targetID, "err", err)
	}
}

// enrichMatch generates icebreakers for a fresh match in the background.
// Failures only cost the suggestion, never the match.
func (uc *SwipeUseCase) enrichMatch(matchID, user1ID, user2ID string) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	u1, err := uc.userRepo.GetByID(ctx, user1ID)
	if err != nil {
		return
	}
	u2, err := uc.userRepo.GetByID(ctx, user2ID)
	if err != nil {
		return
	}

	bio1, bio2 := "", ""
	if u1.Bio != nil {
		bio1 = *u1.Bio
	}
	if u2.Bio != nil {
		bio2 = *u2.Bio
	}

	icebreakers, err := uc.geminiClient.GenerateIcebreakers(ctx, u1.Name, bio1, u2.Name, bio2)
	if err != nil {
		logger.Warn("icebreaker generation failed", "match", matchID, "err", err)
		return
	}

	if err := uc.matchRepo.UpdateIcebreakers(ctx, matchID, icebreakers); err != nil {
		logger.Warn("failed to store icebreakers", "match", matchID, "err", err)
	}
}
