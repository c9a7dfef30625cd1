package feed

import (
	"context"
	"fmt"

	"github.com/campusmatch/campusmatch-backend/internal/domain"
	"github.com/campusmatch/campusmatch-backend/internal/repository"
)

const (
	// batchSize is how many candidates a single feed request returns.
	batchSize = 20
	// fetchLimit overfetches so in-process preference filtering can still
	// fill a batch.
	fetchLimit = 100
)

type FeedUseCase struct {
	userRepo  repository.UserRepository
	swipeRepo repository.SwipeRepository
}

func NewFeedUseCase(userRepo repository.UserRepository, swipeRepo repository.SwipeRepository) *FeedUseCase {
	return &FeedUseCase{
		userRepo:  userRepo,
		swipeRepo: swipeRepo,
	}
}

// CandidateResponse is one swipeable profile. HasFriendedMe flags an
// outstanding FRIEND swipe from this candidate at the requester.
type CandidateResponse struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Age          int             `json:"age"`
	Gender       domain.Gender   `json:"gender"`
	InterestedIn domain.Interest `json:"interestedIn"`
	Bio          *string         `json:"bio"`
	Image        *string         `json:"image"`
	Instagram    *string         `json:"instagram"`
	HasFriendedMe bool           `json:"hasFriendedMe"`
}

// GetCandidates returns the next batch of swipeable profiles: everyone
// the requester hasn't decided on, filtered so both sides' stated
// preferences admit the other. FRIENDS preference is its own pool.
func (uc *FeedUseCase) GetCandidates(ctx context.Context, userID string) ([]*CandidateResponse, error) {
	me, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	swipedIDs, err := uc.swipeRepo.GetSwipedIDs(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get swiped ids: %w", err)
	}

	excludeIDs := append(swipedIDs, me.ID)
	candidates, err := uc.userRepo.ListCandidates(ctx, excludeIDs, fetchLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to list candidates: %w", err)
	}

	var kept []*domain.User
	for _, candidate := range candidates {
		if !uc.compatible(me, candidate) {
			continue
		}
		kept = append(kept, candidate)
		if len(kept) == batchSize {
			break
		}
	}

	keptIDs := make([]string, len(kept))
	for i, u := range kept {
		keptIDs[i] = u.ID
	}

	frienderIDs, err := uc.swipeRepo.GetFrienderIDs(ctx, userID, keptIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to get friend swipes: %w", err)
	}
	frienders := make(map[string]bool, len(frienderIDs))
	for _, id := range frienderIDs {
		frienders[id] = true
	}

	responses := make([]*CandidateResponse, 0, len(kept))
	for _, u := range kept {
		responses = append(responses, &CandidateResponse{
			ID:            u.ID,
			Name:          u.Name,
			Age:           u.Age,
			Gender:        u.Gender,
			InterestedIn:  u.InterestedIn,
			Bio:           u.Bio,
			Image:         u.Image,
			Instagram:     u.Instagram,
			HasFriendedMe: frienders[u.ID],
		})
	}

	return responses, nil
}

// compatible applies the symmetric preference filter. Friends mode only
// ever pairs with friends mode; the dating pool requires each side's
// preference to admit the other's gender.
func (uc *FeedUseCase) compatible(me, candidate *domain.User) bool {
	if me.InterestedIn == domain.InterestFriends {
		return candidate.InterestedIn == domain.InterestFriends
	}
	if candidate.InterestedIn == domain.InterestFriends {
		return false
	}
	return me.WantsGender(candidate.Gender) && candidate.WantsGender(me.Gender)
}
