package match

import (
	"context"
	"fmt"

	"github.com/campusmatch/campusmatch-backend/internal/domain"
	"github.com/campusmatch/campusmatch-backend/internal/repository"
)

type MatchUseCase struct {
	matchRepo   repository.MatchRepository
	messageRepo repository.MessageRepository
	userRepo    repository.UserRepository
}

func NewMatchUseCase(
	matchRepo repository.MatchRepository,
	messageRepo repository.MessageRepository,
	userRepo repository.UserRepository,
) *MatchUseCase {
	return &MatchUseCase{
		matchRepo:   matchRepo,
		messageRepo: messageRepo,
		userRepo:    userRepo,
	}
}

// MatchedUser is the other party of a match as shown in the list.
type MatchedUser struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Image     *string `json:"image"`
	Instagram *string `json:"instagram"`
}

// MatchResponse is one entry in the matches list, newest first, with the
// latest message as preview.
type MatchResponse struct {
	ID          string           `json:"id"`
	Type        domain.MatchType `json:"type"`
	User        MatchedUser      `json:"user"`
	LastMessage string           `json:"lastMessage"`
	Icebreakers []string         `json:"icebreakers,omitempty"`
}

// ListMatches returns the caller's matches with a last-message preview.
// An empty thread previews as "New Match!".
func (uc *MatchUseCase) ListMatches(ctx context.Context, userID string) ([]*MatchResponse, error) {
	matches, err := uc.matchRepo.GetUserMatches(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get matches: %w", err)
	}

	responses := make([]*MatchResponse, 0, len(matches))
	for _, m := range matches {
		otherID, ok := m.OtherUserID(userID)
		if !ok {
			continue
		}

		other, err := uc.userRepo.GetByID(ctx, otherID)
		if err != nil {
			return nil, fmt.Errorf("failed to get matched user: %w", err)
		}

		preview := "New Match!"
		latest, err := uc.messageRepo.GetLatestByMatch(ctx, m.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to get latest message: %w", err)
		}
		if latest != nil {
			preview = latest.Content
		}

		responses = append(responses, &MatchResponse{
			ID:   m.ID,
			Type: m.Type,
			User: MatchedUser{
				ID:        other.ID,
				Name:      other.Name,
				Image:     other.Image,
				Instagram: other.Instagram,
			},
			LastMessage: preview,
			Icebreakers: m.Icebreakers,
		})
	}

	return responses, nil
}
