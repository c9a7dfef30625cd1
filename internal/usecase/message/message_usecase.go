package message

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/campusmatch/campusmatch-backend/internal/domain"
	"github.com/campusmatch/campusmatch-backend/internal/repository"
)

type MessageUseCase struct {
	messageRepo repository.MessageRepository
	matchRepo   repository.MatchRepository
	userRepo    repository.UserRepository
}

func NewMessageUseCase(
	messageRepo repository.MessageRepository,
	matchRepo repository.MatchRepository,
	userRepo repository.UserRepository,
) *MessageUseCase {
	return &MessageUseCase{
		messageRepo: messageRepo,
		matchRepo:   matchRepo,
		userRepo:    userRepo,
	}
}

type SendRequest struct {
	MatchID string `json:"matchId" binding:"required"`
	Content string `json:"content" binding:"required"`
}

// ThreadUser is the other party's display identity for the chat header.
type ThreadUser struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Image *string `json:"image"`
}

type ThreadResponse struct {
	Messages  []*domain.Message `json:"messages"`
	OtherUser ThreadUser        `json:"otherUser"`
}

// GetThread returns a match's messages oldest-first. Only the two match
// members may read the thread.
func (uc *MessageUseCase) GetThread(ctx context.Context, userID, matchID string) (*ThreadResponse, error) {
	match, other, err := uc.authorizedMatch(ctx, userID, matchID)
	if err != nil {
		return nil, err
	}

	messages, err := uc.messageRepo.GetByMatch(ctx, match.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get messages: %w", err)
	}
	if messages == nil {
		messages = []*domain.Message{}
	}

	return &ThreadResponse{
		Messages: messages,
		OtherUser: ThreadUser{
			ID:    other.ID,
			Name:  other.Name,
			Image: other.Image,
		},
	}, nil
}

// Send appends a message to the thread. The receiver is always derived
// as the other party of the match, never taken from the request.
func (uc *MessageUseCase) Send(ctx context.Context, userID string, req *SendRequest) (*domain.Message, error) {
	content := strings.TrimSpace(req.Content)
	if content == "" {
		return nil, domain.ErrEmptyMessage
	}

	match, other, err := uc.authorizedMatch(ctx, userID, req.MatchID)
	if err != nil {
		return nil, err
	}

	message := &domain.Message{
		MatchID:    match.ID,
		SenderID:   userID,
		ReceiverID: other.ID,
		Content:    content,
	}

	if err := uc.messageRepo.Create(ctx, message); err != nil {
		return nil, fmt.Errorf("failed to create message: %w", err)
	}

	return message, nil
}

func (uc *MessageUseCase) authorizedMatch(ctx context.Context, userID, matchID string) (*domain.Match, *domain.User, error) {
	match, err := uc.matchRepo.GetByID(ctx, matchID)
	if err != nil {
		if errors.Is(err, domain.ErrMatchNotFound) {
			return nil, nil, domain.ErrMatchNotFound
		}
		return nil, nil, fmt.Errorf("failed to get match: %w", err)
	}

	otherID, ok := match.OtherUserID(userID)
	if !ok {
		return nil, nil, domain.ErrNotMatchMember
	}

	other, err := uc.userRepo.GetByID(ctx, otherID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get other user: %w", err)
	}

	return match, other, nil
}
