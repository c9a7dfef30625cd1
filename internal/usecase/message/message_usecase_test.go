package message

import (
	"context"
	"testing"

	"github.com/campusmatch/campusmatch-backend/internal/domain"
	"github.com/campusmatch/campusmatch-backend/internal/repository/repositorytest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type messageFixture struct {
	uc        *MessageUseCase
	matchRepo *repositorytest.FakeMatchRepo
	match     *domain.Match
}

// newMessageFixture seeds alice, ben and outsider carol, with alice and
// ben matched.
func newMessageFixture(t *testing.T) *messageFixture {
	t.Helper()

	userRepo := repositorytest.NewFakeUserRepo()
	for _, id := range []string{"alice", "ben", "carol"} {
		err := userRepo.Create(context.Background(), &domain.User{
			ID:           id,
			Email:        id + "@campus.edu",
			Name:         id,
			Age:          20,
			Gender:       domain.GenderOther,
			InterestedIn: domain.InterestBoth,
		})
		require.NoError(t, err)
	}

	matchRepo := repositorytest.NewFakeMatchRepo()
	match := &domain.Match{User1ID: "alice", User2ID: "ben", Type: domain.MatchTypeDate}
	require.NoError(t, matchRepo.Create(context.Background(), match))

	messageRepo := repositorytest.NewFakeMessageRepo()

	return &messageFixture{
		uc:        NewMessageUseCase(messageRepo, matchRepo, userRepo),
		matchRepo: matchRepo,
		match:     match,
	}
}

func TestSendDerivesReceiverFromMatch(t *testing.T) {
	f := newMessageFixture(t)

	msg, err := f.uc.Send(context.Background(), "alice", &SendRequest{
		MatchID: f.match.ID,
		Content: "hey!",
	})
	require.NoError(t, err)
	assert.Equal(t, "alice", msg.SenderID)
	assert.Equal(t, "ben", msg.ReceiverID)
	assert.Equal(t, "hey!", msg.Content)
	assert.NotEmpty(t, msg.ID)
}

func TestSendTrimsAndRejectsEmptyContent(t *testing.T) {
	f := newMessageFixture(t)

	_, err := f.uc.Send(context.Background(), "alice", &SendRequest{
		MatchID: f.match.ID,
		Content: "   \n\t ",
	})
	assert.ErrorIs(t, err, domain.ErrEmptyMessage)

	msg, err := f.uc.Send(context.Background(), "alice", &SendRequest{
		MatchID: f.match.ID,
		Content: "  hi  ",
	})
	require.NoError(t, err)
	assert.Equal(t, "hi", msg.Content)
}

func TestSendRejectsNonMember(t *testing.T) {
	f := newMessageFixture(t)

	_, err := f.uc.Send(context.Background(), "carol", &SendRequest{
		MatchID: f.match.ID,
		Content: "let me in",
	})
	assert.ErrorIs(t, err, domain.ErrNotMatchMember)
}

func TestSendUnknownMatch(t *testing.T) {
	f := newMessageFixture(t)

	_, err := f.uc.Send(context.Background(), "alice", &SendRequest{
		MatchID: "no-such-match",
		Content: "hello?",
	})
	assert.ErrorIs(t, err, domain.ErrMatchNotFound)
}

func TestGetThreadOrderedOldestFirst(t *testing.T) {
	f := newMessageFixture(t)

	for _, m := range []struct {
		sender, content string
	}{
		{"alice", "hi ben"},
		{"ben", "hi alice"},
		{"alice", "coffee later?"},
	} {
		_, err := f.uc.Send(context.Background(), m.sender, &SendRequest{
			MatchID: f.match.ID,
			Content: m.content,
		})
		require.NoError(t, err)
	}

	thread, err := f.uc.GetThread(context.Background(), "ben", f.match.ID)
	require.NoError(t, err)
	require.Len(t, thread.Messages, 3)
	assert.Equal(t, "hi ben", thread.Messages[0].Content)
	assert.Equal(t, "coffee later?", thread.Messages[2].Content)
	assert.Equal(t, "alice", thread.OtherUser.ID)
}

func TestGetThreadEmptyIsNotNil(t *testing.T) {
	f := newMessageFixture(t)

	thread, err := f.uc.GetThread(context.Background(), "alice", f.match.ID)
	require.NoError(t, err)
	assert.NotNil(t, thread.Messages)
	assert.Empty(t, thread.Messages)
	assert.Equal(t, "ben", thread.OtherUser.ID)
}

func TestGetThreadRejectsNonMember(t *testing.T) {
	f := newMessageFixture(t)

	_, err := f.uc.GetThread(context.Background(), "carol", f.match.ID)
	assert.ErrorIs(t, err, domain.ErrNotMatchMember)
}
