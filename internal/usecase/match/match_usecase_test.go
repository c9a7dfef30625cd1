package match

import (
	"context"
	"testing"

	"github.com/campusmatch/campusmatch-backend/internal/domain"
	"github.com/campusmatch/campusmatch-backend/internal/repository/repositorytest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type matchFixture struct {
	uc          *MatchUseCase
	userRepo    *repositorytest.FakeUserRepo
	matchRepo   *repositorytest.FakeMatchRepo
	messageRepo *repositorytest.FakeMessageRepo
}

func newMatchFixture(t *testing.T, userIDs ...string) *matchFixture {
	t.Helper()

	userRepo := repositorytest.NewFakeUserRepo()
	for _, id := range userIDs {
		insta := id + ".gram"
		err := userRepo.Create(context.Background(), &domain.User{
			ID:           id,
			Email:        id + "@campus.edu",
			Name:         id,
			Age:          20,
			Gender:       domain.GenderOther,
			InterestedIn: domain.InterestBoth,
			Instagram:    &insta,
		})
		require.NoError(t, err)
	}

	matchRepo := repositorytest.NewFakeMatchRepo()
	messageRepo := repositorytest.NewFakeMessageRepo()

	return &matchFixture{
		uc:          NewMatchUseCase(matchRepo, messageRepo, userRepo),
		userRepo:    userRepo,
		matchRepo:   matchRepo,
		messageRepo: messageRepo,
	}
}

func (f *matchFixture) addMatch(t *testing.T, user1, user2 string, typ domain.MatchType) *domain.Match {
	t.Helper()
	m := &domain.Match{User1ID: user1, User2ID: user2, Type: typ}
	require.NoError(t, f.matchRepo.Create(context.Background(), m))
	return m
}

func TestListMatchesEmptyThreadPreview(t *testing.T) {
	f := newMatchFixture(t, "alice", "ben")
	f.addMatch(t, "alice", "ben", domain.MatchTypeDate)

	matches, err := f.uc.ListMatches(context.Background(), "alice")
	require.NoError(t, err)
	require.Len(t, matches, 1)

	assert.Equal(t, "New Match!", matches[0].LastMessage)
	assert.Equal(t, "ben", matches[0].User.ID)
	assert.Equal(t, domain.MatchTypeDate, matches[0].Type)
}

func TestListMatchesShowsLatestMessage(t *testing.T) {
	f := newMatchFixture(t, "alice", "ben")
	m := f.addMatch(t, "alice", "ben", domain.MatchTypeDate)

	for _, content := range []string{"hi", "how's your week?"} {
		err := f.messageRepo.Create(context.Background(), &domain.Message{
			MatchID:    m.ID,
			SenderID:   "alice",
			ReceiverID: "ben",
			Content:    content,
		})
		require.NoError(t, err)
	}

	matches, err := f.uc.ListMatches(context.Background(), "alice")
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, "how's your week?", matches[0].LastMessage)
}

func TestListMatchesShowsOtherUserForBothSides(t *testing.T) {
	f := newMatchFixture(t, "alice", "ben")
	f.addMatch(t, "alice", "ben", domain.MatchTypeFriend)

	forAlice, err := f.uc.ListMatches(context.Background(), "alice")
	require.NoError(t, err)
	require.Len(t, forAlice, 1)
	assert.Equal(t, "ben", forAlice[0].User.ID)

	forBen, err := f.uc.ListMatches(context.Background(), "ben")
	require.NoError(t, err)
	require.Len(t, forBen, 1)
	assert.Equal(t, "alice", forBen[0].User.ID)
}

func TestListMatchesNewestFirst(t *testing.T) {
	f := newMatchFixture(t, "alice", "ben", "carol")
	f.addMatch(t, "alice", "ben", domain.MatchTypeDate)
	f.addMatch(t, "alice", "carol", domain.MatchTypeFriend)

	matches, err := f.uc.ListMatches(context.Background(), "alice")
	require.NoError(t, err)
	require.Len(t, matches, 2)
	assert.Equal(t, "carol", matches[0].User.ID)
	assert.Equal(t, "ben", matches[1].User.ID)
}

func TestListMatchesIncludesIcebreakers(t *testing.T) {
	f := newMatchFixture(t, "alice", "ben")
	m := f.addMatch(t, "alice", "ben", domain.MatchTypeDate)

	breakers := []string{"Hi Ben!", "Coffee sometime?"}
	require.NoError(t, f.matchRepo.UpdateIcebreakers(context.Background(), m.ID, breakers))

	matches, err := f.uc.ListMatches(context.Background(), "alice")
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, breakers, matches[0].Icebreakers)
}

func TestListMatchesNoMatches(t *testing.T) {
	f := newMatchFixture(t, "alice")

	matches, err := f.uc.ListMatches(context.Background(), "alice")
	require.NoError(t, err)
	assert.Empty(t, matches)
}
