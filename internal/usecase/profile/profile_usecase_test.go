package profile

import (
	"context"
	"testing"

	"github.com/campusmatch/campusmatch-backend/internal/domain"
	"github.com/campusmatch/campusmatch-backend/internal/repository/repositorytest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProfileFixture(t *testing.T) (*ProfileUseCase, *domain.User) {
	t.Helper()

	userRepo := repositorytest.NewFakeUserRepo()
	bio := "original bio"
	user := &domain.User{
		ID:           "alice",
		Email:        "alice@campus.edu",
		PasswordHash: "hash",
		Name:         "Alice",
		Age:          21,
		Gender:       domain.GenderFemale,
		InterestedIn: domain.InterestMale,
		Bio:          &bio,
	}
	require.NoError(t, userRepo.Create(context.Background(), user))

	return NewProfileUseCase(userRepo), user
}

func TestGetProfileProjectsOwnerView(t *testing.T) {
	uc, user := newProfileFixture(t)

	resp, err := uc.GetProfile(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice", resp.ID)
	assert.Equal(t, "alice@campus.edu", resp.Email)
	assert.Equal(t, "original bio", *resp.Bio)
}

func TestGetProfileUnknownUser(t *testing.T) {
	uc, _ := newProfileFixture(t)

	_, err := uc.GetProfile(context.Background(), "ghost")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestUpdateProfileAppliesOnlyProvidedFields(t *testing.T) {
	uc, user := newProfileFixture(t)

	newBio := "updated bio"
	resp, err := uc.UpdateProfile(context.Background(), user.ID, &UpdateProfileRequest{
		Bio: &newBio,
	})
	require.NoError(t, err)

	assert.Equal(t, "updated bio", *resp.Bio)
	// untouched fields keep their value
	assert.Equal(t, domain.InterestMale, resp.InterestedIn)
	assert.Nil(t, resp.Image)
}

func TestUpdateProfileChangesPreference(t *testing.T) {
	uc, user := newProfileFixture(t)

	friends := domain.InterestFriends
	image := "/uploads/new.jpg"
	insta := "alice.new"
	resp, err := uc.UpdateProfile(context.Background(), user.ID, &UpdateProfileRequest{
		Image:        &image,
		InterestedIn: &friends,
		Instagram:    &insta,
	})
	require.NoError(t, err)

	assert.Equal(t, domain.InterestFriends, resp.InterestedIn)
	assert.Equal(t, "/uploads/new.jpg", *resp.Image)
	assert.Equal(t, "alice.new", *resp.Instagram)

	// persisted, not just projected
	again, err := uc.GetProfile(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.InterestFriends, again.InterestedIn)
}
