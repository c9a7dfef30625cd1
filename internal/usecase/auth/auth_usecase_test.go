package auth

import (
	"context"
	"strings"
	"testing"

	"github.com/campusmatch/campusmatch-backend/internal/domain"
	"github.com/campusmatch/campusmatch-backend/internal/repository/repositorytest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func newAuthFixture(expiryHours int) (*AuthUseCase, *repositorytest.FakeUserRepo) {
	userRepo := repositorytest.NewFakeUserRepo()
	return NewAuthUseCase(userRepo, testSecret, expiryHours), userRepo
}

func registerRequest() *RegisterRequest {
	return &RegisterRequest{
		Email:        "alice@campus.edu",
		Password:     "secret123",
		Name:         "Alice",
		Age:          21,
		Gender:       domain.GenderFemale,
		InterestedIn: domain.InterestMale,
		Image:        "/uploads/alice.jpg",
		Instagram:    "alice.codes",
	}
}

func TestRegisterCreatesUser(t *testing.T) {
	uc, userRepo := newAuthFixture(24)

	user, err := uc.Register(context.Background(), registerRequest())
	require.NoError(t, err)
	assert.NotEmpty(t, user.ID)
	assert.Equal(t, "alice@campus.edu", user.Email)
	// the raw password is never stored
	assert.NotEqual(t, "secret123", user.PasswordHash)

	stored, err := userRepo.GetByEmail(context.Background(), "alice@campus.edu")
	require.NoError(t, err)
	assert.Equal(t, user.ID, stored.ID)
}

func TestRegisterNormalizesEmail(t *testing.T) {
	uc, _ := newAuthFixture(24)

	req := registerRequest()
	req.Email = "  Alice@Campus.EDU "
	user, err := uc.Register(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "alice@campus.edu", user.Email)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	uc, _ := newAuthFixture(24)

	_, err := uc.Register(context.Background(), registerRequest())
	require.NoError(t, err)

	dup := registerRequest()
	dup.Email = "ALICE@campus.edu"
	_, err = uc.Register(context.Background(), dup)
	assert.ErrorIs(t, err, domain.ErrEmailTaken)
}

func TestLoginIssuesVerifiableToken(t *testing.T) {
	uc, _ := newAuthFixture(24)

	user, err := uc.Register(context.Background(), registerRequest())
	require.NoError(t, err)

	result, err := uc.Login(context.Background(), &LoginRequest{
		Email:    "alice@campus.edu",
		Password: "secret123",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, result.Token)
	assert.Equal(t, user.ID, result.User.ID)

	userID, err := uc.VerifyToken(result.Token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, userID)
}

func TestLoginWrongPassword(t *testing.T) {
	uc, _ := newAuthFixture(24)

	_, err := uc.Register(context.Background(), registerRequest())
	require.NoError(t, err)

	_, err = uc.Login(context.Background(), &LoginRequest{
		Email:    "alice@campus.edu",
		Password: "wrong",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestLoginUnknownEmailIndistinguishable(t *testing.T) {
	uc, _ := newAuthFixture(24)

	_, err := uc.Login(context.Background(), &LoginRequest{
		Email:    "nobody@campus.edu",
		Password: "whatever",
	})
	// same error as a wrong password, so emails can't be probed
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestVerifyTokenRejectsGarbage(t *testing.T) {
	uc, _ := newAuthFixture(24)

	_, err := uc.VerifyToken("not.a.token")
	assert.ErrorIs(t, err, domain.ErrInvalidToken)
}

func TestVerifyTokenRejectsTamperedSignature(t *testing.T) {
	uc, _ := newAuthFixture(24)

	_, err := uc.Register(context.Background(), registerRequest())
	require.NoError(t, err)

	result, err := uc.Login(context.Background(), &LoginRequest{
		Email:    "alice@campus.edu",
		Password: "secret123",
	})
	require.NoError(t, err)

	parts := strings.Split(result.Token, ".")
	require.Len(t, parts, 3)
	tampered := parts[0] + "." + parts[1] + ".c29tZXRoaW5nZWxzZQ"

	_, err = uc.VerifyToken(tampered)
	assert.ErrorIs(t, err, domain.ErrInvalidToken)
}

func TestVerifyTokenRejectsExpired(t *testing.T) {
	uc, _ := newAuthFixture(-1)

	_, err := uc.Register(context.Background(), registerRequest())
	require.NoError(t, err)

	result, err := uc.Login(context.Background(), &LoginRequest{
		Email:    "alice@campus.edu",
		Password: "secret123",
	})
	require.NoError(t, err)

	_, err = uc.VerifyToken(result.Token)
	assert.ErrorIs(t, err, domain.ErrInvalidToken)
}

func TestVerifyTokenRejectsOtherSecret(t *testing.T) {
	uc, _ := newAuthFixture(24)
	other := NewAuthUseCase(repositorytest.NewFakeUserRepo(), strings.Repeat("x", 32), 24)

	_, err := uc.Register(context.Background(), registerRequest())
	require.NoError(t, err)

	result, err := uc.Login(context.Background(), &LoginRequest{
		Email:    "alice@campus.edu",
		Password: "secret123",
	})
	require.NoError(t, err)

	_, err = other.VerifyToken(result.Token)
	assert.ErrorIs(t, err, domain.ErrInvalidToken)
}
