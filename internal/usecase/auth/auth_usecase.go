package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/campusmatch/campusmatch-backend/internal/domain"
	"github.com/campusmatch/campusmatch-backend/internal/repository"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// AuthUseCase issues and verifies session tokens. The signing secret is
// injected at construction; verification is stateless, every request is
// checked independently.
type AuthUseCase struct {
	userRepo    repository.UserRepository
	jwtSecret   []byte
	tokenExpiry time.Duration
}

func NewAuthUseCase(userRepo repository.UserRepository, jwtSecret string, expiryHours int) *AuthUseCase {
	return &AuthUseCase{
		userRepo:    userRepo,
		jwtSecret:   []byte(jwtSecret),
		tokenExpiry: time.Duration(expiryHours) * time.Hour,
	}
}

// RegisterRequest carries the registration form. Validation mirrors the
// client-side rules so the API holds on its own.
type RegisterRequest struct {
	Email        string          `json:"email" binding:"required,email"`
	Password     string          `json:"password" binding:"required,min=6"`
	Name         string          `json:"name" binding:"required,min=2"`
	Age          int             `json:"age" binding:"required,gte=18"`
	Gender       domain.Gender   `json:"gender" binding:"required,oneof=MALE FEMALE OTHER"`
	InterestedIn domain.Interest `json:"interestedIn" binding:"required,oneof=MALE FEMALE BOTH FRIENDS"`
	Image        string          `json:"image" binding:"required"`
	Instagram    string          `json:"instagram" binding:"required,instagram"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResult is what a successful login or registration hands back to
// the handler, which turns the token into a cookie.
type LoginResult struct {
	Token     string
	ExpiresAt time.Time
	User      *domain.User
}

// Register creates a new identity. Email uniqueness is checked up front
// and backed by the unique constraint on users.email.
func (uc *AuthUseCase) Register(ctx context.Context, req *RegisterRequest) (*domain.User, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	if _, err := uc.userRepo.GetByEmail(ctx, email); err == nil {
		return nil, domain.ErrEmailTaken
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &domain.User{
		Email:        email,
		PasswordHash: string(hash),
		Name:         strings.TrimSpace(req.Name),
		Age:          req.Age,
		Gender:       req.Gender,
		InterestedIn: req.InterestedIn,
		Image:        &req.Image,
		Instagram:    &req.Instagram,
	}

	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// Login verifies credentials and issues a signed session token. Unknown
// email and wrong password are indistinguishable to the caller.
func (uc *AuthUseCase) Login(ctx context.Context, req *LoginRequest) (*LoginResult, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	user, err := uc.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
		return nil, domain.ErrInvalidCredentials
	}

	token, expiresAt, err := uc.signToken(user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to sign token: %w", err)
	}

	return &LoginResult{
		Token:     token,
		ExpiresAt: expiresAt,
		User:      user,
	}, nil
}

func (uc *AuthUseCase) signToken(userID string) (string, time.Time, error) {
	expiresAt := time.Now().Add(uc.tokenExpiry)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": userID,
		"exp":     expiresAt.Unix(),
		"iat":     time.Now().Unix(),
	})

	tokenString, err := token.SignedString(uc.jwtSecret)
	if err != nil {
		return "", time.Time{}, err
	}

	return tokenString, expiresAt, nil
}

// VerifyToken checks signature and expiration and returns the embedded
// user id. No server-side session state is consulted.
func (uc *AuthUseCase) VerifyToken(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, domain.ErrInvalidToken
		}
		return uc.jwtSecret, nil
	})

	if err != nil || !token.Valid {
		return "", domain.ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", domain.ErrInvalidToken
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return "", domain.ErrInvalidToken
	}

	return userID, nil
}
