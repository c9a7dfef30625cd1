package profile

import (
	"context"

	"github.com/campusmatch/campusmatch-backend/internal/domain"
	"github.com/campusmatch/campusmatch-backend/internal/repository"
)

type ProfileUseCase struct {
	userRepo repository.UserRepository
}

func NewProfileUseCase(userRepo repository.UserRepository) *ProfileUseCase {
	return &ProfileUseCase{userRepo: userRepo}
}

// ProfileResponse is the owner's view of their profile. The credential
// hash is never projected.
type ProfileResponse struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Email        string          `json:"email"`
	Age          int             `json:"age"`
	Bio          *string         `json:"bio"`
	Image        *string         `json:"image"`
	Gender       domain.Gender   `json:"gender"`
	InterestedIn domain.Interest `json:"interestedIn"`
	Instagram    *string         `json:"instagram"`
}

// UpdateProfileRequest is the fixed set of fields a user may change.
// Absent fields are left untouched.
type UpdateProfileRequest struct {
	Bio          *string          `json:"bio"`
	Image        *string          `json:"image"`
	InterestedIn *domain.Interest `json:"interestedIn" binding:"omitempty,oneof=MALE FEMALE BOTH FRIENDS"`
	Instagram    *string          `json:"instagram"`
}

func (uc *ProfileUseCase) GetProfile(ctx context.Context, userID string) (*ProfileResponse, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return project(user), nil
}

// UpdateProfile applies the allowlisted fields verbatim and persists.
func (uc *ProfileUseCase) UpdateProfile(ctx context.Context, userID string, req *UpdateProfileRequest) (*ProfileResponse, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.Bio != nil {
		user.Bio = req.Bio
	}
	if req.Image != nil {
		user.Image = req.Image
	}
	if req.InterestedIn != nil {
		user.InterestedIn = *req.InterestedIn
	}
	if req.Instagram != nil {
		user.Instagram = req.Instagram
	}

	if err := uc.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	return project(user), nil
}

func project(user *domain.User) *ProfileResponse {
	return &ProfileResponse{
		ID:           user.ID,
		Name:         user.Name,
		Email:        user.Email,
		Age:          user.Age,
		Bio:          user.Bio,
		Image:        user.Image,
		Gender:       user.Gender,
		InterestedIn: user.InterestedIn,
		Instagram:    user.Instagram,
	}
}
