package domain

import "errors"

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailTaken         = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")

	ErrCannotSwipeSelf  = errors.New("cannot swipe yourself")
	ErrInvalidDirection = errors.New("invalid swipe direction")

	ErrMatchNotFound      = errors.New("match not found")
	ErrMatchAlreadyExists = errors.New("match already exists")
	ErrNotMatchMember     = errors.New("not a member of this match")

	ErrEmptyMessage = errors.New("message content is empty")
)
