package domain

import "time"

// Gender of a registered user.
type Gender string

const (
	GenderMale   Gender = "MALE"
	GenderFemale Gender = "FEMALE"
	GenderOther  Gender = "OTHER"
)

// Interest is who the user wants to see in their feed. FRIENDS is a
// separate pool from the dating preferences.
type Interest string

const (
	InterestMale    Interest = "MALE"
	InterestFemale  Interest = "FEMALE"
	InterestBoth    Interest = "BOTH"
	InterestFriends Interest = "FRIENDS"
)

type User struct {
	ID           string    `json:"id" db:"id"`
	Email        string    `json:"email" db:"email"`
	PasswordHash string    `json:"-" db:"password_hash"`
	Name         string    `json:"name" db:"name"`
	Age          int       `json:"age" db:"age"`
	Gender       Gender    `json:"gender" db:"gender"`
	InterestedIn Interest  `json:"interestedIn" db:"interested_in"`
	Bio          *string   `json:"bio" db:"bio"`
	Image        *string   `json:"image" db:"image"`
	Instagram    *string   `json:"instagram" db:"instagram"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}

// WantsGender reports whether this user's dating preference admits the
// given gender. FRIENDS preference admits nobody in the dating pool.
func (u *User) WantsGender(g Gender) bool {
	switch u.InterestedIn {
	case InterestBoth:
		return true
	case InterestMale:
		return g == GenderMale
	case InterestFemale:
		return g == GenderFemale
	default:
		return false
	}
}
