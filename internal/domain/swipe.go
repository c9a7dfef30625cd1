package domain

import "time"

// Direction of a swipe decision.
type Direction string

const (
	DirectionLeft   Direction = "LEFT"
	DirectionRight  Direction = "RIGHT"
	DirectionFriend Direction = "FRIEND"
)

// IsPositive reports whether the direction can participate in a match.
func (d Direction) IsPositive() bool {
	return d == DirectionRight || d == DirectionFriend
}

func (d Direction) Valid() bool {
	switch d {
	case DirectionLeft, DirectionRight, DirectionFriend:
		return true
	}
	return false
}

// Swipe is one user's directional decision about another. A single row
// exists per (from, to) pair; re-swiping overwrites the direction.
type Swipe struct {
	FromID    string    `json:"from_id" db:"from_id"`
	ToID      string    `json:"to_id" db:"to_id"`
	Direction Direction `json:"direction" db:"direction"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}
