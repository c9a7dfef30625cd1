package domain

import "time"

// MatchType distinguishes dating matches from platonic ones. A pair where
// either side swiped FRIEND collapses to a FRIEND match.
type MatchType string

const (
	MatchTypeDate   MatchType = "DATE"
	MatchTypeFriend MatchType = "FRIEND"
)

// Match is a confirmed mutual connection between two users. The pair is
// stored canonically with User1ID < User2ID so that the unique constraint
// on (user1_id, user2_id) covers both swipe orders.
type Match struct {
	ID          string    `json:"id" db:"id"`
	User1ID     string    `json:"user1_id" db:"user1_id"`
	User2ID     string    `json:"user2_id" db:"user2_id"`
	Type        MatchType `json:"type" db:"type"`
	Icebreakers []string  `json:"icebreakers" db:"icebreakers"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}

func (m *Match) HasUser(userID string) bool {
	return m.User1ID == userID || m.User2ID == userID
}

func (m *Match) OtherUserID(userID string) (string, bool) {
	if m.User1ID == userID {
		return m.User2ID, true
	}
	if m.User2ID == userID {
		return m.User1ID, true
	}
	return "", false
}

// CanonicalPair orders two user ids for storage in a Match row.
func CanonicalPair(a, b string) (string, string) {
	if a > b {
		return b, a
	}
	return a, b
}
