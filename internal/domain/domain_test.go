package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalPairOrdersIDs(t *testing.T) {
	a, b := CanonicalPair("zoe", "adam")
	assert.Equal(t, "adam", a)
	assert.Equal(t, "zoe", b)

	a, b = CanonicalPair("adam", "zoe")
	assert.Equal(t, "adam", a)
	assert.Equal(t, "zoe", b)
}

func TestWantsGender(t *testing.T) {
	cases := []struct {
		interest Interest
		gender   Gender
		want     bool
	}{
		{InterestBoth, GenderMale, true},
		{InterestBoth, GenderOther, true},
		{InterestMale, GenderMale, true},
		{InterestMale, GenderFemale, false},
		{InterestFemale, GenderFemale, true},
		{InterestFemale, GenderOther, false},
		{InterestFriends, GenderMale, false},
		{InterestFriends, GenderFemale, false},
	}

	for _, tc := range cases {
		u := &User{InterestedIn: tc.interest}
		assert.Equal(t, tc.want, u.WantsGender(tc.gender), "%s wants %s", tc.interest, tc.gender)
	}
}

func TestDirectionPredicates(t *testing.T) {
	assert.True(t, DirectionRight.IsPositive())
	assert.True(t, DirectionFriend.IsPositive())
	assert.False(t, DirectionLeft.IsPositive())

	assert.True(t, DirectionLeft.Valid())
	assert.False(t, Direction("UP").Valid())
	assert.False(t, Direction("").Valid())
}

func TestMatchOtherUserID(t *testing.T) {
	m := &Match{User1ID: "adam", User2ID: "zoe"}

	other, ok := m.OtherUserID("adam")
	assert.True(t, ok)
	assert.Equal(t, "zoe", other)

	other, ok = m.OtherUserID("zoe")
	assert.True(t, ok)
	assert.Equal(t, "adam", other)

	_, ok = m.OtherUserID("stranger")
	assert.False(t, ok)
}
