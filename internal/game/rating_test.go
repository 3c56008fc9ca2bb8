package game

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRatingFor(t *testing.T) {
	cases := []struct {
		attempts int
		tier     string
	}{
		{0, TierIncredible},
		{1, TierIncredible},
		{5, TierIncredible},
		{6, TierExcellent},
		{8, TierExcellent},
		{9, TierGood},
		{12, TierGood},
		{13, TierKeepPracticing},
		{40, TierKeepPracticing},
	}
	for _, c := range cases {
		r := RatingFor(c.attempts)
		assert.Equal(t, c.tier, r.Tier, "attempts=%d", c.attempts)
		assert.NotEmpty(t, r.Message)
		assert.NotEmpty(t, r.Emoji)
	}
}

func TestFormatElapsed(t *testing.T) {
	assert.Equal(t, "0s", FormatElapsed(0))
	assert.Equal(t, "0s", FormatElapsed(-time.Second))
	assert.Equal(t, "59s", FormatElapsed(59*time.Second+900*time.Millisecond))
	assert.Equal(t, "1m 0s", FormatElapsed(time.Minute))
	assert.Equal(t, "12m 5s", FormatElapsed(12*time.Minute+5*time.Second))
}
