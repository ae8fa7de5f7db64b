package util

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"
)

func TestNewValidRateLimiter(t *testing.T) {
	cases := []struct {
		name     string
		r        rate.Limit
		b        int
		hasError bool
	}{
		{"valid limiter", 0.1, 1, false},
		{"zero rate", 0, 1, true},
		{"zero burst", 0.1, 0, true},
		{"both zero", 0, 0, true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			limiter, err := NewValidLimiter(c.r, c.b)
			assert.Equal(t, c.hasError, err != nil)
			if !c.hasError {
				assert.NotNil(t, limiter)
			}
		})
	}
}

func TestParseRateLimitSyntax(t *testing.T) {
	cases := []struct {
		desc  string
		limit rate.Limit
		burst int
	}{
		{"3+1/1s", rate.Every(time.Second), 3},
		{"20/1m", rate.Every(3 * time.Second), 1},
		{"5s", rate.Every(5 * time.Second), 1},
	}

	for _, c := range cases {
		t.Run(c.desc, func(t *testing.T) {
			limiter, err := ParseRateLimitSyntax(c.desc)
			require.NoError(t, err)
			assert.InDelta(t, float64(c.limit), float64(limiter.Limit()), 1e-9)
			assert.Equal(t, c.burst, limiter.Burst())
		})
	}

	for _, desc := range []string{"", "abc", "0/1s", "x+1/1s", "1/-1s", "0+1/1s"} {
		_, err := ParseRateLimitSyntax(desc)
		assert.Error(t, err, desc)
	}
}
