package util

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"golang.org/x/time/rate"
)

func NewValidLimiter(r rate.Limit, b int) (*rate.Limiter, error) {
	if b <= 0 || r <= 0 {
		return nil, fmt.Errorf("bad rate limit config, insufficient tokens (rate=%f, b=%d)", r, b)
	}
	return rate.NewLimiter(r, b), nil
}

// ParseRateLimitSyntax parses the rate limit syntax into a rate.Limiter
// sample inputs:
//
//	3+1/1s (3 initial tokens, 1 token per second)
//	20/1m (20 tokens per minute)
//	5s (1 token per 5 seconds)
func ParseRateLimitSyntax(desc string) (*rate.Limiter, error) {
	var b = 1
	var r = 1.0
	var durStr = strings.TrimSpace(desc)

	if i := strings.Index(durStr, "/"); i >= 0 {
		head := durStr[:i]
		durStr = durStr[i+1:]

		if j := strings.Index(head, "+"); j >= 0 {
			burst, err := strconv.Atoi(head[:j])
			if err != nil {
				return nil, fmt.Errorf("invalid rate limit burst %q: %w", desc, err)
			}
			b = burst
			head = head[j+1:]
		}

		n, err := strconv.ParseFloat(head, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid rate limit tokens %q: %w", desc, err)
		}
		r = n
	}

	duration, err := time.ParseDuration(durStr)
	if err != nil {
		return nil, fmt.Errorf("invalid rate limit syntax %q, expecting burst+n/duration: %w", desc, err)
	}

	if r <= 0 || duration <= 0 {
		return nil, fmt.Errorf("invalid rate limit %q, tokens and duration must be positive", desc)
	}

	return NewValidLimiter(rate.Every(time.Duration(float64(duration)/r)), b)
}
