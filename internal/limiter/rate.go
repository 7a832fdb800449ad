// Package limiter paces workload drivers so container operations arrive
// at a bounded rate instead of one unthrottled burst.
package limiter

import (
	"context"
	"time"

	"golang.org/x/time/rate"

	gerrors "github.com/blong14/gmem/internal/errors"
)

type RateLimiter interface {
	Wait(context.Context) error
}

// implements RateLimiter
type limiter struct {
	wrapped *rate.Limiter
}

// New returns a limiter admitting ops operations per interval, with a
// burst allowance of burst tokens.
func New(ops int, interval time.Duration, burst int) RateLimiter {
	return &limiter{
		wrapped: rate.NewLimiter(rate.Every(interval/time.Duration(ops)), burst),
	}
}

func (l *limiter) Wait(ctx context.Context) error {
	if err := l.wrapped.Wait(ctx); err != nil {
		return gerrors.NewGError(err)
	}
	return nil
}
