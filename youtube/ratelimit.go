package youtube

import (
	"context"
	"fmt"
	"log"
	"time"

	"golang.org/x/time/rate"
)

// Default pacing values aligned with YouTube Data API quota behavior.
const (
	// DefaultRequestInterval is the minimum spacing between API calls.
	DefaultRequestInterval = 100 * time.Millisecond
	// DefaultRateCooldown is how long to wait after a quota or rate
	// limit response before retrying the call.
	DefaultRateCooldown = 60 * time.Second
)

// Pacer serializes outbound API calls. Every call waits out the minimum
// inter-request interval; a call that fails with a quota or rate limit
// signal sleeps a fixed cooldown and runs again. MaxRetries bounds those
// reruns per call; 0 retries until the quota recovers.
type Pacer struct {
	limiter    *rate.Limiter
	cooldown   time.Duration
	maxRetries int
}

// NewPacer creates a pacer with the given spacing and cooldown.
// Non-positive values fall back to the defaults.
func NewPacer(interval, cooldown time.Duration, maxRetries int) *Pacer {
	if interval <= 0 {
		interval = DefaultRequestInterval
	}
	if cooldown <= 0 {
		cooldown = DefaultRateCooldown
	}
	return &Pacer{
		limiter:    rate.NewLimiter(rate.Every(interval), 1),
		cooldown:   cooldown,
		maxRetries: maxRetries,
	}
}

// Call invokes fn after the spacing wait. Rate limit failures are retried
// after the cooldown; any other error is returned to the caller as-is.
// Cancelling ctx aborts both waits.
func (p *Pacer) Call(ctx context.Context, fn func() error) error {
	for attempt := 0; ; attempt++ {
		if err := p.limiter.Wait(ctx); err != nil {
			return err
		}

		err := fn()
		if err == nil || !isRateLimited(err) {
			return err
		}

		if p.maxRetries > 0 && attempt >= p.maxRetries {
			return fmt.Errorf("youtube: rate limit retries exhausted after %d attempts: %w", attempt+1, err)
		}

		log.Printf("youtube: rate limit exceeded, waiting %v", p.cooldown)
		select {
		case <-time.After(p.cooldown):
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}
