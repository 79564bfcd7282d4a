package jobs

import (
	"context"
	"math/rand"
	"time"

	"golang.org/x/time/rate"
)

// Pacer controls the delay between consecutive result-page requests. The
// job source throttles aggressively; human-like pacing keeps the scraper
// under its radar.
type Pacer interface {
	Wait(ctx context.Context) error
}

// jitterPacer combines a rate.Limiter floor with a uniform random sleep in
// [min, max). The limiter guarantees a minimum spacing even when jitter
// rolls low.
type jitterPacer struct {
	limiter *rate.Limiter
	min     time.Duration
	max     time.Duration
}

// NewPacer builds the default pacer for page delays in [min, max).
func NewPacer(min, max time.Duration) Pacer {
	if min <= 0 {
		min = 2 * time.Second
	}
	if max <= min {
		max = min + 3*time.Second
	}
	return &jitterPacer{
		limiter: rate.NewLimiter(rate.Every(min), 1),
		min:     min,
		max:     max,
	}
}

func (p *jitterPacer) Wait(ctx context.Context) error {
	if err := p.limiter.Wait(ctx); err != nil {
		return err
	}
	jitter := time.Duration(rand.Int63n(int64(p.max - p.min)))
	select {
	case <-time.After(jitter):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// NopPacer waits for nothing. For tests.
type NopPacer struct{}

func (NopPacer) Wait(context.Context) error { return nil }
