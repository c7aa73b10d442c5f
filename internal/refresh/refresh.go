package refresh

import (
	"context"
	"time"

	"golang.org/x/time/rate"
)

// Reloader runs catalog reloads on a single background worker. Requests
// arriving while a reload is pending, or faster than the rate limit
// allows, are dropped.
type Reloader struct {
	ch      chan struct{}
	limiter *rate.Limiter
	timeout time.Duration
	Do      func(ctx context.Context)
}

func New(minInterval time.Duration, do func(ctx context.Context)) *Reloader {
	if minInterval <= 0 {
		minInterval = 10 * time.Second
	}
	r := &Reloader{
		ch:      make(chan struct{}, 1),
		limiter: rate.NewLimiter(rate.Every(minInterval), 1),
		timeout: 30 * time.Second,
		Do:      do,
	}
	go r.worker()
	return r
}

// Enqueue requests a reload; false means it was rate-limited or one is
// already pending.
func (r *Reloader) Enqueue() bool {
	if !r.limiter.Allow() {
		return false
	}
	select {
	case r.ch <- struct{}{}:
		return true
	default:
		return false
	}
}

func (r *Reloader) worker() {
	for range r.ch {
		ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
		if r.Do != nil {
			r.Do(ctx)
		}
		cancel()
	}
}
