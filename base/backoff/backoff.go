package backoff

import (
	"context"
	"time"
)

// Backoff sleeps for exponentially growing periods, capped at limit.
type Backoff struct {
	LastDuration time.Duration
	NextDuration time.Duration
	start        time.Duration
	limit        time.Duration
	count        int
}

func NewExponential(start time.Duration, limit time.Duration) *Backoff {
	b := &Backoff{start: start, limit: limit}
	b.Reset()
	return b
}

func (b *Backoff) Reset() {
	b.count = 0
	b.LastDuration = 0
	b.NextDuration = b.next()
}

// Backoff waits NextDuration or until ctx is done, whichever comes first.
func (b *Backoff) Backoff(ctx context.Context) error {
	t := time.NewTimer(b.NextDuration)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
	}
	b.count++
	b.LastDuration = b.NextDuration
	b.NextDuration = b.next()
	return nil
}

func (b *Backoff) next() time.Duration {
	d := b.start << uint(b.count)
	if d <= 0 || (b.limit > 0 && d > b.limit) {
		return b.limit
	}
	return d
}
