package database

import (
	"context"
	"time"
)

// Retrier re-runs idempotent storage calls that failed transiently
type Retrier struct {
	Attempts int
	Backoff  time.Duration
	// Transient decides whether an error is retried, IsTransient when nil
	Transient func(err error) bool
}

// DefaultRetrier allows three attempts with linear backoff
var DefaultRetrier = Retrier{Attempts: 3, Backoff: 50 * time.Millisecond}

// Do calls fn until it succeeds, fails permanently, runs out of attempts or ctx is done.
// Inside a transaction fn runs exactly once.
func (r Retrier) Do(ctx context.Context, fn func() error) error {
	transient := r.Transient
	if transient == nil {
		transient = IsTransient
	}

	attempts := r.Attempts
	if attempts < 1 || InTransaction(ctx) {
		attempts = 1
	}

	var err error
	for attempt := 1; attempt <= attempts; attempt++ {
		err = fn()
		if err == nil || !transient(err) || attempt == attempts {
			return err
		}

		select {
		case <-time.After(time.Duration(attempt) * r.Backoff):
		case <-ctx.Done():
			return err
		}
	}

	return err
}
