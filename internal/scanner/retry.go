package scanner

import (
	"context"
	"errors"
	"time"

	"reserveScope/internal/batch"
)

func withRetry(ctx context.Context, maxRetries int, baseDelay time.Duration, fn func(context.Context) error) error {
	if maxRetries < 0 {
		maxRetries = 0
	}
	if baseDelay <= 0 {
		baseDelay = 100 * time.Millisecond
	}

	delay := baseDelay
	for attempt := 0; ; attempt++ {
		err := fn(ctx)
		if err == nil {
			return nil
		}
		if !retryable(err) || attempt >= maxRetries {
			return err
		}

		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}

		delay *= 2
	}
}

// retryable reports whether another attempt can change the outcome. Transport
// and staging failures are transient; a schema mismatch is not.
func retryable(err error) bool {
	var decodeErr *batch.DecodeError
	return !errors.As(err, &decodeErr)
}
