package scanner

import (
	"context"
	"errors"
	"testing"
	"time"

	"reserveScope/internal/batch"
)

func TestWithRetryRecoversTransient(t *testing.T) {
	attempts := 0
	err := withRetry(context.Background(), 3, time.Millisecond, func(context.Context) error {
		attempts++
		if attempts < 3 {
			return errors.New("transient")
		}
		return nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if attempts != 3 {
		t.Fatalf("attempt count mismatch: %d", attempts)
	}
}

func TestWithRetryStopsOnDecodeError(t *testing.T) {
	attempts := 0
	decodeErr := &batch.DecodeError{Op: "get_pool_data_batch", Err: errors.New("short buffer")}
	err := withRetry(context.Background(), 5, time.Millisecond, func(context.Context) error {
		attempts++
		return decodeErr
	})

	// A schema mismatch cannot succeed on retry.
	if !errors.Is(err, decodeErr) {
		t.Fatalf("expected decode error, got %v", err)
	}
	if attempts != 1 {
		t.Fatalf("decode error was retried %d times", attempts)
	}
}

func TestWithRetryExhausted(t *testing.T) {
	attempts := 0
	failure := errors.New("still broken")
	err := withRetry(context.Background(), 2, time.Millisecond, func(context.Context) error {
		attempts++
		return failure
	})
	if !errors.Is(err, failure) {
		t.Fatalf("expected final error, got %v", err)
	}
	if attempts != 3 {
		t.Fatalf("attempt count mismatch: %d", attempts)
	}
}
