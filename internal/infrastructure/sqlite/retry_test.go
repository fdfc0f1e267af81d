package sqlite

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestDoWithRetry_RetryableEventuallySucceeds(t *testing.T) {
	policy := RetryPolicy{MaxAttempts: 3, BaseBackoff: time.Millisecond, MaxBackoff: 5 * time.Millisecond}

	calls := 0
	err := doWithRetry(context.Background(), policy, func() error {
		calls++
		if calls < 3 {
			return errors.New("database is locked")
		}
		return nil
	})
	if err != nil {
		t.Fatalf("doWithRetry returned error: %v", err)
	}
	if calls != 3 {
		t.Errorf("expected 3 attempts, got %d", calls)
	}
}

func TestDoWithRetry_NonRetryableReturnsImmediately(t *testing.T) {
	policy := RetryPolicy{MaxAttempts: 3, BaseBackoff: time.Millisecond, MaxBackoff: 5 * time.Millisecond}

	wantErr := errors.New("syntax error")
	calls := 0
	err := doWithRetry(context.Background(), policy, func() error {
		calls++
		return wantErr
	})
	if !errors.Is(err, wantErr) {
		t.Fatalf("expected %v, got %v", wantErr, err)
	}
	if calls != 1 {
		t.Errorf("expected 1 attempt, got %d", calls)
	}
}

func TestDoWithRetry_ContextCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := doWithRetry(ctx, DefaultReadRetry, func() error {
		t.Fatal("fn must not run after cancel")
		return nil
	})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestBackoff_CapsAtMax(t *testing.T) {
	base := 50 * time.Millisecond
	max := 200 * time.Millisecond

	cases := []struct {
		attempt int
		want    time.Duration
	}{
		{1, 50 * time.Millisecond},
		{2, 100 * time.Millisecond},
		{3, 200 * time.Millisecond},
		{4, 200 * time.Millisecond},
	}
	for _, c := range cases {
		if got := backoff(base, max, c.attempt); got != c.want {
			t.Errorf("backoff(attempt=%d): expected %v, got %v", c.attempt, c.want, got)
		}
	}
}
