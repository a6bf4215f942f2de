package common

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/talsdata/caseflow/internal/service"
)

func fastRetryOptions() service.RetryOptions {
	return service.RetryOptions{
		MaxAttempts:  3,
		InitialDelay: time.Millisecond,
		MaxDelay:     5 * time.Millisecond,
		Multiplier:   2.0,
	}
}

func TestWithRetrySucceedsFirstTry(t *testing.T) {
	calls := 0
	err := WithRetry(context.Background(), func() error {
		calls++
		return nil
	}, fastRetryOptions())
	if err != nil {
		t.Fatalf("WithRetry failed: %v", err)
	}
	if calls != 1 {
		t.Errorf("calls = %d, want 1", calls)
	}
}

func TestWithRetryRecoversAfterFailures(t *testing.T) {
	calls := 0
	err := WithRetry(context.Background(), func() error {
		calls++
		if calls < 3 {
			return errors.New("transient")
		}
		return nil
	}, fastRetryOptions())
	if err != nil {
		t.Fatalf("WithRetry failed: %v", err)
	}
	if calls != 3 {
		t.Errorf("calls = %d, want 3", calls)
	}
}

func TestWithRetryExhaustsAttempts(t *testing.T) {
	calls := 0
	err := WithRetry(context.Background(), func() error {
		calls++
		return errors.New("permanent")
	}, fastRetryOptions())
	if !errors.Is(err, ErrMaxRetries) {
		t.Fatalf("error = %v, want ErrMaxRetries", err)
	}
	if calls != 3 {
		t.Errorf("calls = %d, want 3", calls)
	}
}

func TestWithRetryHonorsCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := WithRetry(ctx, func() error {
		return errors.New("transient")
	}, fastRetryOptions())
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("error = %v, want context.Canceled", err)
	}
}

func TestUserErrorUnwraps(t *testing.T) {
	inner := errors.New("bad header")
	err := NewUserError("file looks wrong", inner)

	var userErr *UserError
	if !errors.As(err, &userErr) {
		t.Fatal("error is not a UserError")
	}
	if userErr.UserMessage != "file looks wrong" {
		t.Errorf("UserMessage = %q", userErr.UserMessage)
	}
	if !errors.Is(err, inner) {
		t.Error("UserError does not unwrap to the inner error")
	}
}
