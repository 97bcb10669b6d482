package retry

import (
	"context"
	"errors"
	"testing"
	"time"

	"twitterosint/pkg/config"
	errs "twitterosint/pkg/errors"
	"twitterosint/pkg/logger"
)

func TestExponentialBackoff(t *testing.T) {
	backoff := &ExponentialBackoff{
		BaseDelay:    100 * time.Millisecond,
		MaxDelay:     1 * time.Second,
		Multiplier:   2.0,
		JitterFactor: 0.0,
	}

	tests := []struct {
		attempt  int
		expected time.Duration
	}{
		{0, 0},
		{1, 100 * time.Millisecond},
		{2, 200 * time.Millisecond},
		{3, 400 * time.Millisecond},
		{4, 800 * time.Millisecond},
		{5, 1 * time.Second},
		{6, 1 * time.Second},
	}

	for _, test := range tests {
		if delay := backoff.NextDelay(test.attempt); delay != test.expected {
			t.Errorf("attempt %d: expected %v, got %v", test.attempt, test.expected, delay)
		}
	}
}

func TestExponentialBackoffWithJitter(t *testing.T) {
	backoff := &ExponentialBackoff{
		BaseDelay:    100 * time.Millisecond,
		MaxDelay:     1 * time.Second,
		Multiplier:   2.0,
		JitterFactor: 0.3,
	}

	delays := make(map[time.Duration]bool)
	for i := 0; i < 10; i++ {
		delay := backoff.NextDelay(2)
		if delay < 140*time.Millisecond || delay > 260*time.Millisecond {
			t.Fatalf("delay %v outside jitter bounds", delay)
		}
		delays[delay] = true
	}

	if len(delays) < 2 {
		t.Error("expected multiple different delays with jitter")
	}
}

func TestDefaultRetryIf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"network", errs.New(errs.KindNetwork, 0, "connection refused"), true},
		{"server", errs.New(errs.KindServerError, 503, "Service Unavailable"), true},
		{"rate limit", errs.New(errs.KindRateLimit, 429, "Rate limit exceeded"), false},
		{"not found", errs.New(errs.KindNotFound, 404, "User not found."), false},
		{"plain error", errors.New("boom"), false},
		{"cancelled", context.Canceled, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DefaultRetryIf(tt.err); got != tt.want {
				t.Errorf("DefaultRetryIf() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRetryWithSuccess(t *testing.T) {
	attempts := 0
	op := func(ctx context.Context) error {
		attempts++
		if attempts < 3 {
			return errs.New(errs.KindServerError, 502, "Bad Gateway")
		}
		return nil
	}

	cfg := &Config{
		MaxAttempts: 5,
		Backoff:     &ConstantBackoff{Delay: time.Millisecond},
	}

	if err := Do(context.Background(), op, cfg); err != nil {
		t.Errorf("expected success after retries, got error: %v", err)
	}
	if attempts != 3 {
		t.Errorf("expected 3 attempts, got %d", attempts)
	}
}

func TestRetryReturnsLastErrorUnwrapped(t *testing.T) {
	attempts := 0
	serverErr := errs.New(errs.KindServerError, 500, "Internal Server Error")
	op := func(ctx context.Context) error {
		attempts++
		return serverErr
	}

	log := logger.NewTestLogger()
	cfg := &Config{
		MaxAttempts: 3,
		Backoff:     &ConstantBackoff{Delay: time.Millisecond},
		Logger:      log,
	}

	err := Do(context.Background(), op, cfg)
	if err != serverErr {
		t.Errorf("expected the original error, got: %v", err)
	}
	if attempts != 3 {
		t.Errorf("expected 3 attempts, got %d", attempts)
	}
	if len(log.GetMessagesByLevel("WARN")) != 2 {
		t.Errorf("expected 2 retry warnings, got %d", len(log.GetMessagesByLevel("WARN")))
	}
}

func TestSingleAttemptDoesNotRetry(t *testing.T) {
	attempts := 0
	op := func(ctx context.Context) error {
		attempts++
		return errs.New(errs.KindNetwork, 0, "connection reset")
	}

	if err := Do(context.Background(), op, DefaultConfig()); err == nil {
		t.Error("expected error")
	}
	if attempts != 1 {
		t.Errorf("expected 1 attempt, got %d", attempts)
	}
}

func TestRetryWithNonRetryableError(t *testing.T) {
	attempts := 0
	authError := errs.New(errs.KindAuth, 401, "Invalid or expired token.")

	op := func(ctx context.Context) error {
		attempts++
		return authError
	}

	cfg := &Config{
		MaxAttempts: 5,
		Backoff:     &ConstantBackoff{Delay: time.Millisecond},
	}

	if err := Do(context.Background(), op, cfg); err != authError {
		t.Errorf("expected auth error, got: %v", err)
	}
	if attempts != 1 {
		t.Errorf("expected 1 attempt, got %d", attempts)
	}
}

func TestRetryWithContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	attempts := 0

	op := func(ctx context.Context) error {
		attempts++
		if attempts == 2 {
			cancel()
		}
		return errs.New(errs.KindNetwork, 0, "timeout")
	}

	cfg := &Config{
		MaxAttempts: 5,
		Backoff:     &ConstantBackoff{Delay: 50 * time.Millisecond},
	}

	if err := Do(ctx, op, cfg); err == nil {
		t.Error("expected error when context cancelled")
	}
	if attempts != 2 {
		t.Errorf("expected 2 attempts before cancellation, got %d", attempts)
	}
}

func TestOnRetryCallback(t *testing.T) {
	var seen []int
	cfg := &Config{
		MaxAttempts: 3,
		Backoff:     &ConstantBackoff{Delay: time.Millisecond},
		OnRetry: func(attempt int, err error, delay time.Duration) {
			seen = append(seen, attempt)
		},
	}

	_ = Do(context.Background(), func(ctx context.Context) error {
		return errs.New(errs.KindServerError, 503, "Service Unavailable")
	}, cfg)

	if len(seen) != 2 || seen[0] != 1 || seen[1] != 2 {
		t.Errorf("unexpected OnRetry attempts: %v", seen)
	}
}

func TestDoWithResult(t *testing.T) {
	attempts := 0
	op := func(ctx context.Context) (string, error) {
		attempts++
		if attempts < 2 {
			return "", errs.New(errs.KindNetwork, 0, "connection refused")
		}
		return "success", nil
	}

	cfg := &Config{
		MaxAttempts: 3,
		Backoff:     &ConstantBackoff{Delay: time.Millisecond},
	}

	result, err := DoWithResult(context.Background(), op, cfg)
	if err != nil {
		t.Errorf("expected success, got error: %v", err)
	}
	if result != "success" {
		t.Errorf("expected 'success', got '%s'", result)
	}
	if attempts != 2 {
		t.Errorf("expected 2 attempts, got %d", attempts)
	}
}

func TestFromConfig(t *testing.T) {
	cfg := FromConfig(config.RetryConfig{
		MaxAttempts:  4,
		InitialDelay: 2 * time.Second,
		MaxDelay:     10 * time.Second,
		Multiplier:   3,
	}, nil)

	if cfg.MaxAttempts != 4 {
		t.Errorf("MaxAttempts = %d, want 4", cfg.MaxAttempts)
	}
	eb, ok := cfg.Backoff.(*ExponentialBackoff)
	if !ok {
		t.Fatalf("expected ExponentialBackoff, got %T", cfg.Backoff)
	}
	if eb.BaseDelay != 2*time.Second || eb.MaxDelay != 10*time.Second || eb.Multiplier != 3 {
		t.Errorf("unexpected backoff: %+v", eb)
	}
	if cfg.Logger == nil {
		t.Error("expected a default logger")
	}
}

func TestWait(t *testing.T) {
	if err := Wait(context.Background(), time.Millisecond); err != nil {
		t.Errorf("Wait() error = %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := Wait(ctx, time.Hour); !errors.Is(err, context.Canceled) {
		t.Errorf("Wait() error = %v, want context.Canceled", err)
	}
}
