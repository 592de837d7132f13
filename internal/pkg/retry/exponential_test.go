package retry

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/piresc/chatsync/internal/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() Config {
	cfg := DefaultConfig()
	cfg.BaseDelay = time.Millisecond
	cfg.MaxDelay = 2 * time.Millisecond
	cfg.Jitter = false
	return cfg
}

func TestRetrier_Execute_SucceedsAfterFailures(t *testing.T) {
	r := New(testConfig(), logger.NewNopLogger())

	calls := 0
	err := r.Execute(context.Background(), "GET /chats", func(ctx context.Context) error {
		calls++
		if calls < 3 {
			return errors.New("temporary failure")
		}
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 3, calls)
}

func TestRetrier_Execute_StopsOnNonRetryable(t *testing.T) {
	cfg := testConfig()
	permanent := errors.New("bad request")
	cfg.RetryableFunc = func(err error) bool { return !errors.Is(err, permanent) }
	r := New(cfg, logger.NewNopLogger())

	calls := 0
	err := r.Execute(context.Background(), "GET /chats", func(ctx context.Context) error {
		calls++
		return permanent
	})

	assert.ErrorIs(t, err, permanent)
	assert.Equal(t, 1, calls)
}

func TestRetrier_Execute_ExhaustsAttempts(t *testing.T) {
	r := New(testConfig(), logger.NewNopLogger())

	calls := 0
	boom := errors.New("boom")
	err := r.Execute(context.Background(), "GET /chats", func(ctx context.Context) error {
		calls++
		return boom
	})

	assert.ErrorIs(t, err, boom)
	assert.EqualError(t, err, "GET /chats: gave up after 4 attempts: boom")
	assert.Equal(t, 4, calls)
}

func TestRetrier_Execute_ContextCancelled(t *testing.T) {
	r := New(testConfig(), logger.NewNopLogger())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := r.Execute(ctx, "GET /chats", func(ctx context.Context) error {
		t.Fatal("function must not run with a cancelled context")
		return nil
	})

	assert.ErrorIs(t, err, context.Canceled)
}

func TestRetrier_Backoff_Capped(t *testing.T) {
	cfg := testConfig()
	cfg.BaseDelay = time.Second
	cfg.MaxDelay = 3 * time.Second
	r := New(cfg, logger.NewNopLogger())

	assert.Equal(t, time.Second, r.backoff(1))
	assert.Equal(t, 2*time.Second, r.backoff(2))
	assert.Equal(t, 3*time.Second, r.backoff(6))
}

func TestRetrier_Backoff_Jitter(t *testing.T) {
	cfg := testConfig()
	cfg.BaseDelay = time.Second
	cfg.MaxDelay = time.Minute
	cfg.Jitter = true
	r := New(cfg, nil)

	for i := 0; i < 20; i++ {
		wait := r.backoff(2)
		assert.GreaterOrEqual(t, wait, 2*time.Second)
		assert.LessOrEqual(t, wait, 2200*time.Millisecond)
	}
}
