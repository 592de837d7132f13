package retry

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/piresc/chatsync/internal/pkg/logger"
)

// RetryableFunc is one attempt of an idempotent call
type RetryableFunc func(ctx context.Context) error

// Config holds retry configuration
type Config struct {
	MaxRetries    int              // attempts after the first one
	BaseDelay     time.Duration    // wait before the first retry
	MaxDelay      time.Duration    // cap on a single wait
	Multiplier    float64          // growth factor of the wait
	Jitter        bool             // add up to 10% to every wait
	RetryableFunc func(error) bool // nil retries every error
}

// DefaultConfig returns the configuration used for snapshot fetches
func DefaultConfig() Config {
	return Config{
		MaxRetries: 3,
		BaseDelay:  100 * time.Millisecond,
		MaxDelay:   5 * time.Second,
		Multiplier: 2.0,
		Jitter:     true,
	}
}

// Retrier repeats idempotent calls with exponential backoff. Message
// sends and other mutations never go through it.
type Retrier struct {
	config Config
	logger *logger.ZapLogger
}

// New creates a retrier
func New(config Config, l *logger.ZapLogger) *Retrier {
	if config.RetryableFunc == nil {
		config.RetryableFunc = func(error) bool { return true }
	}
	if l == nil {
		l = logger.NewNopLogger()
	}
	return &Retrier{config: config, logger: l}
}

// Execute runs fn for op until it succeeds, fails with an error that is
// not retryable, runs out of attempts or ctx is done.
func (r *Retrier) Execute(ctx context.Context, op string, fn RetryableFunc) error {
	attempts := r.config.MaxRetries + 1
	var err error

	for attempt := 1; ; attempt++ {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}

		if err = fn(ctx); err == nil {
			if attempt > 1 {
				r.logger.Info("Snapshot fetch recovered",
					logger.String("op", op),
					logger.Int("attempt", attempt))
			}
			return nil
		}
		if !r.config.RetryableFunc(err) {
			return err
		}
		if attempt == attempts {
			break
		}

		wait := r.backoff(attempt)
		r.logger.Debug("Snapshot fetch failed, backing off",
			logger.String("op", op),
			logger.Int("attempt", attempt),
			logger.Duration("wait", wait),
			logger.Err(err))

		timer := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
	}

	r.logger.Warn("Snapshot fetch gave up",
		logger.String("op", op),
		logger.Int("attempts", attempts),
		logger.Err(err))
	return fmt.Errorf("%s: gave up after %d attempts: %w", op, attempts, err)
}

// backoff is the wait after the given failed attempt, counted from 1
func (r *Retrier) backoff(attempt int) time.Duration {
	wait := float64(r.config.BaseDelay) * math.Pow(r.config.Multiplier, float64(attempt-1))
	wait = min(wait, float64(r.config.MaxDelay))
	if r.config.Jitter {
		wait += wait * 0.1 * rand.Float64()
	}
	return time.Duration(wait)
}
