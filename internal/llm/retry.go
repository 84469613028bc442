package llm

import (
	"context"
	"errors"
	"math"
	"math/rand/v2"
	"time"
)

// retrier re-issues failed requests with exponential backoff. Transient
// failures (rate limits, backend outages, network errors) are retried
// up to MaxAttempts; an unusable reply is retried exactly once, since a
// second identical failure means the prompt or schema is the problem.
type retrier struct {
	next Provider
	cfg  RetryConfig
}

// WithRetry wraps next in the retry middleware.
func WithRetry(next Provider, cfg RetryConfig) Provider {
	return &retrier{next: next, cfg: cfg}
}

func (r *retrier) ModelID() string { return r.next.ModelID() }

func (r *retrier) Generate(ctx context.Context, req Request) (*Reply, error) {
	attempts := max(r.cfg.MaxAttempts, 1)
	badReplies := 0
	var lastErr error

	for attempt := range attempts {
		reply, err := r.next.Generate(ctx, req)
		if err == nil {
			return reply, nil
		}
		lastErr = err

		switch verdict(err) {
		case giveUp:
			return nil, err
		case retryOnce:
			badReplies++
			if badReplies > 1 {
				return nil, err
			}
		}

		if attempt == attempts-1 {
			break
		}
		if werr := r.pause(ctx, attempt, err); werr != nil {
			return nil, werr
		}
	}
	return nil, lastErr
}

type retryVerdict int

const (
	retryAgain retryVerdict = iota
	retryOnce
	giveUp
)

func verdict(err error) retryVerdict {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return giveUp
	}
	var trunc *TruncatedError
	if errors.As(err, &trunc) {
		return giveUp
	}
	var bad *BadReplyError
	if errors.As(err, &bad) {
		return retryOnce
	}
	// Rate limits, outages, and anything else transport-shaped.
	return retryAgain
}

// pause sleeps for the backoff interval, honoring a server-supplied
// retry-after and the context deadline.
func (r *retrier) pause(ctx context.Context, attempt int, cause error) error {
	wait := r.wait(attempt, cause)
	t := time.NewTimer(wait)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

func (r *retrier) wait(attempt int, cause error) time.Duration {
	var rl *RateLimitError
	if errors.As(cause, &rl) && rl.RetryAfter > 0 {
		return rl.RetryAfter
	}

	wait := time.Duration(float64(r.cfg.InitialWait) * math.Pow(r.cfg.Multiplier, float64(attempt)))
	wait = min(wait, r.cfg.MaxWait)

	// Half fixed, half random, so simultaneous callers spread out.
	if wait > 1 {
		wait = wait/2 + rand.N(wait/2)
	}
	return wait
}
