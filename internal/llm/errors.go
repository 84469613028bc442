package llm

import (
	"encoding/json"
	"fmt"
	"time"
)

// RateLimitError reports a 429 from the backend. RetryAfter carries the
// server-suggested wait when one was given, zero otherwise.
type RateLimitError struct {
	RetryAfter time.Duration
	Cause      error
}

func (e *RateLimitError) Error() string {
	if e.RetryAfter > 0 {
		return fmt.Sprintf("rate limited, retry after %s: %v", e.RetryAfter, e.Cause)
	}
	return fmt.Sprintf("rate limited: %v", e.Cause)
}

func (e *RateLimitError) Unwrap() error { return e.Cause }

// UnavailableError reports that the backend could not be reached or
// answered with a server error.
type UnavailableError struct {
	Cause error
}

func (e *UnavailableError) Error() string {
	if e.Cause == nil {
		return "model backend unavailable"
	}
	return fmt.Sprintf("model backend unavailable: %v", e.Cause)
}

func (e *UnavailableError) Unwrap() error { return e.Cause }

// BadReplyError reports a reply that was not usable: not JSON, or JSON
// that fails the requested schema. Content holds the offending reply
// for the audit log.
type BadReplyError struct {
	Content json.RawMessage
	Cause   error
}

func (e *BadReplyError) Error() string {
	return fmt.Sprintf("unusable model reply: %v", e.Cause)
}

func (e *BadReplyError) Unwrap() error { return e.Cause }

// TruncatedError reports a reply cut off at the MaxTokens ceiling. The
// fix is a larger cap, not another attempt, so the retry layer gives up
// on it immediately.
type TruncatedError struct {
	Content json.RawMessage
}

func (e *TruncatedError) Error() string {
	return "model reply truncated at the token ceiling"
}
