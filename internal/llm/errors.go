package llm

import (
	"errors"
	"fmt"
	"time"
)

var (
	// ErrEmptyResponse indicates the provider reported success but
	// returned no usable text.
	ErrEmptyResponse = errors.New("provider returned an empty response")

	// ErrRateLimited indicates the provider asked for backoff. Use
	// errors.As with *RateLimitedError to read the retry-after hint.
	ErrRateLimited = errors.New("provider rate limit reached")

	// ErrProvider indicates any other provider-reported failure.
	ErrProvider = errors.New("provider error")

	// ErrNetwork indicates a transport-level failure.
	ErrNetwork = errors.New("network error")

	// ErrMalformedResponse indicates a structured payload could not be
	// extracted from the model response.
	ErrMalformedResponse = errors.New("malformed structured response")
)

// RateLimitedError carries the provider's retry-after hint.
// It matches ErrRateLimited via errors.Is.
type RateLimitedError struct {
	RetryAfter time.Duration
}

func (e *RateLimitedError) Error() string {
	return fmt.Sprintf("provider rate limit reached, retry after %s", e.RetryAfter)
}

func (e *RateLimitedError) Is(target error) bool {
	return target == ErrRateLimited
}

// errorCode classifies an error for observability events.
func errorCode(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrEmptyResponse):
		return "EMPTY_RESPONSE"
	case errors.Is(err, ErrRateLimited):
		return "RATE_LIMITED"
	case errors.Is(err, ErrNetwork):
		return "NETWORK"
	case errors.Is(err, ErrMalformedResponse):
		return "MALFORMED_RESPONSE"
	case errors.Is(err, ErrProvider):
		return "PROVIDER"
	default:
		return "UNKNOWN"
	}
}
