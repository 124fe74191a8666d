package llm

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Validator checks a parsed value after JSON extraction.
// Returns nil if valid, or a descriptive error if invalid.
type Validator[T any] func(T) error

// ExtractObject extracts a JSON object of type T from raw model output.
// Providers routinely wrap valid JSON in prose ("Here is the analysis:
// {...}"), so the payload is recovered by slicing from the first '{' to
// the last '}' inclusive. This is deliberately not a full JSON-in-text
// scanner: unrelated braces before or after the payload can defeat it.
// If validator is non-nil, the extracted value is validated before return.
func ExtractObject[T any](raw string, validator Validator[T]) (T, error) {
	return extract[T](raw, '{', '}', validator)
}

// ExtractArray extracts a JSON array of type T (a slice type) from raw
// model output using the same bracket-slicing recovery as ExtractObject.
// Fails when the bracketed slice parses to a non-array value.
func ExtractArray[T any](raw string, validator Validator[T]) (T, error) {
	return extract[T](raw, '[', ']', validator)
}

func extract[T any](raw string, open, close byte, validator Validator[T]) (T, error) {
	var zero T

	start := strings.IndexByte(raw, open)
	end := strings.LastIndexByte(raw, close)
	if start == -1 || end == -1 || end < start {
		return zero, fmt.Errorf("%w: no %c...%c payload found", ErrMalformedResponse, open, close)
	}

	payload := raw[start : end+1]

	var result T
	if err := json.Unmarshal([]byte(payload), &result); err != nil {
		return zero, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}

	if validator != nil {
		if err := validator(result); err != nil {
			return zero, fmt.Errorf("%w: validation failed: %v", ErrMalformedResponse, err)
		}
	}

	return result, nil
}
