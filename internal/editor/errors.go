package editor

import (
	"errors"
	"fmt"
	"strings"

	"github.com/lucasvieira/iepdesk/internal/schema"
)

// ErrActionInFlight is returned when the same (field, action) pair is
// invoked again while a previous invocation is still running. The refusal
// is local; no network call is made.
var ErrActionInFlight = errors.New("action already in flight")

// ValidationError reports every required field that is blank after
// trimming, in canonical schema order.
type ValidationError struct {
	MissingFieldIDs []string
}

func (e *ValidationError) Error() string {
	labels := make([]string, 0, len(e.MissingFieldIDs))
	for _, id := range e.MissingFieldIDs {
		labels = append(labels, schema.Label(id))
	}
	return fmt.Sprintf("required fields missing: %s", strings.Join(labels, ", "))
}

// First returns the first unmet field id, for focus and scroll.
func (e *ValidationError) First() string {
	if len(e.MissingFieldIDs) == 0 {
		return ""
	}
	return e.MissingFieldIDs[0]
}
