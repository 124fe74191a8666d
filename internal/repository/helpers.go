package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"
)

// marshalColumn serializes a value into a JSON TEXT column.
func marshalColumn(v interface{}) (string, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("encoding column: %w", err)
	}
	return string(data), nil
}

// unmarshalColumn deserializes a JSON TEXT column into dst. Empty or NULL
// columns leave dst untouched.
func unmarshalColumn(raw sql.NullString, dst interface{}) error {
	if !raw.Valid || raw.String == "" {
		return nil
	}
	if err := json.Unmarshal([]byte(raw.String), dst); err != nil {
		return fmt.Errorf("decoding column: %w", err)
	}
	return nil
}

// parseTime parses an RFC3339 timestamp column, returning the zero time on
// failure rather than propagating a corrupt-row error.
func parseTime(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}
	}
	return t
}

// nullableString converts a *string to a value suitable for SQLite storage.
func nullableString(s *string) interface{} {
	if s == nil {
		return nil
	}
	return *s
}

// boolToInt converts a Go bool to an integer (0 or 1) for SQLite storage.
func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// intToBool converts a SQLite integer (0 or 1) to a Go bool.
func intToBool(i int) bool {
	return i != 0
}
