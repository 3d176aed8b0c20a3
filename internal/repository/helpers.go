package repository

import (
	"database/sql"
	"time"
)

const dateLayout = "2006-01-02"

// parseTimeOr parses a stored timestamp, falling back to the zero time on
// malformed input rather than failing the whole scan.
func parseTimeOr(s, layout string) time.Time {
	t, err := time.Parse(layout, s)
	if err != nil {
		return time.Time{}
	}
	return t
}

// nullableStrToPtr converts a sql.NullString to *string.
func nullableStrToPtr(s sql.NullString) *string {
	if !s.Valid || s.String == "" {
		return nil
	}
	v := s.String
	return &v
}

// ptrToNullable converts a *string to a value suitable for SQLite storage.
func ptrToNullable(s *string) interface{} {
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

// nowUTC returns the current UTC time formatted as RFC3339.
func nowUTC() string {
	return time.Now().UTC().Format(time.RFC3339)
}
