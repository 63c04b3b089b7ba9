package repository

import "strings"

// IsDuplicateEntry reports whether err is a unique-constraint violation
// from the database.
func IsDuplicateEntry(err error) bool {
	if err == nil {
		return false
	}
	return strings.Contains(strings.ToLower(err.Error()), "duplicate")
}
