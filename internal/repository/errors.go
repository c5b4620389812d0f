// Package repository contains the data access layer. Each entity gets its
// own repository struct over the shared *sql.DB pool, with sentinel errors
// defined next to the repository that produces them so handlers can map
// failure cases to HTTP statuses.
package repository

import "strings"

// isDuplicateKey reports whether err is a MySQL duplicate-key violation
// (error 1062). Check-then-insert sequences rely on the unique constraint
// as a backstop: a writer losing the race gets the violation here and maps
// it to the same sentinel the pre-check would have produced.
func isDuplicateKey(err error) bool {
	return err != nil && strings.Contains(err.Error(), "1062")
}
