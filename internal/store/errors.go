// SPDX-License-Identifier: Apache-2.0

package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrRecordNotFound is returned when a query expected to match at
	// least one row produces an empty result set.
	ErrRecordNotFound = errors.New("record not found")

	// ErrUnsupportedDriver is returned by the storage constructor when the
	// configured DSN maps to no known database driver.
	ErrUnsupportedDriver = errors.New("unsupported database driver")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrScanningRow is returned when a single result row cannot be
	// scanned into its destination fields.
	ErrScanningRow = errors.New("error scanning row")

	// ErrScanningRows is returned when an error is detected after the
	// result set has been exhausted (rows.Err()).
	ErrScanningRows = errors.New("error iterating rows")
)
