package storage

import "errors"

var (
	// ErrNotFound is returned when a referenced id is absent.
	ErrNotFound = errors.New("not found")

	// ErrDuplicate is returned on a uniqueness violation (user email,
	// catalog name).
	ErrDuplicate = errors.New("duplicate data")

	// ErrInternal marks true storage anomalies: a write that did not affect
	// the expected number of rows, or a generated key that could not be
	// retrieved.
	ErrInternal = errors.New("internal storage failure")
)
