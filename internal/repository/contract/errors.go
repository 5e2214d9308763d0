package contract

import "errors"

var (
	// ErrDuplicate is returned when a write violates a unique index.
	ErrDuplicate = errors.New("duplicate record")
	// ErrReferenced is returned when a delete is blocked by dependent rows.
	ErrReferenced = errors.New("record is still referenced")
)
