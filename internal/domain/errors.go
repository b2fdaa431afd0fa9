package domain

import "errors"

var (
	// ErrNotFound is returned by repositories when a lookup matched no rows.
	ErrNotFound = errors.New("not found")

	// ErrRelationUnavailable is returned when a joined relation or view the
	// query depends on does not exist in the store.
	ErrRelationUnavailable = errors.New("relation unavailable")
)
