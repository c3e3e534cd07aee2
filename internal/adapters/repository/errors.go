package repository

import "errors"

// Sentinel kinds for directory errors.
var (
	ErrNotFound = errors.New("not found")
)
