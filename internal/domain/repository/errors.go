package repository

import "errors"

// ErrNotFound is returned by repositories when no record matches the given id.
var ErrNotFound = errors.New("not found")
