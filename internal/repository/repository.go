package repository

import "errors"

// ErrDuplicateKey reports a uniqueness-constraint violation. Racing
// writers lose at the database, not through application-level locking.
var ErrDuplicateKey = errors.New("duplicate key")
