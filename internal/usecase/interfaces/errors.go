package interfaces

import "errors"

// ErrDuplicateKey is returned by repositories when a write violates a
// uniqueness constraint, e.g. a second Postulacion for the same
// (postulante, puesto) pair. It is the safety net behind the use cases'
// friendlier pre-checks.
var ErrDuplicateKey = errors.New("duplicate key")
