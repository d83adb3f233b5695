package repository

import "errors"

// ErrNotFound is returned when a lookup matches no row. Callers test with
// errors.Is; the wrapping message names the entity.
var ErrNotFound = errors.New("not found")
