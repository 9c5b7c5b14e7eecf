package service

import "errors"

// ErrValidation is returned when a request is well-formed but semantically
// invalid: a missing id on update, an unrecognized friendship status, a
// self-referencing friendship.
var ErrValidation = errors.New("validation failed")
