package apperr

import "errors"

// ErrInvalid is returned when the input fails domain validation.
var ErrInvalid = errors.New("invalid input")

// ErrNotFound indicates that the requested record does not exist.
var ErrNotFound = errors.New("not found")

// ErrPermission indicates that the acting role is not allowed to perform the mutation.
var ErrPermission = errors.New("permission denied")

// ErrAuth indicates a failed credential check.
var ErrAuth = errors.New("authentication failed")

// ErrConflict indicates a uniqueness violation in the store.
var ErrConflict = errors.New("conflict")
