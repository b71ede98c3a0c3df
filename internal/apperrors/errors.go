// Package apperrors defines the error categories shared by every service.
// Callers classify wrapped errors with errors.Is.
package apperrors

import "errors"

// ErrInvalidArgument marks a caller-supplied empty or missing required value.
var ErrInvalidArgument = errors.New("invalid argument")

// ErrNotFound marks a referenced record that does not exist.
var ErrNotFound = errors.New("not found")
