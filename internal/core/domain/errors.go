package domain

import "errors"

var (
	// ErrInvalidInput marks malformed or incomplete input caught before any
	// backing-store call.
	ErrInvalidInput = errors.New("invalid input")

	// ErrIDMismatch marks an update whose path id disagrees with the payload id.
	ErrIDMismatch = errors.New("id mismatch")

	ErrNotFound = errors.New("record not found")

	// ErrInvalidCredentials covers both unknown login name and wrong password.
	// Callers must not be able to tell the two apart.
	ErrInvalidCredentials = errors.New("invalid credentials")

	ErrUserExists = errors.New("user already exists")
)
