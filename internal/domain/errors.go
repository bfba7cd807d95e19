package domain

import "errors"

var (
	// ErrNotFound is returned when a booking, package or admin does not resolve.
	ErrNotFound = errors.New("not found")

	// ErrDuplicateBookingNumber signals a unique-constraint conflict on the
	// generated booking number; callers retry with a fresh candidate.
	ErrDuplicateBookingNumber = errors.New("duplicate booking number")

	// ErrInvalidCredentials covers both unknown email and wrong password so
	// login responses cannot be used to enumerate accounts.
	ErrInvalidCredentials = errors.New("wrong credentials")

	// ErrTransitionNotAllowed is returned when the configured transition
	// policy rejects a status change.
	ErrTransitionNotAllowed = errors.New("status transition not allowed")
)
