package domain

import "errors"

// Authentication errors
var (
	// ErrUnauthenticated covers both a missing session token and a token
	// that resolves to no user. Callers never learn which one it was.
	ErrUnauthenticated = errors.New("no authenticated session")

	// ErrSessionConflict marks a data-integrity violation where one session
	// token resolves to more than one user. Never resolved by picking a row.
	ErrSessionConflict = errors.New("session token maps to multiple users")
)

// User errors
var (
	ErrUsernameTaken = errors.New("username already registered")
	ErrUserNotFound  = errors.New("user not found")
)

// Meal errors
var (
	// ErrMealNotFound is returned both when the meal id does not exist and
	// when it exists but belongs to another user, to avoid leaking which.
	ErrMealNotFound = errors.New("meal not found")
)
