package model

import "errors"

var (
	// User related errors
	ErrUserNotFound      = errors.New("user not found")
	ErrUserAlreadyExists = errors.New("user already exists")

	// Auth related errors. Invalid credentials and unusable tokens are
	// surfaced to callers with an identical response shape so that failures
	// never reveal whether an account or token exists.
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrTokenNotFound      = errors.New("token not found")

	// Permission related errors
	ErrForbidden = errors.New("forbidden")

	// Chirp related errors
	ErrChirpNotFound = errors.New("chirp not found")
	ErrChirpTooLong  = errors.New("chirp is too long")

	// Generic errors
	ErrInvalidInput = errors.New("invalid input")
)
