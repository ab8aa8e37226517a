package models

import (
	"github.com/cockroachdb/errors"
)

// Base errors, related to default API status codes
var (
	// BadParameterError is rendered with the http status code 400
	BadParameterError = errors.New("bad parameter")

	// UnAuthorizedError is rendered with the http status code 401
	UnAuthorizedError = errors.New("unauthorized")

	// ForbiddenError is rendered with the http status code 403
	ForbiddenError = errors.New("forbidden")

	// NotFoundError is rendered with the http status code 404
	NotFoundError = errors.New("not found")

	// ConflictError is rendered with the http status code 409
	ConflictError = errors.New("duplicate value")
)

// Authentication related errors
var (
	ErrUnknownUser        = errors.Wrap(NotFoundError, "unknown user")
	ErrInvalidCredentials = errors.Wrap(UnAuthorizedError, "invalid username or password")
	ErrSessionExpired     = errors.Wrap(UnAuthorizedError, "session expired")
	ErrUsernameTaken      = errors.Wrap(ConflictError, "username taken")
)

// Registration and chat input errors
var (
	ErrPasswordMismatch = errors.Wrap(BadParameterError, "passwords do not match")
	ErrEmptyMessage     = errors.Wrap(BadParameterError, "message content is empty")
	ErrMessageTooLong   = errors.Wrap(BadParameterError, "message content is too long")
)

// DB related errors
var ErrIgnoreRollBackError = errors.New("ignore rollback error")
