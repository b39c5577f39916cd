package service

import "errors"

// Sentinel errors surfaced by the service layer. Transport handlers match
// against them with [errors.Is] to pick the response status.
var (
	// ErrValidation is returned when the decoded request payload fails the
	// input checks performed before any store access.
	ErrValidation = errors.New("validation failed")

	// ErrUnauthorized is returned by the authorization policy when the
	// acting identity may not perform the requested operation. Callers
	// must stop processing and perform no store mutation.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrParam is returned for a semantically invalid parameter
	// combination, e.g. a confirmation password that does not match.
	ErrParam = errors.New("invalid parameter combination")

	// ErrMissingParam is returned when a required reset parameter (token
	// or new password) is absent.
	ErrMissingParam = errors.New("missing required parameter")

	// ErrResetTokenInvalid is returned when no pending reset token exists
	// for the account or the supplied value does not match it.
	ErrResetTokenInvalid = errors.New("reset token is invalid")

	// ErrResetTokenExpired is returned when a pending reset token exists
	// but is past its expiry.
	ErrResetTokenExpired = errors.New("reset token is expired")

	// ErrWrongPassword is returned by Login when the credentials do not
	// match the stored hash.
	ErrWrongPassword = errors.New("wrong password")

	// ErrTokenCreationFailed wraps JWT signing failures.
	ErrTokenCreationFailed = errors.New("token creation failed")

	// ErrTokenIsExpiredOrInvalid normalises every JWT validation failure so
	// that callers do not need to inspect low-level JWT errors.
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
)
