package models

import "errors"

// Sentinel errors for common failure conditions
var (
	ErrNotFound     = errors.New("resource not found")
	ErrValidation   = errors.New("validation failed")
	ErrUnauthorized = errors.New("unauthorized")
	ErrOperation    = errors.New("operation failed")

	// Login errors
	ErrMissingCredentials = errors.New("must include username or email and password")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailNotVerified   = errors.New("email address not verified")

	// Email verification errors
	ErrMissingEmail       = errors.New("email not provided")
	ErrOTPMissing         = errors.New("otp not provided")
	ErrOTPMismatch        = errors.New("invalid otp")
	ErrNoChallengePending = errors.New("no otp challenge pending")
)
