package apperrors

import (
	"net/http"
)

// Predefined errors for conditions that recur across services.

// ErrInsufficientPermissions is returned when a role or ownership check fails.
var ErrInsufficientPermissions = New(
	CodeForbidden,
	"auth",
	"Insufficient permissions",
	http.StatusForbidden,
)

// ErrBootstrapWindowClosed is returned when a Lawyer attempts the
// first-admin promotion after an Admin already exists.
var ErrBootstrapWindowClosed = New(
	CodeForbidden,
	"users",
	"Only when no Admin exists can a Lawyer assign the first Admin",
	http.StatusForbidden,
)

// ErrInvalidCredentials covers both unknown email and wrong password,
// deliberately indistinguishable to the caller.
var ErrInvalidCredentials = New(
	CodeInvalidCredentials,
	"auth",
	"Invalid email or password",
	http.StatusUnauthorized,
)

// ErrInvalidToken covers malformed, forged and expired tokens.
var ErrInvalidToken = New(
	CodeInvalidToken,
	"auth",
	"Invalid or expired token",
	http.StatusUnauthorized,
)

// ErrUserSuspended rejects logins for suspended accounts.
var ErrUserSuspended = New(
	CodeForbidden,
	"auth",
	"Account is suspended. Try to contact the admin.",
	http.StatusForbidden,
)

// ErrOTPExpired is returned when the 2FA code is past its expiry.
var ErrOTPExpired = New(
	CodeInvalidToken,
	"auth",
	"OTP has expired",
	http.StatusBadRequest,
)

// ErrOTPInvalid is returned when the supplied 2FA code does not match.
var ErrOTPInvalid = New(
	CodeInvalidToken,
	"auth",
	"Invalid OTP",
	http.StatusUnauthorized,
)
