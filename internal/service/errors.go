package service

import "errors"

var (
	// ErrInvalidToken is returned for tokens with a bad signature, wrong
	// signing method, or elapsed expiry.
	ErrInvalidToken = errors.New("invalid or expired token")
	// ErrUserExists is returned when registering an email that is already taken.
	ErrUserExists = errors.New("user already exists")
	// ErrInvalidCredentials is returned for a failed login.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrAccountDisabled is returned when a fired employee attempts to log in.
	ErrAccountDisabled = errors.New("account is disabled")
	// ErrSalaryNotIncreased is returned when a salary adjustment does not
	// strictly increase the current salary.
	ErrSalaryNotIncreased = errors.New("new salary must be greater than current salary")
	// ErrValidation is returned for malformed input caught before any write.
	ErrValidation = errors.New("validation error")
)
