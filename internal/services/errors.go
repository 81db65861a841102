package services

import "errors"

// Well-known failure conditions. Handlers map these to HTTP statuses with
// errors.Is; anything else surfaces as a 500.
var (
	// ErrRegistrationDisabled is returned when the registration kill-switch
	// is off.
	ErrRegistrationDisabled = errors.New("registration is disabled")

	// ErrUsernameTaken is returned when registering an existing username.
	ErrUsernameTaken = errors.New("username already exists")

	// ErrInvalidCredentials covers both unknown-user and wrong-password so
	// a caller cannot probe which usernames exist.
	ErrInvalidCredentials = errors.New("invalid username or password")

	// ErrInvalidToken is returned when a bearer token resolves to no user.
	ErrInvalidToken = errors.New("invalid access token")

	// ErrValidation marks missing or malformed required input.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidBackup is returned when a restore document is not valid JSON.
	ErrInvalidBackup = errors.New("invalid backup document")
)
