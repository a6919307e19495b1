package service

import "errors"

var (
	// ErrValidation is returned when a required field is blank.
	// The message is intended to be shown to end users.
	ErrValidation = errors.New("all fields are required")

	// ErrPasswordMismatch is returned when password and confirmation differ.
	ErrPasswordMismatch = errors.New("passwords do not match")

	// ErrDuplicateUser is returned when the email is already registered.
	ErrDuplicateUser = errors.New("user already exists with this email")

	// ErrInvalidCredentials is returned for a failed login. One message for
	// both unknown email and wrong password, so accounts cannot be enumerated.
	ErrInvalidCredentials = errors.New("incorrect email address or password")

	// ErrUnknownMoodType is returned when a logged mood names an id outside
	// the fixed reference set.
	ErrUnknownMoodType = errors.New("unknown mood type")

	// ErrPromptEmpty is returned when a prompt submission has no text.
	ErrPromptEmpty = errors.New("prompt text is required")

	// ErrNoGenerator resolves prompt entries when no AI provider is
	// configured.
	ErrNoGenerator = errors.New("no AI provider configured")
)
