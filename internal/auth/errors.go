package auth

import "errors"

var (
	// ErrInvalidCredentials indicates the username/password pair did not match
	ErrInvalidCredentials = errors.New("invalid username or password")

	// ErrUnsupportedLanguage indicates the requested language key is unknown
	ErrUnsupportedLanguage = errors.New("unsupported language key")
)
