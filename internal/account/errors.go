package account

import "errors"

var (
	// ErrNotFound indicates the username has no configured account
	ErrNotFound = errors.New("account not found")

	// ErrBadPassword indicates the password did not match
	ErrBadPassword = errors.New("invalid password")

	// ErrNoAccounts indicates the accounts file defines no accounts
	ErrNoAccounts = errors.New("account configuration does not define any accounts")

	// ErrDuplicateAccount indicates two entries share a username
	ErrDuplicateAccount = errors.New("duplicate account username")
)
