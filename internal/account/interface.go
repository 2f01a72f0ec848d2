package account

import "voice-task-uploader/internal/model"

// IStore is the interface for account configuration access.
type IStore interface {
	// Get returns the account for the given username.
	Get(username string) (model.Account, error)

	// Verify checks the password for the given username and returns the
	// account on success.
	Verify(username, password string) (model.Account, error)

	// Usernames returns all configured usernames, sorted.
	Usernames() []string

	// Reload re-reads the accounts file, replacing the in-memory set.
	Reload() error
}
