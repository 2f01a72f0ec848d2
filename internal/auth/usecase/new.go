package usecase

import (
	"voice-task-uploader/internal/account"
	"voice-task-uploader/internal/session"
	"voice-task-uploader/pkg/log"
	"voice-task-uploader/pkg/todoist"
)

// implUseCase is the private implementation of auth.UseCase.
type implUseCase struct {
	l        log.Logger
	accounts account.IStore
	sessions session.IStore
	todoist  todoist.ITodoist
}

// New creates a new auth UseCase implementation.
func New(l log.Logger, accounts account.IStore, sessions session.IStore, td todoist.ITodoist) *implUseCase {
	return &implUseCase{
		l:        l,
		accounts: accounts,
		sessions: sessions,
		todoist:  td,
	}
}
