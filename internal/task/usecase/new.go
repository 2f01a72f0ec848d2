package usecase

import (
	"context"

	"voice-task-uploader/internal/account"
	"voice-task-uploader/pkg/gcalendar"
	"voice-task-uploader/pkg/log"
	"voice-task-uploader/pkg/todoist"
)

// calendar is the slice of the Google Calendar client this use case needs.
type calendar interface {
	CreateEvent(ctx context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error)
}

// implUseCase is the private implementation of task.UseCase.
type implUseCase struct {
	l          log.Logger
	accounts   account.IStore
	todoist    todoist.ITodoist
	calendar   calendar
	calendarID string
}

// New creates a new task UseCase implementation. cal of nil disables the
// calendar mirror.
func New(
	l log.Logger,
	accounts account.IStore,
	td todoist.ITodoist,
	cal calendar,
	calendarID string,
) *implUseCase {
	return &implUseCase{
		l:          l,
		accounts:   accounts,
		todoist:    td,
		calendar:   cal,
		calendarID: calendarID,
	}
}
