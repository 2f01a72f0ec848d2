package http

import (
	"voice-task-uploader/internal/dictation"
	"voice-task-uploader/pkg/log"
)

type handler struct {
	l  log.Logger
	uc dictation.UseCase
}

// New creates a new HTTP handler for the dictation domain.
func New(l log.Logger, uc dictation.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
