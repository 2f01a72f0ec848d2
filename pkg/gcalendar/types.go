package gcalendar

import "time"

// CreateEventRequest is the input for creating a Google Calendar event.
// When DueDate is set the event is created as an all-day event and the
// Start/End times are ignored.
type CreateEventRequest struct {
	CalendarID  string
	Summary     string
	Description string
	DueDate     string // YYYY-MM-DD, all-day event
	StartTime   time.Time
	EndTime     time.Time
	Timezone    string // e.g. "Europe/Warsaw"
}

// Event is a simplified representation of a Google Calendar event.
type Event struct {
	ID          string
	Summary     string
	Description string
	HTMLLink    string
}
