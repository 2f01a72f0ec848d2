package response

// Response messages and codes.
const (
	MessageSuccess      = "Success"
	DefaultErrorMessage = "Internal server error"

	InternalServerErrorCode = 500
)

// Formats used by Date and DateTime marshaling.
const (
	DateFormat     = "2006-01-02"
	DateTimeFormat = "2006-01-02 15:04:05"
)
