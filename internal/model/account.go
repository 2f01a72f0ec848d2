package model

// Account is a configured user identity with credentials and per-user
// provider settings. Accounts are loaded once from the accounts file and
// are immutable for the life of the process (except explicit reload).
type Account struct {
	Username     string
	PasswordHash string
	Settings     AccountSettings
}

// Subtask deadline handling: subtasks either inherit the parent task's
// due date or are created without one.
const (
	SubtaskDeadlineSameDate = "same_date"
	SubtaskDeadlineNoDate   = "no_date"
)

// DefaultOpenAITextModel is used when an account does not pin a model.
const DefaultOpenAITextModel = "gpt-4o-mini"

// AccountSettings holds per-account provider configuration.
type AccountSettings struct {
	OpenAIAPIKey          string
	OpenAITextModel       string
	TodoPrompt            string
	WhisperLanguage       string
	TodoistAPIToken       string
	TodoistProjectID      string
	ProjectTypes          []string
	SubtaskDeadlineMethod string
}
