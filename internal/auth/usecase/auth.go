package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"voice-task-uploader/internal/account"
	"voice-task-uploader/internal/auth"
	"voice-task-uploader/internal/model"
)

// Login verifies credentials and mints a session. The session language is
// seeded from the account's preferred transcription language.
func (uc *implUseCase) Login(ctx context.Context, input auth.LoginInput) (auth.LoginOutput, error) {
	username := strings.TrimSpace(input.Username)

	acc, err := uc.accounts.Verify(username, input.Password)
	if err != nil {
		if errors.Is(err, account.ErrNotFound) || errors.Is(err, account.ErrBadPassword) {
			return auth.LoginOutput{}, auth.ErrInvalidCredentials
		}
		return auth.LoginOutput{}, fmt.Errorf("auth: failed to verify credentials: %w", err)
	}

	languageKey := model.DeriveDefaultLanguageKey(acc.Settings.WhisperLanguage)
	sess, err := uc.sessions.Create(ctx, acc.Username, languageKey)
	if err != nil {
		return auth.LoginOutput{}, fmt.Errorf("auth: failed to create session: %w", err)
	}

	uc.l.Infof(ctx, "user %s logged in, session %s", acc.Username, sess.ID)
	return auth.LoginOutput{Session: sess}, nil
}

// Logout removes the session. Unknown sessions are not an error.
func (uc *implUseCase) Logout(ctx context.Context, sessionID string) error {
	if err := uc.sessions.Delete(ctx, sessionID); err != nil {
		return fmt.Errorf("auth: failed to delete session: %w", err)
	}
	return nil
}

// Page assembles the recording page data. A Todoist listing failure is
// reported inline rather than failing the page.
func (uc *implUseCase) Page(ctx context.Context, sc model.Scope, sess model.Session) (auth.PageOutput, error) {
	acc, err := uc.accounts.Get(sc.Username)
	if err != nil {
		return auth.PageOutput{}, fmt.Errorf("auth: failed to load account %s: %w", sc.Username, err)
	}

	sess, err = uc.ensureLanguage(ctx, acc, sess)
	if err != nil {
		return auth.PageOutput{}, err
	}

	out := auth.PageOutput{
		Username:            acc.Username,
		Languages:           languageChoices(),
		SelectedLanguageKey: sess.LanguageKey,
		DefaultProjectID:    acc.Settings.TodoistProjectID,
	}

	if acc.Settings.TodoistAPIToken == "" {
		out.ProjectsError = "Todoist API token is not configured for this account"
		return out, nil
	}

	projects, err := uc.todoist.ListProjects(ctx, acc.Settings.TodoistAPIToken)
	if err != nil {
		uc.l.Warnf(ctx, "failed to list todoist projects for %s: %v", acc.Username, err)
		out.ProjectsError = "Could not load Todoist projects"
		return out, nil
	}

	out.Projects = projects
	return out, nil
}

// SetLanguage updates the session's transcription language selection.
func (uc *implUseCase) SetLanguage(ctx context.Context, sess model.Session, key string) (model.Session, error) {
	normalized := strings.ToUpper(strings.TrimSpace(key))
	opt, ok := model.LanguageOptions[normalized]
	if !ok {
		return model.Session{}, fmt.Errorf("%w: %s", auth.ErrUnsupportedLanguage, key)
	}

	sess.LanguageKey = normalized
	sess.LanguageCode = opt.Code
	if err := uc.sessions.Save(ctx, sess); err != nil {
		return model.Session{}, fmt.Errorf("auth: failed to save session: %w", err)
	}

	return sess, nil
}

// ensureLanguage repairs a session whose language selection is missing or
// no longer supported, falling back to the account default.
func (uc *implUseCase) ensureLanguage(ctx context.Context, acc model.Account, sess model.Session) (model.Session, error) {
	if opt, ok := model.LanguageOptions[sess.LanguageKey]; ok {
		if sess.LanguageCode != opt.Code {
			sess.LanguageCode = opt.Code
			if err := uc.sessions.Save(ctx, sess); err != nil {
				return model.Session{}, fmt.Errorf("auth: failed to save session: %w", err)
			}
		}
		return sess, nil
	}

	if key, ok := model.LanguageKeyForCode(sess.LanguageCode); ok {
		sess.LanguageKey = key
		sess.LanguageCode = model.LanguageOptions[key].Code
	} else {
		key = model.DeriveDefaultLanguageKey(acc.Settings.WhisperLanguage)
		sess.LanguageKey = key
		sess.LanguageCode = model.LanguageOptions[key].Code
	}

	if err := uc.sessions.Save(ctx, sess); err != nil {
		return model.Session{}, fmt.Errorf("auth: failed to save session: %w", err)
	}
	return sess, nil
}

func languageChoices() []auth.LanguageChoice {
	choices := make([]auth.LanguageChoice, 0, len(model.LanguageKeyOrder))
	for _, key := range model.LanguageKeyOrder {
		choices = append(choices, auth.LanguageChoice{
			Key:    key,
			Option: model.LanguageOptions[key],
		})
	}
	return choices
}
