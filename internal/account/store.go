package account

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"
	"sync"

	"voice-task-uploader/internal/model"
	"voice-task-uploader/pkg/encrypter"
	"voice-task-uploader/pkg/log"
)

// Store holds the accounts loaded from a JSON file. Plaintext passwords in
// the file are hashed at load time; the file itself is never rewritten.
type Store struct {
	l      log.Logger
	hasher encrypter.PasswordHasher
	path   string

	mu       sync.RWMutex
	accounts map[string]model.Account
}

// New loads the accounts file at path and returns the store.
func New(l log.Logger, hasher encrypter.PasswordHasher, path string) (*Store, error) {
	s := &Store{
		l:      l,
		hasher: hasher,
		path:   path,
	}
	if err := s.Reload(); err != nil {
		return nil, err
	}
	return s, nil
}

// Get returns the account for the given username.
func (s *Store) Get(username string) (model.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	acc, ok := s.accounts[username]
	if !ok {
		return model.Account{}, ErrNotFound
	}
	return acc, nil
}

// Verify checks the password for the given username.
func (s *Store) Verify(username, password string) (model.Account, error) {
	acc, err := s.Get(username)
	if err != nil {
		return model.Account{}, err
	}
	if !s.hasher.Verify(password, acc.PasswordHash) {
		return model.Account{}, ErrBadPassword
	}
	return acc, nil
}

// Usernames returns all configured usernames, sorted.
func (s *Store) Usernames() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	names := make([]string, 0, len(s.accounts))
	for name := range s.accounts {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Reload re-reads the accounts file, replacing the in-memory set.
// On parse failure the previous set is kept.
func (s *Store) Reload() error {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		return fmt.Errorf("account: failed to read accounts file %s: %w", s.path, err)
	}

	accounts, err := s.parse(raw)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.accounts = accounts
	s.mu.Unlock()

	return nil
}

// accountsFile accepts both a bare array of entries and an object with an
// "accounts" key.
type accountsFile struct {
	entries []accountEntry
}

func (f *accountsFile) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if strings.HasPrefix(trimmed, "[") {
		return json.Unmarshal(data, &f.entries)
	}

	var wrapper struct {
		Accounts *[]accountEntry `json:"accounts"`
	}
	if err := json.Unmarshal(data, &wrapper); err != nil {
		return err
	}
	if wrapper.Accounts == nil {
		return fmt.Errorf("account configuration must be a list or contain an 'accounts' key")
	}
	f.entries = *wrapper.Accounts
	return nil
}

type accountEntry struct {
	Username     string           `json:"username"`
	Password     string           `json:"password"`
	PasswordHash string           `json:"password_hash"`
	Settings     *settingsPayload `json:"settings"`
}

type settingsPayload struct {
	OpenAIAPIKey          string       `json:"openai_api_key"`
	OpenAITextModel       string       `json:"openai_text_model"`
	TodoPrompt            string       `json:"todo_prompt"`
	WhisperLanguage       string       `json:"whisper_language"`
	TodoistAPIToken       string       `json:"todoist_api_token"`
	TodoistProjectID      string       `json:"todoist_project_id"`
	ProjectTypes          projectTypes `json:"project_types"`
	SubtaskDeadlineMethod string       `json:"subtask_deadline_method"`
}

// projectTypes accepts either a comma-separated string or a JSON array.
type projectTypes []string

func (p *projectTypes) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "null" {
		*p = nil
		return nil
	}

	if strings.HasPrefix(trimmed, "\"") {
		var joined string
		if err := json.Unmarshal(data, &joined); err != nil {
			return err
		}
		*p = splitAndClean(joined)
		return nil
	}

	var list []string
	if err := json.Unmarshal(data, &list); err != nil {
		return fmt.Errorf("project_types must be a string or list: %w", err)
	}
	var cleaned []string
	for _, item := range list {
		if v := strings.TrimSpace(item); v != "" {
			cleaned = append(cleaned, v)
		}
	}
	*p = cleaned
	return nil
}

func splitAndClean(joined string) []string {
	var out []string
	for _, item := range strings.Split(joined, ",") {
		if v := strings.TrimSpace(item); v != "" {
			out = append(out, v)
		}
	}
	return out
}

func (s *Store) parse(raw []byte) (map[string]model.Account, error) {
	var file accountsFile
	if err := json.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("account: failed to parse accounts file: %w", err)
	}

	accounts := make(map[string]model.Account, len(file.entries))
	for _, entry := range file.entries {
		acc, err := s.buildAccount(entry)
		if err != nil {
			return nil, err
		}
		if _, exists := accounts[acc.Username]; exists {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateAccount, acc.Username)
		}
		accounts[acc.Username] = acc
	}

	if len(accounts) == 0 {
		return nil, ErrNoAccounts
	}

	return accounts, nil
}

func (s *Store) buildAccount(entry accountEntry) (model.Account, error) {
	username := strings.TrimSpace(entry.Username)
	if username == "" {
		return model.Account{}, fmt.Errorf("account: entry is missing 'username'")
	}

	passwordHash, err := s.resolvePasswordHash(username, entry)
	if err != nil {
		return model.Account{}, err
	}

	settings := model.AccountSettings{
		OpenAITextModel:       model.DefaultOpenAITextModel,
		SubtaskDeadlineMethod: model.SubtaskDeadlineSameDate,
	}

	if entry.Settings != nil {
		p := entry.Settings
		settings.OpenAIAPIKey = strings.TrimSpace(p.OpenAIAPIKey)
		if v := strings.TrimSpace(p.OpenAITextModel); v != "" {
			settings.OpenAITextModel = v
		}
		settings.TodoPrompt = strings.TrimSpace(p.TodoPrompt)
		settings.WhisperLanguage = strings.TrimSpace(p.WhisperLanguage)
		settings.TodoistAPIToken = strings.TrimSpace(p.TodoistAPIToken)
		settings.TodoistProjectID = strings.TrimSpace(p.TodoistProjectID)
		settings.ProjectTypes = p.ProjectTypes

		if v := strings.ToLower(strings.TrimSpace(p.SubtaskDeadlineMethod)); v != "" {
			if v != model.SubtaskDeadlineSameDate && v != model.SubtaskDeadlineNoDate {
				return model.Account{}, fmt.Errorf("account %s: subtask_deadline_method must be one of: %s, %s",
					username, model.SubtaskDeadlineNoDate, model.SubtaskDeadlineSameDate)
			}
			settings.SubtaskDeadlineMethod = v
		}
	}

	return model.Account{
		Username:     username,
		PasswordHash: passwordHash,
		Settings:     settings,
	}, nil
}

// resolvePasswordHash prefers an explicit hash; a plaintext password is
// hashed at load time with a warning.
func (s *Store) resolvePasswordHash(username string, entry accountEntry) (string, error) {
	if hash := strings.TrimSpace(entry.PasswordHash); hash != "" {
		return hash, nil
	}

	if plain := strings.TrimSpace(entry.Password); plain != "" {
		s.l.Warnf(context.Background(),
			"account %q uses plaintext password in configuration; hashing at runtime", username)
		hash, err := s.hasher.Hash(plain)
		if err != nil {
			return "", fmt.Errorf("account %s: failed to hash password: %w", username, err)
		}
		return hash, nil
	}

	return "", fmt.Errorf("account %s: must include 'password' or 'password_hash'", username)
}

var _ IStore = (*Store)(nil)
