package usecase

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"voice-task-uploader/internal/dictation"
	"voice-task-uploader/internal/model"
	"voice-task-uploader/pkg/llmprovider"
	"voice-task-uploader/pkg/log"
	"voice-task-uploader/pkg/todoist"
	"voice-task-uploader/pkg/whisper"
)

type fakeAccounts struct {
	account model.Account
}

func (f *fakeAccounts) Get(username string) (model.Account, error) {
	if username != f.account.Username {
		return model.Account{}, errors.New("no such account")
	}
	return f.account, nil
}

func (f *fakeAccounts) Verify(username, password string) (model.Account, error) {
	return f.Get(username)
}

func (f *fakeAccounts) Usernames() []string { return []string{f.account.Username} }
func (f *fakeAccounts) Reload() error       { return nil }

type fakeTranscriber struct {
	lastReq whisper.TranscribeRequest
	text    string
	err     error
}

func (f *fakeTranscriber) Transcribe(_ context.Context, req whisper.TranscribeRequest) (string, error) {
	f.lastReq = req
	return f.text, f.err
}

type fakeEngine struct {
	lastReq *llmprovider.Request
	resp    *llmprovider.Response
	err     error
}

func (f *fakeEngine) GenerateContent(_ context.Context, req *llmprovider.Request) (*llmprovider.Response, error) {
	f.lastReq = req
	return f.resp, f.err
}

type fakeTodoist struct {
	projects []todoist.Project
	listErr  error
}

func (f *fakeTodoist) CreateTask(_ context.Context, _ string, _ todoist.CreateTaskRequest) (*todoist.Task, error) {
	return nil, errors.New("not used")
}

func (f *fakeTodoist) ListProjects(_ context.Context, _ string) ([]todoist.Project, error) {
	return f.projects, f.listErr
}

func toolResponse(args map[string]interface{}) *llmprovider.Response {
	return &llmprovider.Response{
		Content: llmprovider.Message{
			Role: "assistant",
			Parts: []llmprovider.Part{
				{FunctionCall: &llmprovider.FunctionCall{Name: suggestionToolName, Args: args}},
			},
		},
		ProviderName: "openai",
	}
}

func testAccount() model.Account {
	return model.Account{
		Username: "alice",
		Settings: model.AccountSettings{
			OpenAIAPIKey:    "sk-test",
			OpenAITextModel: model.DefaultOpenAITextModel,
			TodoistAPIToken: "td-token",
			ProjectTypes:    []string{"Sales", "Marketing"},
		},
	}
}

func testSession() model.Session {
	return model.Session{ID: "sess-1", Username: "alice", LanguageKey: "PL", LanguageCode: "pl"}
}

func TestProcess(t *testing.T) {
	scope := model.Scope{Username: "alice", SessionID: "sess-1"}
	input := dictation.ProcessInput{Audio: []byte("webm-bytes"), Filename: "clip.webm"}

	t.Run("Success With Canonicalized Project", func(t *testing.T) {
		transcriber := &fakeTranscriber{text: "call the new sales lead tomorrow"}
		engine := &fakeEngine{resp: toolResponse(map[string]interface{}{
			"project":      "sales",
			"task_summary": "Call the new lead",
			"tasks":        []string{"Find the lead's number", "Call before noon"},
			"priority":     3,
			"due_date":     "2026-09-01",
			"labels":       []string{"phone", "outreach"},
		})}
		td := &fakeTodoist{projects: []todoist.Project{{ID: "p1", Name: "Sales"}, {ID: "p2", Name: "Marketing"}}}

		tempDir := t.TempDir()
		uc := New(log.NewNop(), &fakeAccounts{account: testAccount()}, transcriber, engine, td, tempDir)

		out, err := uc.Process(context.Background(), scope, testSession(), input)
		require.NoError(t, err)

		assert.Equal(t, "call the new sales lead tomorrow", out.Transcription)
		assert.Empty(t, out.AssistantError)
		assert.Empty(t, out.ProjectsError)
		assert.Len(t, out.Projects, 2)

		require.NotNil(t, out.Structured)
		assert.Equal(t, "Sales", out.Structured.Project)
		assert.Equal(t, 3, out.Structured.Priority)
		assert.Contains(t, out.AssistantOutput, "!!Project!!: Sales")
		assert.Contains(t, out.AssistantOutput, "- Call before noon")
		assert.Contains(t, out.AssistantOutput, "!!Labels!!: phone, outreach")

		// Language hint and per-account key flow into the transcription call.
		assert.Equal(t, "sk-test", transcriber.lastReq.APIKey)
		assert.Equal(t, "pl", transcriber.lastReq.Language)

		// Spooled audio is gone once the request completes.
		entries, err := os.ReadDir(tempDir)
		require.NoError(t, err)
		assert.Empty(t, entries)
	})

	t.Run("Unknown Project Gets Sentinel Prefix", func(t *testing.T) {
		engine := &fakeEngine{resp: toolResponse(map[string]interface{}{
			"project":      "Engineering",
			"task_summary": "Fix the build",
			"tasks":        []string{"Bisect the failure"},
			"priority":     4,
		})}
		td := &fakeTodoist{projects: []todoist.Project{{ID: "p1", Name: "Sales"}}}

		uc := New(log.NewNop(), &fakeAccounts{account: testAccount()},
			&fakeTranscriber{text: "fix the build"}, engine, td, t.TempDir())

		out, err := uc.Process(context.Background(), scope, testSession(), input)
		require.NoError(t, err)
		require.NotNil(t, out.Structured)
		assert.Equal(t, "NEWPROJECT: Engineering", out.Structured.Project)
	})

	t.Run("No Audio", func(t *testing.T) {
		uc := New(log.NewNop(), &fakeAccounts{account: testAccount()},
			&fakeTranscriber{}, &fakeEngine{}, &fakeTodoist{}, t.TempDir())

		_, err := uc.Process(context.Background(), scope, testSession(), dictation.ProcessInput{})
		assert.ErrorIs(t, err, dictation.ErrNoAudio)
	})

	t.Run("Missing OpenAI Key", func(t *testing.T) {
		acc := testAccount()
		acc.Settings.OpenAIAPIKey = ""
		uc := New(log.NewNop(), &fakeAccounts{account: acc},
			&fakeTranscriber{}, &fakeEngine{}, &fakeTodoist{}, t.TempDir())

		_, err := uc.Process(context.Background(), scope, testSession(), input)
		assert.ErrorIs(t, err, dictation.ErrMissingOpenAIKey)
	})

	t.Run("Transcription Failure Is Fatal", func(t *testing.T) {
		tempDir := t.TempDir()
		uc := New(log.NewNop(), &fakeAccounts{account: testAccount()},
			&fakeTranscriber{err: whisper.ErrClipTooLong}, &fakeEngine{}, &fakeTodoist{}, tempDir)

		_, err := uc.Process(context.Background(), scope, testSession(), input)
		assert.ErrorIs(t, err, whisper.ErrClipTooLong)

		// Spooled audio is removed even when transcription fails.
		entries, readErr := os.ReadDir(tempDir)
		require.NoError(t, readErr)
		assert.Empty(t, entries)
	})

	t.Run("Empty Transcript Short-Circuits", func(t *testing.T) {
		engine := &fakeEngine{}
		uc := New(log.NewNop(), &fakeAccounts{account: testAccount()},
			&fakeTranscriber{text: "   "}, engine, &fakeTodoist{}, t.TempDir())

		out, err := uc.Process(context.Background(), scope, testSession(), input)
		require.NoError(t, err)
		assert.Nil(t, out.Structured)
		assert.Nil(t, engine.lastReq)
	})

	t.Run("Projects Failure Falls Back To Static Types", func(t *testing.T) {
		engine := &fakeEngine{resp: toolResponse(map[string]interface{}{
			"project":      "Marketing",
			"task_summary": "Draft the campaign brief",
			"tasks":        []string{"Outline the audience"},
			"priority":     2,
		})}
		td := &fakeTodoist{listErr: errors.New("todoist unavailable")}

		uc := New(log.NewNop(), &fakeAccounts{account: testAccount()},
			&fakeTranscriber{text: "draft the campaign brief"}, engine, td, t.TempDir())

		out, err := uc.Process(context.Background(), scope, testSession(), input)
		require.NoError(t, err)
		assert.Contains(t, out.ProjectsError, "todoist unavailable")
		require.NotNil(t, out.Structured)
		assert.Equal(t, "Marketing", out.Structured.Project)
	})

	t.Run("Projects Failure Without Fallback Reports Inline", func(t *testing.T) {
		acc := testAccount()
		acc.Settings.ProjectTypes = nil
		td := &fakeTodoist{listErr: errors.New("todoist unavailable")}
		engine := &fakeEngine{}

		uc := New(log.NewNop(), &fakeAccounts{account: acc},
			&fakeTranscriber{text: "plan the offsite"}, engine, td, t.TempDir())

		out, err := uc.Process(context.Background(), scope, testSession(), input)
		require.NoError(t, err)
		assert.Equal(t, "plan the offsite", out.Transcription)
		assert.Contains(t, out.AssistantError, "todoist unavailable")
		assert.Nil(t, out.Structured)
		assert.Nil(t, engine.lastReq)
	})

	t.Run("Suggestion Failure Reports Inline", func(t *testing.T) {
		engine := &fakeEngine{err: llmprovider.ErrAllProvidersFailed}
		td := &fakeTodoist{projects: []todoist.Project{{ID: "p1", Name: "Sales"}}}

		uc := New(log.NewNop(), &fakeAccounts{account: testAccount()},
			&fakeTranscriber{text: "email the board"}, engine, td, t.TempDir())

		out, err := uc.Process(context.Background(), scope, testSession(), input)
		require.NoError(t, err)
		assert.Equal(t, "email the board", out.Transcription)
		assert.Contains(t, out.AssistantError, "could not generate suggestion")
		assert.Nil(t, out.Structured)
	})

	t.Run("Missing Todoist Token Uses Static Types", func(t *testing.T) {
		acc := testAccount()
		acc.Settings.TodoistAPIToken = ""
		engine := &fakeEngine{resp: toolResponse(map[string]interface{}{
			"project":      "Sales",
			"task_summary": "Ping the prospect",
			"tasks":        []string{"Write the follow-up"},
			"priority":     1,
		})}

		uc := New(log.NewNop(), &fakeAccounts{account: acc},
			&fakeTranscriber{text: "ping the prospect"}, engine, &fakeTodoist{}, t.TempDir())

		out, err := uc.Process(context.Background(), scope, testSession(), input)
		require.NoError(t, err)
		assert.NotEmpty(t, out.ProjectsError)
		require.NotNil(t, out.Structured)
		assert.Equal(t, "Sales", out.Structured.Project)
	})
}

func TestDecodeSuggestion(t *testing.T) {
	t.Run("JSON Text With Code Fence", func(t *testing.T) {
		resp := &llmprovider.Response{
			Content: llmprovider.Message{
				Parts: []llmprovider.Part{{Text: "```json\n{\"project\":\"Ops\",\"task_summary\":\"Rotate keys\",\"tasks\":[\"Rotate the deploy key\"],\"priority\":2}\n```"}},
			},
		}

		got, err := decodeSuggestion(resp)
		require.NoError(t, err)
		assert.Equal(t, "Ops", got.Project)
		assert.Equal(t, 2, got.Priority)
	})

	t.Run("Missing Summary", func(t *testing.T) {
		resp := &llmprovider.Response{
			Content: llmprovider.Message{
				Parts: []llmprovider.Part{{Text: `{"project":"Ops","task_summary":"","tasks":[],"priority":1}`}},
			},
		}

		_, err := decodeSuggestion(resp)
		assert.ErrorIs(t, err, dictation.ErrMalformedResponse)
	})

	t.Run("Priority Out Of Range", func(t *testing.T) {
		resp := &llmprovider.Response{
			Content: llmprovider.Message{
				Parts: []llmprovider.Part{{Text: `{"project":"Ops","task_summary":"Rotate keys","tasks":[],"priority":7}`}},
			},
		}

		_, err := decodeSuggestion(resp)
		assert.ErrorIs(t, err, dictation.ErrMalformedResponse)
	})

	t.Run("Empty Response", func(t *testing.T) {
		_, err := decodeSuggestion(&llmprovider.Response{})
		assert.ErrorIs(t, err, dictation.ErrMalformedResponse)
	})
}

func TestCanonicalizeProject(t *testing.T) {
	allowed := []string{"Sales", "Marketing"}

	tcs := []struct {
		name    string
		project string
		allowed []string
		want    string
	}{
		{name: "Case-Insensitive Match", project: "sales", allowed: allowed, want: "Sales"},
		{name: "Exact Match", project: "Marketing", allowed: allowed, want: "Marketing"},
		{name: "No Match Gets Prefix", project: "Engineering", allowed: allowed, want: "NEWPROJECT: Engineering"},
		{name: "Existing Prefix Passes Through", project: "NEWPROJECT: Engineering", allowed: allowed, want: "NEWPROJECT: Engineering"},
		{name: "Empty Allowed List Passes Through", project: "Anything", allowed: nil, want: "Anything"},
		{name: "Empty Project", project: "  ", allowed: allowed, want: ""},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, canonicalizeProject(tc.project, tc.allowed))
		})
	}
}

func TestFormatSuggestionText(t *testing.T) {
	s := model.Suggestion{
		Project:     "Sales",
		TaskSummary: "Call the new lead",
		Tasks:       []string{"Find the number", "Call before noon"},
		Priority:    3,
		DueDate:     "2026-09-01",
		Labels:      []string{"phone", "outreach"},
	}

	got := formatSuggestionText(s)
	assert.Equal(t,
		"!!Project!!: Sales\n"+
			"!!Task Summary!!: Call the new lead\n"+
			"!!Tasks!!:\n"+
			"- Find the number\n"+
			"- Call before noon\n"+
			"!!Priority!!: 3\n"+
			"!!Due Date!!: 2026-09-01\n"+
			"!!Labels!!: phone, outreach",
		got)

	t.Run("No Tasks Or Optional Fields", func(t *testing.T) {
		got := formatSuggestionText(model.Suggestion{Project: "Ops", TaskSummary: "Rotate keys", Priority: 1})
		assert.Contains(t, got, "!!Tasks!!:\n- (none)")
		assert.NotContains(t, got, "!!Due Date!!")
		assert.NotContains(t, got, "!!Labels!!")
	})
}
