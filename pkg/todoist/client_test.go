package todoist_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"voice-task-uploader/pkg/todoist"
)

func TestCreateTask(t *testing.T) {
	var gotBody map[string]interface{}

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/rest/v2/tasks" || r.Method != http.MethodPost {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		if r.Header.Get("Authorization") != "Bearer good-token" {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"error":"invalid token"}`))
			return
		}
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"id":"7001","content":"Plan sprint","project_id":"p1","priority":3}`))
	}))
	defer ts.Close()

	client := todoist.New().WithBaseURL(ts.URL)
	ctx := context.Background()

	t.Run("Success Flow", func(t *testing.T) {
		task, err := client.CreateTask(ctx, "good-token", todoist.CreateTaskRequest{
			Content:   "Plan sprint",
			ProjectID: "p1",
			Priority:  3,
			DueDate:   "2026-09-01",
			Labels:    []string{"voice"},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if task.ID != "7001" {
			t.Errorf("unexpected task id: %s", task.ID)
		}
		if gotBody["project_id"] != "p1" || gotBody["due_date"] != "2026-09-01" {
			t.Errorf("unexpected request body: %+v", gotBody)
		}
		if _, ok := gotBody["parent_id"]; ok {
			t.Errorf("parent_id should be omitted when empty")
		}
	})

	t.Run("Subtask Carries Parent ID", func(t *testing.T) {
		_, err := client.CreateTask(ctx, "good-token", todoist.CreateTaskRequest{
			Content:  "Write retro notes",
			ParentID: "7001",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if gotBody["parent_id"] != "7001" {
			t.Errorf("expected parent_id in request body, got: %+v", gotBody)
		}
	})

	t.Run("Rejected Token", func(t *testing.T) {
		_, err := client.CreateTask(ctx, "bad-token", todoist.CreateTaskRequest{Content: "x"})
		if !errors.Is(err, todoist.ErrUnauthorized) {
			t.Fatalf("expected ErrUnauthorized, got %v", err)
		}
		var apiErr *todoist.APIError
		if !errors.As(err, &apiErr) || apiErr.StatusCode != http.StatusUnauthorized {
			t.Errorf("expected APIError with status 401, got %v", err)
		}
	})

	t.Run("Empty Content", func(t *testing.T) {
		_, err := client.CreateTask(ctx, "good-token", todoist.CreateTaskRequest{Content: "   "})
		if !errors.Is(err, todoist.ErrEmptyContent) {
			t.Fatalf("expected ErrEmptyContent, got %v", err)
		}
	})

	t.Run("Missing Token", func(t *testing.T) {
		_, err := client.CreateTask(ctx, "", todoist.CreateTaskRequest{Content: "x"})
		if !errors.Is(err, todoist.ErrMissingToken) {
			t.Fatalf("expected ErrMissingToken, got %v", err)
		}
	})
}

func TestListProjects(t *testing.T) {
	t.Run("Paginated Envelope", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/api/v1/projects" {
				w.WriteHeader(http.StatusNotFound)
				return
			}
			switch r.URL.Query().Get("cursor") {
			case "":
				w.Write([]byte(`{"results":[{"id":"p1","name":"Inbox"},{"id":"p2","name":"Sales"}],"next_cursor":"c2"}`))
			case "c2":
				w.Write([]byte(`{"results":[{"id":"p3","name":"Marketing"}],"next_cursor":""}`))
			default:
				w.WriteHeader(http.StatusBadRequest)
			}
		}))
		defer ts.Close()

		client := todoist.New().WithBaseURL(ts.URL)
		projects, err := client.ListProjects(context.Background(), "good-token")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(projects) != 3 {
			t.Fatalf("expected 3 projects across pages, got %d", len(projects))
		}
		if projects[2].Name != "Marketing" {
			t.Errorf("unexpected last project: %+v", projects[2])
		}
	})

	t.Run("Bare Array", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`[{"id":"p1","name":"Inbox"}]`))
		}))
		defer ts.Close()

		client := todoist.New().WithBaseURL(ts.URL)
		projects, err := client.ListProjects(context.Background(), "good-token")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(projects) != 1 || projects[0].Name != "Inbox" {
			t.Errorf("unexpected projects: %+v", projects)
		}
	})

	t.Run("Missing Results", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"next_cursor":""}`))
		}))
		defer ts.Close()

		client := todoist.New().WithBaseURL(ts.URL)
		if _, err := client.ListProjects(context.Background(), "good-token"); err == nil {
			t.Fatal("expected error for missing results list")
		}
	})

	t.Run("Forbidden", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusForbidden)
		}))
		defer ts.Close()

		client := todoist.New().WithBaseURL(ts.URL)
		_, err := client.ListProjects(context.Background(), "good-token")
		if !errors.Is(err, todoist.ErrUnauthorized) {
			t.Fatalf("expected ErrUnauthorized, got %v", err)
		}
	})
}
