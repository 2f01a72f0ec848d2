package todoist

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

var (
	// ErrMissingToken indicates no API token was supplied
	ErrMissingToken = errors.New("todoist api token is not configured")

	// ErrEmptyContent indicates the task content is blank
	ErrEmptyContent = errors.New("task content must not be empty")

	// ErrUnauthorized indicates the API token was rejected
	ErrUnauthorized = errors.New("todoist api token rejected")
)

// APIError is a non-success response from the Todoist API.
type APIError struct {
	StatusCode int
	Detail     string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("todoist: API error %d: %s", e.StatusCode, e.Detail)
}

// Unwrap maps auth failures to ErrUnauthorized so callers can detect
// a bad token without inspecting status codes.
func (e *APIError) Unwrap() error {
	if e.StatusCode == http.StatusUnauthorized || e.StatusCode == http.StatusForbidden {
		return ErrUnauthorized
	}
	return nil
}

// Client is the Todoist API client.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func newClient() *Client {
	return &Client{
		baseURL:    DefaultBaseURL,
		httpClient: &http.Client{Timeout: DefaultTimeout},
	}
}

// WithBaseURL overrides the API host, mainly for tests.
func (c *Client) WithBaseURL(u string) *Client {
	c.baseURL = strings.TrimSuffix(u, "/")
	return c
}

// CreateTask sends POST /rest/v2/tasks and returns the created task.
func (c *Client) CreateTask(ctx context.Context, token string, req CreateTaskRequest) (*Task, error) {
	if token == "" {
		return nil, ErrMissingToken
	}
	req.Content = strings.TrimSpace(req.Content)
	if req.Content == "" {
		return nil, ErrEmptyContent
	}

	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("todoist: failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+tasksPath, bytes.NewBuffer(body))
	if err != nil {
		return nil, fmt.Errorf("todoist: failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("todoist: failed to call API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		raw, _ := io.ReadAll(resp.Body)
		return nil, &APIError{StatusCode: resp.StatusCode, Detail: string(raw)}
	}

	var task Task
	if err := json.NewDecoder(resp.Body).Decode(&task); err != nil {
		return nil, fmt.Errorf("todoist: failed to decode response: %w", err)
	}

	return &task, nil
}

// ListProjects walks GET /api/v1/projects until the cursor runs out.
// The endpoint may return either a bare array or a paginated envelope.
func (c *Client) ListProjects(ctx context.Context, token string) ([]Project, error) {
	if token == "" {
		return nil, ErrMissingToken
	}

	var projects []Project
	cursor := ""

	for {
		page, next, err := c.fetchProjectsPage(ctx, token, cursor)
		if err != nil {
			return nil, err
		}
		projects = append(projects, page...)

		if next == "" {
			break
		}
		cursor = next
	}

	return projects, nil
}

func (c *Client) fetchProjectsPage(ctx context.Context, token, cursor string) ([]Project, string, error) {
	endpoint := c.baseURL + projectsPath
	if cursor != "" {
		endpoint += "?cursor=" + url.QueryEscape(cursor)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, "", fmt.Errorf("todoist: failed to create request: %w", err)
	}
	httpReq.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, "", fmt.Errorf("todoist: failed to call API: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", fmt.Errorf("todoist: failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, "", &APIError{StatusCode: resp.StatusCode, Detail: string(raw)}
	}

	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var list []Project
		if err := json.Unmarshal(trimmed, &list); err != nil {
			return nil, "", fmt.Errorf("todoist: failed to decode project list: %w", err)
		}
		return list, "", nil
	}

	var page projectsPage
	if err := json.Unmarshal(trimmed, &page); err != nil {
		return nil, "", fmt.Errorf("todoist: failed to decode project page: %w", err)
	}
	if page.Results == nil {
		return nil, "", fmt.Errorf("todoist: project response is missing results list")
	}

	return page.Results, page.NextCursor, nil
}

var _ ITodoist = (*Client)(nil)
