package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"voice-task-uploader/internal/dictation"
	"voice-task-uploader/internal/model"
	"voice-task-uploader/pkg/llmprovider"
)

// suggestionToolName is the function the model is forced to call so the
// response always carries the suggestion shape.
const suggestionToolName = "create_todo_suggestion"

// suggest asks the provider chain for a structured task suggestion and
// post-processes the chosen project against the allowed list.
func (uc *implUseCase) suggest(ctx context.Context, acc model.Account, transcript string, allowed []string) (*model.Suggestion, error) {
	req := &llmprovider.Request{
		SystemInstruction: &llmprovider.Message{
			Role:  "system",
			Parts: []llmprovider.Part{{Text: buildInstruction(acc.Settings.TodoPrompt, allowed)}},
		},
		Messages: []llmprovider.Message{
			{Role: "user", Parts: []llmprovider.Part{{Text: "Transcript:\n" + strings.TrimSpace(transcript)}}},
		},
		Tools:        []llmprovider.Tool{suggestionTool()},
		ForceTool:    suggestionToolName,
		ResponseJSON: true,
		Model:        acc.Settings.OpenAITextModel,
	}

	resp, err := uc.llm.GenerateContent(ctx, req)
	if err != nil {
		return nil, err
	}

	suggestion, err := decodeSuggestion(resp)
	if err != nil {
		return nil, err
	}

	suggestion.Project = canonicalizeProject(suggestion.Project, allowed)
	return suggestion, nil
}

// buildInstruction assembles the system prompt: the fixed extraction
// instruction, the allowed project list, and the account's own prompt.
func buildInstruction(accountPrompt string, allowed []string) string {
	var b strings.Builder

	b.WriteString("You are an expert productivity assistant. Read the provided transcript and produce a structured summary.\n")
	b.WriteString("Return the output with the following fields: project, task_summary, tasks, priority, due_date, labels.\n")

	if len(allowed) > 0 {
		b.WriteString("- project: string value, one of the allowed project types listed below.\n")
		b.WriteString("Allowed project types:\n")
		for _, name := range allowed {
			b.WriteString("- " + name + "\n")
		}
	} else {
		b.WriteString("- project: string value. No predefined project types were supplied. If the transcript references a project, use its name.\n")
	}

	b.WriteString("- task_summary: 1-2 sentence summary of the overall task.\n")
	b.WriteString("- tasks: array of concise, actionable to-do items (each item is a short sentence).\n")
	b.WriteString("- priority: integer 1-4, where 4 is highest priority, 1 is lowest. Default to 1 when unspecified.\n")
	fmt.Fprintf(&b, "- due_date: date in YYYY-MM-DD format. Consider today's date: %s. If the mentioned timeline falls before today, use next year.\n",
		time.Now().Format("2006-01-02"))
	b.WriteString("- labels: array of short label strings.\n")

	if prompt := strings.TrimSpace(accountPrompt); prompt != "" {
		b.WriteString("\n")
		b.WriteString(prompt)
	}

	return b.String()
}

// suggestionTool is the function declaration matching model.Suggestion.
func suggestionTool() llmprovider.Tool {
	return llmprovider.Tool{
		Name:        suggestionToolName,
		Description: "Record the structured task suggestion extracted from the transcript.",
		Parameters: map[string]interface{}{
			"type": "object",
			"properties": map[string]interface{}{
				"project": map[string]interface{}{
					"type":        "string",
					"description": "Project label for the task.",
				},
				"task_summary": map[string]interface{}{
					"type":        "string",
					"description": "Succinct summary of the task.",
				},
				"tasks": map[string]interface{}{
					"type":        "array",
					"items":       map[string]interface{}{"type": "string"},
					"description": "Clear, actionable to-do items for executing the task.",
				},
				"priority": map[string]interface{}{
					"type":        "integer",
					"minimum":     1,
					"maximum":     4,
					"description": "Priority from 4 (highest) to 1 (lowest).",
				},
				"due_date": map[string]interface{}{
					"type":        "string",
					"description": "Due date in YYYY-MM-DD format.",
				},
				"labels": map[string]interface{}{
					"type":        "array",
					"items":       map[string]interface{}{"type": "string"},
					"description": "Labels for the task.",
				},
			},
			"required": []string{"project", "task_summary", "tasks", "priority"},
		},
	}
}

// decodeSuggestion extracts the suggestion from either a forced tool call
// or a raw JSON text part, depending on which provider answered.
func decodeSuggestion(resp *llmprovider.Response) (*model.Suggestion, error) {
	for _, part := range resp.Content.Parts {
		if part.FunctionCall != nil && part.FunctionCall.Name == suggestionToolName {
			return suggestionFromArgs(part.FunctionCall.Args)
		}
	}

	for _, part := range resp.Content.Parts {
		if text := strings.TrimSpace(part.Text); text != "" {
			return suggestionFromJSON(text)
		}
	}

	return nil, dictation.ErrMalformedResponse
}

func suggestionFromArgs(args map[string]interface{}) (*model.Suggestion, error) {
	raw, err := json.Marshal(args)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", dictation.ErrMalformedResponse, err)
	}
	return suggestionFromJSON(string(raw))
}

func suggestionFromJSON(text string) (*model.Suggestion, error) {
	var suggestion model.Suggestion
	if err := json.Unmarshal([]byte(stripCodeFence(text)), &suggestion); err != nil {
		return nil, fmt.Errorf("%w: %v", dictation.ErrMalformedResponse, err)
	}

	if strings.TrimSpace(suggestion.TaskSummary) == "" {
		return nil, dictation.ErrMalformedResponse
	}
	if suggestion.Priority < 1 || suggestion.Priority > 4 {
		return nil, dictation.ErrMalformedResponse
	}

	return &suggestion, nil
}

// stripCodeFence removes a ```json ... ``` wrapper some models insist on.
func stripCodeFence(text string) string {
	text = strings.TrimSpace(text)
	if !strings.HasPrefix(text, "```") {
		return text
	}

	text = strings.TrimPrefix(text, "```")
	if idx := strings.Index(text, "\n"); idx >= 0 {
		text = text[idx+1:]
	}
	text = strings.TrimSuffix(strings.TrimSpace(text), "```")
	return strings.TrimSpace(text)
}

// canonicalizeProject applies the new-project sentinel policy: with a
// non-empty allowed list, a case-insensitive match is rewritten to the
// canonical casing and anything else gets the sentinel prefix. An empty
// allowed list passes the project through unmodified.
func canonicalizeProject(project string, allowed []string) string {
	project = strings.TrimSpace(project)
	if project == "" || len(allowed) == 0 {
		return project
	}

	if strings.HasPrefix(strings.ToUpper(project), "NEWPROJECT") {
		return project
	}

	for _, name := range allowed {
		if strings.EqualFold(project, strings.TrimSpace(name)) {
			return strings.TrimSpace(name)
		}
	}

	return model.NewProjectPrefix + project
}
