package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

type openaiImpl struct {
	apiKey     string
	model      string
	baseURL    string
	httpClient *http.Client
}

func newOpenAIImpl(cfg Config) *openaiImpl {
	return &openaiImpl{
		apiKey:     cfg.APIKey,
		model:      cfg.Model,
		baseURL:    cfg.BaseURL,
		httpClient: cfg.HTTPClient,
	}
}

// GenerateContent sends a generation request to the chat completions API
func (o *openaiImpl) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	chatReq := o.transformRequest(req)
	chatResp, err := o.callAPI(ctx, chatReq)
	if err != nil {
		return nil, err
	}
	return transformResponse(chatResp)
}

// Model returns the model being used
func (o *openaiImpl) Model() string {
	return o.model
}

func (o *openaiImpl) callAPI(ctx context.Context, req chatRequest) (*chatResponse, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("openai: failed to marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/chat/completions", o.baseURL)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("openai: failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+o.apiKey)

	resp, err := o.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("openai: failed to call API: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("openai: failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var errResp ErrorResponse
		if jsonErr := json.Unmarshal(raw, &errResp); jsonErr == nil && errResp.Error.Message != "" {
			return nil, fmt.Errorf("openai: API error %d: %s", resp.StatusCode, errResp.Error.Message)
		}
		return nil, fmt.Errorf("openai: API error %d: %s", resp.StatusCode, string(raw))
	}

	var result chatResponse
	if err := json.Unmarshal(raw, &result); err != nil {
		return nil, fmt.Errorf("openai: failed to decode response: %w", err)
	}
	return &result, nil
}

// transformRequest converts the normalized request into the chat wire format.
func (o *openaiImpl) transformRequest(req *Request) chatRequest {
	chatReq := chatRequest{
		Model:       o.model,
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	}
	if req.Model != "" {
		chatReq.Model = req.Model
	}

	if req.SystemInstruction != nil {
		chatReq.Messages = append(chatReq.Messages, chatMessage{
			Role:    "system",
			Content: joinTextParts(req.SystemInstruction.Parts),
		})
	}

	for _, msg := range req.Messages {
		role := msg.Role
		if role == "" {
			role = "user"
		}
		chatReq.Messages = append(chatReq.Messages, chatMessage{
			Role:    role,
			Content: joinTextParts(msg.Parts),
		})
	}

	for _, tool := range req.Tools {
		chatReq.Tools = append(chatReq.Tools, chatTool{
			Type: "function",
			Function: chatFunction{
				Name:        tool.Name,
				Description: tool.Description,
				Parameters:  tool.Parameters,
			},
		})
	}

	if req.ForceTool != "" {
		chatReq.ToolChoice = map[string]interface{}{
			"type":     "function",
			"function": map[string]string{"name": req.ForceTool},
		}
	}

	return chatReq
}

// transformResponse converts the chat wire format into the normalized response.
// Tool-call arguments arrive JSON-encoded; they are decoded into Args here so
// callers see the same FunctionCall shape regardless of provider.
func transformResponse(resp *chatResponse) (*Response, error) {
	out := &Response{
		Usage: &Usage{
			InputTokens:  resp.Usage.PromptTokens,
			OutputTokens: resp.Usage.CompletionTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		},
	}

	if len(resp.Choices) == 0 {
		return out, nil
	}

	msg := resp.Choices[0].Message
	content := Content{Role: msg.Role}

	if text := strings.TrimSpace(msg.Content); text != "" {
		content.Parts = append(content.Parts, Part{Text: text})
	}

	for _, call := range msg.ToolCalls {
		var args map[string]interface{}
		if err := json.Unmarshal([]byte(call.Function.Arguments), &args); err != nil {
			return nil, fmt.Errorf("openai: failed to decode tool call arguments: %w", err)
		}
		content.Parts = append(content.Parts, Part{
			FunctionCall: &FunctionCall{
				Name: call.Function.Name,
				Args: args,
			},
		})
	}

	out.Content = content
	return out, nil
}

func joinTextParts(parts []Part) string {
	var sb strings.Builder
	for _, p := range parts {
		if p.Text == "" {
			continue
		}
		if sb.Len() > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(p.Text)
	}
	return sb.String()
}
