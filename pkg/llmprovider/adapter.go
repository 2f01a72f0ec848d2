package llmprovider

import (
	"context"

	"voice-task-uploader/pkg/gemini"
	"voice-task-uploader/pkg/openai"
)

// OpenAIAdapter adapts pkg/openai to llmprovider.Provider interface
type OpenAIAdapter struct {
	client openai.IOpenAI
}

// NewOpenAIAdapter creates a new OpenAI adapter
func NewOpenAIAdapter(client openai.IOpenAI) *OpenAIAdapter {
	return &OpenAIAdapter{client: client}
}

// GenerateContent implements Provider interface
func (a *OpenAIAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	openaiReq := &openai.Request{
		SystemInstruction: convertToOpenAIContent(req.SystemInstruction),
		Messages:          convertToOpenAIContents(req.Messages),
		Tools:             convertToOpenAITools(req.Tools),
		ForceTool:         req.ForceTool,
		Temperature:       req.Temperature,
		MaxTokens:         req.MaxTokens,
		Model:             req.Model,
	}

	resp, err := a.client.GenerateContent(ctx, openaiReq)
	if err != nil {
		return nil, err
	}

	model := a.client.Model()
	if req.Model != "" {
		model = req.Model
	}

	out := &Response{
		Content:      convertFromOpenAIContent(resp.Content),
		ProviderName: "openai",
		ModelName:    model,
	}
	if resp.Usage != nil {
		out.Usage = &Usage{
			InputTokens:  resp.Usage.InputTokens,
			OutputTokens: resp.Usage.OutputTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		}
	}
	return out, nil
}

// Name returns provider name
func (a *OpenAIAdapter) Name() string {
	return "openai"
}

// Model returns model name
func (a *OpenAIAdapter) Model() string {
	return a.client.Model()
}

// GeminiAdapter adapts pkg/gemini to llmprovider.Provider interface
type GeminiAdapter struct {
	client gemini.IGemini
}

// NewGeminiAdapter creates a new Gemini adapter
func NewGeminiAdapter(client gemini.IGemini) *GeminiAdapter {
	return &GeminiAdapter{client: client}
}

// GenerateContent implements Provider interface
func (a *GeminiAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	geminiReq := &gemini.Request{
		SystemInstruction: convertToGeminiContent(req.SystemInstruction),
		Messages:          convertToGeminiContents(req.Messages),
		Temperature:       req.Temperature,
		MaxTokens:         req.MaxTokens,
	}

	// Gemini cannot combine a JSON response mime type with function
	// declarations, so a structured-output request drops the tools and
	// relies on the JSON constraint instead.
	if req.ResponseJSON {
		geminiReq.ResponseJSON = true
	} else {
		geminiReq.Tools = convertToGeminiTools(req.Tools)
	}

	resp, err := a.client.GenerateContent(ctx, geminiReq)
	if err != nil {
		return nil, err
	}

	out := &Response{
		Content:      convertFromGeminiContent(resp.Content),
		ProviderName: "gemini",
		ModelName:    a.client.Model(),
	}
	if resp.Usage != nil {
		out.Usage = &Usage{
			InputTokens:  resp.Usage.InputTokens,
			OutputTokens: resp.Usage.OutputTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		}
	}
	return out, nil
}

// Name returns provider name
func (a *GeminiAdapter) Name() string {
	return "gemini"
}

// Model returns model name
func (a *GeminiAdapter) Model() string {
	return a.client.Model()
}

// Conversion helpers for OpenAI
func convertToOpenAIContent(msg *Message) *openai.Content {
	if msg == nil {
		return nil
	}
	parts := make([]openai.Part, len(msg.Parts))
	for i, p := range msg.Parts {
		parts[i] = openai.Part{Text: p.Text}
		if p.FunctionCall != nil {
			parts[i].FunctionCall = &openai.FunctionCall{
				Name: p.FunctionCall.Name,
				Args: p.FunctionCall.Args,
			}
		}
		if p.FunctionResponse != nil {
			parts[i].FunctionResponse = &openai.FunctionResponse{
				Name:     p.FunctionResponse.Name,
				Response: p.FunctionResponse.Response,
			}
		}
	}
	return &openai.Content{Role: msg.Role, Parts: parts}
}

func convertToOpenAIContents(msgs []Message) []openai.Content {
	contents := make([]openai.Content, len(msgs))
	for i, msg := range msgs {
		contents[i] = *convertToOpenAIContent(&msg)
	}
	return contents
}

func convertToOpenAITools(tools []Tool) []openai.Tool {
	openaiTools := make([]openai.Tool, len(tools))
	for i, t := range tools {
		openaiTools[i] = openai.Tool{
			Name:        t.Name,
			Description: t.Description,
			Parameters:  t.Parameters,
		}
	}
	return openaiTools
}

func convertFromOpenAIContent(content openai.Content) Message {
	parts := make([]Part, len(content.Parts))
	for i, p := range content.Parts {
		parts[i] = Part{Text: p.Text}
		if p.FunctionCall != nil {
			parts[i].FunctionCall = &FunctionCall{
				Name: p.FunctionCall.Name,
				Args: p.FunctionCall.Args,
			}
		}
		if p.FunctionResponse != nil {
			parts[i].FunctionResponse = &FunctionResponse{
				Name:     p.FunctionResponse.Name,
				Response: p.FunctionResponse.Response,
			}
		}
	}
	return Message{Role: content.Role, Parts: parts}
}

// Conversion helpers for Gemini
func convertToGeminiContent(msg *Message) *gemini.Content {
	if msg == nil {
		return nil
	}
	parts := make([]gemini.Part, len(msg.Parts))
	for i, p := range msg.Parts {
		parts[i] = gemini.Part{Text: p.Text}
		if p.FunctionCall != nil {
			parts[i].FunctionCall = &gemini.FunctionCall{
				Name: p.FunctionCall.Name,
				Args: p.FunctionCall.Args,
			}
		}
		if p.FunctionResponse != nil {
			parts[i].FunctionResponse = &gemini.FunctionResponse{
				Name:     p.FunctionResponse.Name,
				Response: p.FunctionResponse.Response,
			}
		}
	}
	return &gemini.Content{Role: msg.Role, Parts: parts}
}

func convertToGeminiContents(msgs []Message) []gemini.Content {
	contents := make([]gemini.Content, len(msgs))
	for i, msg := range msgs {
		contents[i] = *convertToGeminiContent(&msg)
	}
	return contents
}

func convertToGeminiTools(tools []Tool) []gemini.Tool {
	geminiTools := make([]gemini.Tool, len(tools))
	for i, t := range tools {
		geminiTools[i] = gemini.Tool{
			Name:        t.Name,
			Description: t.Description,
			Parameters:  t.Parameters,
		}
	}
	return geminiTools
}

func convertFromGeminiContent(content gemini.Content) Message {
	parts := make([]Part, len(content.Parts))
	for i, p := range content.Parts {
		parts[i] = Part{Text: p.Text}
		if p.FunctionCall != nil {
			parts[i].FunctionCall = &FunctionCall{
				Name: p.FunctionCall.Name,
				Args: p.FunctionCall.Args,
			}
		}
		if p.FunctionResponse != nil {
			parts[i].FunctionResponse = &FunctionResponse{
				Name:     p.FunctionResponse.Name,
				Response: p.FunctionResponse.Response,
			}
		}
	}
	return Message{Role: content.Role, Parts: parts}
}
