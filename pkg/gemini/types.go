package gemini

import (
	"fmt"
	"net/http"
)

// Config holds client configuration.
type Config struct {
	APIKey     string
	Model      string
	APIURL     string
	HTTPClient *http.Client
}

// Validate checks required fields and applies defaults.
func (c *Config) Validate() error {
	if c.APIKey == "" {
		return fmt.Errorf("gemini: API key is required")
	}
	if c.Model == "" {
		c.Model = DefaultModel
	}
	if c.APIURL == "" {
		c.APIURL = DefaultAPIURL
	}
	if c.HTTPClient == nil {
		c.HTTPClient = &http.Client{Timeout: DefaultTimeout}
	}
	return nil
}

// Request is a normalized generation request.
type Request struct {
	SystemInstruction *Content
	Messages          []Content
	Tools             []Tool
	Temperature       float64
	MaxTokens         int
	// ResponseJSON constrains the model to emit raw JSON
	// (generationConfig.responseMimeType).
	ResponseJSON bool
}

// Content wraps a list of Part objects to form a message.
type Content struct {
	Role  string
	Parts []Part
}

// Part holds a text segment or a function call for a content message.
type Part struct {
	Text             string
	FunctionCall     *FunctionCall
	FunctionResponse *FunctionResponse
}

// Tool represents a function declaration.
type Tool struct {
	Name        string
	Description string
	Parameters  map[string]interface{} // JSON Schema
}

// FunctionCall represents a model's request to call a function.
type FunctionCall struct {
	Name string
	Args map[string]interface{}
}

// FunctionResponse represents the result of a function call executed by the client.
type FunctionResponse struct {
	Name     string
	Response interface{}
}

// Response is a normalized generation response.
type Response struct {
	Content Content
	Usage   *Usage
}

// Usage tracks token consumption.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}

// ---- Gemini API wire format ----

type geminiRequest struct {
	SystemInstruction *geminiContent          `json:"system_instruction,omitempty"`
	Contents          []geminiContent         `json:"contents"`
	Tools             []geminiTool            `json:"tools,omitempty"`
	GenerationConfig  *geminiGenerationConfig `json:"generationConfig,omitempty"`
}

type geminiContent struct {
	Role  string       `json:"role,omitempty"`
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text             string                  `json:"text,omitempty"`
	FunctionCall     *geminiFunctionCall     `json:"functionCall,omitempty"`
	FunctionResponse *geminiFunctionResponse `json:"functionResponse,omitempty"`
}

type geminiTool struct {
	FunctionDeclarations []geminiFunctionDeclaration `json:"functionDeclarations,omitempty"`
}

type geminiFunctionDeclaration struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	Parameters  map[string]interface{} `json:"parameters,omitempty"`
}

type geminiFunctionCall struct {
	Name string                 `json:"name"`
	Args map[string]interface{} `json:"args"`
}

type geminiFunctionResponse struct {
	Name     string      `json:"name"`
	Response interface{} `json:"response"`
}

type geminiGenerationConfig struct {
	Temperature      float64 `json:"temperature,omitempty"`
	MaxOutputTokens  int     `json:"maxOutputTokens,omitempty"`
	ResponseMimeType string  `json:"responseMimeType,omitempty"`
}

type geminiResponse struct {
	Candidates    []geminiCandidate    `json:"candidates"`
	UsageMetadata *geminiUsageMetadata `json:"usageMetadata,omitempty"`
}

type geminiCandidate struct {
	Content geminiContent `json:"content"`
}

type geminiUsageMetadata struct {
	PromptTokenCount     int `json:"promptTokenCount"`
	CandidatesTokenCount int `json:"candidatesTokenCount"`
	TotalTokenCount      int `json:"totalTokenCount"`
}
