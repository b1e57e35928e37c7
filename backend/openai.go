package backend

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/sashabaranov/go-openai"

	"github.com/veznalabs/glot"
)

// OpenAIBackend implements Backend using OpenAI's chat completion API.
type OpenAIBackend struct {
	client      *openai.Client
	model       string
	temperature float32
}

// OpenAIConfig holds configuration for the OpenAI backend.
type OpenAIConfig struct {
	APIKey      string  // OpenAI API key
	Model       string  // Model to use (default: "gpt-4o-mini")
	Temperature float32 // Temperature for generation (default: 0.3)
	BaseURL     string  // Custom base URL (optional)
}

// NewOpenAIBackend creates a new OpenAI backend.
func NewOpenAIBackend(cfg OpenAIConfig) *OpenAIBackend {
	config := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		config.BaseURL = cfg.BaseURL
	}

	model := cfg.Model
	if model == "" {
		model = "gpt-4o-mini"
	}

	temperature := cfg.Temperature
	if temperature == 0 {
		temperature = 0.3
	}

	return &OpenAIBackend{
		client:      openai.NewClientWithConfig(config),
		model:       model,
		temperature: temperature,
	}
}

// Translate implements Backend using a chat completion.
func (b *OpenAIBackend) Translate(ctx context.Context, text, source, target string) (Result, error) {
	systemPrompt := buildSystemPrompt(source, target)

	resp, err := b.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: b.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: text},
		},
		Temperature: b.temperature,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
	})
	if err != nil {
		return Result{}, &glot.BackendError{
			Message:   "OpenAI API call failed",
			Cause:     err,
			Retryable: isRetryableError(err),
		}
	}

	if len(resp.Choices) == 0 {
		return Result{}, &glot.BackendError{
			Message:   "no response from OpenAI",
			Retryable: true,
		}
	}

	return parseOpenAIResponse(resp.Choices[0].Message.Content)
}

// buildSystemPrompt instructs the model to translate and report the detected
// source as an ISO 639-1 code.
func buildSystemPrompt(source, target string) string {
	targetName := languageName(target)

	var sb strings.Builder
	fmt.Fprintf(&sb, "You are an expert native translator. Translate the user's text into idiomatic %s.\n", targetName)

	if source == glot.SourceAuto || source == "" {
		sb.WriteString("Detect the source language of the text.\n")
	} else {
		fmt.Fprintf(&sb, "The source language is %s.\n", languageName(source))
	}

	sb.WriteString(`Rules:
- Preserve meaningful whitespace and punctuation conventions of the target language.
- Do NOT translate URLs, email addresses, or content inside backticks.
- Never translate idioms literally; use natural equivalents.

Return a valid JSON object with exactly two keys:
  "translation": the translated text
  "detected_source": the ISO 639-1 code of the source language (lowercase)
Do NOT wrap the JSON in Markdown code blocks.`)

	return sb.String()
}

// languageName resolves an ISO code to a display name for the prompt,
// falling back to the code itself.
func languageName(code string) string {
	if names := glot.NamesFor(code); len(names) > 0 {
		return names[0]
	}
	return code
}

func parseOpenAIResponse(content string) (Result, error) {
	var payload struct {
		Translation    string `json:"translation"`
		DetectedSource string `json:"detected_source"`
	}
	if err := json.Unmarshal([]byte(content), &payload); err != nil {
		return Result{}, &glot.BackendError{
			Message:   "invalid response format from OpenAI",
			Cause:     err,
			Retryable: false,
		}
	}

	return Result{
		Text:           payload.Translation,
		DetectedSource: strings.ToLower(strings.TrimSpace(payload.DetectedSource)),
	}, nil
}

func isRetryableError(err error) bool {
	// Check for common retryable conditions
	errStr := strings.ToLower(err.Error())
	retryablePatterns := []string{
		"rate limit",
		"timeout",
		"connection refused",
		"temporary",
		"503",
		"502",
		"429",
	}

	for _, pattern := range retryablePatterns {
		if strings.Contains(errStr, pattern) {
			return true
		}
	}
	return false
}

// Verify OpenAIBackend implements Backend
var _ Backend = (*OpenAIBackend)(nil)
