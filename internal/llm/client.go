package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// Message roles. These mirror the values the Gemini chat API expects, and
// double as the role values persisted with chat history.
const (
	RoleUser  = "user"
	RoleModel = "model"
)

// Message is a single turn in a conversation passed to the model.
type Message struct {
	Role    string
	Content string
}

// Client is an abstraction over the LLM provider
type Client interface {
	// Complete generates a text reply to the conversation, conditioned on
	// the system instruction. The last message must have role "user".
	Complete(ctx context.Context, system string, msgs []Message, tier ModelTier) (string, error)
	// CompleteJSON is Complete with the response constrained to JSON
	CompleteJSON(ctx context.Context, system string, msgs []Message, tier ModelTier) (string, error)
	// GetModel returns the underlying provider model for a tier
	GetModel(tier ModelTier) string
	// Close releases any resources held by the client
	Close() error
}

// GeminiClient implements Client for Google Gemini
type GeminiClient struct {
	client *genai.Client
	config *Config
}

// NewGeminiClient creates a new Gemini client
func NewGeminiClient(ctx context.Context, config *Config, apiKey string) (*GeminiClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("API key is required")
	}
	if config == nil {
		config = DefaultConfig()
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiClient{
		client: client,
		config: config,
	}, nil
}

// Complete generates a text reply to the conversation
func (c *GeminiClient) Complete(ctx context.Context, system string, msgs []Message, tier ModelTier) (string, error) {
	model, err := c.model(tier, system, "")
	if err != nil {
		return "", err
	}
	return c.send(ctx, model, msgs)
}

// CompleteJSON generates a reply with the response MIME type forced to JSON.
// Any markdown code fences the model adds anyway are stripped.
func (c *GeminiClient) CompleteJSON(ctx context.Context, system string, msgs []Message, tier ModelTier) (string, error) {
	model, err := c.model(tier, system, "application/json")
	if err != nil {
		return "", err
	}
	text, err := c.send(ctx, model, msgs)
	if err != nil {
		return "", err
	}
	return CleanJSONBlock(text), nil
}

// GetModel returns the model name for a tier
func (c *GeminiClient) GetModel(tier ModelTier) string {
	return c.config.GetModel(tier)
}

// Close releases resources held by the client
func (c *GeminiClient) Close() error {
	if c.client != nil {
		return c.client.Close()
	}
	return nil
}

func (c *GeminiClient) model(tier ModelTier, system, mimeType string) (*genai.GenerativeModel, error) {
	modelName := c.config.GetModel(tier)
	if modelName == "" {
		return nil, fmt.Errorf("no model configured for tier %s", tier)
	}

	model := c.client.GenerativeModel(modelName)
	model.SetTemperature(0.1) // Low temperature for consistent output
	if mimeType != "" {
		model.ResponseMIMEType = mimeType
	}
	if system != "" {
		model.SystemInstruction = &genai.Content{
			Parts: []genai.Part{genai.Text(system)},
		}
	}
	return model, nil
}

// send replays all but the last message as chat history and sends the last
// message as the live turn.
func (c *GeminiClient) send(ctx context.Context, model *genai.GenerativeModel, msgs []Message) (string, error) {
	if len(msgs) == 0 {
		return "", fmt.Errorf("no messages to send")
	}
	last := msgs[len(msgs)-1]
	if last.Role != RoleUser {
		return "", fmt.Errorf("last message must have role %q, got %q", RoleUser, last.Role)
	}

	session := model.StartChat()
	for _, m := range msgs[:len(msgs)-1] {
		session.History = append(session.History, &genai.Content{
			Role:  m.Role,
			Parts: []genai.Part{genai.Text(m.Content)},
		})
	}

	resp, err := session.SendMessage(ctx, genai.Text(last.Content))
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}

	return extractTextFromResponse(resp)
}

// extractTextFromResponse extracts text from Gemini API response
func extractTextFromResponse(resp *genai.GenerateContentResponse) (string, error) {
	if len(resp.Candidates) == 0 {
		return "", fmt.Errorf("no candidates in response")
	}

	candidate := resp.Candidates[0]
	if candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		return "", fmt.Errorf("no content in response")
	}

	var parts []string
	for _, part := range candidate.Content.Parts {
		if text, ok := part.(genai.Text); ok {
			parts = append(parts, string(text))
		}
	}

	if len(parts) == 0 {
		return "", fmt.Errorf("no text parts in response")
	}

	return strings.Join(parts, ""), nil
}
