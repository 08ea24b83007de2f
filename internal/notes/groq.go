package notes

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
)

const (
	groqBaseURL = "https://api.groq.com/openai"
	groqModel   = "llama-3.3-70b-versatile"
)

// GroqClient wraps Groq's OpenAI-compatible chat completion API. It is the
// secondary notes provider tried when the primary fails.
type GroqClient struct {
	apiKey     string
	baseURL    string
	model      string
	httpClient *http.Client
}

// GroqOption customizes the client.
type GroqOption func(*GroqClient)

// WithGroqBaseURL overrides the API base (useful for tests/mocks).
func WithGroqBaseURL(base string) GroqOption {
	return func(c *GroqClient) {
		base = strings.TrimSpace(base)
		if base != "" {
			c.baseURL = strings.TrimRight(base, "/")
		}
	}
}

// WithGroqModel overrides the default model.
func WithGroqModel(model string) GroqOption {
	return func(c *GroqClient) {
		if model != "" {
			c.model = model
		}
	}
}

// NewGroqClient constructs a Groq API client.
func NewGroqClient(apiKey string, opts ...GroqOption) *GroqClient {
	c := &GroqClient{
		apiKey:     strings.TrimSpace(apiKey),
		baseURL:    groqBaseURL,
		model:      groqModel,
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type groqRequest struct {
	Model       string        `json:"model"`
	Messages    []groqMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
}

type groqMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type groqResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// GenerateNotes asks the chat-completions API for markdown notes from the
// transcript.
func (c *GroqClient) GenerateNotes(ctx context.Context, transcript string) (string, error) {
	if c.apiKey == "" {
		return "", errors.New("groq: api key required")
	}

	body, err := json.Marshal(groqRequest{
		Model: c.model,
		Messages: []groqMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: "Generate meeting notes from this transcript:\n\n" + transcript},
		},
		Temperature: 0.7,
		MaxTokens:   maxNotesTokens,
	})
	if err != nil {
		return "", fmt.Errorf("marshaling request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("executing request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return "", fmt.Errorf("unexpected status %d: %s", resp.StatusCode, string(respBody))
	}

	var parsed groqResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("decoding response: %w", err)
	}
	if len(parsed.Choices) == 0 || parsed.Choices[0].Message.Content == "" {
		return "", errors.New("empty completion")
	}
	return parsed.Choices[0].Message.Content, nil
}
