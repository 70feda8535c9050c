// Package generative produces structured dictionary entries and free-text
// translations by calling an external text-completion endpoint. The model's
// output is untrusted free text; entry generation extracts and validates a
// JSON object out of it before returning anything to callers.
package generative

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/tdhoang/vocadict-backend/internal/config"
	"github.com/tdhoang/vocadict-backend/internal/domain"
	"github.com/tdhoang/vocadict-backend/internal/provider"
)

const (
	// entryMaxTokens is sized for a full entry: pronunciations, several
	// definitions with examples, word forms, and synonyms.
	entryMaxTokens = 1500

	// translateMaxTokens is sized for a short passage.
	translateMaxTokens = 500
)

// Client calls a text-completion endpoint
// (POST {model, prompt, temperature, max_tokens, stop[]}).
type Client struct {
	baseURL     string
	apiKey      string
	model       string
	temperature float64
	timeout     time.Duration
	httpClient  *http.Client
	log         *slog.Logger
}

// NewClient creates a Client from CompletionConfig.
func NewClient(cfg config.CompletionConfig, logger *slog.Logger) *Client {
	return &Client{
		baseURL:     cfg.BaseURL,
		apiKey:      cfg.APIKey,
		model:       cfg.Model,
		temperature: cfg.Temperature,
		timeout:     cfg.Timeout,
		httpClient:  &http.Client{Timeout: cfg.Timeout},
		log:         logger.With("adapter", "generative"),
	}
}

// NewClientWithURL creates a Client with a custom endpoint (for testing).
func NewClientWithURL(baseURL, model string, logger *slog.Logger) *Client {
	return &Client{
		baseURL:     baseURL,
		model:       model,
		temperature: 0.3,
		timeout:     30 * time.Second,
		httpClient:  &http.Client{Timeout: 30 * time.Second},
		log:         logger.With("adapter", "generative"),
	}
}

// completionRequest is the wire format of the completion endpoint.
type completionRequest struct {
	Model       string   `json:"model"`
	Prompt      string   `json:"prompt"`
	Temperature float64  `json:"temperature"`
	MaxTokens   int      `json:"max_tokens"`
	Stop        []string `json:"stop"`
}

type completionResponse struct {
	Choices []completionChoice `json:"choices"`
}

type completionChoice struct {
	Text         string `json:"text"`
	FinishReason string `json:"finish_reason"`
}

// GenerateEntry prompts the model for a full dictionary entry for a word
// the store does not have, then extracts and validates the JSON object
// from the free-text completion.
func (c *Client) GenerateEntry(ctx context.Context, word string) (*provider.GeneratedEntry, error) {
	text, err := c.complete(ctx, entryPrompt(word), entryMaxTokens)
	if err != nil {
		return nil, err
	}

	jsonStr, err := extractJSON(text)
	if err != nil {
		c.log.WarnContext(ctx, "completion contained no JSON", slog.String("word", word))
		return nil, fmt.Errorf("entry for %q: %w", word, domain.ErrGenerationUnparsable)
	}

	var entry provider.GeneratedEntry
	if err := json.Unmarshal([]byte(jsonStr), &entry); err != nil {
		c.log.WarnContext(ctx, "completion JSON undecodable", slog.String("word", word), slog.String("error", err.Error()))
		return nil, fmt.Errorf("entry for %q: %w", word, domain.ErrGenerationUnparsable)
	}

	if err := validateEntry(&entry); err != nil {
		c.log.WarnContext(ctx, "generated entry failed schema check", slog.String("word", word), slog.String("error", err.Error()))
		return nil, fmt.Errorf("entry for %q: %s: %w", word, err, domain.ErrGenerationUnparsable)
	}

	return &entry, nil
}

// Translate returns the trimmed completion for a free-text translation
// prompt. No JSON is expected and no post-processing is applied beyond
// trimming.
func (c *Client) Translate(ctx context.Context, text, sourceCode, targetCode string) (string, error) {
	prompt := translatePrompt(text, languageName(sourceCode), languageName(targetCode))

	out, err := c.complete(ctx, prompt, translateMaxTokens)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(out), nil
}

// complete performs one completion call and returns choices[0].text.
func (c *Client) complete(ctx context.Context, prompt string, maxTokens int) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	payload, err := json.Marshal(completionRequest{
		Model:       c.model,
		Prompt:      prompt,
		Temperature: c.temperature,
		MaxTokens:   maxTokens,
		Stop:        stopSequences,
	})
	if err != nil {
		return "", fmt.Errorf("completion: marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("completion: create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if isTimeout(err) {
			return "", fmt.Errorf("completion: %w", domain.ErrUpstreamTimeout)
		}
		return "", fmt.Errorf("completion: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("completion: unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("completion: read body: %w", err)
	}

	var cr completionResponse
	if err := json.Unmarshal(body, &cr); err != nil {
		return "", fmt.Errorf("completion: decode response: %w", err)
	}
	if len(cr.Choices) == 0 {
		return "", fmt.Errorf("completion: empty choices")
	}

	return cr.Choices[0].Text, nil
}

// isTimeout reports whether the transport error was a deadline problem
// rather than a connection one.
func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var t interface{ Timeout() bool }
	return errors.As(err, &t) && t.Timeout()
}
