// Package ai provides the HTTPS client for the chat-completion service.
//
// A Client is bound to one credential at construction time and issues exactly
// one POST per Infer call: no retries, no streaming, a hard timeout. Every
// failure is returned as a *domain.InferenceError so callers can tell a
// rejected credential from a network problem or a broken response.
package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/neuron-cli/neuron/internal/domain"
	"github.com/neuron-cli/neuron/internal/ports"
)

// Client implements ports.InferenceClient against an OpenAI-compatible endpoint.
type Client struct {
	credential domain.Credential
	endpoint   string
	httpClient *http.Client
	logger     ports.Logger
}

// Option customizes a Client.
type Option func(*Client)

// WithEndpoint overrides the completion endpoint.
func WithEndpoint(endpoint string) Option {
	return func(c *Client) {
		c.endpoint = endpoint
	}
}

// WithHTTPClient replaces the HTTP client. Its timeout is still forced to
// domain.InferenceTimeout when unset.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		c.httpClient = client
	}
}

// WithLogger attaches a logger for request diagnostics.
func WithLogger(logger ports.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// NewClient binds a client to a credential. It fails with
// domain.ErrMissingAPIKey before anything touches the network when the key is empty.
func NewClient(credential domain.Credential, opts ...Option) (*Client, error) {
	if strings.TrimSpace(credential.APIKey) == "" {
		return nil, domain.ErrMissingAPIKey
	}
	credential.Model = credential.ModelOrDefault()

	c := &Client{
		credential: credential,
		endpoint:   domain.CompletionEndpoint,
		httpClient: &http.Client{Timeout: domain.InferenceTimeout},
		logger:     nopLogger{},
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.httpClient.Timeout == 0 {
		hc := *c.httpClient
		hc.Timeout = domain.InferenceTimeout
		c.httpClient = &hc
	}
	return c, nil
}

// Model returns the model identifier requests are sent for.
func (c *Client) Model() string {
	return c.credential.Model
}

// Infer sends the request and returns choices[0].message.content.
func (c *Client) Infer(ctx context.Context, req domain.InferenceRequest) (string, error) {
	if req.Model == "" {
		req.Model = c.credential.Model
	}

	body, err := json.Marshal(toChatRequest(req))
	if err != nil {
		return "", fmt.Errorf("encode request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("create HTTP request: %w", err)
	}
	httpReq.Header.Set("Authorization", "Bearer "+c.credential.APIKey)
	httpReq.Header.Set("Content-Type", "application/json")

	c.logger.Debug("sending inference request", map[string]interface{}{
		"model":       req.Model,
		"max_tokens":  req.MaxOutputTokens,
		"temperature": req.Temperature,
		"bytes":       len(body),
	})

	start := time.Now()
	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return "", &domain.InferenceError{Kind: domain.KindTransport, Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &domain.InferenceError{Kind: domain.KindTransport, Err: fmt.Errorf("read response body: %w", err)}
	}

	c.logger.Debug("inference response received", map[string]interface{}{
		"status":      resp.StatusCode,
		"bytes":       len(raw),
		"duration_ms": time.Since(start).Milliseconds(),
	})

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		return "", &domain.InferenceError{Kind: domain.KindAuth, StatusCode: resp.StatusCode}
	case resp.StatusCode != http.StatusOK:
		return "", &domain.InferenceError{Kind: domain.KindHTTP, StatusCode: resp.StatusCode, Body: string(raw)}
	}

	return parseChatCompletion(raw)
}

func parseChatCompletion(raw []byte) (string, error) {
	var decoded chatCompletionResponse
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return "", &domain.InferenceError{Kind: domain.KindMalformedResponse, StatusCode: http.StatusOK, Body: string(raw), Err: err}
	}
	if len(decoded.Choices) == 0 {
		return "", &domain.InferenceError{Kind: domain.KindEmptyResponse, StatusCode: http.StatusOK, Body: string(raw)}
	}
	first := decoded.Choices[0]
	if first.Message == nil || first.Message.Content == nil {
		return "", &domain.InferenceError{
			Kind:       domain.KindMalformedResponse,
			StatusCode: http.StatusOK,
			Body:       string(raw),
			Err:        errors.New("choices[0].message.content missing"),
		}
	}
	return *first.Message.Content, nil
}

type nopLogger struct{}

func (nopLogger) Debug(string, map[string]interface{})        {}
func (nopLogger) Info(string, map[string]interface{})         {}
func (nopLogger) Warn(string, map[string]interface{})         {}
func (nopLogger) Error(string, error, map[string]interface{}) {}

var _ ports.InferenceClient = (*Client)(nil)
