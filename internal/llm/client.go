package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Request holds the parameters for a generation call.
type Request struct {
	Task   TaskType
	Prompt string
}

// Response holds the result of a generation call.
type Response struct {
	Text      string
	LatencyMs int64
}

// Client provides access to the text-generation provider. Every call is a
// fresh, stateless request; continuity across calls comes only from the
// prompt text itself.
type Client interface {
	// Generate sends a prompt and returns the raw text response. It
	// performs no retries: every failure surfaces to the caller
	// immediately, classified as one of the package's error kinds.
	Generate(ctx context.Context, req Request) (*Response, error)

	// Available checks whether the provider endpoint is reachable.
	Available(ctx context.Context) bool
}

// chatClient implements Client against the provider's chat HTTP API.
type chatClient struct {
	cfg      Config
	http     *http.Client
	observer Observer
}

// NewClient creates a Client for the configured provider endpoint.
func NewClient(cfg Config, observer Observer) Client {
	if observer == nil {
		observer = NoopObserver{}
	}
	return &chatClient{
		cfg:      cfg,
		http:     &http.Client{},
		observer: observer,
	}
}

// chatRequest is the JSON body sent to the provider.
type chatRequest struct {
	Message string `json:"message"`
}

// chatResponse is the JSON body returned by the provider. The API reports
// failures in-band through the status field rather than HTTP status codes.
type chatResponse struct {
	Status     string `json:"status"` // "success", "rate_limited", "error"
	Response   string `json:"response"`
	Error      string `json:"error"`
	RetryAfter int    `json:"retry_after"` // seconds
}

func (c *chatClient) Generate(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()

	ctx, cancel := context.WithTimeout(ctx, time.Duration(c.cfg.TimeoutMs)*time.Millisecond)
	defer cancel()

	text, err := c.doRequest(ctx, req.Prompt)
	latency := time.Since(start).Milliseconds()

	c.observer.OnCallComplete(CallEvent{
		Task:      req.Task,
		LatencyMs: latency,
		Success:   err == nil,
		ErrorCode: errorCode(err),
	})
	if err != nil {
		return nil, err
	}
	return &Response{Text: text, LatencyMs: latency}, nil
}

func (c *chatClient) doRequest(ctx context.Context, prompt string) (string, error) {
	// The provider has no system-instruction field, so the preamble is
	// inlined ahead of the prompt.
	message := prompt
	if c.cfg.SystemPreamble != "" {
		message = c.cfg.SystemPreamble + "\n\n---\n\n" + prompt
	}

	data, err := json.Marshal(chatRequest{Message: message})
	if err != nil {
		return "", fmt.Errorf("marshaling request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.Endpoint, bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	httpResp, err := c.http.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrNetwork, err)
	}
	defer httpResp.Body.Close()

	body, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return "", fmt.Errorf("%w: reading response: %v", ErrNetwork, err)
	}

	if httpResp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: unexpected HTTP status %d", ErrProvider, httpResp.StatusCode)
	}

	var resp chatResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return "", fmt.Errorf("%w: decoding response: %v", ErrProvider, err)
	}

	switch resp.Status {
	case "success":
		text := strings.TrimSpace(resp.Response)
		if text == "" {
			return "", ErrEmptyResponse
		}
		return text, nil
	case "rate_limited":
		retryAfter := resp.RetryAfter
		if retryAfter <= 0 {
			retryAfter = 5
		}
		return "", &RateLimitedError{RetryAfter: time.Duration(retryAfter) * time.Second}
	default:
		detail := resp.Error
		if detail == "" {
			detail = "unknown provider failure"
		}
		return "", fmt.Errorf("%w: %s", ErrProvider, detail)
	}
}

func (c *chatClient) Available(ctx context.Context) bool {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodHead, c.cfg.Endpoint, nil)
	if err != nil {
		return false
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return false
	}
	resp.Body.Close()
	return resp.StatusCode < http.StatusInternalServerError
}
