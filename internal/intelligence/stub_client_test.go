package intelligence

import (
	"context"
	"sync"

	"github.com/lucasvieira/iepdesk/internal/llm"
)

// stubClient is an in-memory gateway that records prompts and replays
// canned responses.
type stubClient struct {
	mu       sync.Mutex
	response string
	err      error
	calls    []llm.Request
}

func (c *stubClient) Generate(_ context.Context, req llm.Request) (*llm.Response, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.calls = append(c.calls, req)
	if c.err != nil {
		return nil, c.err
	}
	return &llm.Response{Text: c.response}, nil
}

func (c *stubClient) Available(context.Context) bool { return true }

func (c *stubClient) callCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.calls)
}

func (c *stubClient) lastPrompt() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.calls) == 0 {
		return ""
	}
	return c.calls[len(c.calls)-1].Prompt
}
