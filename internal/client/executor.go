package client

import (
	"context"
	"fmt"
	"net/http"
)

// Executor performs exactly one outbound call for a request context
type Executor interface {
	Execute(ctx context.Context, rc *RequestContext) (*http.Response, error)
}

// HTTPExecutor executes requests with a net/http client
type HTTPExecutor struct {
	client *http.Client
}

// NewHTTPExecutor creates an executor. A nil client means a client with the
// transport defaults and no timeout of its own.
func NewHTTPExecutor(client *http.Client) *HTTPExecutor {
	if client == nil {
		client = &http.Client{}
	}
	return &HTTPExecutor{client: client}
}

// Execute sends the request. It does not retry.
func (e *HTTPExecutor) Execute(ctx context.Context, rc *RequestContext) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, rc.Method, rc.URL(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header = rc.Header.Clone()

	return e.client.Do(req)
}
