package client

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/moamenhredeen/contentapi/internal/models"
	"github.com/rs/zerolog"
)

// ErrNoResponse is wrapped when an executor returns neither a response nor an error
var ErrNoResponse = errors.New("executor returned no response")

// Client executes request contexts and normalizes their responses
type Client struct {
	label    string
	executor Executor
	logger   zerolog.Logger
}

// New creates a client. label prefixes every transport error it returns.
func New(label string, executor Executor, logger zerolog.Logger) *Client {
	if executor == nil {
		executor = NewHTTPExecutor(nil)
	}
	return &Client{
		label:    label,
		executor: executor,
		logger:   logger,
	}
}

// Label returns the adapter label used for transport errors
func (c *Client) Label() string {
	return c.label
}

// Do performs the call. A non-2xx response is returned as an unsuccessful
// envelope with a nil error; errors are always *TransportError.
func (c *Client) Do(ctx context.Context, rc *RequestContext) (*models.Envelope, error) {
	requestURL := rc.URL()
	log := c.logger.With().
		Str("call_id", uuid.NewString()).
		Str("url", requestURL).
		Logger()

	log.Debug().Msg("sending request")
	start := time.Now()

	resp, err := c.executor.Execute(ctx, rc)
	if err != nil {
		log.Warn().Err(err).Dur("duration", time.Since(start)).Msg("request failed")
		return nil, &TransportError{Label: c.label, Err: err}
	}
	if resp == nil || resp.Body == nil {
		log.Warn().Msg("executor returned no response")
		return nil, &TransportError{Label: c.label, Err: ErrNoResponse}
	}
	defer resp.Body.Close()

	env, err := Normalize(resp, requestURL)
	if err != nil {
		log.Warn().Err(err).Int("status", resp.StatusCode).Msg("failed to normalize response")
		return nil, &TransportError{Label: c.label, Err: err}
	}

	log.Debug().
		Int("status", env.Status).
		Bool("success", env.Success).
		Dur("duration", time.Since(start)).
		Msg("request completed")

	return env, nil
}
