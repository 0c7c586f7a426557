// Package checker runs plans of adapter calls concurrently and reports which
// calls returned the expected status.
package checker

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/moamenhredeen/contentapi/internal/adapters"
	"github.com/moamenhredeen/contentapi/internal/client"
	"github.com/moamenhredeen/contentapi/internal/models"
	"github.com/moamenhredeen/contentapi/internal/registry"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"
)

// EventType represents the type of check event
type EventType int

const (
	// EventStarting indicates a call is about to be sent
	EventStarting EventType = iota
	// EventCompleted indicates a call has completed
	EventCompleted
)

// CheckEvent represents an event during plan execution
type CheckEvent struct {
	Type   EventType
	Call   Call
	Result *models.CheckResult // nil for Starting events
	Index  int                 // index of the call in the plan (0-based)
	Total  int
}

// OnCheckEvent is a callback function for check events. Calls are serialized.
type OnCheckEvent func(event CheckEvent)

// Config holds checker configuration
type Config struct {
	Concurrency int     // calls in flight at once
	Rate        float64 // max calls per second (0 = unlimited)
	Fallback    Target  // used when neither the call nor the plan sets a value
}

// Checker executes check plans through the adapters
type Checker struct {
	adapters []*adapters.Adapter
	config   Config
	limiter  *rate.Limiter
	logger   zerolog.Logger
}

// New creates a checker
func New(list []*adapters.Adapter, config Config, logger zerolog.Logger) *Checker {
	if config.Concurrency <= 0 {
		config.Concurrency = 1
	}

	var limiter *rate.Limiter
	if config.Rate > 0 {
		limiter = rate.NewLimiter(rate.Limit(config.Rate), max(1, int(config.Rate)))
	}

	return &Checker{
		adapters: list,
		config:   config,
		limiter:  limiter,
		logger:   logger.With().Str("component", "checker").Logger(),
	}
}

// Run executes every call of the plan. Results keep plan order. The returned
// error is only set when ctx was cancelled; failed calls are reported in the
// summary.
func (c *Checker) Run(ctx context.Context, plan *Plan, onEvent OnCheckEvent) (models.CheckSummary, error) {
	total := len(plan.Calls)
	results := make([]models.CheckResult, total)
	done := make([]bool, total)

	var mu sync.Mutex
	emit := func(e CheckEvent) {
		if onEvent == nil {
			return
		}
		mu.Lock()
		defer mu.Unlock()
		onEvent(e)
	}

	start := time.Now()
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.config.Concurrency)

	for i, call := range plan.Calls {
		g.Go(func() error {
			if c.limiter != nil {
				if err := c.limiter.Wait(gctx); err != nil {
					return err
				}
			}

			emit(CheckEvent{Type: EventStarting, Call: call, Index: i, Total: total})
			result := c.check(gctx, call, plan.Defaults)
			results[i] = result
			done[i] = true
			emit(CheckEvent{Type: EventCompleted, Call: call, Result: &result, Index: i, Total: total})
			return nil
		})
	}

	err := g.Wait()

	summary := models.CheckSummary{
		Results: make([]models.CheckResult, 0, total),
	}
	for i, r := range results {
		if !done[i] {
			// never started because the run was cancelled
			call := plan.Calls[i]
			r = models.CheckResult{Name: call.Name, Adapter: call.Adapter, Operation: call.Operation, Error: "not run"}
		}
		summary.AddResult(r)
	}
	summary.TotalDuration = time.Since(start)

	return summary, err
}

func (c *Checker) check(ctx context.Context, call Call, defaults Target) models.CheckResult {
	result := models.CheckResult{
		Name:      call.Name,
		Adapter:   call.Adapter,
		Operation: call.Operation,
	}

	adapter, ok := adapters.Find(c.adapters, call.Adapter)
	if !ok {
		result.Error = fmt.Sprintf("unknown adapter: %s", call.Adapter)
		return result
	}

	target := call.resolve(defaults, c.config.Fallback)
	req := adapters.Request{
		BaseURL:     target.BaseURL,
		AccessToken: target.AccessToken,
		Locale:      target.Locale,
		Operation:   call.Operation,
		Params:      registry.Params(call.Params),
	}
	if req.Params == nil {
		req.Params = registry.Params{}
	}

	startTime := time.Now()
	env, err := adapter.Call(ctx, req)
	result.ResponseTime = time.Since(startTime)

	if err != nil {
		result.Error = fmt.Sprintf("%s: %v", client.Classify(env, err), err)
		c.logger.Debug().Str("call", call.Name).Err(err).Msg("call failed")
		return result
	}

	result.URL = env.URL
	result.StatusCode = env.Status

	switch {
	case call.ExpectStatus == 0 && env.Success:
		result.Passed = true
	case call.ExpectStatus != 0 && env.Status == call.ExpectStatus:
		result.Passed = true
	default:
		result.Error = fmt.Sprintf("unexpected status %d %s", env.Status, env.StatusText)
	}

	return result
}
