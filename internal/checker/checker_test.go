package checker

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/moamenhredeen/contentapi/internal/adapters"
	"github.com/moamenhredeen/contentapi/internal/client"
	"github.com/rs/zerolog"
)

// createMockServer creates a mock content delivery API
func createMockServer(hits *atomic.Int32) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.Header().Set("Content-Type", "application/json")

		switch r.URL.Path {
		case "/api/episerver/v3.0/content/5":
			w.WriteHeader(http.StatusOK)
			w.Write([]byte(`{"name":"Start"}`))
		case "/api/episerver/v3.0/site":
			w.WriteHeader(http.StatusOK)
			w.Write([]byte(`[]`))
		default:
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`{"error":"not found"}`))
		}
	}))
}

const testPlan = `
calls:
  - name: start page
    adapter: content
    operation: get-content-by-reference
    params:
      contentReference: 5
  - name: missing page
    adapter: content
    operation: get-content-by-reference
    params: {contentReference: "6"}
    expect_status: 404
  - name: wrong expectation
    adapter: content
    operation: get-content-by-reference
    params: {contentReference: "7"}
  - adapter: content
    operation: list-sites
  - name: no identifier
    adapter: content
    operation: get-children
  - name: bad adapter
    adapter: delete-everything
`

func TestParsePlan(t *testing.T) {
	plan, err := ParsePlan([]byte(testPlan))
	if err != nil {
		t.Fatalf("ParsePlan failed: %v", err)
	}
	if len(plan.Calls) != 6 {
		t.Fatalf("Expected 6 calls, got %d", len(plan.Calls))
	}
	if plan.Calls[0].Params["contentReference"] != "5" {
		t.Errorf("Expected numeric scalar decoded as string, got %q", plan.Calls[0].Params["contentReference"])
	}
	if plan.Calls[3].Name != "#4 content list-sites" {
		t.Errorf("Expected generated name, got %q", plan.Calls[3].Name)
	}
}

func TestParsePlanRequiresAdapter(t *testing.T) {
	if _, err := ParsePlan([]byte("calls:\n  - operation: list-sites\n")); err == nil {
		t.Error("Expected error for call without adapter")
	}
	if _, err := ParsePlan([]byte("calls: []\n")); err == nil {
		t.Error("Expected error for empty plan")
	}
}

func TestRunPlan(t *testing.T) {
	var hits atomic.Int32
	server := createMockServer(&hits)
	defer server.Close()

	plan, err := ParsePlan([]byte(testPlan))
	if err != nil {
		t.Fatalf("ParsePlan failed: %v", err)
	}

	list := adapters.All(client.NewHTTPExecutor(server.Client()), zerolog.Nop())
	c := New(list, Config{Concurrency: 3, Fallback: Target{BaseURL: server.URL}}, zerolog.Nop())

	var completed atomic.Int32
	summary, err := c.Run(context.Background(), plan, func(e CheckEvent) {
		if e.Type == EventCompleted {
			completed.Add(1)
		}
	})
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if summary.TotalChecks != 6 || summary.Passed != 3 || summary.Failed != 3 {
		t.Errorf("Unexpected summary: total=%d passed=%d failed=%d", summary.TotalChecks, summary.Passed, summary.Failed)
	}
	if completed.Load() != 6 {
		t.Errorf("Expected 6 completed events, got %d", completed.Load())
	}

	// only the four resolvable content calls reach the server
	if hits.Load() != 4 {
		t.Errorf("Expected 4 requests, got %d", hits.Load())
	}

	byName := map[string]int{}
	for i, r := range summary.Results {
		byName[r.Name] = i
	}

	if r := summary.Results[0]; r.Name != "start page" || !r.Passed || r.URL != server.URL+"/api/episerver/v3.0/content/5" {
		t.Errorf("Results must keep plan order, got %+v", r)
	}
	if r := summary.Results[byName["wrong expectation"]]; r.Passed || r.StatusCode != 404 {
		t.Errorf("Unexpected result: %+v", r)
	}
	if r := summary.Results[byName["no identifier"]]; r.Passed || !strings.HasPrefix(r.Error, "validation:") {
		t.Errorf("Unexpected result: %+v", r)
	}
	if r := summary.Results[byName["bad adapter"]]; r.Passed || r.Error != "unknown adapter: delete-everything" {
		t.Errorf("Unexpected result: %+v", r)
	}
}

func TestRunCancelled(t *testing.T) {
	plan, err := ParsePlan([]byte(testPlan))
	if err != nil {
		t.Fatalf("ParsePlan failed: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	list := adapters.All(client.NewHTTPExecutor(nil), zerolog.Nop())
	c := New(list, Config{Concurrency: 1, Rate: 1}, zerolog.Nop())

	summary, err := c.Run(ctx, plan, nil)
	if err == nil {
		t.Error("Expected context error")
	}
	if summary.TotalChecks != 6 || summary.Passed != 0 {
		t.Errorf("Unexpected summary: %+v", summary)
	}
}

func TestCallResolveFallsBack(t *testing.T) {
	call := Call{Target: Target{Locale: "sv"}}
	got := call.resolve(Target{BaseURL: "https://plan"}, Target{BaseURL: "https://config", AccessToken: "t", Locale: "en"})
	if got.BaseURL != "https://plan" || got.AccessToken != "t" || got.Locale != "sv" {
		t.Errorf("Unexpected target: %+v", got)
	}
}
