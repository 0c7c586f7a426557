package adapters

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/moamenhredeen/contentapi/internal/client"
	"github.com/moamenhredeen/contentapi/internal/registry"
	"github.com/rs/zerolog"
)

// countingExecutor records calls and answers with a fixed JSON body
type countingExecutor struct {
	calls   atomic.Int32
	lastURL atomic.Value
	status  int
	err     error
}

func (e *countingExecutor) Execute(_ context.Context, rc *client.RequestContext) (*http.Response, error) {
	e.calls.Add(1)
	e.lastURL.Store(rc.URL())
	if e.err != nil {
		return nil, e.err
	}
	status := e.status
	if status == 0 {
		status = http.StatusOK
	}
	return &http.Response{
		StatusCode: status,
		Status:     http.StatusText(status),
		Header:     http.Header{"Content-Type": {"application/json"}},
		Body:       io.NopCloser(strings.NewReader(`{"ok":true}`)),
	}, nil
}

func TestContentAdapterScenarios(t *testing.T) {
	cases := []struct {
		name string
		req  Request
		want string
	}{
		{
			name: "content by reference",
			req: Request{
				BaseURL:   "https://host.example",
				Operation: registry.OpGetContentByReference,
				Params:    registry.Params{registry.ParamContentReference: "5"},
			},
			want: "https://host.example/api/episerver/v3.0/content/5",
		},
		{
			name: "children by GUID with top",
			req: Request{
				BaseURL:   "https://host.example/",
				Operation: registry.OpGetChildren,
				Params:    registry.Params{registry.ParamContentGUID: "abc-123", registry.ParamTop: "10"},
			},
			want: "https://host.example/api/episerver/v3.0/content/abc-123/children?top=10",
		},
		{
			name: "site by id",
			req: Request{
				BaseURL:   "https://host.example",
				Operation: registry.OpGetSite,
				Params:    registry.Params{registry.ParamSiteID: "s1", registry.ParamExpand: "*"},
			},
			want: "https://host.example/api/episerver/v3.0/site/s1?expand=%2A",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			exec := &countingExecutor{}
			a := NewContent(exec, zerolog.Nop())

			env, err := a.Call(context.Background(), tc.req)
			if err != nil {
				t.Fatalf("Call failed: %v", err)
			}
			if env.URL != tc.want {
				t.Errorf("Expected %s, got %s", tc.want, env.URL)
			}
			if exec.calls.Load() != 1 {
				t.Errorf("Expected exactly one call, got %d", exec.calls.Load())
			}
		})
	}
}

func TestUnknownOperationMakesNoCall(t *testing.T) {
	exec := &countingExecutor{}
	a := NewContent(exec, zerolog.Nop())

	_, err := a.Call(context.Background(), Request{
		BaseURL:   "https://host.example",
		Operation: "delete-content",
		Params:    registry.Params{registry.ParamContentReference: "5"},
	})
	if err == nil || !strings.Contains(err.Error(), "Unknown operation: delete-content") {
		t.Fatalf("Expected unknown operation error, got %v", err)
	}
	if exec.calls.Load() != 0 {
		t.Errorf("Expected no network call, got %d", exec.calls.Load())
	}
}

func TestMissingParameterMakesNoCall(t *testing.T) {
	exec := &countingExecutor{}
	a := NewContent(exec, zerolog.Nop())

	for _, spec := range a.Operations() {
		if len(spec.RequiredParams()) == 0 {
			continue
		}
		_, err := a.Call(context.Background(), Request{
			BaseURL:   "https://host.example",
			Operation: spec.ID,
			Params:    registry.Params{},
		})

		var verr *client.ValidationError
		if !errors.As(err, &verr) {
			t.Errorf("%s: expected validation error, got %v", spec.ID, err)
		}
	}

	if exec.calls.Load() != 0 {
		t.Errorf("Expected no network call, got %d", exec.calls.Load())
	}
}

func TestTokenRequiredAdapters(t *testing.T) {
	for _, newAdapter := range []func(client.Executor, zerolog.Logger) *Adapter{NewManifestExport, NewContentTypes} {
		exec := &countingExecutor{}
		a := newAdapter(exec, zerolog.Nop())

		_, err := a.Call(context.Background(), Request{BaseURL: "https://host.example", Params: registry.Params{}})
		if err == nil || !strings.Contains(err.Error(), "accessToken") {
			t.Errorf("%s: expected missing token error, got %v", a.Name(), err)
		}
		if exec.calls.Load() != 0 {
			t.Errorf("%s: expected no network call", a.Name())
		}
	}
}

func TestMissingBaseURL(t *testing.T) {
	exec := &countingExecutor{}
	a := NewContent(exec, zerolog.Nop())

	_, err := a.Call(context.Background(), Request{Operation: registry.OpListSites})
	if err == nil || !strings.Contains(err.Error(), "baseUrl") {
		t.Errorf("Expected missing baseUrl error, got %v", err)
	}
}

func TestManifestExport(t *testing.T) {
	exec := &countingExecutor{}
	a := NewManifestExport(exec, zerolog.Nop())

	env, err := a.Call(context.Background(), ManifestParams{BaseURL: "https://host.example/", AccessToken: "t"}.Request())
	if err != nil {
		t.Fatalf("Call failed: %v", err)
	}
	if env.URL != "https://host.example/api/episerver/v3.0/manifest" {
		t.Errorf("Unexpected URL: %s", env.URL)
	}
}

func TestSingleAdapterRejectsOtherOperation(t *testing.T) {
	exec := &countingExecutor{}
	a := NewManifestExport(exec, zerolog.Nop())

	_, err := a.Call(context.Background(), Request{
		BaseURL:     "https://host.example",
		AccessToken: "t",
		Operation:   registry.OpGetSite,
	})
	if err == nil || !strings.Contains(err.Error(), "Unknown operation: get-site") {
		t.Errorf("Expected unknown operation error, got %v", err)
	}
}

func TestContentTypeParams(t *testing.T) {
	include := true
	exec := &countingExecutor{}
	a := NewContentTypes(exec, zerolog.Nop())

	u, err := a.Resolve(ContentTypeParams{
		BaseURL:            "https://host.example",
		AccessToken:        "t",
		IncludeSystemTypes: &include,
		Top:                25,
	}.Request())
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if u != "https://host.example/api/episerver/v3.0/contenttypes?includeSystemTypes=true&top=25" {
		t.Errorf("Unexpected URL: %s", u)
	}
	if exec.calls.Load() != 0 {
		t.Error("Resolve must not send a request")
	}
}

func TestTransportErrorCarriesAdapterLabel(t *testing.T) {
	exec := &countingExecutor{err: errors.New("dial tcp: connection refused")}
	a := NewContent(exec, zerolog.Nop())

	_, err := a.Call(context.Background(), ContentParams{
		BaseURL:   "https://host.example",
		Operation: registry.OpListSites,
	}.Request())

	want := "Content delivery request failed: dial tcp: connection refused"
	if err == nil || err.Error() != want {
		t.Errorf("Expected %q, got %v", want, err)
	}
}

func TestBackendRejectionIsNotAnError(t *testing.T) {
	exec := &countingExecutor{status: http.StatusNotFound}
	a := NewContent(exec, zerolog.Nop())

	env, err := a.Call(context.Background(), ContentParams{
		BaseURL:          "https://host.example",
		Operation:        registry.OpGetContentByReference,
		ContentReference: "404",
	}.Request())
	if err != nil {
		t.Fatalf("Expected envelope, got error %v", err)
	}
	if env.Success || env.Data != nil || env.Error == nil {
		t.Errorf("Unexpected envelope: %+v", env)
	}
}

func TestWithDefaults(t *testing.T) {
	req := Request{Locale: "sv"}.WithDefaults(Defaults{BaseURL: "https://a", AccessToken: "t", Locale: "en"})
	if req.BaseURL != "https://a" || req.AccessToken != "t" || req.Locale != "sv" {
		t.Errorf("Unexpected request: %+v", req)
	}
}

func TestTokenExpired(t *testing.T) {
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	sign := func(exp time.Time) string {
		s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"exp": exp.Unix()}).SignedString([]byte("k"))
		if err != nil {
			t.Fatalf("Failed to sign token: %v", err)
		}
		return s
	}

	if _, expired := tokenExpired(sign(now.Add(-time.Minute)), now); !expired {
		t.Error("Expected expired token")
	}
	if _, expired := tokenExpired(sign(now.Add(time.Hour)), now); expired {
		t.Error("Expected valid token")
	}
	if _, expired := tokenExpired("opaque-token", now); expired {
		t.Error("Opaque tokens must not be reported as expired")
	}
}
