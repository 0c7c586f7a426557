package client

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestClientSendsHeaders(t *testing.T) {
	var got http.Header
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Errorf("Expected GET, got %s", r.Method)
		}
		got = r.Header.Clone()
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[]`))
	}))
	defer server.Close()

	c := New("Test adapter", NewHTTPExecutor(server.Client()), zerolog.Nop())
	rc := NewRequestContext(server.URL+"/", "/site", nil, Credentials{AccessToken: "secret", Locale: "sv"})

	env, err := c.Do(context.Background(), rc)
	if err != nil {
		t.Fatalf("Do failed: %v", err)
	}
	if !env.Success {
		t.Fatalf("Expected success, got %+v", env)
	}
	if env.URL != server.URL+"/site" {
		t.Errorf("Unexpected URL: %s", env.URL)
	}

	expected := map[string]string{
		"Accept":          "application/json",
		"Content-Type":    "application/json",
		"Authorization":   "Bearer secret",
		"Accept-Language": "sv",
	}
	for name, want := range expected {
		if v := got.Get(name); v != want {
			t.Errorf("Header %s = %q, want %q", name, v, want)
		}
	}
}

func TestClientAnonymousOmitsAuthorization(t *testing.T) {
	var got http.Header
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Clone()
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	c := New("Test adapter", NewHTTPExecutor(nil), zerolog.Nop())
	if _, err := c.Do(context.Background(), NewRequestContext(server.URL, "/site", nil, Credentials{})); err != nil {
		t.Fatalf("Do failed: %v", err)
	}

	if _, ok := got["Authorization"]; ok {
		t.Error("Expected no Authorization header")
	}
	if _, ok := got["Accept-Language"]; ok {
		t.Error("Expected no Accept-Language header")
	}
}

func TestClientReturnsRejectionAsEnvelope(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":"invalid_token"}`))
	}))
	defer server.Close()

	c := New("Test adapter", NewHTTPExecutor(nil), zerolog.Nop())
	env, err := c.Do(context.Background(), NewRequestContext(server.URL, "/manifest", nil, Credentials{}))
	if err != nil {
		t.Fatalf("Expected envelope, got error: %v", err)
	}
	if env.Success || env.Status != http.StatusUnauthorized || env.StatusText != "Unauthorized" {
		t.Errorf("Unexpected envelope: %+v", env)
	}
	if Classify(env, err) != KindBackendRejection {
		t.Errorf("Expected backend rejection, got %s", Classify(env, err))
	}
}

func TestClientWrapsTransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	addr := server.URL
	server.Close()

	c := New("Content delivery request failed", NewHTTPExecutor(nil), zerolog.Nop())
	env, err := c.Do(context.Background(), NewRequestContext(addr, "/site", nil, Credentials{}))
	if err == nil {
		t.Fatal("Expected transport error")
	}
	if env != nil {
		t.Errorf("Expected no envelope, got %+v", env)
	}

	var terr *TransportError
	if !errors.As(err, &terr) {
		t.Fatalf("Expected *TransportError, got %T", err)
	}
	if !strings.HasPrefix(err.Error(), "Content delivery request failed: ") {
		t.Errorf("Expected adapter label prefix, got %q", err.Error())
	}
	if Classify(env, err) != KindTransport {
		t.Errorf("Expected transport kind, got %s", Classify(env, err))
	}
}

type nilExecutor struct{}

func (nilExecutor) Execute(context.Context, *RequestContext) (*http.Response, error) {
	return nil, nil
}

func TestClientNilResponseIsTransportError(t *testing.T) {
	c := New("Manifest export failed", nilExecutor{}, zerolog.Nop())
	env, err := c.Do(context.Background(), NewRequestContext("https://host.example", "/manifest", nil, Credentials{}))
	if env != nil {
		t.Errorf("Expected no envelope, got %+v", env)
	}

	var terr *TransportError
	if !errors.As(err, &terr) {
		t.Fatalf("Expected *TransportError, got %T", err)
	}
	if !errors.Is(err, ErrNoResponse) {
		t.Errorf("Expected ErrNoResponse, got %v", err)
	}
	if err.Error() != "Manifest export failed: executor returned no response" {
		t.Errorf("Unexpected message %q", err.Error())
	}
}

func TestClassifyValidation(t *testing.T) {
	err := UnknownOperation("delete-content")
	if Classify(nil, err) != KindValidation {
		t.Errorf("Expected validation kind")
	}
	if err.Error() != "Unknown operation: delete-content" {
		t.Errorf("Unexpected message: %s", err.Error())
	}

	missing := MissingParameter("get-children", "contentReference", "contentGuid")
	if missing.Error() != "missing required parameter for operation get-children: one of contentReference, contentGuid" {
		t.Errorf("Unexpected message: %s", missing.Error())
	}
}
