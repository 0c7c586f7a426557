package client

import (
	"net/http"
)

// Credentials carries the optional per-call auth and locale settings
type Credentials struct {
	AccessToken string
	Locale      string
}

// RequestContext is everything needed to issue one call. It is built once by
// NewRequestContext and not modified afterwards.
type RequestContext struct {
	BaseURL string
	Path    string
	Query   []QueryPair
	Header  http.Header
	Method  string
}

// NewRequestContext assembles the request for a resolved path
func NewRequestContext(baseURL, path string, query []QueryPair, creds Credentials) *RequestContext {
	q := make([]QueryPair, len(query))
	copy(q, query)

	return &RequestContext{
		BaseURL: NormalizeBaseURL(baseURL),
		Path:    path,
		Query:   q,
		Header:  buildHeaders(creds),
		Method:  http.MethodGet,
	}
}

// URL returns the fully resolved request URL
func (rc *RequestContext) URL() string {
	return BuildURL(rc.BaseURL, rc.Path, rc.Query)
}

func buildHeaders(creds Credentials) http.Header {
	h := make(http.Header)
	h.Set("Accept", "application/json")
	// no body is sent; the header states intent to the backend
	h.Set("Content-Type", "application/json")

	if creds.AccessToken != "" {
		h.Set("Authorization", "Bearer "+creds.AccessToken)
	}
	if creds.Locale != "" {
		h.Set("Accept-Language", creds.Locale)
	}

	return h
}
