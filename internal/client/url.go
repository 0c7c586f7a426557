package client

import (
	"net/url"
	"strings"
)

// QueryPair is a single query parameter in the order it is emitted
type QueryPair struct {
	Key   string
	Value string
}

// NormalizeBaseURL strips exactly one trailing slash from the base origin
func NormalizeBaseURL(base string) string {
	return strings.TrimSuffix(base, "/")
}

// BuildURL joins a normalized base, a resolved path and the query pairs.
// Path segments are used verbatim; only query values are escaped.
func BuildURL(base, path string, query []QueryPair) string {
	var sb strings.Builder
	sb.WriteString(NormalizeBaseURL(base))
	sb.WriteString(path)

	for i, q := range query {
		if i == 0 {
			sb.WriteByte('?')
		} else {
			sb.WriteByte('&')
		}
		sb.WriteString(q.Key)
		sb.WriteByte('=')
		sb.WriteString(escapeQueryValue(q.Value))
	}

	return sb.String()
}

// escapeQueryValue percent-encodes a value, spaces included, the way
// encodeURIComponent-style clients do
func escapeQueryValue(v string) string {
	return strings.ReplaceAll(url.QueryEscape(v), "+", "%20")
}
