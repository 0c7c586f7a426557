package client

import (
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strconv"
	"strings"

	"github.com/moamenhredeen/contentapi/internal/models"
)

// Normalize reads the response body and builds the envelope for it.
// Only a failure to read the body is returned as an error; undecodable JSON
// falls back to the raw text.
func Normalize(resp *http.Response, requestURL string) (*models.Envelope, error) {
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	decoded := decodeBody(resp.Header.Get("Content-Type"), body)

	env := &models.Envelope{
		Status:     resp.StatusCode,
		StatusText: statusText(resp),
		URL:        requestURL,
	}

	if models.IsSuccessStatus(resp.StatusCode) {
		env.Success = true
		env.Data = decoded
		env.Headers = flattenHeaders(resp.Header)
	} else {
		env.Error = decoded
	}

	return env, nil
}

func decodeBody(contentType string, body []byte) any {
	if !isJSONContentType(contentType) {
		return string(body)
	}

	var v any
	if err := json.Unmarshal(body, &v); err != nil {
		return string(body)
	}
	return v
}

func isJSONContentType(contentType string) bool {
	if contentType == "" {
		return false
	}
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return strings.Contains(strings.ToLower(contentType), "application/json")
	}
	return mediaType == "application/json" || strings.HasSuffix(mediaType, "+json")
}

// flattenHeaders keeps the last value of repeated headers, keyed by lower-case name
func flattenHeaders(h http.Header) map[string]string {
	out := make(map[string]string, len(h))
	for name, values := range h {
		if len(values) == 0 {
			continue
		}
		out[strings.ToLower(name)] = values[len(values)-1]
	}
	return out
}

// statusText returns the reason phrase the server sent, e.g. "Not Found"
func statusText(resp *http.Response) string {
	text := strings.TrimSpace(strings.TrimPrefix(resp.Status, strconv.Itoa(resp.StatusCode)))
	if text == "" {
		text = http.StatusText(resp.StatusCode)
	}
	return text
}
