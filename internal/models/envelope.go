package models

import "encoding/json"

// Envelope is the normalized result of a single backend call.
//
// Success envelopes carry Data and Headers, failure envelopes carry Error only.
// Headers are intentionally absent on failures.
type Envelope struct {
	Success    bool              `json:"success"`
	Status     int               `json:"status"`
	StatusText string            `json:"statusText"`
	URL        string            `json:"url"`
	Data       any               `json:"data,omitempty"`
	Headers    map[string]string `json:"headers,omitempty"`
	Error      any               `json:"error,omitempty"`
}

type envelopeStatus struct {
	Success    bool   `json:"success"`
	Status     int    `json:"status"`
	StatusText string `json:"statusText"`
	URL        string `json:"url"`
}

// MarshalJSON always emits data and headers on success and error on failure,
// even when the decoded body was a JSON null.
func (e Envelope) MarshalJSON() ([]byte, error) {
	status := envelopeStatus{
		Success:    e.Success,
		Status:     e.Status,
		StatusText: e.StatusText,
		URL:        e.URL,
	}

	if !e.Success {
		return json.Marshal(struct {
			envelopeStatus
			Error any `json:"error"`
		}{status, e.Error})
	}

	headers := e.Headers
	if headers == nil {
		headers = map[string]string{}
	}
	return json.Marshal(struct {
		envelopeStatus
		Data    any               `json:"data"`
		Headers map[string]string `json:"headers"`
	}{status, e.Data, headers})
}

// IsSuccessStatus reports whether status is in the 2xx range
func IsSuccessStatus(status int) bool {
	return status >= 200 && status <= 299
}
