package models

import "time"

// CheckResult represents the result of one call in a check plan
type CheckResult struct {
	// Call details
	Name      string `json:"name"`
	Adapter   string `json:"adapter"`
	Operation string `json:"operation,omitempty"`
	URL       string `json:"url,omitempty"`

	// Check status
	Passed bool   `json:"passed"`
	Error  string `json:"error,omitempty"`

	// Response details
	StatusCode   int           `json:"status_code"`
	ResponseTime time.Duration `json:"response_time_ns"`
}

// CheckSummary represents the overall results of a check plan
type CheckSummary struct {
	TotalChecks   int           `json:"total_checks"`
	Passed        int           `json:"passed"`
	Failed        int           `json:"failed"`
	TotalDuration time.Duration `json:"total_duration_ns"`
	Results       []CheckResult `json:"results"`
}

// AddResult adds a check result to the summary
func (s *CheckSummary) AddResult(result CheckResult) {
	s.TotalChecks++
	s.Results = append(s.Results, result)
	if result.Passed {
		s.Passed++
	} else {
		s.Failed++
	}
}
