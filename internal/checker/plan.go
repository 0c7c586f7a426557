package checker

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Plan is a list of calls to run against a backend
type Plan struct {
	Defaults Target `yaml:"defaults"`
	Calls    []Call `yaml:"calls"`
}

// Target holds the connection settings of a call
type Target struct {
	BaseURL     string `yaml:"base_url"`
	AccessToken string `yaml:"access_token"`
	Locale      string `yaml:"locale"`
}

// Call is one adapter invocation in a plan
type Call struct {
	Target `yaml:",inline"`

	Name         string            `yaml:"name"`
	Adapter      string            `yaml:"adapter"`
	Operation    string            `yaml:"operation"`
	Params       map[string]string `yaml:"params"`
	ExpectStatus int               `yaml:"expect_status"` // 0 means any 2xx
}

// LoadPlan reads a YAML plan file
func LoadPlan(path string) (*Plan, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read plan file: %w", err)
	}
	return ParsePlan(data)
}

// ParsePlan decodes and validates a YAML plan
func ParsePlan(data []byte) (*Plan, error) {
	var plan Plan
	if err := yaml.Unmarshal(data, &plan); err != nil {
		return nil, fmt.Errorf("failed to parse plan: %w", err)
	}

	if len(plan.Calls) == 0 {
		return nil, fmt.Errorf("plan has no calls")
	}

	for i := range plan.Calls {
		call := &plan.Calls[i]
		if call.Adapter == "" {
			return nil, fmt.Errorf("call %d: adapter is required", i+1)
		}
		if call.Name == "" {
			call.Name = fmt.Sprintf("#%d %s", i+1, call.Adapter)
			if call.Operation != "" {
				call.Name += " " + call.Operation
			}
		}
	}

	return &plan, nil
}

// resolve fills unset connection settings from the plan defaults and then
// from the fallback (usually the loaded config)
func (c Call) resolve(defaults, fallback Target) Target {
	t := c.Target
	if t.BaseURL == "" {
		t.BaseURL = first(defaults.BaseURL, fallback.BaseURL)
	}
	if t.AccessToken == "" {
		t.AccessToken = first(defaults.AccessToken, fallback.AccessToken)
	}
	if t.Locale == "" {
		t.Locale = first(defaults.Locale, fallback.Locale)
	}
	return t
}

func first(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
