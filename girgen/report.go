package girgen

import "github.com/google/uuid"

// Exclusion records one class left out of the output and why. Exclusions
// are expected with real-world introspection data and are reported, never
// treated as errors.
type Exclusion struct {
	Class  string `json:"class"`
	Reason string `json:"reason"`
}

// Report summarizes a generation run for the host tool.
type Report struct {
	// RunID uniquely identifies the run in logs and emitted artifacts.
	RunID string `json:"runId"`

	Namespaces int `json:"namespaces"`
	Classes    int `json:"classes"`
	Generated  int `json:"generated"`

	// Widgets and Controllers count the classified classes.
	Widgets     int `json:"widgets"`
	Controllers int `json:"controllers"`

	Excluded []Exclusion `json:"excluded,omitempty"`
}

func newReport() Report {
	return Report{RunID: uuid.NewString()}
}
