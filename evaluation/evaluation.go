package evaluation

import (
	"github.com/google/uuid"
	"github.com/hupe1980/toolcheck/toolcall"
)

// TestCase groups the observed and expected tool calls of one evaluation.
type TestCase struct {
	ID           string            `json:"id,omitempty" yaml:"id,omitempty"`
	Name         string            `json:"name,omitempty" yaml:"name,omitempty"`
	Input        string            `json:"input,omitempty" yaml:"input,omitempty"`
	ActualOutput string            `json:"actual_output,omitempty" yaml:"actual_output,omitempty"`
	Observed     []toolcall.Record `json:"tools_called" yaml:"tools_called"`
	Expected     []toolcall.Record `json:"expected_tools" yaml:"expected_tools"`
}

// NewTestCase creates a TestCase with a generated ID.
func NewTestCase(input string, observed, expected []toolcall.Record, optFns ...func(tc *TestCase)) *TestCase {
	tc := &TestCase{
		ID:       uuid.NewString(),
		Input:    input,
		Observed: observed,
		Expected: expected,
	}
	for _, fn := range optFns {
		fn(tc)
	}
	return tc
}

// Label returns the name of the test case, falling back to its ID.
func (tc *TestCase) Label() string {
	if tc.Name != "" {
		return tc.Name
	}
	return tc.ID
}

// Verdict is the result of a correctness check.
type Verdict struct {
	Metric    string  `json:"metric,omitempty"`
	Passed    bool    `json:"passed"`
	Score     float64 `json:"score"`
	Threshold float64 `json:"threshold,omitempty"`
	Reason    string  `json:"reason,omitempty"`
	// Missing lists expected calls without an observed counterpart.
	Missing []toolcall.Record `json:"missing,omitempty"`
	// Unexpected lists observed calls without an expected counterpart.
	Unexpected []toolcall.Record `json:"unexpected,omitempty"`
}
