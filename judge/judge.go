// Package judge implements the external natural-language scoring service used
// by the reasoned tool correctness metric. A Scorer receives the observed and
// expected tool calls plus a free-text criterion and returns a score in [0,1]
// together with an explanation. The core treats it as an opaque, possibly
// non-deterministic collaborator.
package judge

import (
	"context"
	"fmt"

	"github.com/hupe1980/toolcheck/toolcall"
)

// Request is the input of a judge evaluation.
type Request struct {
	Criterion string
	Input     string // Optional user input that triggered the calls
	Observed  []toolcall.Record
	Expected  []toolcall.Record
}

// Result is the output of a judge evaluation.
type Result struct {
	Score  float64 `json:"score"`
	Reason string  `json:"reason"`
	Raw    string  `json:"raw,omitempty"` // Unprocessed model output
}

// Scorer scores observed tool usage against expected tool usage.
type Scorer interface {
	Score(ctx context.Context, req Request) (*Result, error)
}

// ScorerFunc adapts a plain function to the Scorer interface.
type ScorerFunc func(ctx context.Context, req Request) (*Result, error)

// Score implements Scorer.
func (f ScorerFunc) Score(ctx context.Context, req Request) (*Result, error) { return f(ctx, req) }

// ParseError reports a judge response that could not be interpreted.
type ParseError struct {
	Raw string
	Err error
}

// Error implements the error interface for ParseError.
func (e *ParseError) Error() string {
	return fmt.Sprintf("unparseable judge response: %v", e.Err)
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error { return e.Err }
