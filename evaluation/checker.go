package evaluation

import (
	"fmt"
	"strings"

	"github.com/hupe1980/toolcheck/toolcall"
)

// Check compares observed tool calls against expected tool calls as
// multisets of match keys. It is pure and safe for concurrent use.
//
// The verdict passes iff both multisets are equal. The score is the fraction
// of expected calls matched by an observed call; with no expected calls the
// score is 1.0. Malformed records yield *InvalidInputError.
func Check(observed, expected []toolcall.Record) (Verdict, error) {
	if err := validateRecords(observed, expected); err != nil {
		return Verdict{}, err
	}

	expectedLeft := countKeys(expected)
	var unexpected []toolcall.Record
	for _, r := range observed {
		k := r.Key()
		if expectedLeft[k] > 0 {
			expectedLeft[k]--
			continue
		}
		unexpected = append(unexpected, r)
	}

	observedLeft := countKeys(observed)
	var missing []toolcall.Record
	for _, r := range expected {
		k := r.Key()
		if observedLeft[k] > 0 {
			observedLeft[k]--
			continue
		}
		missing = append(missing, r)
	}

	score := 1.0
	if len(expected) > 0 {
		score = float64(len(expected)-len(missing)) / float64(len(expected))
	}

	return Verdict{
		Passed:     len(missing) == 0 && len(unexpected) == 0,
		Score:      score,
		Reason:     explain(len(expected), missing, unexpected),
		Missing:    missing,
		Unexpected: unexpected,
	}, nil
}

func validateRecords(observed, expected []toolcall.Record) error {
	for i, r := range observed {
		if err := r.Validate(); err != nil {
			return &InvalidInputError{Side: "observed", Index: i, Err: err}
		}
	}
	for i, r := range expected {
		if err := r.Validate(); err != nil {
			return &InvalidInputError{Side: "expected", Index: i, Err: err}
		}
	}
	return nil
}

func countKeys(records []toolcall.Record) map[toolcall.Key]int {
	counts := make(map[toolcall.Key]int, len(records))
	for _, r := range records {
		counts[r.Key()]++
	}
	return counts
}

func explain(expectedCount int, missing, unexpected []toolcall.Record) string {
	if len(missing) == 0 && len(unexpected) == 0 {
		if expectedCount == 0 {
			return "no tools were expected and none were called"
		}
		return fmt.Sprintf("all %d expected tools were called", expectedCount)
	}

	var parts []string
	if len(missing) > 0 {
		parts = append(parts, fmt.Sprintf("missing tools: %s", joinRecords(missing)))
	}
	if len(unexpected) > 0 {
		parts = append(parts, fmt.Sprintf("unexpected tools: %s", joinRecords(unexpected)))
	}
	return strings.Join(parts, "; ")
}

func joinRecords(records []toolcall.Record) string {
	names := make([]string, len(records))
	for i, r := range records {
		names[i] = r.String()
	}
	return strings.Join(names, ", ")
}
