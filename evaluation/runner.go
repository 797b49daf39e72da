package evaluation

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/hupe1980/toolcheck/logging"
	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency is the number of test cases evaluated in parallel.
const DefaultConcurrency = 4

// Options configure Evaluate.
type Options struct {
	// Concurrency bounds the number of test cases measured at once.
	Concurrency int
	// Logger receives per metric and per run entries (defaults to NoOpLogger).
	Logger logging.Logger
}

// CaseResult holds the verdicts of all metrics for one test case, in metric order.
type CaseResult struct {
	TestCase *TestCase `json:"test_case"`
	Verdicts []Verdict `json:"verdicts"`
}

// Passed reports whether every metric passed.
func (r CaseResult) Passed() bool {
	for _, v := range r.Verdicts {
		if !v.Passed {
			return false
		}
	}
	return true
}

// Report is the outcome of an evaluation run. Results follow the order of
// the input test cases.
type Report struct {
	RunID    string        `json:"run_id"`
	Results  []CaseResult  `json:"results"`
	Duration time.Duration `json:"duration"`
}

// Passed returns the number of test cases for which every metric passed.
func (r *Report) Passed() int {
	n := 0
	for _, res := range r.Results {
		if res.Passed() {
			n++
		}
	}
	return n
}

// PassRate returns the fraction of passing test cases (1.0 for an empty run).
func (r *Report) PassRate() float64 {
	if len(r.Results) == 0 {
		return 1.0
	}
	return float64(r.Passed()) / float64(len(r.Results))
}

// Evaluate measures every metric on every test case. Test cases run
// concurrently up to Options.Concurrency; the metrics of one case run in
// order. The first error cancels the remaining work and is returned.
func Evaluate(ctx context.Context, cases []*TestCase, metrics []Metric, optFns ...func(o *Options)) (*Report, error) {
	opts := Options{Concurrency: DefaultConcurrency}
	for _, fn := range optFns {
		fn(&opts)
	}
	if opts.Concurrency <= 0 {
		opts.Concurrency = DefaultConcurrency
	}
	if len(metrics) == 0 {
		return nil, errors.New("evaluate: no metrics given")
	}
	for i, tc := range cases {
		if tc == nil {
			return nil, fmt.Errorf("evaluate: test case %d is nil", i)
		}
	}
	for i, m := range metrics {
		if m == nil {
			return nil, fmt.Errorf("evaluate: metric %d is nil", i)
		}
	}

	report := &Report{RunID: uuid.NewString(), Results: make([]CaseResult, len(cases))}

	logger := logging.OrNoOp(opts.Logger)
	if el, ok := logger.(*logging.EvalLogger); ok {
		logger = el.WithComponent("runner").WithRun(report.RunID)
	}

	start := time.Now()
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.Concurrency)

	for i, tc := range cases {
		g.Go(func() error {
			verdicts := make([]Verdict, 0, len(metrics))
			for _, m := range metrics {
				v, err := m.Measure(gctx, tc)
				logging.LogCheck(logger, m.Name(), tc.Label(), v.Score, v.Passed, err)
				if err != nil {
					return fmt.Errorf("test case %s: metric %s: %w", tc.Label(), m.Name(), err)
				}
				verdicts = append(verdicts, v)
			}
			report.Results[i] = CaseResult{TestCase: tc, Verdicts: verdicts}
			return nil
		})
	}

	err := g.Wait()
	report.Duration = time.Since(start)
	if err != nil {
		logging.LogRun(logger, len(cases), 0, report.Duration, err)
		return nil, err
	}
	logging.LogRun(logger, len(cases), report.Passed(), report.Duration, nil)

	return report, nil
}
