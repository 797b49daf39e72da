// Package toolcheck provides a high-level façade for evaluating whether an
// agent called the tools it was expected to call. Most applications interact
// with this package by:
//  1. Creating an Evaluator via New() (optionally with a judge model and logger)
//  2. Building test cases from toolcall.Record values or agent transcripts
//  3. Running Check for a single comparison or Evaluate for a batch
//
// The façade wires the deterministic tool correctness metric and, when a
// judge is configured, the reasoned metric backed by that judge.
package toolcheck

import (
	"context"

	"github.com/hupe1980/toolcheck/core"
	"github.com/hupe1980/toolcheck/evaluation"
	"github.com/hupe1980/toolcheck/judge"
	"github.com/hupe1980/toolcheck/logging"
	"github.com/hupe1980/toolcheck/toolcall"
)

// Options configures the Evaluator.
type Options struct {
	// Judge enables the reasoned metric when non-nil.
	Judge judge.Scorer

	// Criterion is the comparison criterion handed to the judge.
	Criterion string

	// Threshold is the minimum judge score for the reasoned metric to pass.
	Threshold float64

	// Concurrency bounds the number of test cases evaluated in parallel.
	Concurrency int

	// Logger (defaults to NoOp logger if nil)
	Logger logging.Logger
}

// Evaluator is the high-level façade bundling metrics and run settings.
type Evaluator struct {
	opts    Options
	metrics []evaluation.Metric
}

// New creates a new Evaluator with optional overrides.
func New(optFns ...func(o *Options)) *Evaluator {
	opts := Options{
		Criterion:   evaluation.DefaultCriterion,
		Threshold:   0.5,
		Concurrency: evaluation.DefaultConcurrency,
		Logger:      logging.NoOpLogger{},
	}
	for _, fn := range optFns {
		fn(&opts)
	}
	opts.Logger = logging.OrNoOp(opts.Logger)

	metrics := []evaluation.Metric{
		evaluation.NewToolCorrectnessMetric(func(o *evaluation.ToolCorrectnessOptions) {
			o.Logger = opts.Logger
		}),
	}
	if opts.Judge != nil {
		metrics = append(metrics, evaluation.NewReasonedMetric(opts.Judge, func(o *evaluation.ReasonedOptions) {
			o.Criterion = opts.Criterion
			o.Threshold = opts.Threshold
			o.Logger = opts.Logger
		}))
	}

	return &Evaluator{opts: opts, metrics: metrics}
}

// Metrics returns the configured metrics in evaluation order.
func (e *Evaluator) Metrics() []evaluation.Metric {
	return append([]evaluation.Metric(nil), e.metrics...)
}

// Check runs the deterministic comparison on two record sequences.
func (e *Evaluator) Check(observed, expected []toolcall.Record) (evaluation.Verdict, error) {
	return evaluation.Check(observed, expected)
}

// CheckTranscript extracts the observed calls from an agent transcript and
// compares them with expected.
func (e *Evaluator) CheckTranscript(transcript []core.Content, expected []toolcall.Record) (evaluation.Verdict, error) {
	observed, err := toolcall.FromContents(transcript)
	if err != nil {
		return evaluation.Verdict{}, err
	}
	return evaluation.Check(observed, expected)
}

// Measure runs all configured metrics on a single test case.
func (e *Evaluator) Measure(ctx context.Context, tc *evaluation.TestCase) ([]evaluation.Verdict, error) {
	report, err := e.Evaluate(ctx, []*evaluation.TestCase{tc})
	if err != nil {
		return nil, err
	}
	return report.Results[0].Verdicts, nil
}

// Evaluate runs all configured metrics on the given test cases.
func (e *Evaluator) Evaluate(ctx context.Context, cases []*evaluation.TestCase) (*evaluation.Report, error) {
	return evaluation.Evaluate(ctx, cases, e.metrics, func(o *evaluation.Options) {
		o.Concurrency = e.opts.Concurrency
		o.Logger = e.opts.Logger
	})
}

// EvaluateDataset loads a dataset file and evaluates all of its test cases.
func (e *Evaluator) EvaluateDataset(ctx context.Context, path string) (*evaluation.Report, error) {
	ds, err := evaluation.LoadDataset(path)
	if err != nil {
		return nil, err
	}
	return e.Evaluate(ctx, ds.TestCases)
}
