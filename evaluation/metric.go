package evaluation

import (
	"context"
	"math"

	"github.com/hupe1980/toolcheck/judge"
	"github.com/hupe1980/toolcheck/logging"
)

const (
	// DefaultCriterion is the comparison criterion given to the judge.
	DefaultCriterion = "Is the expected tools same as tools called"

	defaultToolCorrectnessName = "Tool Correctness"
	defaultReasonedName        = "Tool Correctness (reasoned)"
	defaultReasonedThreshold   = 0.5
)

// Metric measures a test case and returns a verdict.
type Metric interface {
	// Name identifies the metric in verdicts and reports.
	Name() string

	// Measure evaluates tc. Implementations must not modify tc.
	Measure(ctx context.Context, tc *TestCase) (Verdict, error)
}

// ToolCorrectnessOptions configure a ToolCorrectnessMetric.
type ToolCorrectnessOptions struct {
	Name string
	// Threshold is the minimum score required to pass (default 1.0).
	Threshold float64
	// StrictMode additionally requires the multisets to be equal, so
	// unexpected extra calls fail the verdict (default true).
	StrictMode bool
	Logger     logging.Logger
}

// ToolCorrectnessMetric is the deterministic metric built on Check.
type ToolCorrectnessMetric struct {
	opts ToolCorrectnessOptions
}

// NewToolCorrectnessMetric creates a ToolCorrectnessMetric.
func NewToolCorrectnessMetric(optFns ...func(o *ToolCorrectnessOptions)) *ToolCorrectnessMetric {
	opts := ToolCorrectnessOptions{
		Name:       defaultToolCorrectnessName,
		Threshold:  1.0,
		StrictMode: true,
	}
	for _, fn := range optFns {
		fn(&opts)
	}
	opts.Logger = logging.OrNoOp(opts.Logger)
	return &ToolCorrectnessMetric{opts: opts}
}

// Name implements Metric.
func (m *ToolCorrectnessMetric) Name() string { return m.opts.Name }

// Measure implements Metric.
func (m *ToolCorrectnessMetric) Measure(_ context.Context, tc *TestCase) (Verdict, error) {
	v, err := Check(tc.Observed, tc.Expected)
	if err != nil {
		return Verdict{}, err
	}

	exact := v.Passed
	v.Metric = m.opts.Name
	v.Threshold = m.opts.Threshold
	v.Passed = v.Score >= m.opts.Threshold && (!m.opts.StrictMode || exact)

	m.opts.Logger.Debug("metric.tool_correctness", "test_case", tc.Label(), "score", v.Score, "passed", v.Passed)

	return v, nil
}

// ReasonedOptions configure a ReasonedMetric.
type ReasonedOptions struct {
	Name      string
	Criterion string
	// Threshold is the minimum judge score required to pass (default 0.5).
	Threshold float64
	Logger    logging.Logger
}

// ReasonedMetric delegates scoring and explanation to a judge.Scorer fed
// both tool sequences and a criterion.
type ReasonedMetric struct {
	scorer judge.Scorer
	opts   ReasonedOptions
}

// NewReasonedMetric creates a ReasonedMetric backed by scorer.
func NewReasonedMetric(scorer judge.Scorer, optFns ...func(o *ReasonedOptions)) *ReasonedMetric {
	opts := ReasonedOptions{
		Name:      defaultReasonedName,
		Criterion: DefaultCriterion,
		Threshold: defaultReasonedThreshold,
	}
	for _, fn := range optFns {
		fn(&opts)
	}
	opts.Logger = logging.OrNoOp(opts.Logger)
	return &ReasonedMetric{scorer: scorer, opts: opts}
}

// Name implements Metric.
func (m *ReasonedMetric) Name() string { return m.opts.Name }

// Measure implements Metric. Scorer errors are returned unchanged.
func (m *ReasonedMetric) Measure(ctx context.Context, tc *TestCase) (Verdict, error) {
	if err := validateRecords(tc.Observed, tc.Expected); err != nil {
		return Verdict{}, err
	}

	res, err := m.scorer.Score(ctx, judge.Request{
		Criterion: m.opts.Criterion,
		Input:     tc.Input,
		Observed:  tc.Observed,
		Expected:  tc.Expected,
	})
	if err != nil {
		return Verdict{}, err
	}

	score := clamp(res.Score)
	m.opts.Logger.Debug("metric.reasoned", "test_case", tc.Label(), "score", score)

	return Verdict{
		Metric:    m.opts.Name,
		Passed:    score >= m.opts.Threshold,
		Score:     score,
		Threshold: m.opts.Threshold,
		Reason:    res.Reason,
	}, nil
}

func clamp(score float64) float64 {
	if math.IsNaN(score) {
		return 0
	}
	return math.Max(0, math.Min(1, score))
}
