// Package evaluation compares the tools an agent actually called against the
// tools it was expected to call.
//
// The central operation is Check, a pure function performing an order
// independent multiset comparison on each record's match key (tool name plus
// input parameters). Description, reasoning and output never influence the
// verdict.
//
// Two Metric implementations wrap the comparison for use with test cases:
//
//   - ToolCorrectnessMetric: deterministic, built on Check
//   - ReasonedMetric: delegates scoring and explanation to a judge.Scorer
//
// Evaluate runs a set of metrics over many test cases concurrently and
// returns a Report; datasets of test cases can be loaded from YAML or JSON
// with LoadDataset.
//
// Empty expectations: when no tools are expected the score is 1.0, but the
// verdict only passes if no tools were called either. Every extra call is
// reported as unexpected.
package evaluation
