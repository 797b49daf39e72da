package logging

import "time"

// The helpers below route to the EvalLogger domain methods when the given
// logger is an *EvalLogger and emit an equivalent plain entry otherwise.

// LogCheck records the outcome of one metric measurement on l.
func LogCheck(l Logger, metric, testCase string, score float64, passed bool, err error) {
	if el, ok := l.(*EvalLogger); ok {
		el.LogCheck(metric, testCase, score, passed, err)
		return
	}
	if err != nil {
		l.Error("metric failed", "metric", metric, "test_case", testCase, "error", err.Error())
		return
	}
	l.Info("metric measured", "metric", metric, "test_case", testCase, "score", score, "passed", passed)
}

// LogJudgeCall records a judge model call on l.
func LogJudgeCall(l Logger, model string, dur time.Duration, err error) {
	if el, ok := l.(*EvalLogger); ok {
		el.LogJudgeCall(model, dur, err == nil, err)
		return
	}
	if err != nil {
		l.Error("judge call failed", "model", model, "duration", dur, "error", err.Error())
		return
	}
	l.Info("judge call completed", "model", model, "duration", dur)
}

// LogRun records aggregate statistics of an evaluation run on l.
func LogRun(l Logger, cases, passed int, dur time.Duration, err error) {
	if el, ok := l.(*EvalLogger); ok {
		el.LogRun(cases, passed, dur, err)
		return
	}
	if err != nil {
		l.Error("evaluation run failed", "test_cases", cases, "duration", dur, "error", err.Error())
		return
	}
	l.Info("evaluation run completed", "test_cases", cases, "passed", passed, "duration", dur)
}
