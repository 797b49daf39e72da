package logging

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBufferLogger(level LogLevel) (*EvalLogger, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	l := NewLogger(&LoggerConfig{Level: level, Format: "json", Output: buf})
	return l, buf
}

func lastEntry(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.NotEmpty(t, lines)
	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[len(lines)-1]), &entry))
	return entry
}

func TestLogLevel_String(t *testing.T) {
	assert.Equal(t, "DEBUG", LogLevelDebug.String())
	assert.Equal(t, "ERROR", LogLevelError.String())
	assert.Equal(t, "UNKNOWN", LogLevel(42).String())
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, LogLevelDebug, ParseLevel("debug"))
	assert.Equal(t, LogLevelWarn, ParseLevel("warning"))
	assert.Equal(t, LogLevelError, ParseLevel("ERROR"))
	assert.Equal(t, LogLevelInfo, ParseLevel("nonsense"))
}

func TestEvalLogger_LevelFiltering(t *testing.T) {
	l, buf := newBufferLogger(LogLevelWarn)

	l.Info("hidden")
	assert.Empty(t, buf.String())

	l.Warn("visible", "key", "value")
	entry := lastEntry(t, buf)
	assert.Equal(t, "visible", entry["msg"])
	assert.Equal(t, "value", entry["key"])
}

func TestEvalLogger_ComponentAndRun(t *testing.T) {
	base, buf := newBufferLogger(LogLevelDebug)
	l := base.WithComponent("judge").WithRun("run-1")

	l.Debug("judge.score.start")
	entry := lastEntry(t, buf)
	assert.Equal(t, "judge", entry["component"])
	assert.Equal(t, "run-1", entry["run_id"])

	base.Info("plain")
	entry = lastEntry(t, buf)
	assert.NotContains(t, entry, "component")
}

func TestEvalLogger_LogCheck(t *testing.T) {
	l, buf := newBufferLogger(LogLevelInfo)

	l.LogCheck("Tool Correctness", "case-1", 0.5, false, nil)
	entry := lastEntry(t, buf)
	assert.Equal(t, "metric measured", entry["msg"])
	assert.Equal(t, 0.5, entry["score"])
	assert.Equal(t, false, entry["passed"])

	l.LogCheck("Tool Correctness", "case-1", 0, false, errors.New("boom"))
	entry = lastEntry(t, buf)
	assert.Equal(t, "metric failed", entry["msg"])
	assert.Equal(t, "ERROR", entry["level"])
	assert.Equal(t, "boom", entry["error"])
}

func TestEvalLogger_LogJudgeCallAndRun(t *testing.T) {
	l, buf := newBufferLogger(LogLevelInfo)

	l.LogJudgeCall("gpt-4o-mini", 10*time.Millisecond, true, nil)
	assert.Equal(t, "judge call completed", lastEntry(t, buf)["msg"])

	l.LogJudgeCall("gpt-4o-mini", time.Millisecond, false, errors.New("timeout"))
	assert.Equal(t, "judge call failed", lastEntry(t, buf)["msg"])

	l.LogRun(3, 2, time.Second, nil)
	entry := lastEntry(t, buf)
	assert.Equal(t, "evaluation run completed", entry["msg"])
	assert.Equal(t, float64(3), entry["test_cases"])
}

func TestSlogAdapter(t *testing.T) {
	buf := &bytes.Buffer{}
	l := NewSlogAdapter(slog.New(slog.NewTextHandler(buf, nil)))

	l.Info("hello", "k", 1)
	assert.Contains(t, buf.String(), "hello")
	assert.Contains(t, buf.String(), "k=1")
}

func TestOrNoOp(t *testing.T) {
	assert.Equal(t, NoOpLogger{}, OrNoOp(nil))

	l := NoOpLogger{}
	l.Debug("x")
	l.Error("y")

	custom := NewDefaultSlogLogger()
	assert.Equal(t, custom, OrNoOp(custom))
}

type recordingLogger struct {
	NoOpLogger
	infos  []string
	errors []string
}

func (r *recordingLogger) Info(msg string, _ ...any)  { r.infos = append(r.infos, msg) }
func (r *recordingLogger) Error(msg string, _ ...any) { r.errors = append(r.errors, msg) }

func TestHelpers_PlainLogger(t *testing.T) {
	l := &recordingLogger{}

	LogCheck(l, "m", "c", 1, true, nil)
	LogCheck(l, "m", "c", 0, false, errors.New("x"))
	LogJudgeCall(l, "gpt", time.Millisecond, nil)
	LogJudgeCall(l, "gpt", time.Millisecond, errors.New("x"))
	LogRun(l, 1, 1, time.Second, nil)
	LogRun(l, 1, 0, time.Second, errors.New("x"))

	assert.Equal(t, []string{"metric measured", "judge call completed", "evaluation run completed"}, l.infos)
	assert.Equal(t, []string{"metric failed", "judge call failed", "evaluation run failed"}, l.errors)
}

func TestHelpers_EvalLogger(t *testing.T) {
	l, buf := newBufferLogger(LogLevelInfo)

	LogJudgeCall(l, "claude", time.Millisecond, nil)
	entry := lastEntry(t, buf)
	assert.Equal(t, "judge call completed", entry["msg"])
	assert.Equal(t, "claude", entry["model"])
	assert.Equal(t, true, entry["success"])
}
