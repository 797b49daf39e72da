package judge

import (
	"context"
	"fmt"
	"time"

	"github.com/hupe1980/toolcheck/core"
	"github.com/hupe1980/toolcheck/logging"
	"github.com/hupe1980/toolcheck/model"
)

// ModelScorerOptions configure a ModelScorer.
type ModelScorerOptions struct {
	// SystemPrompt overrides the default judge instructions.
	SystemPrompt string
	// MaxCalls caps the number of model requests over the scorer's lifetime.
	// Zero means unlimited.
	MaxCalls int
	// DisableTool sends no verdict tool and relies on a JSON text answer.
	// Useful for models without tool support.
	DisableTool bool
	// Logger receives judge call diagnostics (defaults to NoOpLogger).
	Logger logging.Logger
}

// ModelScorer is a Scorer backed by a language model.
type ModelScorer struct {
	model   model.Model
	opts    ModelScorerOptions
	limiter *core.CallLimiter
}

// NewModelScorer creates a ModelScorer for m.
func NewModelScorer(m model.Model, optFns ...func(o *ModelScorerOptions)) *ModelScorer {
	opts := ModelScorerOptions{
		SystemPrompt: defaultSystemPrompt,
	}
	for _, fn := range optFns {
		fn(&opts)
	}
	opts.Logger = logging.OrNoOp(opts.Logger)

	return &ModelScorer{
		model:   m,
		opts:    opts,
		limiter: core.NewCallLimiter(opts.MaxCalls),
	}
}

// Calls returns the number of model requests issued so far.
func (s *ModelScorer) Calls() int { return s.limiter.Count() }

// Score implements Scorer. Model and budget errors are returned unchanged
// (wrapped); unparseable answers yield *ParseError.
func (s *ModelScorer) Score(ctx context.Context, req Request) (*Result, error) {
	if err := s.limiter.Acquire(); err != nil {
		return nil, fmt.Errorf("judge: %w", err)
	}

	info := s.model.Info()
	mreq := model.Request{
		System:   s.opts.SystemPrompt,
		Messages: []core.Content{core.NewTextContent("user", buildPrompt(req))},
	}
	if !s.opts.DisableTool && info.SupportsTools {
		mreq.Tools = []model.ToolDefinition{verdictTool()}
		mreq.ToolChoice = VerdictToolName
	}

	s.opts.Logger.Debug("judge.score.start", "model", info.Name, "observed", len(req.Observed), "expected", len(req.Expected))

	start := time.Now()
	resp, err := s.model.Complete(ctx, mreq)
	logging.LogJudgeCall(s.opts.Logger, info.Name, time.Since(start), err)
	if err != nil {
		return nil, fmt.Errorf("judge: %w", err)
	}

	res, err := parseResponse(resp)
	if err != nil {
		s.opts.Logger.Warn("judge.score.unparseable", "model", info.Name, "error", err.Error())
		return nil, err
	}

	s.opts.Logger.Debug("judge.score.done", "model", info.Name, "score", res.Score)

	return res, nil
}
