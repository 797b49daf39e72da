package judge

import (
	"context"
	"errors"
	"testing"

	"github.com/hupe1980/toolcheck/core"
	"github.com/hupe1980/toolcheck/model"
	"github.com/hupe1980/toolcheck/toolcall"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// mockModel is a testify backed model.Model.
type mockModel struct{ mock.Mock }

func (m *mockModel) Complete(ctx context.Context, req model.Request) (*model.Response, error) {
	args := m.Called(ctx, req)
	resp, _ := args.Get(0).(*model.Response)
	return resp, args.Error(1)
}

func (m *mockModel) Info() model.Info {
	return model.Info{Name: "mock-judge", Provider: "mock", SupportsTools: true}
}

func sampleRequest() Request {
	search := toolcall.MustRecord("search tool", "tool that searches the web", "needs fresh data",
		map[string]toolcall.Value{"user_string": toolcall.String("what is today's date?")},
		toolcall.MustValue(map[string]any{"num_results": 5}))
	calc := toolcall.MustRecord("calculator tool", "tool that calculates anything", "",
		map[string]toolcall.Value{"user_string": toolcall.String("what is 2+3?")},
		toolcall.Number(5))

	return Request{
		Criterion: "Is the expected tools same as tools called",
		Input:     "What is today's date and what is 2+3?",
		Observed:  []toolcall.Record{search},
		Expected:  []toolcall.Record{search, calc},
	}
}

func TestModelScorer_ToolCallVerdict(t *testing.T) {
	m := model.NewMockModel("judge").
		AddToolCall(VerdictToolName, `{"score":0.5,"reasoning":"calculator tool was not called"}`)

	s := NewModelScorer(m)
	res, err := s.Score(context.Background(), sampleRequest())
	require.NoError(t, err)

	assert.Equal(t, 0.5, res.Score)
	assert.Equal(t, "calculator tool was not called", res.Reason)
	assert.Equal(t, 1, s.Calls())

	reqs := m.Requests()
	require.Len(t, reqs, 1)
	assert.Equal(t, VerdictToolName, reqs[0].ToolChoice)
	require.Len(t, reqs[0].Tools, 1)
	assert.Equal(t, defaultSystemPrompt, reqs[0].System)

	prompt := reqs[0].Messages[0].Text()
	assert.Contains(t, prompt, "Is the expected tools same as tools called")
	assert.Contains(t, prompt, "calculator tool")
	assert.Contains(t, prompt, `{"user_string":"what is 2+3?"}`)
}

func TestModelScorer_TextVerdict(t *testing.T) {
	m := model.NewMockModel("judge").
		AddText("Here you go:\n```json\n{\"score\": 1, \"reasoning\": \"identical\"}\n```")

	s := NewModelScorer(m, func(o *ModelScorerOptions) {
		o.DisableTool = true
		o.SystemPrompt = "custom"
	})
	res, err := s.Score(context.Background(), sampleRequest())
	require.NoError(t, err)

	assert.Equal(t, 1.0, res.Score)
	assert.Equal(t, "identical", res.Reason)
	assert.Contains(t, res.Raw, "Here you go")

	reqs := m.Requests()
	require.Len(t, reqs, 1)
	assert.Empty(t, reqs[0].Tools)
	assert.Equal(t, "custom", reqs[0].System)
}

func TestModelScorer_Unparseable(t *testing.T) {
	tests := []struct {
		name string
		resp *model.Response
	}{
		{"prose", &model.Response{Content: core.NewTextContent("assistant", "looks fine to me")}},
		{"empty", &model.Response{Content: core.Content{Role: "assistant"}}},
		{"score out of range", &model.Response{Content: core.NewTextContent("assistant", `{"score": 7, "reasoning": "x"}`)}},
		{"missing reasoning", &model.Response{Content: core.Content{Role: "assistant", Parts: []core.Part{
			core.FunctionCallPart{FunctionCall: core.FunctionCall{Name: VerdictToolName, Arguments: `{"score":1}`}},
		}}}},
		{"null score", &model.Response{Content: core.Content{Role: "assistant", Parts: []core.Part{
			core.FunctionCallPart{FunctionCall: core.FunctionCall{Name: VerdictToolName, Arguments: `{"score":null,"reasoning":"x"}`}},
		}}}},
		{"string score", &model.Response{Content: core.NewTextContent("assistant", `{"score": "1", "reasoning": "x"}`)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := model.NewMockModel("judge").AddResponse(tt.resp)
			_, err := NewModelScorer(m).Score(context.Background(), sampleRequest())
			require.Error(t, err)

			var perr *ParseError
			assert.ErrorAs(t, err, &perr)
		})
	}
}

func TestModelScorer_ModelError(t *testing.T) {
	boom := errors.New("rate limited")
	m := &mockModel{}
	m.On("Complete", mock.Anything, mock.Anything).Return(nil, boom)

	_, err := NewModelScorer(m).Score(context.Background(), sampleRequest())
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	m.AssertExpectations(t)
}

func TestModelScorer_CallBudget(t *testing.T) {
	m := &mockModel{}
	m.On("Complete", mock.Anything, mock.Anything).Return(&model.Response{
		Content: core.NewTextContent("assistant", `{"score":1,"reasoning":"ok"}`),
	}, nil)

	s := NewModelScorer(m, func(o *ModelScorerOptions) { o.MaxCalls = 1 })

	_, err := s.Score(context.Background(), sampleRequest())
	require.NoError(t, err)

	_, err = s.Score(context.Background(), sampleRequest())
	assert.ErrorIs(t, err, core.ErrCallLimitExceeded)
	m.AssertNumberOfCalls(t, "Complete", 1)
}

func TestScorerFunc(t *testing.T) {
	var s Scorer = ScorerFunc(func(_ context.Context, req Request) (*Result, error) {
		return &Result{Score: float64(len(req.Observed)) / float64(len(req.Expected)), Reason: "ratio"}, nil
	})

	res, err := s.Score(context.Background(), sampleRequest())
	require.NoError(t, err)
	assert.Equal(t, 0.5, res.Score)
}

func TestBuildPrompt_NoTools(t *testing.T) {
	prompt := buildPrompt(Request{Criterion: "c"})
	assert.Contains(t, prompt, "TOOLS CALLED:\n(none)")
	assert.Contains(t, prompt, "EXPECTED TOOLS:\n(none)")
	assert.NotContains(t, prompt, "USER INPUT")
}

func TestVerdictTool_Schema(t *testing.T) {
	tool := verdictTool()
	assert.Equal(t, VerdictToolName, tool.Name)
	assert.ElementsMatch(t, []string{"score", "reasoning"}, tool.Parameters["required"])
}
