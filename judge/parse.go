package judge

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/hupe1980/toolcheck/internal/util"
	"github.com/hupe1980/toolcheck/model"
)

// VerdictToolName is the tool a judge model calls to submit its verdict.
const VerdictToolName = "submit_verdict"

// verdictArgs is the argument shape of the verdict tool.
type verdictArgs struct {
	Score     float64 `json:"score" description:"How well the tools called match the expected tools under the criterion" minimum:"0" maximum:"1"`
	Reasoning string  `json:"reasoning" description:"Concise explanation naming missing or unexpected tools"`
}

var verdictSchema = util.CreateSchema(verdictArgs{})

// verdictTool describes the tool offered to the judge model.
func verdictTool() model.ToolDefinition {
	return model.ToolDefinition{
		Name:        VerdictToolName,
		Description: "Submit the evaluation verdict",
		Parameters:  verdictSchema,
	}
}

// parseResponse extracts a Result from the model response. A verdict tool
// call takes precedence over text; text may wrap the JSON object in prose or
// markdown fences.
func parseResponse(resp *model.Response) (*Result, error) {
	raw := resp.Content.Text()

	for _, fc := range resp.Content.FunctionCalls() {
		if fc.FunctionCall.Name != VerdictToolName {
			continue
		}
		res, err := parseVerdictJSON(fc.FunctionCall.Arguments)
		if err != nil {
			return nil, &ParseError{Raw: fc.FunctionCall.Arguments, Err: err}
		}
		res.Raw = fc.FunctionCall.Arguments
		return res, nil
	}

	jsonStr := raw
	if idx := strings.Index(raw, "{"); idx >= 0 {
		if end := strings.LastIndex(raw, "}"); end >= idx {
			jsonStr = raw[idx : end+1]
		}
	}

	res, err := parseVerdictJSON(jsonStr)
	if err != nil {
		return nil, &ParseError{Raw: raw, Err: err}
	}
	res.Raw = raw
	return res, nil
}

func parseVerdictJSON(s string) (*Result, error) {
	if strings.TrimSpace(s) == "" {
		return nil, errors.New("empty response")
	}

	var args map[string]any
	if err := json.Unmarshal([]byte(s), &args); err != nil {
		return nil, fmt.Errorf("decode verdict: %w", err)
	}
	if err := util.ValidateParameters(args, verdictSchema); err != nil {
		return nil, err
	}

	score, ok := args["score"].(float64)
	if !ok {
		return nil, fmt.Errorf("score must be a number, got %T", args["score"])
	}
	reason, ok := args["reasoning"].(string)
	if !ok {
		return nil, fmt.Errorf("reasoning must be a string, got %T", args["reasoning"])
	}
	return &Result{Score: score, Reason: reason}, nil
}
