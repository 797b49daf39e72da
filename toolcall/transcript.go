package toolcall

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/hupe1980/toolcheck/core"
)

// TranscriptOptions configure FromContents.
type TranscriptOptions struct {
	// Descriptions maps tool names to the description recorded on each
	// extracted record. Tools without an entry get an empty description.
	Descriptions map[string]string
}

// pendingCall accumulates a function call until its response is seen.
type pendingCall struct {
	id        string
	name      string
	reasoning string
	input     map[string]Value
	output    Value
	answered  bool
}

// FromContents extracts the observed tool calls from an agent transcript.
// Every core.FunctionCallPart becomes one Record, in transcript order. The
// output is taken from the core.FunctionResponsePart with the same call ID,
// or, when IDs are absent, from the first unanswered call with the same
// name. Failed calls get an object output {"error": "..."}.
func FromContents(contents []core.Content, optFns ...func(o *TranscriptOptions)) ([]Record, error) {
	opts := TranscriptOptions{}
	for _, fn := range optFns {
		fn(&opts)
	}

	var calls []*pendingCall
	for ci, c := range contents {
		for pi, p := range c.Parts {
			switch part := p.(type) {
			case core.FunctionCallPart:
				input, err := decodeArguments(part.FunctionCall.Arguments)
				if err != nil {
					return nil, fmt.Errorf("content %d part %d: tool %q: %w", ci, pi, part.FunctionCall.Name, err)
				}
				calls = append(calls, &pendingCall{
					id:        part.FunctionCall.ID,
					name:      part.FunctionCall.Name,
					reasoning: part.Reasoning,
					input:     input,
				})
			case core.FunctionResponsePart:
				pc := findPending(calls, part.FunctionResponse)
				if pc == nil {
					continue
				}
				out, err := responseValue(part.FunctionResponse)
				if err != nil {
					return nil, fmt.Errorf("content %d part %d: tool %q: %w", ci, pi, part.FunctionResponse.Name, err)
				}
				pc.output = out
				pc.answered = true
			}
		}
	}

	records := make([]Record, 0, len(calls))
	for i, pc := range calls {
		r, err := NewRecord(pc.name, opts.Descriptions[pc.name], pc.reasoning, pc.input, pc.output)
		if err != nil {
			return nil, fmt.Errorf("call %d: %w", i, err)
		}
		records = append(records, r)
	}
	return records, nil
}

func findPending(calls []*pendingCall, fr core.FunctionResponse) *pendingCall {
	if fr.ID != "" {
		for _, pc := range calls {
			if pc.id == fr.ID && !pc.answered {
				return pc
			}
		}
		return nil
	}
	for _, pc := range calls {
		if pc.name == fr.Name && !pc.answered {
			return pc
		}
	}
	return nil
}

func decodeArguments(args string) (map[string]Value, error) {
	if strings.TrimSpace(args) == "" {
		return map[string]Value{}, nil
	}
	dec := json.NewDecoder(bytes.NewReader([]byte(args)))
	dec.UseNumber()
	var raw map[string]any
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("invalid arguments JSON: %w", err)
	}
	input := make(map[string]Value, len(raw))
	for k, v := range raw {
		val, err := ValueOf(v)
		if err != nil {
			return nil, fmt.Errorf("argument %q: %w", k, err)
		}
		input[k] = val
	}
	return input, nil
}

func responseValue(fr core.FunctionResponse) (Value, error) {
	if fr.Error != "" {
		return Object(map[string]Value{"error": String(fr.Error)}), nil
	}
	return ValueOf(fr.Response)
}
