package testutil

import (
	"github.com/hupe1980/toolcheck/core"
	"github.com/hupe1980/toolcheck/toolcall"
)

// RecordBuilder provides a fluent helper for constructing records in tests.
// Example:
//
//	r := NewRecordBuilder("search tool").Param("user_string", "hi").Output("ok").Build()
type RecordBuilder struct {
	name        string
	description string
	reasoning   string
	input       map[string]toolcall.Value
	output      toolcall.Value
}

// NewRecordBuilder creates a builder for the named tool.
func NewRecordBuilder(name string) *RecordBuilder {
	return &RecordBuilder{name: name, input: map[string]toolcall.Value{}}
}

// Description sets the description (chainable).
func (b *RecordBuilder) Description(d string) *RecordBuilder { b.description = d; return b }

// Reasoning sets the reasoning (chainable).
func (b *RecordBuilder) Reasoning(r string) *RecordBuilder { b.reasoning = r; return b }

// Param adds an input parameter; v is converted with toolcall.MustValue (chainable).
func (b *RecordBuilder) Param(key string, v any) *RecordBuilder {
	b.input[key] = toolcall.MustValue(v)
	return b
}

// Output sets the output; v is converted with toolcall.MustValue (chainable).
func (b *RecordBuilder) Output(v any) *RecordBuilder {
	b.output = toolcall.MustValue(v)
	return b
}

// Build constructs the record. It panics on an invalid name.
func (b *RecordBuilder) Build() toolcall.Record {
	return toolcall.MustRecord(b.name, b.description, b.reasoning, b.input, b.output)
}

// SearchTool returns the web search record used throughout the tests.
func SearchTool() toolcall.Record {
	return NewRecordBuilder("search tool").
		Description("tool that searches the web for the latest information").
		Reasoning("User asked for information outside my knowledge...searching web for information").
		Param("user_string", "what is today's date?").
		Output(map[string]any{"num_results": 5, "top_results": "Today is Jan 19, 2025"}).
		Build()
}

// CalculatorTool returns the calculator record used throughout the tests.
func CalculatorTool() toolcall.Record {
	return NewRecordBuilder("calculator tool").
		Description("tool that calculates anything").
		Reasoning("User asked for a solution to math equation... using calculator tool").
		Param("user_string", "what is 2+3?").
		Output(5).
		Build()
}

// Transcript builds an agent transcript in which the assistant issues a
// call per record and the tool role answers with each record's output.
func Transcript(records ...toolcall.Record) []core.Content {
	calls := core.Content{Role: "assistant"}
	responses := core.Content{Role: "tool"}
	for i, r := range records {
		id := "call_" + string(rune('a'+i))
		calls.Parts = append(calls.Parts, core.FunctionCallPart{
			FunctionCall: core.FunctionCall{ID: id, Name: r.Name(), Arguments: toolcall.Object(r.InputParameters()).String()},
			Reasoning:    r.Reasoning(),
		})
		responses.Parts = append(responses.Parts, core.FunctionResponsePart{
			FunctionResponse: core.FunctionResponse{ID: id, Name: r.Name(), Response: r.Output().Interface()},
		})
	}
	return []core.Content{calls, responses}
}
