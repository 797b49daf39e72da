package model

import (
	"context"
	"fmt"
	"sync"

	"github.com/hupe1980/toolcheck/core"
)

// ToolDefinition declaratively exposes a callable function to the model.
type ToolDefinition struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Parameters  map[string]any `json:"parameters"` // JSON Schema
}

// Request captures the normalized model input.
type Request struct {
	System   string           `json:"system,omitempty"` // System instructions
	Messages []core.Content   `json:"messages"`         // Conversation (user / assistant)
	Tools    []ToolDefinition `json:"tools,omitempty"`
	// ToolChoice forces the named tool when set and present in Tools.
	ToolChoice string `json:"tool_choice,omitempty"`
}

// TokenUsage captures token usage statistics for a response.
type TokenUsage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

// Response is a completed model turn.
type Response struct {
	ID           string       `json:"id"`
	Content      core.Content `json:"content"`
	FinishReason string       `json:"finish_reason"` // "stop", "length", "tool_calls", etc.
	Usage        *TokenUsage  `json:"usage,omitempty"`
}

// Info contains metadata about a model implementation.
type Info struct {
	Name          string `json:"name"`
	Provider      string `json:"provider"` // "openai", "anthropic", "mock"
	SupportsTools bool   `json:"supports_tools"`
}

// Model is the minimal interface required by judges.
type Model interface {
	// Complete runs one non-streaming completion. Timeouts and retries are
	// left to the provider client and ctx.
	Complete(ctx context.Context, req Request) (*Response, error)

	// Info returns information about the model implementation.
	Info() Info
}

// MockModel is a lightweight in-memory Model useful for tests & examples.
// Responses are served in FIFO order; once exhausted the fallback is used.
type MockModel struct {
	info     Info
	mu       sync.Mutex
	queue    []*Response
	fallback *Response
	requests []Request
}

// NewMockModel constructs a MockModel with tool support enabled.
func NewMockModel(name string) *MockModel {
	return &MockModel{
		info: Info{Name: name, Provider: "mock", SupportsTools: true},
	}
}

// AddText queues a plain text response.
func (m *MockModel) AddText(text string) *MockModel {
	return m.AddResponse(&Response{
		Content:      core.NewTextContent("assistant", text),
		FinishReason: "stop",
	})
}

// AddToolCall queues a response carrying a single tool call.
func (m *MockModel) AddToolCall(name, arguments string) *MockModel {
	return m.AddResponse(&Response{
		Content: core.Content{Role: "assistant", Parts: []core.Part{
			core.FunctionCallPart{FunctionCall: core.FunctionCall{ID: fmt.Sprintf("call_%d", m.pending()+1), Name: name, Arguments: arguments}},
		}},
		FinishReason: "tool_calls",
	})
}

// AddResponse queues a raw response.
func (m *MockModel) AddResponse(resp *Response) *MockModel {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.queue = append(m.queue, resp)
	return m
}

// SetFallback sets the response returned once the queue is empty.
func (m *MockModel) SetFallback(resp *Response) *MockModel {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.fallback = resp
	return m
}

// Requests returns the requests received so far.
func (m *MockModel) Requests() []Request {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]Request(nil), m.requests...)
}

func (m *MockModel) pending() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.queue)
}

// Complete implements Model.
func (m *MockModel) Complete(ctx context.Context, req Request) (*Response, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.requests = append(m.requests, req)

	if len(m.queue) > 0 {
		resp := m.queue[0]
		m.queue = m.queue[1:]
		return resp, nil
	}
	if m.fallback != nil {
		return m.fallback, nil
	}
	return nil, fmt.Errorf("mock model %s: no response configured", m.info.Name)
}

// Info implements Model.
func (m *MockModel) Info() Info { return m.info }
