package core

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContent_Text(t *testing.T) {
	c := Content{Role: "assistant", Parts: []Part{
		TextPart{Text: "Today is "},
		FunctionCallPart{FunctionCall: FunctionCall{Name: "search tool"}},
		TextPart{Text: "Jan 19"},
	}}

	assert.Equal(t, "Today is Jan 19", c.Text())
	assert.Equal(t, "hello", NewTextContent("user", "hello").Text())
}

func TestContent_FunctionCalls(t *testing.T) {
	c := Content{Role: "assistant", Parts: []Part{
		TextPart{Text: "x"},
		FunctionCallPart{FunctionCall: FunctionCall{ID: "1", Name: "a"}},
		FunctionResponsePart{FunctionResponse: FunctionResponse{ID: "1", Name: "a"}},
		FunctionCallPart{FunctionCall: FunctionCall{ID: "2", Name: "b"}},
	}}

	calls := c.FunctionCalls()
	require.Len(t, calls, 2)
	assert.Equal(t, "a", calls[0].FunctionCall.Name)
	assert.Equal(t, "b", calls[1].FunctionCall.Name)
	assert.Empty(t, Content{}.FunctionCalls())
}

func TestCallLimiter(t *testing.T) {
	l := NewCallLimiter(2)
	assert.Equal(t, 2, l.Remaining())

	require.NoError(t, l.Acquire())
	require.NoError(t, l.Acquire())

	err := l.Acquire()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrCallLimitExceeded))
	assert.Equal(t, 2, l.Count())
	assert.Equal(t, 0, l.Remaining())
}

func TestCallLimiter_Unlimited(t *testing.T) {
	l := NewCallLimiter(0)
	for i := 0; i < 100; i++ {
		require.NoError(t, l.Acquire())
	}
	assert.Equal(t, -1, l.Remaining())
	assert.Equal(t, 100, l.Count())
}

func TestCallLimiter_Concurrent(t *testing.T) {
	l := NewCallLimiter(10)

	var wg sync.WaitGroup
	var mu sync.Mutex
	failures := 0
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := l.Acquire(); err != nil {
				mu.Lock()
				failures++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 10, l.Count())
	assert.Equal(t, 40, failures)
}
