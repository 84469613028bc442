package llm

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
)

// MockReply is one scripted reply for the MockProvider.
type MockReply struct {
	Content json.RawMessage
	Usage   Usage
	Err     error
}

// MockProvider serves scripted replies in order and records every
// request it saw. Safe for concurrent use.
type MockProvider struct {
	mu       sync.Mutex
	queue    []MockReply
	Requests []Request
}

// NewMockProvider scripts the given replies.
func NewMockProvider(replies ...MockReply) *MockProvider {
	return &MockProvider{queue: replies}
}

// Generate pops the next scripted reply. An exhausted script reports
// the backend as unavailable.
func (m *MockProvider) Generate(_ context.Context, req Request) (*Reply, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Requests = append(m.Requests, req)

	if len(m.queue) == 0 {
		return nil, &UnavailableError{Cause: errors.New("mock script exhausted")}
	}
	next := m.queue[0]
	m.queue = m.queue[1:]

	if next.Err != nil {
		return nil, next.Err
	}
	return &Reply{Content: next.Content, Usage: next.Usage, Model: "mock"}, nil
}

func (m *MockProvider) ModelID() string { return "mock" }

// Enqueue appends another scripted reply.
func (m *MockProvider) Enqueue(r MockReply) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.queue = append(m.queue, r)
}

// CallCount reports how many requests were made.
func (m *MockProvider) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Requests)
}
