package llm

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
)

func TestResolveAlias(t *testing.T) {
	aliases := map[string]string{"flash": "backend-flash-9"}

	if got := resolveAlias("flash", aliases); got != "backend-flash-9" {
		t.Errorf("resolveAlias(flash) = %q, want backend-flash-9", got)
	}
	if got := resolveAlias("backend-exact-1", aliases); got != "backend-exact-1" {
		t.Errorf("unknown names must pass through, got %q", got)
	}
}

func TestMockProviderServesScriptInOrder(t *testing.T) {
	mock := NewMockProvider(
		MockReply{Content: json.RawMessage(`{"a":1}`), Usage: Usage{InputTokens: 10, OutputTokens: 5}},
		MockReply{Content: json.RawMessage(`{"b":2}`)},
	)

	first, err := mock.Generate(context.Background(), Request{Prompt: "đầu tiên"})
	if err != nil {
		t.Fatalf("first: %v", err)
	}
	if string(first.Content) != `{"a":1}` || first.Usage.InputTokens != 10 {
		t.Errorf("first reply = %+v", first)
	}

	second, err := mock.Generate(context.Background(), Request{Prompt: "thứ hai"})
	if err != nil {
		t.Fatalf("second: %v", err)
	}
	if string(second.Content) != `{"b":2}` {
		t.Errorf("second reply = %s", second.Content)
	}

	if mock.CallCount() != 2 || mock.Requests[0].Prompt != "đầu tiên" {
		t.Errorf("recorded requests = %+v", mock.Requests)
	}
}

func TestMockProviderExhaustedScript(t *testing.T) {
	mock := NewMockProvider()
	_, err := mock.Generate(context.Background(), Request{})
	var unavail *UnavailableError
	if !errors.As(err, &unavail) {
		t.Fatalf("expected UnavailableError, got %T (%v)", err, err)
	}
}

func TestPurposeRoundTrip(t *testing.T) {
	ctx := WithPurpose(context.Background(), PurposeQuiz)
	if got := PurposeFrom(ctx); got != "quiz-gen" {
		t.Errorf("PurposeFrom = %q, want quiz-gen", got)
	}
	if got := PurposeFrom(context.Background()); got != "unknown" {
		t.Errorf("untagged context = %q, want unknown", got)
	}
}
