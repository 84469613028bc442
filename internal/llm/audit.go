package llm

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/nvminh/chronos/internal/store"
)

// auditor appends one llm_events row per request, success or failure.
// A failed append is logged and swallowed: losing an audit row must not
// fail the generation it describes.
type auditor struct {
	next   Provider
	name   string
	events store.EventRepo
}

// WithAudit wraps next so every request is recorded under the given
// provider name.
func WithAudit(next Provider, providerName string, events store.EventRepo) Provider {
	return &auditor{next: next, name: providerName, events: events}
}

func (a *auditor) ModelID() string { return a.next.ModelID() }

func (a *auditor) Generate(ctx context.Context, req Request) (*Reply, error) {
	start := time.Now()
	reply, err := a.next.Generate(ctx, req)

	row := store.LLMRequestEventData{
		Provider:    a.name,
		Model:       a.next.ModelID(),
		Purpose:     PurposeFrom(ctx),
		LatencyMs:   time.Since(start).Milliseconds(),
		Success:     err == nil,
		RequestBody: transcript(req),
	}
	if reply != nil {
		row.Model = reply.Model
		row.InputTokens = reply.Usage.InputTokens
		row.OutputTokens = reply.Usage.OutputTokens
		row.ResponseBody = string(reply.Content)
	}
	if err != nil {
		row.ErrorMessage = err.Error()
	}

	if aerr := a.events.AppendLLMRequest(ctx, row); aerr != nil {
		slog.Warn("llm audit row not recorded", "error", aerr)
	}
	return reply, err
}

// transcript renders the request for `chronos llm view`.
func transcript(req Request) string {
	var b strings.Builder
	if req.System != "" {
		fmt.Fprintf(&b, "[system]\n%s\n\n", req.System)
	}
	fmt.Fprintf(&b, "[user]\n%s\n", req.Prompt)
	if req.Schema != nil {
		fmt.Fprintf(&b, "\n[schema %s]\n", req.Schema.Name)
	}
	return b.String()
}
