package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// ReviewEventData records a single answer outcome applied to the ledger.
type ReviewEventData struct {
	ItemID   string
	Source   string // "quiz", "review", "assessment"
	Correct  bool
	SRSLevel int // level after the outcome was applied
}

// LLMRequestEventData captures one LLM API call for the operational log.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMEvent is a stored LLM request event.
type LLMEvent struct {
	ID           int       `db:"id"`
	Provider     string    `db:"provider"`
	Model        string    `db:"model"`
	Purpose      string    `db:"purpose"`
	InputTokens  int       `db:"input_tokens"`
	OutputTokens int       `db:"output_tokens"`
	LatencyMs    int64     `db:"latency_ms"`
	Success      bool      `db:"success"`
	ErrorMessage string    `db:"error_message"`
	RequestBody  string    `db:"request_body"`
	ResponseBody string    `db:"response_body"`
	Timestamp    time.Time `db:"created_at"`
}

// LLMPurposeUsage aggregates token usage for one purpose label.
type LLMPurposeUsage struct {
	Purpose      string `db:"purpose"`
	Calls        int    `db:"calls"`
	InputTokens  int    `db:"input_tokens"`
	OutputTokens int    `db:"output_tokens"`
	AvgLatencyMs int64  `db:"avg_latency_ms"`
}

// LLMModelUsage aggregates token usage for one model.
type LLMModelUsage struct {
	Model        string `db:"model"`
	Calls        int    `db:"calls"`
	InputTokens  int    `db:"input_tokens"`
	OutputTokens int    `db:"output_tokens"`
}

// QueryOpts configures event queries.
type QueryOpts struct {
	Limit int // max results (0 = default 20)
}

// EventRepo provides append and query access to domain events.
type EventRepo interface {
	AppendReview(ctx context.Context, data ReviewEventData) error
	ReviewCountsBySource(ctx context.Context) (map[string]int, error)

	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMEvent, error)
	GetLLMEvent(ctx context.Context, id int) (*LLMEvent, error)
	LLMUsageByPurpose(ctx context.Context) ([]LLMPurposeUsage, error)
	LLMUsageByModel(ctx context.Context) ([]LLMModelUsage, error)
}

type eventRepo struct {
	db *sqlx.DB
}

func (r *eventRepo) AppendReview(ctx context.Context, data ReviewEventData) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO review_events (id, item_id, source, correct, srs_level)
		VALUES ($1, $2, $3, $4, $5)`,
		uuid.NewString(), data.ItemID, data.Source, data.Correct, data.SRSLevel)
	if err != nil {
		return fmt.Errorf("append review event: %w", err)
	}
	return nil
}

func (r *eventRepo) ReviewCountsBySource(ctx context.Context) (map[string]int, error) {
	rows := []struct {
		Source string `db:"source"`
		Count  int    `db:"count"`
	}{}
	err := r.db.SelectContext(ctx, &rows,
		`SELECT source, COUNT(*) AS count FROM review_events GROUP BY source`)
	if err != nil {
		return nil, fmt.Errorf("review counts: %w", err)
	}
	counts := make(map[string]int, len(rows))
	for _, row := range rows {
		counts[row.Source] = row.Count
	}
	return counts, nil
}

func (r *eventRepo) AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO llm_events
			(provider, model, purpose, input_tokens, output_tokens,
			 latency_ms, success, error_message, request_body, response_body)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		data.Provider, data.Model, data.Purpose, data.InputTokens, data.OutputTokens,
		data.LatencyMs, data.Success, data.ErrorMessage, data.RequestBody, data.ResponseBody)
	if err != nil {
		return fmt.Errorf("append LLM event: %w", err)
	}
	return nil
}

func (r *eventRepo) QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMEvent, error) {
	limit := opts.Limit
	if limit <= 0 {
		limit = 20
	}
	var events []LLMEvent
	err := r.db.SelectContext(ctx, &events,
		`SELECT * FROM llm_events ORDER BY id DESC LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("query LLM events: %w", err)
	}
	return events, nil
}

func (r *eventRepo) GetLLMEvent(ctx context.Context, id int) (*LLMEvent, error) {
	var e LLMEvent
	err := r.db.GetContext(ctx, &e, `SELECT * FROM llm_events WHERE id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get LLM event: %w", err)
	}
	return &e, nil
}

func (r *eventRepo) LLMUsageByPurpose(ctx context.Context) ([]LLMPurposeUsage, error) {
	var usage []LLMPurposeUsage
	err := r.db.SelectContext(ctx, &usage, `
		SELECT purpose,
		       COUNT(*) AS calls,
		       SUM(input_tokens) AS input_tokens,
		       SUM(output_tokens) AS output_tokens,
		       CAST(AVG(latency_ms) AS INTEGER) AS avg_latency_ms
		FROM llm_events GROUP BY purpose ORDER BY purpose`)
	if err != nil {
		return nil, fmt.Errorf("usage by purpose: %w", err)
	}
	return usage, nil
}

func (r *eventRepo) LLMUsageByModel(ctx context.Context) ([]LLMModelUsage, error) {
	var usage []LLMModelUsage
	err := r.db.SelectContext(ctx, &usage, `
		SELECT model,
		       COUNT(*) AS calls,
		       SUM(input_tokens) AS input_tokens,
		       SUM(output_tokens) AS output_tokens
		FROM llm_events GROUP BY model ORDER BY model`)
	if err != nil {
		return nil, fmt.Errorf("usage by model: %w", err)
	}
	return usage, nil
}
