package store

import (
	"context"
	"fmt"
	"time"

	"github.com/abhisek/coursegen/ent"
	"github.com/abhisek/coursegen/ent/llmcall"
)

// LLMCallData captures one generation-adapter request for the audit log.
type LLMCallData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
}

// LLMCall is one persisted audit row.
type LLMCall struct {
	ID        int
	CreatedAt time.Time
	LLMCallData
}

// LLMCallRepo is the append/query contract the llm logging middleware uses.
type LLMCallRepo interface {
	// AppendLLMCall records one adapter request. Failures here must not
	// fail the request being logged.
	AppendLLMCall(ctx context.Context, data LLMCallData) error

	// RecentLLMCalls returns the newest calls, most recent first.
	RecentLLMCalls(ctx context.Context, limit int) ([]LLMCall, error)
}

// AppendLLMCall implements LLMCallRepo.
func (s *Store) AppendLLMCall(ctx context.Context, data LLMCallData) error {
	create := s.client.LLMCall.Create().
		SetProvider(data.Provider).
		SetModel(data.Model).
		SetPurpose(data.Purpose).
		SetInputTokens(data.InputTokens).
		SetOutputTokens(data.OutputTokens).
		SetLatencyMs(data.LatencyMs).
		SetSuccess(data.Success)
	if data.ErrorMessage != "" {
		create.SetErrorMessage(data.ErrorMessage)
	}
	if _, err := create.Save(ctx); err != nil {
		return fmt.Errorf("append llm call: %w", err)
	}
	return nil
}

// RecentLLMCalls implements LLMCallRepo.
func (s *Store) RecentLLMCalls(ctx context.Context, limit int) ([]LLMCall, error) {
	q := s.client.LLMCall.Query().
		Order(ent.Desc(llmcall.FieldCreatedAt), ent.Desc(llmcall.FieldID))
	if limit > 0 {
		q.Limit(limit)
	}
	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query llm calls: %w", err)
	}

	out := make([]LLMCall, len(rows))
	for i, c := range rows {
		out[i] = LLMCall{
			ID:        c.ID,
			CreatedAt: c.CreatedAt,
			LLMCallData: LLMCallData{
				Provider:     c.Provider,
				Model:        c.Model,
				Purpose:      c.Purpose,
				InputTokens:  c.InputTokens,
				OutputTokens: c.OutputTokens,
				LatencyMs:    c.LatencyMs,
				Success:      c.Success,
				ErrorMessage: c.ErrorMessage,
			},
		}
	}
	return out, nil
}

// LLMUsage is aggregated token usage for one grouping key.
type LLMUsage struct {
	Purpose      string  `json:"purpose"`
	Model        string  `json:"model"`
	Calls        int     `json:"count"`
	InputTokens  int     `json:"sum_input_tokens"`
	OutputTokens int     `json:"sum_output_tokens"`
	AvgLatencyMs float64 `json:"avg_latency_ms"`
}

// LLMUsageByPurpose aggregates call counts and token totals per purpose.
func (s *Store) LLMUsageByPurpose(ctx context.Context) ([]LLMUsage, error) {
	var rows []LLMUsage
	err := s.client.LLMCall.Query().
		GroupBy(llmcall.FieldPurpose).
		Aggregate(
			ent.Count(),
			ent.As(ent.Sum(llmcall.FieldInputTokens), "sum_input_tokens"),
			ent.As(ent.Sum(llmcall.FieldOutputTokens), "sum_output_tokens"),
			ent.As(ent.Mean(llmcall.FieldLatencyMs), "avg_latency_ms"),
		).
		Scan(ctx, &rows)
	if err != nil {
		return nil, fmt.Errorf("aggregate llm usage by purpose: %w", err)
	}
	return rows, nil
}

// LLMUsageByModel aggregates call counts and token totals per model, for
// cost estimation.
func (s *Store) LLMUsageByModel(ctx context.Context) ([]LLMUsage, error) {
	var rows []LLMUsage
	err := s.client.LLMCall.Query().
		GroupBy(llmcall.FieldModel).
		Aggregate(
			ent.Count(),
			ent.As(ent.Sum(llmcall.FieldInputTokens), "sum_input_tokens"),
			ent.As(ent.Sum(llmcall.FieldOutputTokens), "sum_output_tokens"),
			ent.As(ent.Mean(llmcall.FieldLatencyMs), "avg_latency_ms"),
		).
		Scan(ctx, &rows)
	if err != nil {
		return nil, fmt.Errorf("aggregate llm usage by model: %w", err)
	}
	return rows, nil
}
