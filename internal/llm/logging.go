package llm

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/abhisek/coursegen/internal/store"
)

// LoggingProvider is a decorator that records every LLM request in the
// audit log.
type LoggingProvider struct {
	inner Provider
	calls store.LLMCallRepo
}

// WithLogging wraps a Provider with audit logging. A nil repo returns the
// provider unwrapped.
func WithLogging(p Provider, calls store.LLMCallRepo) Provider {
	if calls == nil {
		return p
	}
	return &LoggingProvider{inner: p, calls: calls}
}

func (l *LoggingProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()
	purpose := PurposeFrom(ctx)

	resp, err := l.inner.Generate(ctx, req)

	data := store.LLMCallData{
		Provider:  l.inner.ModelID(),
		Model:     l.inner.ModelID(),
		Purpose:   purpose,
		LatencyMs: time.Since(start).Milliseconds(),
		Success:   err == nil,
	}

	if resp != nil {
		data.InputTokens = resp.Usage.InputTokens
		data.OutputTokens = resp.Usage.OutputTokens
		data.Model = resp.Model
	}

	if err != nil {
		data.ErrorMessage = err.Error()
	}

	// Log the call but don't fail the request if logging fails.
	if logErr := l.calls.AppendLLMCall(ctx, data); logErr != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to log LLM call: %v\n", logErr)
	}

	return resp, err
}

func (l *LoggingProvider) ModelID() string {
	return l.inner.ModelID()
}
