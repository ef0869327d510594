package llm

import (
	"context"
	"errors"
	"testing"
	"time"
)

// stalledProvider never responds until the context expires.
type stalledProvider struct {
	calls int
}

func (s *stalledProvider) Generate(ctx context.Context, _ Request) (*Response, error) {
	s.calls++
	<-ctx.Done()
	return nil, ctx.Err()
}

func (s *stalledProvider) ModelID() string { return "stalled" }

func TestTimeout_BoundsStalledCall(t *testing.T) {
	p := WithTimeout(&stalledProvider{}, 10*time.Millisecond)

	start := time.Now()
	_, err := p.Generate(context.Background(), Request{})
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected deadline exceeded, got %v", err)
	}
	if elapsed := time.Since(start); elapsed > time.Second {
		t.Fatalf("call was not bounded, took %v", elapsed)
	}
}

func TestTimeout_DeadlineStopsRetries(t *testing.T) {
	stalled := &stalledProvider{}
	p := WithTimeout(WithRetry(stalled, retryConfig()), 10*time.Millisecond)

	_, err := p.Generate(context.Background(), Request{})
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected deadline exceeded, got %v", err)
	}
	if stalled.calls != 1 {
		t.Fatalf("expected 1 call, got %d", stalled.calls)
	}
}

func TestTimeout_ZeroReturnsUnwrapped(t *testing.T) {
	mock := NewMockProvider()
	if p := WithTimeout(mock, 0); p != Provider(mock) {
		t.Fatal("zero timeout must return the provider unwrapped")
	}
}
