package llm

import (
	"context"
	"time"
)

// timeoutProvider bounds every request with a deadline so a stalled
// backend cannot block the caller indefinitely.
type timeoutProvider struct {
	inner   Provider
	timeout time.Duration
}

// WithTimeout wraps a provider so each Generate call runs under a deadline.
// The bound covers the full call including any inner retries. A zero or
// negative timeout returns p unwrapped.
func WithTimeout(p Provider, timeout time.Duration) Provider {
	if timeout <= 0 {
		return p
	}
	return &timeoutProvider{inner: p, timeout: timeout}
}

// Generate implements Provider.
func (t *timeoutProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	ctx, cancel := context.WithTimeout(ctx, t.timeout)
	defer cancel()
	return t.inner.Generate(ctx, req)
}

// ModelID implements Provider.
func (t *timeoutProvider) ModelID() string {
	return t.inner.ModelID()
}
