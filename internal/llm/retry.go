package llm

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net"
	"strings"
	"time"
)

const retryBaseDelay = 300 * time.Millisecond

// WithRetry wraps a client with a single bounded retry for transient
// failures. Malformed-response failures are deterministic and never retried.
func WithRetry(base Client) Client {
	if base == nil {
		return nil
	}
	return retryingClient{base: base}
}

type retryingClient struct {
	base Client
}

func (r retryingClient) ExtractProfile(ctx context.Context, resumeText string) (json.RawMessage, error) {
	return retryOnce(ctx, "extract", func() (json.RawMessage, error) {
		return r.base.ExtractProfile(ctx, resumeText)
	})
}

func (r retryingClient) ScoreMatch(ctx context.Context, input ScoreInput) (json.RawMessage, error) {
	return retryOnce(ctx, "score", func() (json.RawMessage, error) {
		return r.base.ScoreMatch(ctx, input)
	})
}

func retryOnce(ctx context.Context, kind string, call func() (json.RawMessage, error)) (json.RawMessage, error) {
	resp, err := call()
	if err == nil || !IsTransient(err) {
		return resp, err
	}

	log.Printf("llm retry attempt=1 kind=%s error=%s", kind, sanitizeError(err))
	select {
	case <-time.After(retryBaseDelay):
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	return call()
}

// IsTransient reports whether an error looks like a transient network or
// provider failure worth one retry.
func IsTransient(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}

	msg := strings.ToLower(err.Error())
	if strings.Contains(msg, "http status 5") || strings.Contains(msg, "server_error") {
		return true
	}
	if strings.Contains(msg, "timeout") && (strings.Contains(msg, "openai") || strings.Contains(msg, "llm") || strings.Contains(msg, "client.timeout")) {
		return true
	}
	if strings.Contains(msg, "connection reset") ||
		strings.Contains(msg, "connection refused") ||
		strings.Contains(msg, "connection closed") ||
		strings.Contains(msg, "broken pipe") ||
		strings.Contains(msg, "tls handshake timeout") ||
		strings.Contains(msg, "eof") {
		return true
	}

	return false
}

func sanitizeError(err error) string {
	if err == nil {
		return ""
	}
	msg := err.Error()
	if len(msg) > 200 {
		msg = msg[:200]
	}
	return strings.ReplaceAll(msg, "\n", " ")
}
