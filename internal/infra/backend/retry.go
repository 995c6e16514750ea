package backend

import (
	"io"
	"log/slog"
	"math"
	"math/rand/v2"
	"net/http"
	"time"

	"github.com/pkg/errors"
)

// HTTPDoer is the interface for executing HTTP requests.
// Both *http.Client and *retryClient satisfy it.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// retryClient retries idempotent requests with exponential backoff and full
// jitter. POSTs are never retried: a repeated dispatch would deliver twice.
type retryClient struct {
	client     HTTPDoer
	maxRetries int
	baseDelay  time.Duration
	maxDelay   time.Duration
	logger     *slog.Logger
}

func newRetryClient(client HTTPDoer, maxRetries int, baseDelay, maxDelay time.Duration, logger *slog.Logger) *retryClient {
	if baseDelay <= 0 {
		baseDelay = 200 * time.Millisecond
	}
	if maxDelay < baseDelay {
		maxDelay = 10 * baseDelay
	}
	if maxRetries < 0 {
		maxRetries = 0
	}

	return &retryClient{
		client:     client,
		maxRetries: maxRetries,
		baseDelay:  baseDelay,
		maxDelay:   maxDelay,
		logger:     logger,
	}
}

// Do executes req, retrying transient failures of idempotent methods.
// The last response is returned as-is so the caller can read its body.
func (rc *retryClient) Do(req *http.Request) (*http.Response, error) {
	attempts := rc.maxRetries
	if !isIdempotent(req.Method) {
		attempts = 0
	}

	var lastErr error
	for attempt := 0; attempt <= attempts; attempt++ {
		if attempt > 0 {
			if req.GetBody != nil {
				body, err := req.GetBody()
				if err != nil {
					return nil, errors.Wrap(err, "failed to reset request body")
				}
				req.Body = body
			}

			delay := rc.delay(attempt)
			rc.logger.Debug("Retrying backend request",
				slog.Int("attempt", attempt),
				slog.Int("max_retries", attempts),
				slog.String("method", req.Method),
				slog.String("path", req.URL.Path),
				slog.Duration("delay", delay),
			)

			timer := time.NewTimer(delay)
			select {
			case <-timer.C:
			case <-req.Context().Done():
				timer.Stop()
				if lastErr != nil {
					return nil, lastErr
				}

				return nil, errors.WithStack(req.Context().Err())
			}
		}

		resp, err := rc.client.Do(req)
		if err != nil {
			lastErr = err
			if req.Context().Err() != nil {
				return nil, err
			}

			continue
		}

		if !isRetryableStatus(resp.StatusCode) || attempt == attempts {
			return resp, nil
		}

		_, _ = io.Copy(io.Discard, resp.Body)
		resp.Body.Close()
		lastErr = errors.Errorf("backend returned retryable status %d", resp.StatusCode)
	}

	return nil, lastErr
}

// delay is random(0, min(maxDelay, baseDelay*2^(attempt-1))), floored at a tenth of baseDelay.
func (rc *retryClient) delay(attempt int) time.Duration {
	exp := float64(rc.baseDelay) * math.Pow(2, float64(attempt-1))
	if exp > float64(rc.maxDelay) {
		exp = float64(rc.maxDelay)
	}

	jittered := time.Duration(rand.Float64() * exp)
	if floor := rc.baseDelay / 10; jittered < floor {
		jittered = floor
	}

	return jittered
}

func isIdempotent(method string) bool {
	switch method {
	case http.MethodGet, http.MethodHead, http.MethodPut, http.MethodDelete, http.MethodOptions:
		return true
	default:
		return false
	}
}

func isRetryableStatus(statusCode int) bool {
	switch statusCode {
	case http.StatusTooManyRequests,
		http.StatusInternalServerError,
		http.StatusBadGateway,
		http.StatusServiceUnavailable,
		http.StatusGatewayTimeout:
		return true
	default:
		return false
	}
}
