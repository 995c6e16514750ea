// Package backend talks to the notification service's JSON API and adapts it
// to the repository contracts.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"

	"notifyconsole/config"
	deliverycontext "notifyconsole/internal/delivery/context"
	"notifyconsole/internal/domain/audience"
	domainerrors "notifyconsole/internal/domain/errors"
	"notifyconsole/internal/infra/metrics"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"golang.org/x/time/rate"
)

const maxReasonLength = 512

// Params holds dependencies for Client, injected by Fx.
type Params struct {
	fx.In

	Config  *config.Config
	Logger  *slog.Logger
	Metrics *metrics.Metrics
}

// Client performs JSON requests against the backend base URL.
type Client struct {
	baseURL string
	doer    HTTPDoer
	limiter *rate.Limiter
	logger  *slog.Logger
	metrics *metrics.Metrics
}

// NewClient builds a Client from configuration.
func NewClient(params Params) *Client {
	cfg := params.Config.Backend

	httpClient := &http.Client{Timeout: cfg.Timeout}

	return newClient(
		cfg.BaseURL,
		newRetryClient(httpClient, cfg.MaxRetries, cfg.RetryBaseDelay, cfg.RetryMaxDelay, params.Logger),
		newLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst),
		params.Logger,
		params.Metrics,
	)
}

func newClient(baseURL string, doer HTTPDoer, limiter *rate.Limiter, logger *slog.Logger, m *metrics.Metrics) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		doer:    doer,
		limiter: limiter,
		logger:  logger,
		metrics: m,
	}
}

func newLimiter(rps float64, burst int) *rate.Limiter {
	if rps <= 0 {
		return nil
	}
	if burst <= 0 {
		burst = 1
	}

	return rate.NewLimiter(rate.Limit(rps), burst)
}

// call describes one backend request. route is the path template used as a
// metric label, path the concrete path.
type call struct {
	method string
	route  string
	path   string
	query  audience.Params
	body   any
}

// do executes c and decodes a 2xx JSON body into out (when out is non-nil).
// Non-2xx answers become RejectedError; unreachable backends and gateway
// errors become TransportError.
func (cl *Client) do(ctx context.Context, c call, out any) error {
	logger := deliverycontext.GetLoggerOrDefault(ctx, cl.logger)

	if cl.limiter != nil {
		if err := cl.limiter.Wait(ctx); err != nil {
			return domainerrors.NewTransportError(errors.Wrap(err, "rate limiter"))
		}
	}

	req, err := cl.newRequest(ctx, c)
	if err != nil {
		return err
	}

	start := time.Now()
	resp, err := cl.doer.Do(req)
	if err != nil {
		cl.metrics.ObserveBackend(c.method, c.route, 0, time.Since(start))
		logger.Warn("Backend request failed",
			slog.String("method", c.method),
			slog.String("route", c.route),
			slog.Any("error", err),
		)

		return domainerrors.NewTransportError(errors.WithStack(err))
	}
	defer resp.Body.Close()
	cl.metrics.ObserveBackend(c.method, c.route, resp.StatusCode, time.Since(start))

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return domainerrors.NewTransportError(errors.Wrap(err, "read response body"))
	}

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
	case isGatewayFailure(resp.StatusCode):
		return domainerrors.NewTransportError(errors.Errorf("backend gateway returned %d", resp.StatusCode))
	default:
		reason := extractReason(payload)
		logger.Info("Backend rejected request",
			slog.String("method", c.method),
			slog.String("route", c.route),
			slog.Int("status", resp.StatusCode),
			slog.String("reason", reason),
		)

		return domainerrors.NewRejectedError(resp.StatusCode, reason)
	}

	if out == nil || len(bytes.TrimSpace(payload)) == 0 {
		return nil
	}
	if err := json.Unmarshal(payload, out); err != nil {
		return errors.Wrapf(err, "decode %s %s response", c.method, c.route)
	}

	return nil
}

func (cl *Client) newRequest(ctx context.Context, c call) (*http.Request, error) {
	target := cl.baseURL + c.path
	if len(c.query) > 0 {
		target += "?" + c.query.Encode()
	}

	var body io.Reader
	if c.body != nil {
		data, err := json.Marshal(c.body)
		if err != nil {
			return nil, errors.Wrapf(err, "encode %s %s body", c.method, c.route)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, c.method, target, body)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	req.Header.Set("Accept", "application/json")
	if c.body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		req.Header.Set(deliverycontext.HeaderXRequestID, requestID)
	}

	return req, nil
}

func isGatewayFailure(status int) bool {
	return status == http.StatusBadGateway ||
		status == http.StatusServiceUnavailable ||
		status == http.StatusGatewayTimeout
}

// extractReason pulls the human-readable failure text out of an error body.
// The backend answers {"detail": "..."}; validation failures carry a list
// under detail, which is passed through as JSON.
func extractReason(payload []byte) string {
	var envelope struct {
		Detail json.RawMessage `json:"detail"`
	}
	if err := json.Unmarshal(payload, &envelope); err == nil && len(envelope.Detail) > 0 {
		var text string
		if err := json.Unmarshal(envelope.Detail, &text); err == nil {
			return text
		}

		return truncate(string(envelope.Detail))
	}

	return truncate(strings.TrimSpace(string(payload)))
}

// truncate cuts s to at most maxReasonLength bytes on a rune boundary.
func truncate(s string) string {
	if len(s) <= maxReasonLength {
		return s
	}

	cut := maxReasonLength
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}

	return s[:cut]
}
