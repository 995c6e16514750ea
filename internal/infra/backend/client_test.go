package backend

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"
	"unicode/utf8"

	deliverycontext "notifyconsole/internal/delivery/context"
	"notifyconsole/internal/domain/audience"
	domainerrors "notifyconsole/internal/domain/errors"
	"notifyconsole/internal/infra/metrics"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	logger := discardLogger()

	return newClient(
		srv.URL+"/api/v1/",
		newRetryClient(srv.Client(), 2, time.Millisecond, 5*time.Millisecond, logger),
		nil,
		logger,
		metrics.New(),
	)
}

func TestClient_RejectedCarriesDetailVerbatim(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = io.WriteString(w, `{"detail":"The user with this email already exists in the system."}`)
	})

	err := client.do(context.Background(), call{method: http.MethodPost, route: "/users/", path: "/users/"}, nil)
	require.Error(t, err)

	var rejected *domainerrors.RejectedError
	require.True(t, errors.As(err, &rejected))
	assert.Equal(t, http.StatusBadRequest, rejected.Status())
	assert.Equal(t, "The user with this email already exists in the system.", rejected.Reason())
	assert.Equal(t, domainerrors.CodeRejected, domainerrors.Code(err))
}

func TestClient_ValidationDetailListPassedThrough(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = io.WriteString(w, `{"detail":[{"loc":["query","text"],"msg":"field required"}]}`)
	})

	err := client.do(context.Background(), call{method: http.MethodPost, route: "/x", path: "/x"}, nil)

	var rejected *domainerrors.RejectedError
	require.True(t, errors.As(err, &rejected))
	assert.JSONEq(t, `[{"loc":["query","text"],"msg":"field required"}]`, rejected.Reason())
}

func TestClient_NotFoundMatchesSentinel(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = io.WriteString(w, `{"detail":"User not found"}`)
	})

	err := client.do(context.Background(), call{method: http.MethodGet, route: "/users/{id}", path: "/users/9"}, nil)
	assert.True(t, errors.Is(err, domainerrors.ErrNotFound))
}

func TestClient_GatewayFailureIsTransport(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	})

	err := client.do(context.Background(), call{method: http.MethodPost, route: "/x", path: "/x"}, nil)

	var transport *domainerrors.TransportError
	assert.True(t, errors.As(err, &transport))
	assert.Equal(t, domainerrors.CodeTransportFailure, domainerrors.Code(err))
}

func TestClient_UnreachableIsTransport(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	logger := discardLogger()
	client := newClient(url, newRetryClient(http.DefaultClient, 0, time.Millisecond, time.Millisecond, logger), nil, logger, metrics.New())

	err := client.do(context.Background(), call{method: http.MethodGet, route: "/users/", path: "/users/"}, nil)
	assert.Equal(t, domainerrors.CodeTransportFailure, domainerrors.Code(err))
}

func TestClient_RetriesIdempotentRequests(t *testing.T) {
	var calls atomic.Int32
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusInternalServerError)

			return
		}
		_, _ = io.WriteString(w, `{"id":1}`)
	})

	var out struct {
		ID int `json:"id"`
	}
	err := client.do(context.Background(), call{method: http.MethodGet, route: "/users/{id}", path: "/users/1"}, &out)
	require.NoError(t, err)
	assert.Equal(t, 1, out.ID)
	assert.Equal(t, int32(2), calls.Load())
}

func TestClient_NeverRetriesPost(t *testing.T) {
	var calls atomic.Int32
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = io.WriteString(w, `{"detail":"Failed to send notification"}`)
	})

	err := client.do(context.Background(), call{method: http.MethodPost, route: "/notifications/send-manual", path: "/notifications/send-manual"}, nil)

	var rejected *domainerrors.RejectedError
	require.True(t, errors.As(err, &rejected))
	assert.Equal(t, "Failed to send notification", rejected.Reason())
	assert.Equal(t, int32(1), calls.Load())
}

func TestClient_SendsOrderedQueryAndRequestID(t *testing.T) {
	var gotQuery, gotRequestID, gotPath string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		gotRequestID = r.Header.Get(deliverycontext.HeaderXRequestID)
		_, _ = io.WriteString(w, `{}`)
	})

	ctx := deliverycontext.WithRequestID(context.Background(), "req-1")
	query := audience.Params{{Key: "b", Value: "x y"}, {Key: "a", Value: "1"}}
	err := client.do(ctx, call{method: http.MethodGet, route: "/users/", path: "/users/", query: query}, nil)
	require.NoError(t, err)

	assert.Equal(t, "/api/v1/users/", gotPath)
	assert.Equal(t, "b=x%20y&a=1", gotQuery)
	assert.Equal(t, "req-1", gotRequestID)
}

func TestClient_RateLimiterHonoursContext(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{}`)
	})
	client.limiter = rate.NewLimiter(rate.Every(time.Hour), 1)

	require.NoError(t, client.do(context.Background(), call{method: http.MethodGet, route: "/a", path: "/a"}, nil))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	err := client.do(ctx, call{method: http.MethodGet, route: "/a", path: "/a"}, nil)
	assert.Equal(t, domainerrors.CodeTransportFailure, domainerrors.Code(err))
}

func TestNewLimiter(t *testing.T) {
	assert.Nil(t, newLimiter(0, 10))

	l := newLimiter(5, 0)
	require.NotNil(t, l)
	assert.Equal(t, 1, l.Burst())
}

func TestTruncate_KeepsRunesWhole(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  int
	}{
		{name: "short", input: "Package not found", want: len("Package not found")},
		{name: "ascii over limit", input: strings.Repeat("a", maxReasonLength+10), want: maxReasonLength},
		// 511 ASCII bytes, then a 3-byte rune straddling the limit
		{name: "rune on boundary", input: strings.Repeat("a", maxReasonLength-1) + "日本", want: maxReasonLength - 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := truncate(tt.input)
			assert.Len(t, got, tt.want)
			assert.True(t, utf8.ValidString(got))
		})
	}
}
