package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	apimiddleware "notifyconsole/internal/delivery/api/middleware"
	"notifyconsole/internal/delivery/api/response"
	"notifyconsole/internal/delivery/api/validator"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = validator.New()
	e.HTTPErrorHandler = apimiddleware.NewErrorMiddleware(newDiscardLogger()).HandleHTTPError

	return e
}

func serve(e *echo.Echo, method, target, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

type envelope struct {
	Data  json.RawMessage     `json:"data"`
	Error *response.ErrorInfo `json:"error"`
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())

	return env
}

func assertErrorCode(t *testing.T, rec *httptest.ResponseRecorder, status int, code string) envelope {
	t.Helper()

	assert.Equal(t, status, rec.Code, rec.Body.String())
	env := decodeEnvelope(t, rec)
	require.NotNil(t, env.Error, rec.Body.String())
	assert.Equal(t, code, env.Error.Code)

	return env
}

func TestChannelValueRequest_Text(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{name: "string holding object", body: `{"value":"{\"chat_id\": 5}"}`, want: `{"chat_id": 5}`},
		{name: "inline object", body: `{"value":{"chat_id":5}}`, want: `{"chat_id":5}`},
		{name: "inline array", body: `{"value":[1,2]}`, want: `[1,2]`},
		{name: "missing", body: `{}`, want: ``},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req ChannelValueRequest
			require.NoError(t, json.Unmarshal([]byte(tt.body), &req))
			assert.Equal(t, tt.want, req.Text())
		})
	}
}

func TestPathID(t *testing.T) {
	e := newTestEcho()
	e.GET("/things/:id", func(c echo.Context) error {
		if _, err := pathID(c, "id"); err != nil {
			return err
		}

		return c.String(http.StatusOK, "ok")
	})

	assert.Equal(t, http.StatusOK, serve(e, http.MethodGet, "/things/3", "").Code)
	assertErrorCode(t, serve(e, http.MethodGet, "/things/abc", ""), http.StatusBadRequest, "INVALID_ARGUMENT")
	assertErrorCode(t, serve(e, http.MethodGet, "/things/0", ""), http.StatusBadRequest, "INVALID_ARGUMENT")
}
