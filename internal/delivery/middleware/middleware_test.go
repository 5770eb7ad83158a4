package middleware

import (
	"bytes"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "tasker/internal/delivery/context"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestIDMiddleware(t *testing.T) {
	e := echo.New()
	m := NewRequestIDMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)))

	var seenCtxID string
	handler := m.Process(func(c echo.Context) error {
		seenCtxID = deliverycontext.GetRequestIDFromContext(c.Request().Context())

		return c.NoContent(http.StatusNoContent)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	require.NoError(t, handler(e.NewContext(req, rec)))

	generated := rec.Header().Get(deliverycontext.HeaderXRequestID)
	assert.NotEmpty(t, generated)
	assert.Equal(t, generated, seenCtxID)

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(deliverycontext.HeaderXRequestID, "client-id")
	rec = httptest.NewRecorder()
	require.NoError(t, handler(e.NewContext(req, rec)))
	assert.Equal(t, "client-id", rec.Header().Get(deliverycontext.HeaderXRequestID))
}

func TestLoggerMiddleware(t *testing.T) {
	e := echo.New()
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	next := func(c echo.Context) error { return c.NoContent(http.StatusTeapot) }

	quiet := NewLoggerMiddleware(logger, false).Handle(next)
	require.NoError(t, quiet(e.NewContext(httptest.NewRequest(http.MethodPost, "/api/users/login", nil), httptest.NewRecorder())))
	assert.Empty(t, buf.String())

	loud := NewLoggerMiddleware(logger, true).Handle(next)
	require.NoError(t, loud(e.NewContext(httptest.NewRequest(http.MethodPost, "/api/users/login", nil), httptest.NewRecorder())))
	assert.Contains(t, buf.String(), `"status":418`)
	assert.Contains(t, buf.String(), `"level":"WARN"`)
}
