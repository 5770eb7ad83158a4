package middleware

import (
	"encoding/json"
	stderrors "errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	domainerrors "tasker/internal/domain/errors"
	"tasker/internal/errors"
	"tasker/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorMiddleware_HandleHTTPError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want usecase.Result
	}{
		{
			name: "app error",
			err:  errors.Wrap(domainerrors.ErrInvalidCredentials, "login"),
			want: usecase.Result{Error: true, Status: http.StatusBadRequest, Message: domainerrors.MessageInvalidCredentials},
		},
		{
			name: "echo not found",
			err:  echo.ErrNotFound,
			want: usecase.Result{Error: true, Status: http.StatusNotFound, Message: "Not Found"},
		},
		{
			name: "body too large",
			err:  echo.ErrStatusRequestEntityTooLarge,
			want: usecase.Result{Error: true, Status: http.StatusRequestEntityTooLarge, Message: "Request Entity Too Large"},
		},
		{
			name: "unknown error",
			err:  stderrors.New("nil pointer"),
			want: usecase.Result{Error: true, Status: http.StatusInternalServerError, Message: domainerrors.MessageInternal},
		},
	}

	m := NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)))
	e := echo.New()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

			m.HandleHTTPError(tt.err, c)

			assert.Equal(t, tt.want.Status, rec.Code)
			var got usecase.Result
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
			assert.Equal(t, tt.want, got)
		})
	}
}
