package http

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"tasker/config"
	deliverycontext "tasker/internal/delivery/context"
	"tasker/internal/delivery/http/router"
	"tasker/internal/delivery/http/router/handler"
	domainerrors "tasker/internal/domain/errors"
	"tasker/internal/infra/auth"
	"tasker/internal/infra/persistence/memory"
	"tasker/internal/infra/secret"
	"tasker/internal/usecase"
	"tasker/internal/usecase/impl"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newTestEcho(t *testing.T) *echo.Echo {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	hasher, err := auth.NewBcryptHasherWithCost(bcrypt.MinCost)
	require.NoError(t, err)
	var key [32]byte
	cipher, err := secret.NewLocalEmailCipher(key)
	require.NoError(t, err)

	uc := impl.NewAccountService(impl.AccountServiceParams{
		Accounts: memory.NewAccountRepository(),
		Cipher:   cipher,
		Hasher:   hasher,
		Logger:   logger,
	})

	cfg := &config.Config{}
	cfg.HTTP.MaxRequestBodySize = "1KB"

	return newEcho(ServerParams{
		Cfg:          cfg,
		Logger:       logger,
		RouterParams: router.RouterParams{AccountHandler: handler.NewAccountHandler(uc)},
	})
}

func doJSON(t *testing.T, e *echo.Echo, path, body string) (*httptest.ResponseRecorder, usecase.Result) {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	var result usecase.Result
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result), rec.Body.String())

	return rec, result
}

func TestServer_RegisterAndLogin(t *testing.T) {
	e := newTestEcho(t)

	rec, result := doJSON(t, e, "/api/users/register", `{"email":"ada@example.com","username":"ada","password":"correct horse"}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.False(t, result.Error)
	assert.Equal(t, usecase.MessageAccountCreated, result.Message)
	assert.NotEmpty(t, result.AccountID)
	assert.NotEmpty(t, rec.Header().Get(deliverycontext.HeaderXRequestID))

	rec, login := doJSON(t, e, "/api/users/login", `{"username":"ada","password":"correct horse"}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, usecase.Result{Status: http.StatusOK, Message: usecase.MessageLoggedIn, AccountID: result.AccountID}, login)

	rec, conflict := doJSON(t, e, "/api/users/register", `{"email":"other@example.com","username":"ada","password":"x"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, domainerrors.ErrAccountConflict.Message(), conflict.Message)
}

func TestServer_LoginFailuresMatch(t *testing.T) {
	e := newTestEcho(t)
	doJSON(t, e, "/api/users/register", `{"email":"ada@example.com","username":"ada","password":"correct horse"}`)

	wrongRec, wrong := doJSON(t, e, "/api/users/login", `{"username":"ada","password":"nope"}`)
	unknownRec, unknown := doJSON(t, e, "/api/users/login", `{"username":"ghost","password":"nope"}`)

	assert.Equal(t, wrongRec.Code, unknownRec.Code)
	assert.Equal(t, wrong, unknown)
	assert.Equal(t, wrongRec.Body.String(), unknownRec.Body.String())
}

func TestServer_BadRequests(t *testing.T) {
	e := newTestEcho(t)

	rec, result := doJSON(t, e, "/api/users/register", `{"email":"","username":"ada","password":"pw"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, domainerrors.ErrInvalidInput.Message(), result.Message)

	rec, result = doJSON(t, e, "/api/users/login", `{"username":`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, domainerrors.ErrMalformedRequest.Message(), result.Message)

	rec, result = doJSON(t, e, "/api/users/register", `{"email":"`+strings.Repeat("a", 2048)+`"}`)
	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	assert.True(t, result.Error)
}

func TestServer_Health(t *testing.T) {
	e := newTestEcho(t)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}
