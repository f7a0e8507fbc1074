package middleware

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/riaj03/savyo/config"
	"github.com/riaj03/savyo/internal/delivery/http/response"
	domainerrors "github.com/riaj03/savyo/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func newErrorTestContext(t *testing.T) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/deals", nil)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) response.Envelope {
	t.Helper()

	var envelope response.Envelope
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))

	return envelope
}

func newTestErrorMiddleware(debug bool) *ErrorMiddleware {
	cfg := &config.Config{}
	cfg.Env.Debug = debug

	return NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)), cfg)
}

func TestHandleHTTPError_AppError(t *testing.T) {
	middleware := newTestErrorMiddleware(false)
	c, rec := newErrorTestContext(t)

	middleware.HandleHTTPError(domainerrors.ErrDealNotFound, c)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	envelope := decodeEnvelope(t, rec)
	assert.False(t, envelope.Success)
	assert.Equal(t, "Deal not found", envelope.Error)
	assert.Empty(t, envelope.Stack)
}

func TestHandleHTTPError_WrappedAppError(t *testing.T) {
	middleware := newTestErrorMiddleware(false)
	c, rec := newErrorTestContext(t)

	// The funnel must unwrap errors annotated on the way up.
	err := errors.Wrap(domainerrors.ErrDealOwnership, "update deal")
	middleware.HandleHTTPError(err, c)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	envelope := decodeEnvelope(t, rec)
	assert.Equal(t, "Not authorized to modify this deal", envelope.Error)
}

func TestHandleHTTPError_EchoHTTPError(t *testing.T) {
	middleware := newTestErrorMiddleware(false)
	c, rec := newErrorTestContext(t)

	middleware.HandleHTTPError(echo.NewHTTPError(http.StatusNotFound, "Not Found"), c)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	envelope := decodeEnvelope(t, rec)
	assert.False(t, envelope.Success)
	assert.Equal(t, "Not Found", envelope.Error)
}

func TestHandleHTTPError_UnknownErrorIsGeneric(t *testing.T) {
	middleware := newTestErrorMiddleware(false)
	c, rec := newErrorTestContext(t)

	middleware.HandleHTTPError(errors.New("pq: connection refused"), c)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	envelope := decodeEnvelope(t, rec)
	assert.Equal(t, "Internal Server Error", envelope.Error)
	// The driver detail never reaches the wire.
	assert.NotContains(t, rec.Body.String(), "connection refused")
}

func TestHandleHTTPError_DebugIncludesStack(t *testing.T) {
	middleware := newTestErrorMiddleware(true)
	c, rec := newErrorTestContext(t)

	middleware.HandleHTTPError(errors.New("boom"), c)

	envelope := decodeEnvelope(t, rec)
	assert.NotEmpty(t, envelope.Stack)
}

func TestHandleHTTPError_CommittedResponseLeftAlone(t *testing.T) {
	middleware := newTestErrorMiddleware(false)
	c, rec := newErrorTestContext(t)

	assert.NoError(t, c.NoContent(http.StatusOK))
	middleware.HandleHTTPError(domainerrors.ErrDealNotFound, c)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Body.String())
}
