package httpserver

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestWrap_EncodeFailureWritesOnce(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	r := &Router{log: zap.New(core)}

	h := r.wrap(func(w http.ResponseWriter, req *http.Request) error {
		r.writeJSON(w, http.StatusOK, map[string]any{"bad": make(chan int)})
		return nil
	})
	rec := httptest.NewRecorder()
	h(rec, httptest.NewRequest(http.MethodGet, "/v1/me", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	require.NotContains(t, rec.Body.String(), `"error"`)
	require.Equal(t, 1, logs.FilterMessage("encode response").Len())
}

func TestWrap_HandlerErrorWritesBody(t *testing.T) {
	r := &Router{log: zap.NewNop()}
	h := r.wrap(func(http.ResponseWriter, *http.Request) error {
		return errors.New("boom")
	})
	rec := httptest.NewRecorder()
	h(rec, httptest.NewRequest(http.MethodGet, "/v1/me", nil))

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	require.JSONEq(t, `{"error":"internal error"}`, rec.Body.String())
}
