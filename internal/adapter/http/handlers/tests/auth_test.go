package tests

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"taskboard/internal/adapter/http/middleware"
	"taskboard/pkg/apierrors"
	"taskboard/pkg/translator"
)

func TestAuthMiddleware_RejectsMissingToken(t *testing.T) {
	f := newFixture(t)

	rec := f.do(http.MethodGet, "/api/projects", "", "")

	requireAPIError(t, rec, http.StatusUnauthorized, apierrors.MsgMissingToken)
}

func TestAuthMiddleware_RejectsUnknownToken(t *testing.T) {
	f := newFixture(t)

	rec := f.do(http.MethodGet, "/api/projects", "forged", "")

	requireAPIError(t, rec, http.StatusUnauthorized, apierrors.MsgInvalidToken)
}

func TestAuthMiddleware_TranslatesMessage(t *testing.T) {
	f := newFixture(t)

	req := httptest.NewRequest(http.MethodGet, "/api/projects", nil)
	req.Header.Set("Accept-Language", "fr-FR,fr;q=0.9")
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.Contains(t, rec.Body.String(), apierrors.GetTransErrorMsg(apierrors.MsgMissingToken, translator.LanguageFr))
}

func TestRequestIDMiddleware(t *testing.T) {
	f := newFixture(t)

	rec := f.do(http.MethodGet, "/api/health/report", "", "")
	require.NotEmpty(t, rec.Header().Get(middleware.RequestIDHeader))

	req := httptest.NewRequest(http.MethodGet, "/api/health/report", nil)
	req.Header.Set(middleware.RequestIDHeader, "req-123")
	rec = httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	require.Equal(t, "req-123", rec.Header().Get(middleware.RequestIDHeader))
	require.Contains(t, rec.Body.String(), `"request_id":"req-123"`)
}
