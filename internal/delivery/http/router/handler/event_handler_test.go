package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func callStub(t *testing.T, fn echo.HandlerFunc, method, target string) *httptest.ResponseRecorder {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(method, target, nil)
	rec := httptest.NewRecorder()
	require.NoError(t, fn(e.NewContext(req, rec)))

	return rec
}

func TestEventHandler_Stubs(t *testing.T) {
	h := NewEventHandler()

	rec := callStub(t, h.Ping, http.MethodGet, "/api/v1/events/ping")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "pong")

	rec = callStub(t, h.Create, http.MethodPost, "/api/v1/events")
	assert.Equal(t, http.StatusCreated, rec.Code)

	rec = callStub(t, h.List, http.MethodGet, "/api/v1/events")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = callStub(t, h.GetByID, http.MethodGet, "/api/v1/events/42")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = callStub(t, h.ListByProject, http.MethodGet, "/api/v1/events/project/42")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestProjectHandler_Stubs(t *testing.T) {
	h := NewProjectHandler()

	rec := callStub(t, h.Create, http.MethodPost, "/api/v1/projects")
	assert.Equal(t, http.StatusCreated, rec.Code)

	rec = callStub(t, h.List, http.MethodGet, "/api/v1/projects")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = callStub(t, h.GetByID, http.MethodGet, "/api/v1/projects/42")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = callStub(t, h.Update, http.MethodPut, "/api/v1/projects/42")
	assert.Equal(t, http.StatusNonAuthoritativeInfo, rec.Code)

	rec = callStub(t, h.Delete, http.MethodDelete, "/api/v1/projects/42")
	assert.Equal(t, http.StatusNoContent, rec.Code)
}
