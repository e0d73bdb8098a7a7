package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type routesFunc func(e *echo.Echo)

func (f routesFunc) RegisterRoutes(e *echo.Echo) { f(e) }

func newTestServer() *Server {
	return NewServer(routesFunc(func(e *echo.Echo) {
		e.GET("/ok", func(c echo.Context) error {
			return SuccessResponse(c, map[string]string{"hello": "world"})
		})
		e.GET("/unprocessable", func(c echo.Context) error {
			return AppErrorResponse(c, UnprocessableError("historicalA", "Need at least 20 data points"))
		})
		e.GET("/boom", func(c echo.Context) error {
			return errors.New("boom")
		})
		e.GET("/panic", func(c echo.Context) error {
			panic("unexpected")
		})
	}))
}

func serve(t *testing.T, s *Server, path string) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()
	rec := httptest.NewRecorder()
	s.Echo().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))

	var body map[string]interface{}
	if rec.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	}
	return rec, body
}

func TestServerEnvelope(t *testing.T) {
	s := newTestServer()

	rec, body := serve(t, s, "/ok")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 200.0, body["status"])
	assert.Equal(t, "OK", body["message"])
	assert.Equal(t, map[string]interface{}{"hello": "world"}, body["data"])
}

func TestServerAppError(t *testing.T) {
	rec, body := serve(t, newTestServer(), "/unprocessable")
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, "Unprocessable Entity", body["message"])

	data, ok := body["data"].([]interface{})
	require.True(t, ok)
	require.Len(t, data, 1)
	first := data[0].(map[string]interface{})
	assert.Equal(t, "ERR_VALIDATION", first["code"])
	assert.Equal(t, "historicalA", first["field"])
	assert.Equal(t, "Need at least 20 data points", first["message"])
}

func TestServerErrorHandling(t *testing.T) {
	s := newTestServer()

	rec, body := serve(t, s, "/missing")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, 404.0, body["status"])

	rec, body = serve(t, s, "/boom")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "Something went wrong", body["data"])

	rec, _ = serve(t, s, "/panic")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestServerMetricsEndpoint(t *testing.T) {
	s := newTestServer()
	serve(t, s, "/ok")

	rec := httptest.NewRecorder()
	s.Echo().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "http_requests_total")
}
