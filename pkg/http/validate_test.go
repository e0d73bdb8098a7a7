package http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleRequest struct {
	Name string  `json:"name" validate:"required"`
	Size float64 `json:"size" default:"3" validate:"gt=0,lte=10"`
	Mode string  `json:"mode" default:"fast" validate:"oneof=fast slow"`
}

func bindSample(t *testing.T, body string) (*sampleRequest, interface{}) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	c := e.NewContext(req, httptest.NewRecorder())

	out := &sampleRequest{}
	return out, ReadAndValidateRequest(c, out)
}

func TestReadAndValidateRequestDefaults(t *testing.T) {
	req, verr := bindSample(t, `{"name":"pair"}`)
	require.Nil(t, verr)
	assert.Equal(t, 3.0, req.Size)
	assert.Equal(t, "fast", req.Mode)
}

func TestReadAndValidateRequestErrors(t *testing.T) {
	_, verr := bindSample(t, `{"size":20,"mode":"medium"}`)
	require.NotNil(t, verr)

	errs, ok := verr.([]ValidationError)
	require.True(t, ok)
	require.Len(t, errs, 3)

	byField := map[string]ValidationError{}
	for _, e := range errs {
		byField[e.Field] = e
	}
	assert.Equal(t, "ERR_REQUIRED", byField["name"].Code)
	assert.Equal(t, "name is required", byField["name"].Message)
	assert.Equal(t, "ERR_LTE", byField["size"].Code)
	assert.Equal(t, "size must be less than or equal to 10", byField["size"].Message)
	assert.Equal(t, "10", byField["size"].Params["max"])
	assert.Equal(t, "mode must be one of: fast, slow", byField["mode"].Message)
}

func TestReadAndValidateRequestMalformedBody(t *testing.T) {
	_, verr := bindSample(t, `{"name":`)
	errs, ok := verr.([]ValidationError)
	require.True(t, ok)
	require.Len(t, errs, 1)
	assert.Equal(t, "ERR_UNKNOWN", errs[0].Code)
}
