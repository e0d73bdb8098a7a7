package http

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientSendAndParse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":200,"message":"OK","data":{"count":3}}`))
	}))
	defer srv.Close()

	var out struct {
		Data struct {
			Count int `json:"count"`
		} `json:"data"`
	}
	err := NewClient(WithTimeout(time.Second)).SendAndParse(context.Background(), &RequestOptions{
		Method: MethodPost,
		URL:    srv.URL,
		Body:   map[string]string{"text": "1,2,3"},
	}, &out)
	require.NoError(t, err)
	assert.Equal(t, 3, out.Data.Count)
}

func statusServer(status int, body string) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
}

func TestClientStatusError(t *testing.T) {
	srv := statusServer(http.StatusUnprocessableEntity, `{"status":422,"message":"Unprocessable Entity","data":[{"code":"ERR_VALIDATION"}]}`)
	defer srv.Close()

	err := NewClient().SendAndParse(context.Background(), &RequestOptions{Method: MethodGet, URL: srv.URL}, nil)
	var serr *StatusError
	require.True(t, errors.As(err, &serr))
	assert.Equal(t, http.StatusUnprocessableEntity, serr.StatusCode)
	assert.Equal(t, "Unprocessable Entity", serr.Message)
	assert.Contains(t, string(serr.Data), "ERR_VALIDATION")
	assert.False(t, serr.Temporary())

	down := statusServer(http.StatusServiceUnavailable, "maintenance")
	defer down.Close()
	err = NewClient().SendAndParse(context.Background(), &RequestOptions{Method: MethodGet, URL: down.URL}, nil)
	require.True(t, errors.As(err, &serr))
	assert.True(t, serr.Temporary())
	assert.Empty(t, serr.Message)
	assert.Contains(t, serr.Error(), "maintenance")
}
