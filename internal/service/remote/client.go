package remote

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"PairScope/internal/domain/models"
	"PairScope/pkg/config"
	xhttp "PairScope/pkg/http"
)

const analyzePath = "/api/v1/pairs/analyze"

// Client calls the analysis API of a running server.
type Client struct {
	baseURL  string
	attempts int
	backoff  time.Duration
	client   *xhttp.Client
}

// NewClient builds a client from the CLI section of config.
func NewClient(cfg config.ClientConfig) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &Client{
		baseURL:  strings.TrimRight(cfg.BaseURL, "/"),
		attempts: cfg.Attempts,
		backoff:  50 * time.Millisecond,
		client:   xhttp.NewClient(xhttp.WithTimeout(timeout)),
	}
}

// Analyze posts req to the server and returns the decoded result.
func (c *Client) Analyze(ctx context.Context, req *models.AnalyzeRequest) (*models.AnalysisResult, error) {
	var env struct {
		Data *models.AnalysisResult `json:"data"`
	}
	if err := c.postJSONWithRetry(ctx, analyzePath, req, &env); err != nil {
		return nil, err
	}
	if env.Data == nil {
		return nil, fmt.Errorf("post %s: empty response", analyzePath)
	}
	return env.Data, nil
}

func (c *Client) postJSON(ctx context.Context, path string, payload, dest interface{}) error {
	if c.baseURL == "" {
		return fmt.Errorf("remote client: base url not set")
	}
	err := c.client.SendAndParse(ctx, &xhttp.RequestOptions{
		Method: xhttp.MethodPost,
		URL:    c.baseURL + path,
		Headers: map[string]string{
			"Content-Type": "application/json",
		},
		Body: payload,
	}, dest)
	if err != nil {
		return fmt.Errorf("post %s: %w", path, err)
	}
	return nil
}

// postJSONWithRetry retries rate-limited and 5xx responses with linear backoff.
// Other status errors are returned immediately.
func (c *Client) postJSONWithRetry(ctx context.Context, path string, payload, dest interface{}) error {
	if c.attempts <= 1 {
		return c.postJSON(ctx, path, payload, dest)
	}
	var err error
	for i := 1; i <= c.attempts; i++ {
		err = c.postJSON(ctx, path, payload, dest)
		if err == nil || !retryable(err) {
			return err
		}
		if i == c.attempts {
			break
		}
		select {
		case <-time.After(time.Duration(i) * c.backoff):
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return err
}

func retryable(err error) bool {
	var serr *xhttp.StatusError
	if errors.As(err, &serr) {
		return serr.Temporary()
	}
	return !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded)
}
