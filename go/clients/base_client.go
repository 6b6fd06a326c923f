package clients

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// RequestIDHeader is set on every outgoing request
const RequestIDHeader = "X-Request-Id"

// Response is a fully read HTTP response. Non-2xx statuses are not errors at this
// layer; callers decide which status they expect.
type Response struct {
	StatusCode int
	Body       []byte
	RequestID  string
}

type BaseClient struct {
	baseURL string
	client  *http.Client
	headers map[string]string
	logger  zerolog.Logger
}

func NewBaseClient(baseURL string) *BaseClient {
	return &BaseClient{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		client: &http.Client{
			Timeout: 30 * time.Second,
		},
		headers: map[string]string{
			"Accept":       "application/json",
			"Content-Type": "application/json",
		},
		logger: log.Logger,
	}
}

func (c *BaseClient) BaseURL() string {
	return c.baseURL
}

func (c *BaseClient) SetHeader(key, value string) {
	c.headers[key] = value
}

func (c *BaseClient) SetTimeout(timeout time.Duration) {
	c.client.Timeout = timeout
}

// SetHTTPClient replaces the underlying client, e.g. with httptest.Server.Client()
func (c *BaseClient) SetHTTPClient(client *http.Client) {
	if client != nil {
		c.client = client
	}
}

func (c *BaseClient) SetLogger(logger zerolog.Logger) {
	c.logger = logger
}

// MakeRequest encodes payload as JSON (when non-nil), sends it and reads the whole response body.
func (c *BaseClient) MakeRequest(ctx context.Context, method, endpoint string, payload interface{}) (*Response, error) {
	var body io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request body: %w", err)
		}
		body = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+endpoint, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	for key, value := range c.headers {
		req.Header.Set(key, value)
	}
	requestID := uuid.NewString()
	req.Header.Set(RequestIDHeader, requestID)

	start := time.Now()
	resp, err := c.client.Do(req)
	if err != nil {
		c.logger.Error().Err(err).
			Str("method", method).
			Str("endpoint", endpoint).
			Str("request_id", requestID).
			Msg("request failed")
		return nil, fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()

	responseBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	c.logger.Debug().
		Str("method", method).
		Str("endpoint", endpoint).
		Int("status", resp.StatusCode).
		Str("request_id", requestID).
		Dur("duration", time.Since(start)).
		Msg("league api call")

	return &Response{
		StatusCode: resp.StatusCode,
		Body:       responseBody,
		RequestID:  requestID,
	}, nil
}

func (c *BaseClient) Get(ctx context.Context, endpoint string) (*Response, error) {
	return c.MakeRequest(ctx, http.MethodGet, endpoint, nil)
}

func (c *BaseClient) Post(ctx context.Context, endpoint string, payload interface{}) (*Response, error) {
	return c.MakeRequest(ctx, http.MethodPost, endpoint, payload)
}

func (c *BaseClient) Put(ctx context.Context, endpoint string, payload interface{}) (*Response, error) {
	return c.MakeRequest(ctx, http.MethodPut, endpoint, payload)
}

func (c *BaseClient) Delete(ctx context.Context, endpoint string) (*Response, error) {
	return c.MakeRequest(ctx, http.MethodDelete, endpoint, nil)
}
