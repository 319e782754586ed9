package userservice

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"
)

const serviceName = "inventory-service"

// Response is the envelope the user service answers with. Payload fields are
// relayed opaquely; this service never persists user data.
type Response struct {
	Success bool            `json:"success"`
	Message string          `json:"message,omitempty"`
	Count   *int            `json:"count,omitempty"`
	Data    json.RawMessage `json:"data,omitempty"`
	Errors  json.RawMessage `json:"errors,omitempty"`
	Status  string          `json:"status,omitempty"`
	Service string          `json:"service,omitempty"`
}

// APIError carries the upstream status and decoded body so callers can map
// remote failures status-aware. A transport fault (timeout, refused
// connection) has StatusCode zero and the underlying error set.
type APIError struct {
	StatusCode int
	Body       *Response
	Err        error
}

func (e *APIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("user service request failed: %v", e.Err)
	}

	return fmt.Sprintf("user service responded with status %d", e.StatusCode)
}

func (e *APIError) Unwrap() error {
	return e.Err
}

// defines the calls the proxy layer makes against the user service.
type Client interface {
	ListUsers(ctx context.Context) (*Response, error)
	GetUser(ctx context.Context, id string) (*Response, error)
	SearchUsers(ctx context.Context, query string) (*Response, error)
	CreateUser(ctx context.Context, body json.RawMessage) (*Response, error)
	UpdateUser(ctx context.Context, id string, body json.RawMessage) (*Response, error)
	DeleteUser(ctx context.Context, id string) (*Response, error)
	Health(ctx context.Context) (*Response, error)
}

type client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string, timeout time.Duration) Client {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}

	return &client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

func (c *client) do(ctx context.Context, method, path string, query url.Values, body json.RawMessage) (*Response, error) {

	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		reqBody = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reqBody)
	if err != nil {
		return nil, &APIError{Err: err}
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Service-Name", serviceName)

	slog.Info("Request to user service", slog.String("method", method), slog.String("url", endpoint))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		slog.Error("User service request failed", slog.String("url", endpoint), slog.String("error", err.Error()))

		return nil, &APIError{Err: err}
	}

	defer resp.Body.Close()

	slog.Info("Response from user service", slog.String("url", endpoint), slog.Int("status", resp.StatusCode))

	decoded := &Response{}
	if err := json.NewDecoder(resp.Body).Decode(decoded); err != nil && err != io.EOF {
		if resp.StatusCode >= http.StatusBadRequest {
			// Status wins over an unreadable error body.
			return nil, &APIError{StatusCode: resp.StatusCode}
		}

		return nil, &APIError{StatusCode: resp.StatusCode, Err: fmt.Errorf("decoding user service response: %w", err)}
	}

	if resp.StatusCode >= http.StatusBadRequest {
		return nil, &APIError{StatusCode: resp.StatusCode, Body: decoded}
	}

	return decoded, nil
}

func (c *client) ListUsers(ctx context.Context) (*Response, error) {
	return c.do(ctx, http.MethodGet, "/api/users", nil, nil)
}

func (c *client) GetUser(ctx context.Context, id string) (*Response, error) {
	return c.do(ctx, http.MethodGet, "/api/users/"+url.PathEscape(id), nil, nil)
}

func (c *client) SearchUsers(ctx context.Context, query string) (*Response, error) {
	return c.do(ctx, http.MethodGet, "/api/users/search", url.Values{"q": []string{query}}, nil)
}

func (c *client) CreateUser(ctx context.Context, body json.RawMessage) (*Response, error) {
	return c.do(ctx, http.MethodPost, "/api/users", nil, body)
}

func (c *client) UpdateUser(ctx context.Context, id string, body json.RawMessage) (*Response, error) {
	return c.do(ctx, http.MethodPut, "/api/users/"+url.PathEscape(id), nil, body)
}

func (c *client) DeleteUser(ctx context.Context, id string) (*Response, error) {
	return c.do(ctx, http.MethodDelete, "/api/users/"+url.PathEscape(id), nil, nil)
}

func (c *client) Health(ctx context.Context) (*Response, error) {
	return c.do(ctx, http.MethodGet, "/health", nil, nil)
}
