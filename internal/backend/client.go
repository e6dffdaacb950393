// Package backend is the typed client for the hotel/restaurant REST backend.
// Every screen of the dashboard goes through it, so response normalization
// and error mapping happen in one place.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/tidwall/gjson"
)

type tokenKey struct{}

// WithToken attaches the backend bearer token for calls made with ctx.
func WithToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, tokenKey{}, token)
}

func TokenFrom(ctx context.Context) string {
	token, _ := ctx.Value(tokenKey{}).(string)
	return token
}

type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

func (c *Client) BaseURL() string { return c.baseURL }

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body any) ([]byte, error) {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode %s %s: %w", method, path, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return nil, fmt.Errorf("build %s %s: %w", method, path, err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := TokenFrom(ctx); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read %s %s: %w", method, path, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := &APIError{Status: resp.StatusCode}
		if gjson.ValidBytes(data) {
			apiErr.Message = messageOf(gjson.ParseBytes(data))
		}
		return nil, apiErr
	}
	if len(bytes.TrimSpace(data)) == 0 {
		data = []byte("{}")
	}
	return data, nil
}

func getList[T any](ctx context.Context, c *Client, path string, query url.Values, keys ...string) ([]T, error) {
	body, err := c.do(ctx, http.MethodGet, path, query, nil)
	if err != nil {
		return nil, err
	}
	return decodeList[T](body, keys...)
}

func getObject[T any](ctx context.Context, c *Client, path string, keys ...string) (T, error) {
	body, err := c.do(ctx, http.MethodGet, path, nil, nil)
	if err != nil {
		var zero T
		return zero, err
	}
	return decodeObject[T](body, keys...)
}

func send[T any](ctx context.Context, c *Client, method, path string, payload any, keys ...string) (T, error) {
	body, err := c.do(ctx, method, path, nil, payload)
	if err != nil {
		var zero T
		return zero, err
	}
	return decodeObject[T](body, keys...)
}

func sendNoContent(ctx context.Context, c *Client, method, path string, payload any) error {
	body, err := c.do(ctx, method, path, nil, payload)
	if err != nil {
		return err
	}
	if gjson.ValidBytes(body) {
		return checkEnvelope(gjson.ParseBytes(body))
	}
	return nil
}

// Ping reports whether the backend answers at all. Any status below 500
// counts as reachable.
func (c *Client) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/", nil)
	if err != nil {
		return err
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	resp.Body.Close()
	if resp.StatusCode >= 500 {
		return &APIError{Status: resp.StatusCode}
	}
	return nil
}

func escape(id string) string { return url.PathEscape(id) }
