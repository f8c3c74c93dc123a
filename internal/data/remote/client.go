package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/PlayLink-CC/playlink-sub000/pkg/utils"

	"go.uber.org/zap"
)

// UpstreamError is a non-2xx reply from the marketplace API with a
// structured {message} body. The message is surfaced to the user verbatim.
type UpstreamError struct {
	StatusCode int
	Message    string
}

func (e *UpstreamError) Error() string {
	return e.Message
}

// Client is the single HTTP door to the marketplace backend. All calls
// forward the session cookie from the request context and die with the
// caller's context; there are no retries.
type Client struct {
	baseURL string
	http    *http.Client
	log     *zap.Logger
}

func NewClient(config utils.UpstreamConfig, log *zap.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(config.BaseURL, "/"),
		http: &http.Client{
			Timeout: config.Timeout,
		},
		log: log.With(zap.String("component", "upstream")),
	}
}

func (c *Client) newRequest(ctx context.Context, method, path string, query url.Values, body any) (*http.Request, error) {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	// Credentialed requests: the browser cookie rides along on every call.
	if cookie, ok := utils.GetSessionFromContext(ctx); ok {
		req.Header.Set("Cookie", cookie)
	}

	return req, nil
}

// do issues one request and decodes a 2xx body into out (skipped when out
// is nil). Non-2xx replies become *UpstreamError.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	req, err := c.newRequest(ctx, method, path, query, body)
	if err != nil {
		return err
	}

	res, err := c.http.Do(req)
	if err != nil {
		c.log.Warn("Upstream request failed",
			zap.String("method", method),
			zap.String("path", path),
			zap.Error(err))
		return fmt.Errorf("upstream %s %s: %w", method, path, err)
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return c.decodeError(res, method, path)
	}

	if out == nil {
		io.Copy(io.Discard, res.Body)
		return nil
	}

	if err := json.NewDecoder(res.Body).Decode(out); err != nil {
		return fmt.Errorf("decode upstream response %s %s: %w", method, path, err)
	}

	return nil
}

// doWithCookies is do plus the response Set-Cookie headers, needed only by
// login so the session cookie can be relayed to the browser.
func (c *Client) doWithCookies(ctx context.Context, method, path string, body, out any) ([]*http.Cookie, error) {
	req, err := c.newRequest(ctx, method, path, nil, body)
	if err != nil {
		return nil, err
	}

	res, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("upstream %s %s: %w", method, path, err)
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return nil, c.decodeError(res, method, path)
	}

	if out != nil {
		if err := json.NewDecoder(res.Body).Decode(out); err != nil {
			return nil, fmt.Errorf("decode upstream response %s %s: %w", method, path, err)
		}
	}

	return res.Cookies(), nil
}

func (c *Client) decodeError(res *http.Response, method, path string) error {
	var envelope struct {
		Message string `json:"message"`
	}

	raw, _ := io.ReadAll(io.LimitReader(res.Body, 1<<16))
	if err := json.Unmarshal(raw, &envelope); err != nil || envelope.Message == "" {
		envelope.Message = http.StatusText(res.StatusCode)
	}

	c.log.Warn("Upstream returned error",
		zap.String("method", method),
		zap.String("path", path),
		zap.Int("status", res.StatusCode),
		zap.String("message", envelope.Message))

	return &UpstreamError{
		StatusCode: res.StatusCode,
		Message:    envelope.Message,
	}
}
