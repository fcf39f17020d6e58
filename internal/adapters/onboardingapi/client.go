// Package onboardingapi talks to the onboarding backend's REST API.
package onboardingapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/csg33k/hr-review-portal/internal/domain"
)

const getApplicationPath = "/onboarding/get-application/"

// maxErrorBody caps how much of a failed response is read for messages.
const maxErrorBody = 64 << 10

type Client struct {
	baseURL string
	http    *http.Client
	log     *slog.Logger
}

type Option func(*Client)

// WithHTTPClient replaces the default http.Client.
func WithHTTPClient(hc *http.Client) Option { return func(c *Client) { c.http = hc } }

// WithTimeout bounds each request. Zero leaves the client default.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			hc := *c.http
			hc.Timeout = d
			c.http = &hc
		}
	}
}

func WithLogger(l *slog.Logger) Option { return func(c *Client) { c.log = l } }

// New returns a client for the API rooted at baseURL
// (e.g. "http://localhost:5000/api").
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{},
		log:     slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type credentialsKey struct{}

// WithCredentials attaches the reviewer's session cookies to ctx so they
// are forwarded on every backend call made with it.
func WithCredentials(ctx context.Context, cookies []*http.Cookie) context.Context {
	if len(cookies) == 0 {
		return ctx
	}
	return context.WithValue(ctx, credentialsKey{}, cookies)
}

func credentials(ctx context.Context) []*http.Cookie {
	c, _ := ctx.Value(credentialsKey{}).([]*http.Cookie)
	return c
}

// GetApplication fetches GET /onboarding/get-application/{employeeID}.
// A 404 or a response without application._id is a *domain.NotFoundError.
func (c *Client) GetApplication(ctx context.Context, employeeID string) (*domain.Application, error) {
	u := c.baseURL + getApplicationPath + url.PathEscape(employeeID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, &domain.NotFoundError{EmployeeID: employeeID}
	}
	if resp.StatusCode/100 != 2 {
		return nil, serverError(resp)
	}

	var out struct {
		Application *domain.Application `json:"application"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("decode application for %s: %w", employeeID, err)
	}
	if out.Application == nil || out.Application.ID == "" {
		return nil, &domain.NotFoundError{EmployeeID: employeeID}
	}
	return out.Application, nil
}

// Post sends body as JSON. A 2xx response whose JSON body says
// "success": false is treated as a failure too.
func (c *Client) Post(ctx context.Context, path string, body any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("encode body for %s: %w", path, err)
	}
	u := c.baseURL + "/" + strings.TrimLeft(path, "/")
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode/100 != 2 {
		return serverError(resp)
	}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	if err != nil {
		// The status already says the backend accepted the call.
		c.log.Warn("read onboarding api response", "path", path, "status", resp.StatusCode, "err", err)
	}
	if r := parseReply(raw); r.Success != nil && !*r.Success {
		return r.toError(resp.StatusCode)
	}
	return nil
}

func (c *Client) do(req *http.Request) (*http.Response, error) {
	for _, ck := range credentials(req.Context()) {
		req.AddCookie(ck)
	}
	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Debug("onboarding api request failed", "method", req.Method, "url", req.URL.String(), "err", err)
		return nil, &domain.NetworkError{Op: req.Method, URL: req.URL.String(), Err: err}
	}
	c.log.Debug("onboarding api request",
		"method", req.Method, "url", req.URL.String(),
		"status", resp.StatusCode, "duration", time.Since(start).Round(time.Millisecond))
	return resp, nil
}

// reply is the backend's loose success/failure envelope.
type reply struct {
	Success *bool           `json:"success"`
	Debug   json.RawMessage `json:"debug"`
	Message string          `json:"message"`
	Error   json.RawMessage `json:"error"`
}

func parseReply(raw []byte) reply {
	var r reply
	_ = json.Unmarshal(raw, &r)
	return r
}

func (r reply) toError(status int) *domain.ServerError {
	return &domain.ServerError{
		StatusCode: status,
		Debug:      rawText(r.Debug),
		Message:    r.Message,
		Detail:     rawText(r.Error),
	}
}

func serverError(resp *http.Response) *domain.ServerError {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	return parseReply(raw).toError(resp.StatusCode)
}

// rawText renders a JSON value for display: strings are unquoted, other
// values are kept as compact JSON.
func rawText(m json.RawMessage) string {
	if len(m) == 0 || string(m) == "null" {
		return ""
	}
	var s string
	if err := json.Unmarshal(m, &s); err == nil {
		return s
	}
	var buf bytes.Buffer
	if err := json.Compact(&buf, m); err != nil {
		return string(m)
	}
	return buf.String()
}
