// Package client is a small Go client for the vendor ledger API.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sangkips/vendor-ledger-api/pkg/apperror"
	"go.uber.org/zap"
)

const (
	defaultTimeout = 30 * time.Second
	apiPrefix      = "/api/v1"
)

// Session identifies the API and the operator calling it. It is passed in
// explicitly; the client never reads it from the environment.
type Session struct {
	BaseURL string
	Token   string
}

// Client talks to one API under one session.
type Client struct {
	session Session
	http    *http.Client
	logger  *zap.Logger
	retries int
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

// WithLogger sets the logger used for request tracing.
func WithLogger(l *zap.Logger) Option {
	return func(c *Client) { c.logger = l }
}

// WithRetries sets how many times a create is resent after a transport
// failure. Resends carry the same Idempotency-Key.
func WithRetries(n int) Option {
	return func(c *Client) {
		if n >= 0 {
			c.retries = n
		}
	}
}

// New creates a client for session.
func New(session Session, opts ...Option) *Client {
	c := &Client{
		session: Session{BaseURL: strings.TrimRight(session.BaseURL, "/"), Token: session.Token},
		http:    &http.Client{Timeout: defaultTimeout},
		logger:  zap.NewNop(),
		retries: 1,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Session returns the session the client was built with.
func (c *Client) Session() Session {
	return c.session
}

// WithToken returns a copy of the client authenticated with token.
func (c *Client) WithToken(token string) *Client {
	cp := *c
	cp.session.Token = token
	return &cp
}

// Error is a non-2xx answer from the API.
type Error struct {
	StatusCode int
	Message    string
	Fields     []apperror.FieldError
}

func (e *Error) Error() string {
	if len(e.Fields) == 0 {
		return fmt.Sprintf("api error %d: %s", e.StatusCode, e.Message)
	}
	parts := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		parts[i] = f.Field + ": " + f.Message
	}
	return fmt.Sprintf("api error %d: %s (%s)", e.StatusCode, e.Message, strings.Join(parts, "; "))
}

// IsNotFound reports whether err is a 404 from the API.
func IsNotFound(err error) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound
}

type envelope struct {
	Success bool                  `json:"success"`
	Message string                `json:"message"`
	Data    json.RawMessage       `json:"data"`
	Errors  []apperror.FieldError `json:"errors"`
}

type call struct {
	method      string
	path        string
	query       url.Values
	body        any
	idempotency bool
}

// do sends the call and decodes the envelope's data into out, returning the
// envelope message.
func (c *Client) do(ctx context.Context, cl call, out any) (string, error) {
	var payload []byte
	if cl.body != nil {
		var err error
		if payload, err = json.Marshal(cl.body); err != nil {
			return "", fmt.Errorf("encode request: %w", err)
		}
	}

	key := ""
	attempts := 1
	if cl.idempotency {
		key = uuid.NewString()
		attempts += c.retries
	}

	var (
		resp *http.Response
		err  error
	)
	for attempt := 1; attempt <= attempts; attempt++ {
		resp, err = c.send(ctx, cl, payload, key)
		if err == nil {
			break
		}
		if ctx.Err() != nil {
			return "", err
		}
		c.logger.Warn("request failed",
			zap.String("method", cl.method),
			zap.String("path", cl.path),
			zap.Int("attempt", attempt),
			zap.Error(err),
		)
	}
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return "", &Error{StatusCode: resp.StatusCode, Message: strings.TrimSpace(string(raw))}
	}
	if resp.StatusCode >= http.StatusMultipleChoices || !env.Success {
		return env.Message, &Error{StatusCode: resp.StatusCode, Message: env.Message, Fields: env.Errors}
	}

	if out != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return env.Message, fmt.Errorf("decode %s %s: %w", cl.method, cl.path, err)
		}
	}
	return env.Message, nil
}

func (c *Client) send(ctx context.Context, cl call, payload []byte, idempotencyKey string) (*http.Response, error) {
	u := c.session.BaseURL + apiPrefix + cl.path
	if len(cl.query) > 0 {
		u += "?" + cl.query.Encode()
	}

	var body io.Reader
	if payload != nil {
		body = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, cl.method, u, body)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.session.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.session.Token)
	}
	if idempotencyKey != "" {
		req.Header.Set("Idempotency-Key", idempotencyKey)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	c.logger.Debug("api call",
		zap.String("method", cl.method),
		zap.String("path", cl.path),
		zap.Int("status", resp.StatusCode),
		zap.Duration("latency", time.Since(start)),
	)
	return resp, nil
}
