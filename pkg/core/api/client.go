// Copyright Lingora SDK Authors
// SPDX-License-Identifier: Apache-2.0

// Package api implements the HTTP client for the Lingora query service:
// request assembly with session fallback, the query call itself, and the
// active-context management endpoints.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/lingora/lingora-go/pkg/core/config"
	"github.com/lingora/lingora-go/pkg/core/schema"
	"github.com/lingora/lingora-go/pkg/observability/logging"
)

// Client talks to the query service over HTTPS. A Client is safe for
// concurrent use; the only state shared between calls is the default
// session id, which is read-only after construction.
type Client struct {
	cfg        config.Config
	httpClient *http.Client
	session    *Session
	logger     *logging.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithSession sets the default session used when neither the request nor
// the per-call options name one.
func WithSession(s *Session) Option {
	return func(c *Client) { c.session = s }
}

// WithLogger sets the client logger. The default discards everything.
func WithLogger(l *logging.Logger) Option {
	return func(c *Client) { c.logger = l }
}

// NewClient creates a client for the given configuration. The
// configuration is copied, and a random default session is generated
// unless WithSession overrides it.
func NewClient(cfg *config.Config, opts ...Option) (*Client, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config must not be nil")
	}
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("config: api key is required")
	}

	c := &Client{
		cfg:     *cfg,
		session: NewRandomSession(),
		logger:  logging.Discard(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.httpClient == nil {
		c.httpClient = &http.Client{Timeout: cfg.Timeout}
	}
	return c, nil
}

// Session returns the client's default session.
func (c *Client) Session() *Session { return c.session }

// QueryOptions carries the optional per-call inputs of Query.
type QueryOptions struct {
	// Session overrides the client's default session for this call.
	Session *Session
	// Extras are merged into the request before sending.
	Extras *RequestExtras
}

// Query sends the request under the client's default session.
func (c *Client) Query(ctx context.Context, req *schema.QueryRequest) (*schema.QueryResponse, error) {
	return c.QueryWithOptions(ctx, req, QueryOptions{})
}

// QueryWithOptions sends the request after filling empty session-scoped
// fields from the per-call session, the default session and the system
// defaults, in that order. Placeholder parameters are trimmed from the
// returned result. An upstream error status is returned as *ServiceError.
func (c *Client) QueryWithOptions(ctx context.Context, req *schema.QueryRequest, opts QueryOptions) (*schema.QueryResponse, error) {
	if req == nil {
		return nil, fmt.Errorf("request must not be nil")
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	c.resolveRequest(req, opts.Session)

	var headers map[string]string
	if opts.Extras != nil {
		opts.Extras.apply(req)
		headers = opts.Extras.AdditionalHeaders
	}

	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}
	c.logger.Debug("sending query", "session_id", req.SessionID, "lang", req.Language)

	data, status, err := c.do(ctx, http.MethodPost, c.queryURL(), body, headers)
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("empty response from service")
	}

	var out schema.QueryResponse
	if err := json.Unmarshal(data, &out); err != nil {
		if status >= http.StatusBadRequest {
			return nil, &ServiceError{Op: "query"}
		}
		return nil, fmt.Errorf("malformed service response: %w", err)
	}
	if out.IsError() || status >= http.StatusBadRequest {
		return nil, &ServiceError{Op: "query", Status: out.Status}
	}

	out.Cleanup()
	c.logger.Debug("query complete", "response_id", out.ID, "action", actionOf(&out))
	return &out, nil
}

// ActiveContexts lists the contexts currently active for the session.
func (c *Client) ActiveContexts(ctx context.Context, session *Session) ([]schema.Context, error) {
	data, status, err := c.do(ctx, http.MethodGet, c.contextsURL(session), nil, nil)
	if err != nil {
		return nil, err
	}
	if status >= http.StatusBadRequest {
		return nil, serviceErrorFromBody("contexts", data)
	}
	var out []schema.Context
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("malformed service response: %w", err)
	}
	return out, nil
}

// ActiveContext retrieves a single active context by name. A context the
// service does not know is not an error; the result is nil.
func (c *Client) ActiveContext(ctx context.Context, name string, session *Session) (*schema.Context, error) {
	if name == "" {
		return nil, fmt.Errorf("context name must not be empty")
	}
	data, status, err := c.do(ctx, http.MethodGet, c.contextURL(name, session), nil, nil)
	if err != nil {
		return nil, err
	}
	if status == http.StatusNotFound {
		return nil, nil
	}
	if status >= http.StatusBadRequest {
		return nil, serviceErrorFromBody("contexts", data)
	}
	var out schema.Context
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("malformed service response: %w", err)
	}
	return &out, nil
}

// AddActiveContexts activates contexts for the session and returns the
// names the service accepted.
func (c *Client) AddActiveContexts(ctx context.Context, contexts []schema.Context, session *Session) ([]string, error) {
	body, err := json.Marshal(contexts)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal contexts: %w", err)
	}
	data, status, err := c.do(ctx, http.MethodPost, c.contextsURL(session), body, nil)
	if err != nil {
		return nil, err
	}
	if status >= http.StatusBadRequest {
		return nil, serviceErrorFromBody("contexts", data)
	}
	var out struct {
		Names  []string       `json:"names"`
		Status *schema.Status `json:"status"`
	}
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("malformed service response: %w", err)
	}
	if out.Status.IsError() {
		return nil, &ServiceError{Op: "contexts", Status: out.Status}
	}
	return out.Names, nil
}

// ResetActiveContexts deactivates every context of the session.
func (c *Client) ResetActiveContexts(ctx context.Context, session *Session) error {
	data, status, err := c.do(ctx, http.MethodDelete, c.contextsURL(session), nil, nil)
	if err != nil {
		return err
	}
	if status >= http.StatusBadRequest {
		return serviceErrorFromBody("contexts", data)
	}
	return nil
}

// RemoveActiveContext deactivates a single context by name. It reports
// whether the context existed.
func (c *Client) RemoveActiveContext(ctx context.Context, name string, session *Session) (bool, error) {
	if name == "" {
		return false, fmt.Errorf("context name must not be empty")
	}
	data, status, err := c.do(ctx, http.MethodDelete, c.contextURL(name, session), nil, nil)
	if err != nil {
		return false, err
	}
	if status == http.StatusNotFound {
		return false, nil
	}
	if status >= http.StatusBadRequest {
		return false, serviceErrorFromBody("contexts", data)
	}
	return true, nil
}

// UploadUserEntities attaches caller-defined entities to the session so
// they bias understanding on later queries. The service answers with a
// full query-response envelope.
func (c *Client) UploadUserEntities(ctx context.Context, entities []schema.Entity, session *Session) (*schema.QueryResponse, error) {
	if len(entities) == 0 {
		return nil, fmt.Errorf("entities list must not be empty")
	}
	body, err := json.Marshal(entities)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal entities: %w", err)
	}
	data, status, err := c.do(ctx, http.MethodPost, c.userEntitiesURL(session), body, nil)
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("empty response from service")
	}
	var out schema.QueryResponse
	if err := json.Unmarshal(data, &out); err != nil {
		if status >= http.StatusBadRequest {
			return nil, &ServiceError{Op: "userEntities"}
		}
		return nil, fmt.Errorf("malformed service response: %w", err)
	}
	if out.IsError() || status >= http.StatusBadRequest {
		return nil, &ServiceError{Op: "userEntities", Status: out.Status}
	}
	out.Cleanup()
	return &out, nil
}

// UploadUserEntity is UploadUserEntities for a single entity.
func (c *Client) UploadUserEntity(ctx context.Context, entity schema.Entity, session *Session) (*schema.QueryResponse, error) {
	return c.UploadUserEntities(ctx, []schema.Entity{entity}, session)
}

func (c *Client) do(ctx context.Context, method, rawURL string, body []byte, headers map[string]string) ([]byte, int, error) {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, rawURL, reader)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to create HTTP request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json; charset=utf-8")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("request to service failed: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to read response body: %w", err)
	}
	return data, resp.StatusCode, nil
}

func (c *Client) queryURL() string {
	return c.endpoint("query", nil)
}

func (c *Client) contextsURL(session *Session) string {
	q := url.Values{"sessionId": {c.resolveSessionID(session)}}
	return c.endpoint("contexts", q)
}

func (c *Client) contextURL(name string, session *Session) string {
	q := url.Values{"sessionId": {c.resolveSessionID(session)}}
	return c.endpoint("contexts/"+url.PathEscape(name), q)
}

func (c *Client) userEntitiesURL(session *Session) string {
	q := url.Values{"sessionId": {c.resolveSessionID(session)}}
	return c.endpoint("userEntities", q)
}

func (c *Client) endpoint(path string, q url.Values) string {
	if q == nil {
		q = url.Values{}
	}
	q.Set("v", c.cfg.ProtocolVersion)
	return strings.TrimRight(c.cfg.Endpoint, "/") + "/" + path + "?" + q.Encode()
}

// serviceErrorFromBody builds a ServiceError from an error body when the
// service sent a structured status, or a generic one otherwise.
func serviceErrorFromBody(op string, data []byte) *ServiceError {
	var envelope struct {
		Status *schema.Status `json:"status"`
	}
	if err := json.Unmarshal(data, &envelope); err == nil && envelope.Status != nil {
		return &ServiceError{Op: op, Status: envelope.Status}
	}
	return &ServiceError{Op: op}
}

func actionOf(resp *schema.QueryResponse) string {
	if resp.Result == nil {
		return ""
	}
	return resp.Result.Action
}
