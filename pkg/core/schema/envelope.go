// Copyright Lingora SDK Authors
// SPDX-License-Identifier: Apache-2.0

package schema

import (
	"encoding/json"
	"fmt"
	"time"
)

// QueryRequest is the body of one query call. A request carries either
// free-text queries (optionally with per-query confidence weights) or a
// named event. Session id, language and timezone left empty here are
// filled in by the client's resolution chain before sending.
type QueryRequest struct {
	Query         []string  `json:"query,omitempty"`
	Confidence    []float32 `json:"confidence,omitempty"`
	Contexts      []Context `json:"contexts,omitempty"`
	ResetContexts *bool     `json:"resetContexts,omitempty"`
	Event         *Event    `json:"event,omitempty"`
	SessionID     string    `json:"sessionId,omitempty"`
	Language      string    `json:"lang,omitempty"`
	Timezone      string    `json:"timezone,omitempty"`
	Entities      []Entity  `json:"entities,omitempty"`
	Location      *Location `json:"location,omitempty"`
}

// NewTextRequest builds a request for a single text query.
func NewTextRequest(query string) *QueryRequest {
	return &QueryRequest{Query: []string{query}}
}

// NewEventRequest builds a request that triggers a named event.
func NewEventRequest(event Event) *QueryRequest {
	return &QueryRequest{Event: &event}
}

// Validate checks the request is sendable.
func (r *QueryRequest) Validate() error {
	if len(r.Query) == 0 && r.Event == nil {
		return fmt.Errorf("query text or event is required")
	}
	if len(r.Confidence) > 0 && len(r.Confidence) != len(r.Query) {
		return fmt.Errorf("confidence must have one weight per query, got %d for %d queries",
			len(r.Confidence), len(r.Query))
	}
	return nil
}

// Context is conversation state activated by the caller for the current
// session. Unlike OutputContext, the lifespan here is a request, not a
// server-reported remaining count.
type Context struct {
	Name       string                     `json:"name,omitempty"`
	Parameters map[string]json.RawMessage `json:"parameters,omitempty"`
	Lifespan   *int                       `json:"lifespan,omitempty"`
}

// Entity is a caller-supplied vocabulary that biases language
// understanding for the session.
type Entity struct {
	Name    string        `json:"name,omitempty"`
	Entries []EntityEntry `json:"entries,omitempty"`
	Extend  bool          `json:"extend,omitempty"`
}

// EntityEntry is one value of an Entity with its spoken synonyms.
type EntityEntry struct {
	Value    string   `json:"value,omitempty"`
	Synonyms []string `json:"synonyms,omitempty"`
}

// Location is the caller's geographic position.
type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Status is the structured outcome the service attaches to every
// response. Codes of 400 and above indicate an upstream error.
type Status struct {
	Code         *int   `json:"code,omitempty"`
	ErrorType    string `json:"errorType,omitempty"`
	ErrorDetails string `json:"errorDetails,omitempty"`
	ErrorID      string `json:"errorId,omitempty"`
}

// IsError reports whether the status carries an upstream error code.
func (s *Status) IsError() bool {
	return s != nil && s.Code != nil && *s.Code >= 400
}

// QueryResponse is the envelope of one query call's outcome.
type QueryResponse struct {
	ID        string    `json:"id,omitempty"`
	Timestamp time.Time `json:"timestamp"`
	Language  string    `json:"lang,omitempty"`
	Result    *Result   `json:"result,omitempty"`
	Status    *Status   `json:"status,omitempty"`
	SessionID string    `json:"sessionId,omitempty"`
}

// IsError reports whether the response carries an upstream error status.
func (r *QueryResponse) IsError() bool {
	return r.Status.IsError()
}

// Cleanup trims placeholder parameter values from the result. Safe to
// call any number of times.
func (r *QueryResponse) Cleanup() {
	if r.Result != nil {
		r.Result.TrimParameters()
	}
}
