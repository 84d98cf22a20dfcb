// Copyright Lingora SDK Authors
// SPDX-License-Identifier: Apache-2.0

package schema

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/tidwall/gjson"

	"github.com/lingora/lingora-go/pkg/core/params"
)

// Result is the parsed outcome of one query: the resolved text, matched
// action, extracted parameters and active contexts.
type Result struct {
	Source           string                     `json:"source,omitempty"`
	ResolvedQuery    string                     `json:"resolvedQuery,omitempty"`
	Action           string                     `json:"action,omitempty"`
	ActionIncomplete bool                       `json:"actionIncomplete,omitempty"`
	Parameters       map[string]json.RawMessage `json:"parameters,omitempty"`
	Contexts         []OutputContext            `json:"contexts,omitempty"`
	Fulfillment      *Fulfillment               `json:"fulfillment,omitempty"`
	Score            float32                    `json:"score,omitempty"`
	Metadata         *Metadata                  `json:"metadata,omitempty"`
}

// Metadata describes the intent that matched the query.
type Metadata struct {
	IntentID                  string `json:"intentId,omitempty"`
	IntentName                string `json:"intentName,omitempty"`
	WebhookUsed               string `json:"webhookUsed,omitempty"`
	WebhookForSlotFillingUsed string `json:"webhookForSlotFillingUsed,omitempty"`
}

// Context returns the output context with the given name, comparing names
// case-insensitively; nil when absent, first match wins on duplicates.
func (r *Result) Context(name string) *OutputContext {
	return findContext(r.Contexts, name)
}

// TrimParameters removes parameters whose value is exactly the empty
// string, which is how the service represents "nothing extracted".
// Non-string values and non-empty strings are left untouched. The pass is
// idempotent.
func (r *Result) TrimParameters() {
	for k, v := range r.Parameters {
		if g := gjson.ParseBytes(v); g.Type == gjson.String && g.Str == "" {
			delete(r.Parameters, k)
		}
	}
}

// StringParameter returns the named parameter as a string, or "" when
// absent. Array and object values are a shape error.
func (r *Result) StringParameter(name string) (string, error) {
	return r.StringParameterOr(name, "")
}

// StringParameterOr is StringParameter with an explicit default for the
// absent case.
func (r *Result) StringParameterOr(name, def string) (string, error) {
	g, ok := r.parameter(name)
	if !ok {
		return def, nil
	}
	if g.Type == gjson.JSON {
		return "", fmt.Errorf("parameter %q is not a string", name)
	}
	return g.String(), nil
}

// IntParameter returns the named parameter as an int, or 0 when absent.
// String-typed values go through the parameter codec.
func (r *Result) IntParameter(name string) (int, error) {
	return r.IntParameterOr(name, 0)
}

// IntParameterOr is IntParameter with an explicit default for the absent
// case.
func (r *Result) IntParameterOr(name string, def int) (int, error) {
	g, ok := r.parameter(name)
	if !ok {
		return def, nil
	}
	switch g.Type {
	case gjson.Number:
		return int(g.Int()), nil
	case gjson.String:
		return params.ParseInteger(g.Str)
	default:
		return 0, fmt.Errorf("parameter %q is not an integer", name)
	}
}

// FloatParameter returns the named parameter as a float64, or 0 when
// absent.
func (r *Result) FloatParameter(name string) (float64, error) {
	return r.FloatParameterOr(name, 0)
}

// FloatParameterOr is FloatParameter with an explicit default for the
// absent case.
func (r *Result) FloatParameterOr(name string, def float64) (float64, error) {
	g, ok := r.parameter(name)
	if !ok {
		return def, nil
	}
	switch g.Type {
	case gjson.Number:
		return g.Float(), nil
	case gjson.String:
		return params.ParseFloat(g.Str)
	default:
		return 0, fmt.Errorf("parameter %q is not a number", name)
	}
}

// DateTimeParameter parses the named parameter in the protocol date-time
// format. The zero time is returned when the parameter is absent.
func (r *Result) DateTimeParameter(name string) (time.Time, error) {
	g, ok := r.parameter(name)
	if !ok {
		return time.Time{}, nil
	}
	if g.Type != gjson.String {
		return time.Time{}, fmt.Errorf("parameter %q is not a date-time string", name)
	}
	return params.ParseDateTime(g.Str)
}

// ComplexParameter returns the named parameter's raw JSON unchanged, or
// nil when absent. Use it for nested object and array values.
func (r *Result) ComplexParameter(name string) json.RawMessage {
	return r.Parameters[name]
}

func (r *Result) parameter(name string) (gjson.Result, bool) {
	raw, ok := r.Parameters[name]
	if !ok {
		return gjson.Result{}, false
	}
	return gjson.ParseBytes(raw), true
}
