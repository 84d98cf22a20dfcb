// Copyright Lingora SDK Authors
// SPDX-License-Identifier: Apache-2.0

package schema

import (
	"encoding/json"
	"strings"
)

// Fulfillment carries the content to present to the end user: plain
// speech, rich response messages and webhook-supplied data. It is either
// decoded from a query response or built by a webhook handler for the
// outgoing reply.
type Fulfillment struct {
	Speech        string                     `json:"speech,omitempty"`
	Messages      Messages                   `json:"messages,omitempty"`
	DisplayText   string                     `json:"displayText,omitempty"`
	Data          map[string]json.RawMessage `json:"data,omitempty"`
	Source        string                     `json:"source,omitempty"`
	ContextOut    []OutputContext            `json:"contextOut,omitempty"`
	FollowupEvent *Event                     `json:"followupEvent,omitempty"`
}

// Context returns the outgoing context with the given name, or nil when
// absent. Names are compared ignoring case; if the service ever sends
// duplicate names the first match wins.
func (f *Fulfillment) Context(name string) *OutputContext {
	return findContext(f.ContextOut, name)
}

// OutputContext is conversation state returned by the service, keyed by
// name. Lifespan counts the requests the context has left to live; it is
// server-authoritative and never decremented by this SDK.
type OutputContext struct {
	Name       string                     `json:"name,omitempty"`
	Parameters map[string]json.RawMessage `json:"parameters,omitempty"`
	Lifespan   *int                       `json:"lifespan,omitempty"`
}

// Event names a service event to trigger instead of free-text input, with
// optional string payload data.
type Event struct {
	Name string            `json:"name,omitempty"`
	Data map[string]string `json:"data,omitempty"`
}

func findContext(contexts []OutputContext, name string) *OutputContext {
	if name == "" {
		return nil
	}
	for i := range contexts {
		if strings.EqualFold(contexts[i].Name, name) {
			return &contexts[i]
		}
	}
	return nil
}
