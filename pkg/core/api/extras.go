// Copyright Lingora SDK Authors
// SPDX-License-Identifier: Apache-2.0

package api

import (
	"github.com/lingora/lingora-go/pkg/core/schema"
)

// RequestExtras carries side-channel additions for one call: contexts and
// entities to activate, the caller's location, and extra HTTP headers.
type RequestExtras struct {
	Contexts          []schema.Context
	Entities          []schema.Entity
	Location          *schema.Location
	AdditionalHeaders map[string]string
}

// apply merges the extras into the outgoing request. Only fields the
// extras actually carry are written, so values the caller set directly on
// the request are never nulled out; a populated extras field replaces the
// corresponding request field.
func (e *RequestExtras) apply(req *schema.QueryRequest) {
	if len(e.Contexts) > 0 {
		req.Contexts = e.Contexts
	}
	if len(e.Entities) > 0 {
		req.Entities = e.Entities
	}
	if e.Location != nil {
		req.Location = e.Location
	}
}
