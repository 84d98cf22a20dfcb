// Copyright Lingora SDK Authors
// SPDX-License-Identifier: Apache-2.0

package api

import (
	"fmt"

	"github.com/google/uuid"
)

// Session is the caller-owned conversation state threaded through every
// call: the service keys its contexts by the session id. A Session may
// also pin a timezone for requests made under it.
type Session struct {
	ID       string
	Timezone string
}

// NewSession creates a session with the given id.
func NewSession(id string) (*Session, error) {
	if id == "" {
		return nil, fmt.Errorf("session id must not be empty")
	}
	return &Session{ID: id}, nil
}

// NewRandomSession creates a session with a generated unique id.
func NewRandomSession() *Session {
	return &Session{ID: uuid.NewString()}
}

// WithTimezone returns a copy of the session pinned to the given timezone
// name.
func (s *Session) WithTimezone(tz string) *Session {
	out := *s
	out.Timezone = tz
	return &out
}
