// Copyright Lingora SDK Authors
// SPDX-License-Identifier: Apache-2.0

package api

import (
	"os"
	"time"

	"github.com/lingora/lingora-go/pkg/core/schema"
)

// resolveRequest fills the session-scoped fields a request left empty.
// Every field follows the same chain: explicit on the request, then the
// per-call session, then the client's default session/config, then the
// system default. A value set at a higher tier always wins.
func (c *Client) resolveRequest(req *schema.QueryRequest, session *Session) {
	if req.Language == "" {
		req.Language = c.cfg.Language
	}
	if req.SessionID == "" {
		req.SessionID = c.resolveSessionID(session)
	}
	if req.Timezone == "" {
		req.Timezone = c.resolveTimezone(session)
	}
}

func (c *Client) resolveSessionID(session *Session) string {
	if session != nil && session.ID != "" {
		return session.ID
	}
	return c.session.ID
}

func (c *Client) resolveTimezone(session *Session) string {
	if session != nil && session.Timezone != "" {
		return session.Timezone
	}
	if c.session.Timezone != "" {
		return c.session.Timezone
	}
	if c.cfg.Timezone != "" {
		return c.cfg.Timezone
	}
	return systemTimezone()
}

// systemTimezone names the local zone. TZ is preferred because it carries
// a zone database name the service understands; time.Local reports only
// "Local" for zones configured outside the environment.
func systemTimezone() string {
	if tz := os.Getenv("TZ"); tz != "" {
		return tz
	}
	return time.Local.String()
}
