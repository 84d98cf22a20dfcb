// Copyright Lingora SDK Authors
// SPDX-License-Identifier: Apache-2.0

package api

import "testing"

func TestNewSession(t *testing.T) {
	s, err := NewSession("abc123")
	if err != nil || s.ID != "abc123" {
		t.Errorf("NewSession = %+v, %v", s, err)
	}
	if _, err := NewSession(""); err == nil {
		t.Error("expected error for empty id")
	}
}

func TestNewRandomSession(t *testing.T) {
	a, b := NewRandomSession(), NewRandomSession()
	if a.ID == "" || b.ID == "" {
		t.Fatal("random session id must not be empty")
	}
	if a.ID == b.ID {
		t.Error("random session ids must differ")
	}
}

func TestWithTimezone(t *testing.T) {
	s, _ := NewSession("abc123")
	pinned := s.WithTimezone("Europe/Rome")

	if pinned.Timezone != "Europe/Rome" || pinned.ID != "abc123" {
		t.Errorf("pinned = %+v", pinned)
	}
	if s.Timezone != "" {
		t.Error("WithTimezone must not mutate the receiver")
	}
}

func TestResolveTimezoneChain(t *testing.T) {
	t.Setenv("TZ", "UTC")

	c := &Client{session: &Session{ID: "default"}}

	call, _ := NewSession("call")
	if got := c.resolveTimezone(call.WithTimezone("Europe/Rome")); got != "Europe/Rome" {
		t.Errorf("per-call timezone = %q", got)
	}

	c.session = c.session.WithTimezone("Asia/Tokyo")
	if got := c.resolveTimezone(call); got != "Asia/Tokyo" {
		t.Errorf("default-session timezone = %q", got)
	}

	c.session = &Session{ID: "default"}
	c.cfg.Timezone = "America/New_York"
	if got := c.resolveTimezone(nil); got != "America/New_York" {
		t.Errorf("config timezone = %q", got)
	}

	c.cfg.Timezone = ""
	if got := c.resolveTimezone(nil); got != "UTC" {
		t.Errorf("system timezone = %q", got)
	}
}
