// Copyright Lingora SDK Authors
// SPDX-License-Identifier: Apache-2.0

package schema

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestFulfillmentDecode(t *testing.T) {
	in := `{"speech":"text","messages":[{"type":0,"speech":["one","two"]}]}`
	var f Fulfillment
	if err := json.Unmarshal([]byte(in), &f); err != nil {
		t.Fatalf("unmarshal error: %v", err)
	}
	if f.Speech != "text" {
		t.Errorf("speech = %q, want %q", f.Speech, "text")
	}
	if len(f.Messages) != 1 {
		t.Fatalf("messages = %d, want 1", len(f.Messages))
	}
	speech, ok := f.Messages[0].(*Speech)
	if !ok {
		t.Fatalf("messages[0] is %T, want *Speech", f.Messages[0])
	}
	if !reflect.DeepEqual(speech.Speech, []string{"one", "two"}) {
		t.Errorf("messages[0].speech = %v", speech.Speech)
	}
}

func TestFulfillmentWebhookShape(t *testing.T) {
	in := `{
		"speech": "The weather in Rome is fine",
		"displayText": "Rome: fine",
		"source": "weather-webhook",
		"data": {"slack": {"text": "fine"}},
		"contextOut": [
			{"name": "weather", "lifespan": 2, "parameters": {"city": "Rome"}}
		],
		"followupEvent": {"name": "next_step", "data": {"city": "Rome"}}
	}`
	var f Fulfillment
	if err := json.Unmarshal([]byte(in), &f); err != nil {
		t.Fatalf("unmarshal error: %v", err)
	}
	if f.Source != "weather-webhook" || f.DisplayText != "Rome: fine" {
		t.Errorf("fulfillment = %+v", f)
	}
	if _, ok := f.Data["slack"]; !ok {
		t.Error("data missing slack entry")
	}

	ctx := f.Context("weather")
	if ctx == nil {
		t.Fatal("context weather not found")
	}
	if ctx.Lifespan == nil || *ctx.Lifespan != 2 {
		t.Errorf("lifespan = %v, want 2", ctx.Lifespan)
	}
	if string(ctx.Parameters["city"]) != `"Rome"` {
		t.Errorf("city = %s", ctx.Parameters["city"])
	}

	if f.FollowupEvent == nil || f.FollowupEvent.Name != "next_step" {
		t.Errorf("followupEvent = %+v", f.FollowupEvent)
	}
	if f.FollowupEvent.Data["city"] != "Rome" {
		t.Errorf("followupEvent.data = %v", f.FollowupEvent.Data)
	}
}

func TestFulfillmentContextLookup(t *testing.T) {
	f := Fulfillment{ContextOut: []OutputContext{
		{Name: "Weather"},
		{Name: "weather", Parameters: map[string]json.RawMessage{"dup": []byte(`true`)}},
	}}

	ctx := f.Context("WEATHER")
	if ctx == nil {
		t.Fatal("case-insensitive lookup failed")
	}
	if ctx.Name != "Weather" {
		t.Errorf("got %q, want first match %q", ctx.Name, "Weather")
	}

	if f.Context("") != nil {
		t.Error("empty name must not match")
	}
	if f.Context("absent") != nil {
		t.Error("absent name must not match")
	}
}
