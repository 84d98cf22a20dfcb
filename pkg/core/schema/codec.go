// Copyright Lingora SDK Authors
// SPDX-License-Identifier: Apache-2.0

package schema

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// legacyTypeMax is the highest discriminant emitted as a numeric code;
// newer variants are emitted by name.
const legacyTypeMax = 4

// FormatError reports a wire value this package cannot interpret, such as
// an unrecognized message type discriminant or platform name. It is never
// retried; a single bad message fails the whole decode.
type FormatError struct {
	Field string
	Value string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("unexpected %s value: %s", e.Field, e.Value)
}

// variant is one row of the discriminant registry.
type variant struct {
	code     int
	name     string
	platform Platform
	make     func() ResponseMessage
	// normalize rewrites legacy document shapes before structural decode.
	normalize func([]byte) ([]byte, error)
	// collapse rewrites the encoded document for backward compatibility.
	collapse func([]byte) ([]byte, error)
}

// The registry is data-driven so platform-specific variants can be added
// as table rows rather than decoder branches.
var variants = []variant{
	{code: 0, name: "message", make: func() ResponseMessage { return &Speech{} }, normalize: normalizeSpeech},
	{code: 1, name: "card", make: func() ResponseMessage { return &Card{} }},
	{code: 2, name: "quick_reply", make: func() ResponseMessage { return &QuickReply{} }},
	{code: 3, name: "image", make: func() ResponseMessage { return &Image{} }},
	{code: 4, name: "custom_payload", make: func() ResponseMessage { return &Payload{} }},
	{code: 5, name: "simple_response", platform: PlatformGoogle,
		make: func() ResponseMessage { return &ChatBubble{} }, normalize: expandChatBubble, collapse: collapseChatBubble},
	{code: 6, name: "basic_card", platform: PlatformGoogle, make: func() ResponseMessage { return &BasicCard{} }},
	{code: 7, name: "list_card", platform: PlatformGoogle, make: func() ResponseMessage { return &ListCard{} }},
	{code: 8, name: "suggestion_chips", platform: PlatformGoogle, make: func() ResponseMessage { return &SuggestionChips{} }},
	{code: 9, name: "carousel_card", platform: PlatformGoogle, make: func() ResponseMessage { return &CarouselCard{} }},
	{code: 10, name: "link_out_chip", platform: PlatformGoogle, make: func() ResponseMessage { return &LinkOutChip{} }},
}

func variantByType(t MessageType) *variant {
	if int(t) < 0 || int(t) >= len(variants) {
		return nil
	}
	return &variants[t]
}

// Codec encodes and decodes response messages for a fixed set of variants.
// A Codec is immutable after construction and safe for concurrent use; it
// is passed explicitly rather than held in mutable package state so tests
// can restrict the variant set.
type Codec struct {
	byCode map[int]*variant
	byName map[string]*variant
	byType map[MessageType]*variant
}

// NewCodec builds a codec for the given message types, or for every known
// type when none are given.
func NewCodec(types ...MessageType) *Codec {
	c := &Codec{
		byCode: make(map[int]*variant),
		byName: make(map[string]*variant),
		byType: make(map[MessageType]*variant),
	}
	if len(types) == 0 {
		for i := range variants {
			types = append(types, MessageType(i))
		}
	}
	for _, t := range types {
		if v := variantByType(t); v != nil {
			c.byCode[v.code] = v
			c.byName[v.name] = v
			c.byType[t] = v
		}
	}
	return c
}

var defaultCodec = NewCodec()

// DefaultCodec returns the codec covering every known variant. It is used
// by Messages when a Fulfillment is decoded as part of a larger document.
func DefaultCodec() *Codec { return defaultCodec }

// DecodeMessage decodes a single response-message object. The discriminant
// is read first, without decoding the rest of the object, and resolved
// through the registry; an unknown discriminant or platform name yields a
// *FormatError.
func (c *Codec) DecodeMessage(data []byte) (ResponseMessage, error) {
	t := gjson.GetBytes(data, "type")
	var v *variant
	switch t.Type {
	case gjson.Number:
		v = c.byCode[int(t.Int())]
	case gjson.String:
		v = c.byName[strings.ToLower(t.Str)]
	}
	if v == nil {
		return nil, &FormatError{Field: "message type", Value: t.Raw}
	}

	if p := gjson.GetBytes(data, "platform"); p.Exists() {
		if !knownPlatforms[Platform(strings.ToLower(p.Str))] {
			return nil, &FormatError{Field: "platform", Value: p.Raw}
		}
	}

	if v.normalize != nil {
		var err error
		if data, err = v.normalize(data); err != nil {
			return nil, fmt.Errorf("normalize %s message: %w", v.name, err)
		}
	}

	m := v.make()
	if err := json.Unmarshal(data, m); err != nil {
		return nil, fmt.Errorf("decode %s message: %w", v.name, err)
	}
	if m.MessagePlatform() == PlatformDefault {
		m.setPlatform(v.platform)
	}
	return m, nil
}

// DecodeMessages decodes a JSON array of response messages. Any
// unrecognized element fails the whole array.
func (c *Codec) DecodeMessages(data []byte) ([]ResponseMessage, error) {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("response messages must be an array: %w", err)
	}
	out := make([]ResponseMessage, 0, len(raw))
	for i, r := range raw {
		m, err := c.DecodeMessage(r)
		if err != nil {
			return nil, fmt.Errorf("messages[%d]: %w", i, err)
		}
		out = append(out, m)
	}
	return out, nil
}

// EncodeMessage serializes one response message, emitting the numeric
// discriminant for legacy types and the string name otherwise. The
// platform tag is included only when it differs from the default.
func (c *Codec) EncodeMessage(m ResponseMessage) ([]byte, error) {
	v := c.byType[m.MessageType()]
	if v == nil {
		return nil, &FormatError{Field: "message type", Value: m.MessageType().Name()}
	}

	data, err := json.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("encode %s message: %w", v.name, err)
	}

	if m.MessagePlatform() == PlatformDefault && v.platform != PlatformDefault {
		if data, err = sjson.SetBytes(data, "platform", string(v.platform)); err != nil {
			return nil, err
		}
	}

	if v.code <= legacyTypeMax {
		data, err = sjson.SetBytes(data, "type", v.code)
	} else {
		data, err = sjson.SetBytes(data, "type", v.name)
	}
	if err != nil {
		return nil, err
	}

	if v.collapse != nil {
		if data, err = v.collapse(data); err != nil {
			return nil, err
		}
	}
	return data, nil
}

// EncodeMessages serializes a list of response messages into a JSON array.
func (c *Codec) EncodeMessages(msgs []ResponseMessage) ([]byte, error) {
	out := []byte("[]")
	for i, m := range msgs {
		enc, err := c.EncodeMessage(m)
		if err != nil {
			return nil, fmt.Errorf("messages[%d]: %w", i, err)
		}
		if out, err = sjson.SetRawBytes(out, "-1", enc); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// normalizeSpeech folds the legacy scalar speech field into a one-element
// list. The leniency is deliberately scoped to this field only.
func normalizeSpeech(data []byte) ([]byte, error) {
	if v := gjson.GetBytes(data, "speech"); v.Type == gjson.String {
		return sjson.SetBytes(data, "speech", []string{v.Str})
	}
	return data, nil
}

// expandChatBubble converts the flattened single-item chat bubble form
// into an items entry. Top-level text fields are appended to any items the
// document already carries.
func expandChatBubble(data []byte) ([]byte, error) {
	if !gjson.GetBytes(data, "textToSpeech").Exists() {
		return data, nil
	}
	item := map[string]any{}
	for _, k := range []string{"textToSpeech", "ssml", "displayText"} {
		if v := gjson.GetBytes(data, k); v.Exists() {
			item[k] = v.Value()
		}
	}
	return sjson.SetBytes(data, "items.-1", item)
}

// collapseChatBubble reverses expandChatBubble on encode: a one-item list
// is hoisted back into the top-level fields older integrations read.
func collapseChatBubble(data []byte) ([]byte, error) {
	items := gjson.GetBytes(data, "items").Array()
	if len(items) != 1 {
		return data, nil
	}
	var err error
	for _, k := range []string{"textToSpeech", "ssml", "displayText"} {
		if v := items[0].Get(k); v.Exists() {
			if data, err = sjson.SetBytes(data, k, v.Value()); err != nil {
				return nil, err
			}
		}
	}
	return sjson.DeleteBytes(data, "items")
}

// Messages is a response-message list that knows how to (de)serialize
// itself with the default codec.
type Messages []ResponseMessage

func (m *Messages) UnmarshalJSON(data []byte) error {
	msgs, err := defaultCodec.DecodeMessages(data)
	if err != nil {
		return err
	}
	*m = msgs
	return nil
}

func (m Messages) MarshalJSON() ([]byte, error) {
	return defaultCodec.EncodeMessages(m)
}
