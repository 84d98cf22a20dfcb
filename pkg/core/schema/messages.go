// Copyright Lingora SDK Authors
// SPDX-License-Identifier: Apache-2.0

// Package schema defines the JSON wire model of the Lingora query protocol:
// request and response envelopes, the result/fulfillment model and the
// polymorphic response-message union.
package schema

import (
	"encoding/json"
)

// Platform identifies the messaging surface a response message targets.
// The zero value is the default (platform-neutral) surface and is omitted
// on the wire.
type Platform string

const (
	PlatformDefault  Platform = ""
	PlatformGoogle   Platform = "google"
	PlatformFacebook Platform = "facebook"
	PlatformSlack    Platform = "slack"
	PlatformTelegram Platform = "telegram"
	PlatformKik      Platform = "kik"
	PlatformViber    Platform = "viber"
	PlatformSkype    Platform = "skype"
	PlatformLine     Platform = "line"
)

var knownPlatforms = map[Platform]bool{
	PlatformDefault:  true,
	PlatformGoogle:   true,
	PlatformFacebook: true,
	PlatformSlack:    true,
	PlatformTelegram: true,
	PlatformKik:      true,
	PlatformViber:    true,
	PlatformSkype:    true,
	PlatformLine:     true,
}

// MessageType is the discriminant of the response-message union. On the
// wire it is carried either as the integer code or as the lowercase string
// name; the encoder emits the code for legacy types (code <= 4) and the
// name otherwise.
type MessageType int

const (
	MessageTypeSpeech MessageType = iota
	MessageTypeCard
	MessageTypeQuickReply
	MessageTypeImage
	MessageTypePayload
	MessageTypeChatBubble
	MessageTypeBasicCard
	MessageTypeListCard
	MessageTypeSuggestionChips
	MessageTypeCarouselCard
	MessageTypeLinkOutChip
)

// Name returns the wire name of the type, e.g. "basic_card".
func (t MessageType) Name() string {
	if v := variantByType(t); v != nil {
		return v.name
	}
	return "unknown"
}

func (t MessageType) String() string { return t.Name() }

// ResponseMessage is one variant of the response-message union. Exactly one
// concrete type corresponds to each MessageType; the set of variants is
// closed within this package.
type ResponseMessage interface {
	// MessageType returns the variant's discriminant.
	MessageType() MessageType
	// MessagePlatform returns the platform tag, PlatformDefault when unset.
	MessagePlatform() Platform

	setPlatform(Platform)
}

// platformTag carries the optional platform field shared by every variant.
type platformTag struct {
	Platform Platform `json:"platform,omitempty"`
}

func (p *platformTag) MessagePlatform() Platform { return p.Platform }
func (p *platformTag) setPlatform(pl Platform)   { p.Platform = pl }

// Speech is the plain text reply variant. The service historically sent
// the speech field as either a single string or a list; the codec folds
// the scalar form into a one-element list before decoding.
type Speech struct {
	platformTag
	Speech []string `json:"speech,omitempty"`
}

func (*Speech) MessageType() MessageType { return MessageTypeSpeech }

// Card is a rich card with an image and postback buttons.
type Card struct {
	platformTag
	Title    string       `json:"title,omitempty"`
	Subtitle string       `json:"subtitle,omitempty"`
	ImageURL string       `json:"imageUrl,omitempty"`
	Buttons  []CardButton `json:"buttons,omitempty"`
}

func (*Card) MessageType() MessageType { return MessageTypeCard }

// CardButton is one button of a Card. Postback is the text sent back to
// the service, or a URL to open.
type CardButton struct {
	Text     string `json:"text,omitempty"`
	Postback string `json:"postback,omitempty"`
}

// QuickReply offers the user a titled list of one-tap replies.
type QuickReply struct {
	platformTag
	Title   string   `json:"title,omitempty"`
	Replies []string `json:"replies,omitempty"`
}

func (*QuickReply) MessageType() MessageType { return MessageTypeQuickReply }

// Image is a bare image reply.
type Image struct {
	platformTag
	ImageURL string `json:"imageUrl,omitempty"`
}

func (*Image) MessageType() MessageType { return MessageTypeImage }

// Payload carries an opaque JSON object passed through unmodified.
type Payload struct {
	platformTag
	Payload json.RawMessage `json:"payload,omitempty"`
}

func (*Payload) MessageType() MessageType { return MessageTypePayload }

// ChatBubble is the Google Assistant simple response. Older agents emit a
// single item flattened into the top-level object; the codec expands that
// form on decode and collapses a one-item list back on encode.
type ChatBubble struct {
	platformTag
	CustomizeAudio *bool            `json:"customizeAudio,omitempty"`
	Items          []ChatBubbleItem `json:"items,omitempty"`
}

func (*ChatBubble) MessageType() MessageType { return MessageTypeChatBubble }

// ChatBubbleItem is one spoken/displayed unit of a ChatBubble.
type ChatBubbleItem struct {
	TextToSpeech string `json:"textToSpeech,omitempty"`
	SSML         string `json:"ssml,omitempty"`
	DisplayText  string `json:"displayText,omitempty"`
}

// BasicCard is the Google Assistant card variant.
type BasicCard struct {
	platformTag
	Title         string            `json:"title,omitempty"`
	Subtitle      string            `json:"subtitle,omitempty"`
	FormattedText string            `json:"formattedText,omitempty"`
	Image         *CardImage        `json:"image,omitempty"`
	Buttons       []BasicCardButton `json:"buttons,omitempty"`
}

func (*BasicCard) MessageType() MessageType { return MessageTypeBasicCard }

// CardImage references an image by URL.
type CardImage struct {
	URL string `json:"url,omitempty"`
}

// BasicCardButton is a titled button that opens a URL.
type BasicCardButton struct {
	Title         string         `json:"title,omitempty"`
	OpenURLAction *OpenURLAction `json:"openUrlAction,omitempty"`
}

// OpenURLAction is the target of a BasicCardButton.
type OpenURLAction struct {
	URL string `json:"url,omitempty"`
}

// ListCard is the Google Assistant list selector.
type ListCard struct {
	platformTag
	Title string     `json:"title,omitempty"`
	Items []CardItem `json:"items,omitempty"`
}

func (*ListCard) MessageType() MessageType { return MessageTypeListCard }

// CardItem is a selectable entry of a ListCard or CarouselCard.
type CardItem struct {
	OptionInfo  *OptionInfo `json:"optionInfo,omitempty"`
	Title       string      `json:"title,omitempty"`
	Description string      `json:"description,omitempty"`
	Image       *CardImage  `json:"image,omitempty"`
}

// OptionInfo keys a CardItem for selection, with spoken synonyms.
type OptionInfo struct {
	Key      string   `json:"key,omitempty"`
	Synonyms []string `json:"synonyms,omitempty"`
}

// SuggestionChips offers follow-up suggestions.
type SuggestionChips struct {
	platformTag
	Suggestions []Suggestion `json:"suggestions,omitempty"`
}

func (*SuggestionChips) MessageType() MessageType { return MessageTypeSuggestionChips }

// Suggestion is one chip of a SuggestionChips message.
type Suggestion struct {
	Title string `json:"title,omitempty"`
}

// CarouselCard is the Google Assistant carousel selector.
type CarouselCard struct {
	platformTag
	Items []CardItem `json:"items,omitempty"`
}

func (*CarouselCard) MessageType() MessageType { return MessageTypeCarouselCard }

// LinkOutChip links the user out to an external destination.
type LinkOutChip struct {
	platformTag
	DestinationName string `json:"destinationName,omitempty"`
	URL             string `json:"url,omitempty"`
}

func (*LinkOutChip) MessageType() MessageType { return MessageTypeLinkOutChip }
