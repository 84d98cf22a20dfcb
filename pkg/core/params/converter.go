// Copyright Lingora SDK Authors
// SPDX-License-Identifier: Apache-2.0

// Package params converts the service's string-typed parameter values into
// typed Go values. The service sends every extracted parameter as JSON text
// in a handful of fixed formats; the functions here are the only place those
// formats are spelled out.
package params

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Wire formats used by the query protocol.
const (
	DateFormat     = "2006-01-02"
	TimeFormat     = "15:04:05"
	DateTimeFormat = "2006-01-02T15:04:05-0700"
)

// ErrEmptyParameter is returned when a codec function receives an empty
// input string. This is a caller bug, not a malformed wire value.
var ErrEmptyParameter = errors.New("parameter must not be empty")

// ParseError reports a parameter value that does not match its wire format.
type ParseError struct {
	Input  string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("cannot parse parameter %q: %s", e.Input, e.Reason)
}

// ParseDate parses a "yyyy-MM-dd" value.
func ParseDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, ErrEmptyParameter
	}
	t, err := time.Parse(DateFormat, s)
	if err != nil {
		return time.Time{}, &ParseError{Input: s, Reason: "expected format " + DateFormat}
	}
	return t, nil
}

// ParseTime parses a "HH:mm:ss" value. The service sends only a time of
// day, so the result is anchored to the current date in the local zone;
// callers must treat the date portion as undefined.
func ParseTime(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, ErrEmptyParameter
	}
	clock, err := time.Parse(TimeFormat, s)
	if err != nil {
		return time.Time{}, &ParseError{Input: s, Reason: "expected format " + TimeFormat}
	}
	now := time.Now()
	return time.Date(now.Year(), now.Month(), now.Day(),
		clock.Hour(), clock.Minute(), clock.Second(), 0, now.Location()), nil
}

// ParseDateTime parses a "yyyy-MM-dd'T'HH:mm:ssZ" value, where Z is a
// numeric offset without a colon (e.g. "+0200").
func ParseDateTime(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, ErrEmptyParameter
	}
	t, err := time.Parse(DateTimeFormat, s)
	if err != nil {
		return time.Time{}, &ParseError{Input: s, Reason: "expected format " + DateTimeFormat}
	}
	return t, nil
}

// ParsePartialDate parses a "yyyy-MM-dd" value where any component may be
// a run of 'u' characters marking it unspecified. A value without the
// marker is parsed as an ordinary date.
//
// A component merely containing 'u' (e.g. "1u") counts as unspecified;
// the protocol never mixes digits and markers, so the looser check is kept.
func ParsePartialDate(s string) (PartialDate, error) {
	if s == "" {
		return PartialDate{}, ErrEmptyParameter
	}

	if !strings.ContainsRune(s, 'u') {
		t, err := ParseDate(s)
		if err != nil {
			return PartialDate{}, err
		}
		return NewPartialDate(t), nil
	}

	parts := strings.Split(s, "-")
	if len(parts) != 3 {
		return PartialDate{}, &ParseError{
			Input:  s,
			Reason: fmt.Sprintf("partial date must have 3 components, got %d", len(parts)),
		}
	}

	var d PartialDate
	var err error
	if d.Year, err = parseComponent(s, parts[0]); err != nil {
		return PartialDate{}, err
	}
	if d.Month, err = parseComponent(s, parts[1]); err != nil {
		return PartialDate{}, err
	}
	if d.Day, err = parseComponent(s, parts[2]); err != nil {
		return PartialDate{}, err
	}
	return d, nil
}

func parseComponent(input, part string) (int, error) {
	if strings.ContainsRune(part, 'u') {
		return Unspecified, nil
	}
	v, err := strconv.Atoi(part)
	if err != nil {
		return 0, &ParseError{Input: input, Reason: fmt.Sprintf("component %q is not a number", part)}
	}
	return v, nil
}

// ParseInteger parses a decimal integer parameter.
func ParseInteger(s string) (int, error) {
	if s == "" {
		return 0, ErrEmptyParameter
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, &ParseError{Input: s, Reason: "not an integer"}
	}
	return v, nil
}

// ParseFloat parses a decimal floating point parameter.
func ParseFloat(s string) (float64, error) {
	if s == "" {
		return 0, ErrEmptyParameter
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, &ParseError{Input: s, Reason: "not a number"}
	}
	return v, nil
}
