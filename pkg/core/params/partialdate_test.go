// Copyright Lingora SDK Authors
// SPDX-License-Identifier: Apache-2.0

package params

import (
	"errors"
	"testing"
)

func TestParsePartialDateRoundTrip(t *testing.T) {
	for _, s := range []string{
		"1999-05-uu",
		"2005-uu-17",
		"uuuu-07-23",
		"2008-uu-uu",
		"2016-04-01",
	} {
		d, err := ParsePartialDate(s)
		if err != nil {
			t.Fatalf("ParsePartialDate(%q) error: %v", s, err)
		}
		if got := d.String(); got != s {
			t.Errorf("ParsePartialDate(%q).String() = %q", s, got)
		}
	}
}

func TestParsePartialDateComponents(t *testing.T) {
	d, err := ParsePartialDate("uuuu-07-23")
	if err != nil {
		t.Fatalf("ParsePartialDate error: %v", err)
	}
	if d.Year != Unspecified || d.Month != 7 || d.Day != 23 {
		t.Errorf("got %+v, want year unspecified, month 7, day 23", d)
	}
}

func TestParsePartialDateFullDate(t *testing.T) {
	d, err := ParsePartialDate("2016-04-01")
	if err != nil {
		t.Fatalf("ParsePartialDate error: %v", err)
	}
	tm, ok := d.Time()
	if !ok {
		t.Fatal("Time() not ok for a fully specified date")
	}
	if tm.Year() != 2016 || int(tm.Month()) != 4 || tm.Day() != 1 {
		t.Errorf("Time() = %v, want 2016-04-01", tm)
	}
}

// A component that merely contains the marker counts as unspecified; the
// protocol never mixes digits and markers.
func TestParsePartialDateMixedMarker(t *testing.T) {
	d, err := ParsePartialDate("199u-05-12")
	if err != nil {
		t.Fatalf("ParsePartialDate error: %v", err)
	}
	if d.Year != Unspecified {
		t.Errorf("year = %d, want Unspecified", d.Year)
	}
}

func TestParsePartialDateWrongComponentCount(t *testing.T) {
	var pe *ParseError
	if _, err := ParsePartialDate("2008-uu"); !errors.As(err, &pe) {
		t.Errorf("error = %v, want *ParseError", err)
	}
}

func TestParsePartialDateBadComponent(t *testing.T) {
	var pe *ParseError
	if _, err := ParsePartialDate("2o16-uu-01"); !errors.As(err, &pe) {
		t.Errorf("error = %v, want *ParseError", err)
	}
}

func TestParsePartialDateEmpty(t *testing.T) {
	if _, err := ParsePartialDate(""); !errors.Is(err, ErrEmptyParameter) {
		t.Errorf("error = %v, want ErrEmptyParameter", err)
	}
}

func TestPartialDateTimeUnspecified(t *testing.T) {
	d := PartialDate{Year: 2008, Month: Unspecified, Day: Unspecified}
	if _, ok := d.Time(); ok {
		t.Error("Time() ok for a partially specified date")
	}
}
