// Copyright Lingora SDK Authors
// SPDX-License-Identifier: Apache-2.0

package params

import (
	"fmt"
	"time"
)

// Unspecified marks a PartialDate component the service could not resolve.
// It is distinct from an absent parameter: the service knows a date was
// mentioned but not all of its parts.
const Unspecified = -1

// PartialDate is a calendar date where any of year, month or day may be
// individually unknown. The service encodes unknown components as a run of
// 'u' characters filling the component's field width (e.g. "uuuu-04-01").
type PartialDate struct {
	Year  int
	Month int
	Day   int
}

// NewPartialDate builds a fully specified PartialDate from t.
func NewPartialDate(t time.Time) PartialDate {
	return PartialDate{
		Year:  t.Year(),
		Month: int(t.Month()),
		Day:   t.Day(),
	}
}

// Time converts the date to a time.Time at midnight UTC. It returns false
// when any component is Unspecified.
func (d PartialDate) Time() (time.Time, bool) {
	if d.Year == Unspecified || d.Month == Unspecified || d.Day == Unspecified {
		return time.Time{}, false
	}
	return time.Date(d.Year, time.Month(d.Month), d.Day, 0, 0, 0, 0, time.UTC), true
}

// String renders the wire form "yyyy-MM-dd", substituting "uuuu" or "uu"
// for unspecified components. Parsing the result with ParsePartialDate
// yields the same value.
func (d PartialDate) String() string {
	return fmt.Sprintf("%s-%s-%s",
		formatComponent(d.Year, 4),
		formatComponent(d.Month, 2),
		formatComponent(d.Day, 2))
}

func formatComponent(v, width int) string {
	if v == Unspecified {
		s := make([]byte, width)
		for i := range s {
			s[i] = 'u'
		}
		return string(s)
	}
	return fmt.Sprintf("%0*d", width, v)
}
