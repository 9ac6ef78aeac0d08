// Copyright (c) 2025, The Anitya Authors.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package scheme

import (
	"regexp"

	"github.com/pombredanne/anitya/pkg/version"
)

// SchemeCalendar is the identifier of the calendar-date strategy.
const SchemeCalendar = "Calendar"

var (
	// calDottedRegex matches YYYY.MM and YYYY.MM.DD with an arbitrary
	// trailing suffix.
	calDottedRegex = regexp.MustCompile(`^([0-9]{4})\.([0-9]{1,2})(?:\.([0-9]{1,2}))?(.*)$`)
	// calCompactRegex matches YYYYMMDD with an arbitrary trailing
	// suffix, which must not start with a digit.
	calCompactRegex = regexp.MustCompile(`^([0-9]{4})([0-9]{2})([0-9]{2})([^0-9].*)?$`)
)

type calendarKey struct {
	year, month, day string
	suffix           []genericSegment
}

// Calendar orders date-stamped versions: a leading YYYY.MM[.DD] or
// YYYYMMDD token compares as a date, and any trailing suffix breaks
// ties under the generic rules. A dated version without a suffix ties
// with itself spelled dotted or compact.
type Calendar struct{}

// NewCalendar returns the calendar-date strategy.
func NewCalendar() *Calendar { return &Calendar{} }

// Name implements Strategy.
func (s *Calendar) Name() string { return SchemeCalendar }

// Parse implements Strategy.
func (s *Calendar) Parse(raw string, opts Options) (version.Version, error) {
	normalized, excluded := prepare(raw, opts)
	m := calDottedRegex.FindStringSubmatch(normalized)
	if m == nil {
		m = calCompactRegex.FindStringSubmatch(normalized)
	}
	if m == nil {
		return version.Version{}, version.NewParseError(raw, s.Name(), "no leading YYYY.MM[.DD] or YYYYMMDD date")
	}
	key := calendarKey{
		year:   m[1],
		month:  m[2],
		day:    m[3],
		suffix: splitAlnum(m[4]),
	}
	if cmpNumStr(key.month, "12") > 0 || cmpNumStr(key.month, "1") < 0 {
		return version.Version{}, version.NewParseError(raw, s.Name(), "month out of range")
	}
	if key.day != "" && (cmpNumStr(key.day, "31") > 0 || cmpNumStr(key.day, "1") < 0) {
		return version.Version{}, version.NewParseError(raw, s.Name(), "day out of range")
	}
	v := version.New(raw, normalized, s.Name(), key)
	if excluded {
		v = v.MarkExcluded()
	}
	if hasPrereleaseToken(m[4]) {
		v = v.MarkPrerelease()
	}
	return v, nil
}

// Compare implements Strategy.
func (s *Calendar) Compare(a, b version.Version) (int, error) {
	if err := guard(s.Name(), a, b); err != nil {
		return 0, err
	}
	ka := a.Key().(calendarKey)
	kb := b.Key().(calendarKey)
	if c := cmpNumStr(ka.year, kb.year); c != 0 {
		return c, nil
	}
	if c := cmpNumStr(ka.month, kb.month); c != 0 {
		return c, nil
	}
	if c := cmpNumStr(ka.day, kb.day); c != 0 {
		return c, nil
	}
	return compareGenericSegments(ka.suffix, kb.suffix), nil
}
