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
	"strings"

	"github.com/pombredanne/anitya/pkg/version"
)

// SchemeGeneric is the identifier of the default strategy every
// unknown scheme falls back to.
const SchemeGeneric = "generic"

// genericSegment is one digit run or one letter run. Exactly one of
// num and alpha is populated; num holds the run as a decimal string so
// arbitrarily long components stay exact.
type genericSegment struct {
	num   string
	alpha string
}

type genericKey struct {
	segments []genericSegment
}

// Generic splits a version on non-alphanumeric boundaries and on
// digit/letter transitions, then compares segment by segment. Numeric
// segments compare numerically, alphabetic ones lexicographically, and
// a numeric segment outranks an alphabetic one at the same position.
// Missing trailing segments pad as numeric zero, so "1.0" equals
// "1.0.0" and outranks "1.0rc1".
type Generic struct{}

// NewGeneric returns the fallback strategy.
func NewGeneric() *Generic { return &Generic{} }

// Name implements Strategy.
func (s *Generic) Name() string { return SchemeGeneric }

// Parse implements Strategy. The generic grammar accepts any string
// containing at least one alphanumeric character.
func (s *Generic) Parse(raw string, opts Options) (version.Version, error) {
	normalized, excluded := prepare(raw, opts)
	segments := splitAlnum(normalized)
	if len(segments) == 0 {
		return version.Version{}, version.NewParseError(raw, s.Name(), "no alphanumeric content")
	}
	v := version.New(raw, normalized, s.Name(), genericKey{segments: segments})
	if excluded {
		v = v.MarkExcluded()
	}
	if hasPrereleaseToken(normalized) {
		v = v.MarkPrerelease()
	}
	return v, nil
}

// Compare implements Strategy.
func (s *Generic) Compare(a, b version.Version) (int, error) {
	if err := guard(s.Name(), a, b); err != nil {
		return 0, err
	}
	ka := a.Key().(genericKey)
	kb := b.Key().(genericKey)
	return compareGenericSegments(ka.segments, kb.segments), nil
}

// splitAlnum tokenizes s into digit runs and letter runs, discarding
// every separator character.
func splitAlnum(s string) []genericSegment {
	var out []genericSegment
	i := 0
	for i < len(s) {
		c := s[i]
		switch {
		case isDigit(c):
			j := i
			for j < len(s) && isDigit(s[j]) {
				j++
			}
			out = append(out, genericSegment{num: s[i:j]})
			i = j
		case isAlpha(c):
			j := i
			for j < len(s) && isAlpha(s[j]) {
				j++
			}
			out = append(out, genericSegment{alpha: strings.ToLower(s[i:j])})
			i = j
		default:
			i++
		}
	}
	return out
}

// zeroSegment pads the shorter side. Numeric zero outranks any
// alphabetic segment, which makes "1.0" newer than "1.0rc1".
var zeroSegment = genericSegment{num: "0"}

func compareGenericSegments(a, b []genericSegment) int {
	n := len(a)
	if len(b) > n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		sa, sb := zeroSegment, zeroSegment
		if i < len(a) {
			sa = a[i]
		}
		if i < len(b) {
			sb = b[i]
		}
		if c := compareGenericSegment(sa, sb); c != 0 {
			return c
		}
	}
	return 0
}

func compareGenericSegment(a, b genericSegment) int {
	aNum := a.alpha == ""
	bNum := b.alpha == ""
	switch {
	case aNum && bNum:
		return cmpNumStr(a.num, b.num)
	case aNum:
		return 1
	case bNum:
		return -1
	}
	return strings.Compare(a.alpha, b.alpha)
}
