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

// SchemeDebian is the identifier of the Debian strategy.
const SchemeDebian = "Debian"

type debianKey struct {
	epoch string
	rest  string
}

// Debian splits an optional "N:" epoch like RPM does, then compares
// the remainder character-class by character-class: digit runs
// numerically, everything else through a fixed character-order table
// where a tilde sorts below letters, letters sort below the end of the
// string, and remaining punctuation sorts above it.
type Debian struct{}

// NewDebian returns the Debian strategy.
func NewDebian() *Debian { return &Debian{} }

// Name implements Strategy.
func (s *Debian) Name() string { return SchemeDebian }

// Parse implements Strategy.
func (s *Debian) Parse(raw string, opts Options) (version.Version, error) {
	normalized, excluded := prepare(raw, opts)
	epoch, rest := splitEpoch(normalized)
	if !hasAlnum(rest) {
		return version.Version{}, version.NewParseError(raw, s.Name(), "no alphanumeric content after epoch")
	}
	v := version.New(raw, normalized, s.Name(), debianKey{epoch: epoch, rest: rest})
	if excluded {
		v = v.MarkExcluded()
	}
	if strings.ContainsRune(rest, '~') || hasPrereleaseToken(rest) {
		v = v.MarkPrerelease()
	}
	return v, nil
}

// Compare implements Strategy.
func (s *Debian) Compare(a, b version.Version) (int, error) {
	if err := guard(s.Name(), a, b); err != nil {
		return 0, err
	}
	ka := a.Key().(debianKey)
	kb := b.Key().(debianKey)
	if c := cmpNumStr(ka.epoch, kb.epoch); c != 0 {
		return c, nil
	}
	return debvercmp(ka.rest, kb.rest), nil
}

// debOrder ranks a single non-digit character. An exhausted string
// compares as rank zero, which places letters below it and the
// remaining punctuation above it. Digits never reach this table.
func debOrder(c byte) int {
	switch {
	case c == '~':
		return -1000
	case isAlpha(c):
		return int(c) - 256
	}
	return int(c) + 256
}

// debvercmp alternates between a non-digit phase, resolved through
// debOrder, and a digit phase compared as a number with leading zeros
// ignored.
func debvercmp(a, b string) int {
	ia, ib := 0, 0
	for ia < len(a) || ib < len(b) {
		for (ia < len(a) && !isDigit(a[ia])) || (ib < len(b) && !isDigit(b[ib])) {
			ra, rb := 0, 0
			if ia < len(a) && !isDigit(a[ia]) {
				ra = debOrder(a[ia])
				ia++
			}
			if ib < len(b) && !isDigit(b[ib]) {
				rb = debOrder(b[ib])
				ib++
			}
			if ra != rb {
				return cmpInt(ra, rb)
			}
			if ra == 0 {
				// Both sides are at a digit or exhausted.
				break
			}
		}
		if ia >= len(a) && ib >= len(b) {
			break
		}
		var ra, rb string
		ra, ia = takeRun(a, ia, isDigit)
		rb, ib = takeRun(b, ib, isDigit)
		if c := cmpNumStr(ra, rb); c != 0 {
			return c
		}
	}
	return 0
}
