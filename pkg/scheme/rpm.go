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

// SchemeRPM is the identifier of the RPM strategy.
const SchemeRPM = "rpm"

type rpmKey struct {
	epoch string
	rest  string
}

// RPM orders versions the way rpmvercmp does: an optional "N:" epoch
// dominates everything after it, digit runs compare numerically,
// letter runs lexicographically, and a tilde sorts below anything
// including the end of the string, so "1.0~rc1" precedes "1.0".
type RPM struct{}

// NewRPM returns the RPM strategy.
func NewRPM() *RPM { return &RPM{} }

// Name implements Strategy.
func (s *RPM) Name() string { return SchemeRPM }

// Parse implements Strategy.
func (s *RPM) Parse(raw string, opts Options) (version.Version, error) {
	normalized, excluded := prepare(raw, opts)
	epoch, rest := splitEpoch(normalized)
	if !hasAlnum(rest) {
		return version.Version{}, version.NewParseError(raw, s.Name(), "no alphanumeric content after epoch")
	}
	v := version.New(raw, normalized, s.Name(), rpmKey{epoch: epoch, rest: rest})
	if excluded {
		v = v.MarkExcluded()
	}
	if strings.ContainsRune(rest, '~') || hasPrereleaseToken(rest) {
		v = v.MarkPrerelease()
	}
	return v, nil
}

// Compare implements Strategy.
func (s *RPM) Compare(a, b version.Version) (int, error) {
	if err := guard(s.Name(), a, b); err != nil {
		return 0, err
	}
	ka := a.Key().(rpmKey)
	kb := b.Key().(rpmKey)
	if c := cmpNumStr(ka.epoch, kb.epoch); c != 0 {
		return c, nil
	}
	return rpmvercmp(ka.rest, kb.rest), nil
}

// splitEpoch cuts a leading all-digit "N:" prefix. Anything else,
// including an empty "N", leaves the string intact with epoch zero.
func splitEpoch(s string) (epoch, rest string) {
	idx := strings.IndexByte(s, ':')
	if idx <= 0 {
		return "", s
	}
	for i := 0; i < idx; i++ {
		if !isDigit(s[i]) {
			return "", s
		}
	}
	return s[:idx], s[idx+1:]
}

func hasAlnum(s string) bool {
	for i := 0; i < len(s); i++ {
		if isDigit(s[i]) || isAlpha(s[i]) {
			return true
		}
	}
	return false
}

// rpmvercmp walks both strings run by run. Separators are skipped, a
// tilde loses to everything else including exhaustion, a digit run
// beats a letter run at the same position, and when the shared runs
// tie the side with content left over wins.
func rpmvercmp(a, b string) int {
	ia, ib := 0, 0
	for ia < len(a) || ib < len(b) {
		for ia < len(a) && !isDigit(a[ia]) && !isAlpha(a[ia]) && a[ia] != '~' {
			ia++
		}
		for ib < len(b) && !isDigit(b[ib]) && !isAlpha(b[ib]) && b[ib] != '~' {
			ib++
		}
		aTilde := ia < len(a) && a[ia] == '~'
		bTilde := ib < len(b) && b[ib] == '~'
		if aTilde || bTilde {
			if !bTilde {
				return -1
			}
			if !aTilde {
				return 1
			}
			ia++
			ib++
			continue
		}
		if ia >= len(a) || ib >= len(b) {
			break
		}

		isNum := isDigit(a[ia])
		var ra, rb string
		if isNum {
			ra, ia = takeRun(a, ia, isDigit)
			rb, ib = takeRun(b, ib, isDigit)
		} else {
			ra, ia = takeRun(a, ia, isAlpha)
			rb, ib = takeRun(b, ib, isAlpha)
		}
		if rb == "" {
			// Mismatched run types; the numeric side is newer.
			if isNum {
				return 1
			}
			return -1
		}
		var c int
		if isNum {
			c = cmpNumStr(ra, rb)
		} else {
			c = strings.Compare(ra, rb)
		}
		if c != 0 {
			return c
		}
	}
	switch {
	case ia < len(a):
		return 1
	case ib < len(b):
		return -1
	}
	return 0
}

func takeRun(s string, i int, class func(byte) bool) (run string, next int) {
	j := i
	for j < len(s) && class(s[j]) {
		j++
	}
	return s[i:j], j
}
