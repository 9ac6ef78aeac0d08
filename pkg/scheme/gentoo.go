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
	"strings"

	"github.com/pombredanne/anitya/pkg/version"
)

// SchemeGentoo is the identifier of the Gentoo ebuild strategy.
const SchemeGentoo = "Gentoo (ebuild)"

// gentooRegex is the ebuild version grammar: dotted numbers, an
// optional single trailing letter, a chain of _suffix markers and an
// optional -rN revision.
var gentooRegex = regexp.MustCompile(
	`^([0-9]+(?:\.[0-9]+)*)([a-z])?((?:_(?:alpha|beta|pre|rc|p)[0-9]*)*)(?:-r([0-9]+))?$`)

// Suffix ranks. The bare version sits between _rc and _p.
const (
	gentooAlpha = iota
	gentooBeta
	gentooPre
	gentooRC
	gentooBase
	gentooPatch
)

var gentooSuffixRank = map[string]int{
	"alpha": gentooAlpha,
	"beta":  gentooBeta,
	"pre":   gentooPre,
	"rc":    gentooRC,
	"p":     gentooPatch,
}

type gentooSuffix struct {
	rank int
	num  string
}

type gentooKey struct {
	components []string
	letter     string
	suffixes   []gentooSuffix
	revision   string
}

// Gentoo implements ebuild version ordering: dotted numbers compare
// numerically with missing components padding as zero, a trailing
// letter outranks its absence, _alpha/_beta/_pre/_rc sort below the
// bare version and _p above it, and -rN revisions break final ties.
type Gentoo struct{}

// NewGentoo returns the Gentoo ebuild strategy.
func NewGentoo() *Gentoo { return &Gentoo{} }

// Name implements Strategy.
func (s *Gentoo) Name() string { return SchemeGentoo }

// Parse implements Strategy.
func (s *Gentoo) Parse(raw string, opts Options) (version.Version, error) {
	normalized, excluded := prepare(raw, opts)
	m := gentooRegex.FindStringSubmatch(normalized)
	if m == nil {
		return version.Version{}, version.NewParseError(raw, s.Name(), "not an ebuild version")
	}
	key := gentooKey{
		components: strings.Split(m[1], "."),
		letter:     m[2],
		revision:   m[4],
	}
	prerelease := false
	for _, part := range strings.Split(m[3], "_") {
		if part == "" {
			continue
		}
		name := strings.TrimRight(part, "0123456789")
		suf := gentooSuffix{rank: gentooSuffixRank[name], num: part[len(name):]}
		if suf.rank < gentooBase {
			prerelease = true
		}
		key.suffixes = append(key.suffixes, suf)
	}
	v := version.New(raw, normalized, s.Name(), key)
	if excluded {
		v = v.MarkExcluded()
	}
	if prerelease {
		v = v.MarkPrerelease()
	}
	return v, nil
}

// Compare implements Strategy.
func (s *Gentoo) Compare(a, b version.Version) (int, error) {
	if err := guard(s.Name(), a, b); err != nil {
		return 0, err
	}
	ka := a.Key().(gentooKey)
	kb := b.Key().(gentooKey)
	if c := comparePaddedRelease(ka.components, kb.components); c != 0 {
		return c, nil
	}
	if c := strings.Compare(ka.letter, kb.letter); c != 0 {
		return c, nil
	}
	if c := compareGentooSuffixes(ka.suffixes, kb.suffixes); c != 0 {
		return c, nil
	}
	return cmpNumStr(ka.revision, kb.revision), nil
}

// compareGentooSuffixes walks both suffix chains; an exhausted chain
// continues as the bare-version rank, which keeps "1.0" above
// "1.0_rc1" and below "1.0_p1".
func compareGentooSuffixes(a, b []gentooSuffix) int {
	n := len(a)
	if len(b) > n {
		n = len(b)
	}
	base := gentooSuffix{rank: gentooBase}
	for i := 0; i < n; i++ {
		sa, sb := base, base
		if i < len(a) {
			sa = a[i]
		}
		if i < len(b) {
			sb = b[i]
		}
		if c := cmpInt(sa.rank, sb.rank); c != 0 {
			return c
		}
		if c := cmpNumStr(sa.num, sb.num); c != 0 {
			return c
		}
	}
	return 0
}
