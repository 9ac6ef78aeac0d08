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

// SchemePython is the identifier of the PEP 440 strategy.
const SchemePython = "Python (PEP 440)"

// pythonRegex is the PEP 440 version grammar: an optional "N!" epoch,
// a dotted numeric release, then optional pre-release, post-release,
// dev-release and local segments in that order.
var pythonRegex = regexp.MustCompile(`(?i)^` +
	`(?:(?P<epoch>[0-9]+)!)?` +
	`(?P<release>[0-9]+(?:\.[0-9]+)*)` +
	`(?:[-_.]?(?P<preL>a|b|c|rc|alpha|beta|pre|preview)[-_.]?(?P<preN>[0-9]+)?)?` +
	`(?P<post>(?:-(?P<postN1>[0-9]+))|(?:[-_.]?(?:post|rev|r)[-_.]?(?P<postN2>[0-9]+)?))?` +
	`(?P<dev>[-_.]?dev[-_.]?(?P<devN>[0-9]+)?)?` +
	`(?:\+(?P<local>[a-z0-9]+(?:[-_.][a-z0-9]+)*))?` +
	`$`)

// Phase ranks for the pre-release slot. A dev-only version sorts
// before every pre-release of the same core, and a final or
// post-release sorts after all of them.
const (
	pyPhaseDevOnly = -1
	pyPhaseAlpha   = 0
	pyPhaseBeta    = 1
	pyPhaseRC      = 2
	pyPhaseFinal   = 3
)

type pythonKey struct {
	epoch   string
	release []string

	phase string // "", "a", "b" or "rc"
	preN  string

	hasPost bool
	postN   string

	hasDev bool
	devN   string

	local []string
}

// Python implements PEP 440 ordering: "N!" epochs dominate, release
// components pad with zeros, and within one core the order is dev,
// then a/b/rc pre-releases, then the final release, then post
// releases. Local segments break remaining ties with numeric fields
// outranking alphanumeric ones.
type Python struct{}

// NewPython returns the PEP 440 strategy.
func NewPython() *Python { return &Python{} }

// Name implements Strategy.
func (s *Python) Name() string { return SchemePython }

// Parse implements Strategy.
func (s *Python) Parse(raw string, opts Options) (version.Version, error) {
	normalized, excluded := prepare(raw, opts)
	m := pythonRegex.FindStringSubmatch(normalized)
	if m == nil {
		return version.Version{}, version.NewParseError(raw, s.Name(), "not a PEP 440 version")
	}
	sub := func(name string) string {
		return m[pythonRegex.SubexpIndex(name)]
	}
	key := pythonKey{
		epoch:   sub("epoch"),
		release: strings.Split(sub("release"), "."),
	}
	if l := sub("preL"); l != "" {
		key.phase = canonicalPrePhase(l)
		key.preN = sub("preN")
	}
	if sub("post") != "" {
		key.hasPost = true
		if n := sub("postN1"); n != "" {
			key.postN = n
		} else {
			key.postN = sub("postN2")
		}
	}
	if sub("dev") != "" {
		key.hasDev = true
		key.devN = sub("devN")
	}
	if l := sub("local"); l != "" {
		key.local = strings.FieldsFunc(strings.ToLower(l), func(r rune) bool {
			return r == '-' || r == '_' || r == '.'
		})
	}
	v := version.New(raw, normalized, s.Name(), key)
	if excluded {
		v = v.MarkExcluded()
	}
	if key.phase != "" || key.hasDev {
		v = v.MarkPrerelease()
	}
	return v, nil
}

func canonicalPrePhase(letter string) string {
	switch strings.ToLower(letter) {
	case "a", "alpha":
		return "a"
	case "b", "beta":
		return "b"
	default: // c, rc, pre, preview
		return "rc"
	}
}

// Compare implements Strategy.
func (s *Python) Compare(a, b version.Version) (int, error) {
	if err := guard(s.Name(), a, b); err != nil {
		return 0, err
	}
	ka := a.Key().(pythonKey)
	kb := b.Key().(pythonKey)
	if c := cmpNumStr(ka.epoch, kb.epoch); c != 0 {
		return c, nil
	}
	if c := comparePaddedRelease(ka.release, kb.release); c != 0 {
		return c, nil
	}
	if c := cmpInt(pyPhase(ka), pyPhase(kb)); c != 0 {
		return c, nil
	}
	if c := cmpNumStr(ka.preN, kb.preN); c != 0 {
		return c, nil
	}
	// Post releases: absent sorts below any present post number.
	if c := cmpBool(ka.hasPost, kb.hasPost); c != 0 {
		return c, nil
	}
	if c := cmpNumStr(ka.postN, kb.postN); c != 0 {
		return c, nil
	}
	// Dev releases: absent sorts above any present dev number.
	if c := cmpBool(kb.hasDev, ka.hasDev); c != 0 {
		return c, nil
	}
	if c := cmpNumStr(ka.devN, kb.devN); c != 0 {
		return c, nil
	}
	return comparePythonLocal(ka.local, kb.local), nil
}

func cmpBool(a, b bool) int {
	switch {
	case a == b:
		return 0
	case a:
		return 1
	}
	return -1
}

func pyPhase(k pythonKey) int {
	switch k.phase {
	case "a":
		return pyPhaseAlpha
	case "b":
		return pyPhaseBeta
	case "rc":
		return pyPhaseRC
	}
	if k.hasDev && !k.hasPost {
		return pyPhaseDevOnly
	}
	return pyPhaseFinal
}

func comparePaddedRelease(a, b []string) int {
	n := len(a)
	if len(b) > n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		var sa, sb string
		if i < len(a) {
			sa = a[i]
		}
		if i < len(b) {
			sb = b[i]
		}
		if c := cmpNumStr(sa, sb); c != 0 {
			return c
		}
	}
	return 0
}

// comparePythonLocal orders local segments field by field. A version
// with a local part outranks the same version without one, and a
// numeric field outranks an alphanumeric field at the same position.
func comparePythonLocal(a, b []string) int {
	switch {
	case len(a) == 0 && len(b) == 0:
		return 0
	case len(a) == 0:
		return -1
	case len(b) == 0:
		return 1
	}
	for i := 0; i < len(a) && i < len(b); i++ {
		fa, fb := a[i], b[i]
		aNum := isNumericField(fa)
		bNum := isNumericField(fb)
		switch {
		case aNum && bNum:
			if c := cmpNumStr(fa, fb); c != 0 {
				return c
			}
		case aNum:
			return 1
		case bNum:
			return -1
		default:
			if c := strings.Compare(fa, fb); c != 0 {
				return c
			}
		}
	}
	return cmpInt(len(a), len(b))
}
