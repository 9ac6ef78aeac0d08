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

// SchemeSemantic is the identifier of the Semantic Versioning strategy.
const SchemeSemantic = "Semantic"

// semverRegex matches strict MAJOR.MINOR.PATCH with an optional
// pre-release identifier ("-beta.1") and optional build metadata
// ("+build.123"). It captures:
//  1. Major version
//  2. Minor version
//  3. Patch version
//  4. (optional) Pre-release identifier
//  5. (optional) Build metadata
var semverRegex = regexp.MustCompile(
	`^([0-9]+)\.([0-9]+)\.([0-9]+)` +
		`(?:-([0-9A-Za-z\-]+(?:\.[0-9A-Za-z\-]+)*))?` +
		`(?:\+([0-9A-Za-z\-]+(?:\.[0-9A-Za-z\-]+)*))?$`,
)

type semanticKey struct {
	major, minor, patch string
	prerelease          []string
	build               string
}

// Semantic implements Semantic Versioning 2.0.0 precedence. Build
// metadata is parsed and retained but never participates in
// comparison, so "1.0.0+a" and "1.0.0+b" are equal.
type Semantic struct{}

// NewSemantic returns the Semantic Versioning strategy.
func NewSemantic() *Semantic { return &Semantic{} }

// Name implements Strategy.
func (s *Semantic) Name() string { return SchemeSemantic }

// Parse implements Strategy.
func (s *Semantic) Parse(raw string, opts Options) (version.Version, error) {
	normalized, excluded := prepare(raw, opts)
	m := semverRegex.FindStringSubmatch(normalized)
	if m == nil {
		return version.Version{}, version.NewParseError(raw, s.Name(), "not MAJOR.MINOR.PATCH[-prerelease][+build]")
	}
	key := semanticKey{major: m[1], minor: m[2], patch: m[3], build: m[5]}
	if m[4] != "" {
		key.prerelease = strings.Split(m[4], ".")
	}
	v := version.New(raw, normalized, s.Name(), key)
	if excluded {
		v = v.MarkExcluded()
	}
	if len(key.prerelease) > 0 {
		v = v.MarkPrerelease()
	}
	return v, nil
}

// Compare implements Strategy.
func (s *Semantic) Compare(a, b version.Version) (int, error) {
	if err := guard(s.Name(), a, b); err != nil {
		return 0, err
	}
	ka := a.Key().(semanticKey)
	kb := b.Key().(semanticKey)
	if c := cmpNumStr(ka.major, kb.major); c != 0 {
		return c, nil
	}
	if c := cmpNumStr(ka.minor, kb.minor); c != 0 {
		return c, nil
	}
	if c := cmpNumStr(ka.patch, kb.patch); c != 0 {
		return c, nil
	}
	return compareSemverPrerelease(ka.prerelease, kb.prerelease), nil
}

// compareSemverPrerelease applies the SemVer 2.0.0 rules: a release
// outranks any pre-release of the same core, numeric fields compare
// numerically and sort below alphanumeric fields, and when every
// shared field ties the longer identifier list wins.
func compareSemverPrerelease(a, b []string) int {
	switch {
	case len(a) == 0 && len(b) == 0:
		return 0
	case len(a) == 0:
		return 1
	case len(b) == 0:
		return -1
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
			return -1
		case bNum:
			return 1
		default:
			if c := strings.Compare(fa, fb); c != 0 {
				return c
			}
		}
	}
	return cmpInt(len(a), len(b))
}

func isNumericField(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !isDigit(s[i]) {
			return false
		}
	}
	return true
}
