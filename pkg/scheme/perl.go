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

// SchemePerl is the identifier of the Perl/CPAN strategy.
const SchemePerl = "Perl (CPAN)"

// perlRegex accepts strictly numeric CPAN versions: dot-separated
// digit groups with an optional trailing "_NN" developer marker.
// Anything containing letters or other punctuation is a grammar
// failure, not a low-sorting value.
var perlRegex = regexp.MustCompile(`^[0-9]+(?:\.[0-9]+)*(?:_[0-9]+)?$`)

type perlKey struct {
	components []string
}

// Perl implements CPAN version semantics. A decimal version with a
// single fractional part expands by grouping the fraction into
// three-digit components, so "1.002003" equals "v1.2.3" and "5.6"
// equals "v5.600". Dotted-decimal forms with two or more dots compare
// component by component directly. An "_NN" suffix marks a developer
// release; the underscore is dropped before numeric interpretation,
// the way version.pm reads "1.2_01" as 1.201.
type Perl struct{}

// NewPerl returns the Perl/CPAN strategy.
func NewPerl() *Perl { return &Perl{} }

// Name implements Strategy.
func (s *Perl) Name() string { return SchemePerl }

// Parse implements Strategy.
func (s *Perl) Parse(raw string, opts Options) (version.Version, error) {
	normalized, excluded := prepare(raw, opts)
	if !perlRegex.MatchString(normalized) {
		return version.Version{}, version.NewParseError(raw, s.Name(), "not a numeric CPAN version")
	}
	dev := strings.ContainsRune(normalized, '_')
	numeric := strings.ReplaceAll(normalized, "_", "")
	parts := strings.Split(numeric, ".")
	var components []string
	if len(parts) == 2 {
		components = append([]string{parts[0]}, groupPerlFraction(parts[1])...)
	} else {
		components = parts
	}
	v := version.New(raw, normalized, s.Name(), perlKey{components: components})
	if excluded {
		v = v.MarkExcluded()
	}
	if dev {
		v = v.MarkPrerelease()
	}
	return v, nil
}

// groupPerlFraction splits a decimal fraction into three-digit
// components, right-padding the final group with zeros: "002003"
// yields ["002", "003"] and "6" yields ["600"].
func groupPerlFraction(fraction string) []string {
	var groups []string
	for i := 0; i < len(fraction); i += 3 {
		end := i + 3
		if end > len(fraction) {
			end = len(fraction)
		}
		g := fraction[i:end]
		for len(g) < 3 {
			g += "0"
		}
		groups = append(groups, g)
	}
	return groups
}

// Compare implements Strategy.
func (s *Perl) Compare(a, b version.Version) (int, error) {
	if err := guard(s.Name(), a, b); err != nil {
		return 0, err
	}
	ka := a.Key().(perlKey)
	kb := b.Key().(perlKey)
	return comparePaddedRelease(ka.components, kb.components), nil
}
