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
	"fmt"
	"regexp"
	"strings"

	"github.com/pombredanne/anitya/pkg/errors"
	"github.com/pombredanne/anitya/pkg/version"
)

// Strategy is a single version-scheme implementation. A strategy owns
// parsing raw strings into version.Version objects and ordering the
// objects it produced. Strategies are stateless and safe for
// concurrent use.
type Strategy interface {
	// Name returns the canonical scheme identifier, e.g. "rpm".
	Name() string

	// Parse tokenizes raw into a Version. The returned Version carries
	// the strategy's name as its scheme and an opaque precedence key
	// understood only by this strategy. A grammar failure is reported
	// as *version.ParseError.
	Parse(raw string, opts Options) (version.Version, error)

	// Compare orders two Versions produced by this strategy:
	// negative when a < b, zero when equal, positive when a > b.
	// Versions from a different scheme are rejected with a
	// CROSS_SCHEME_COMPARISON error.
	Compare(a, b version.Version) (int, error)
}

// Options carries the per-project parsing configuration shared by all
// strategies. The zero value is valid and means no prefix and no
// exclusion pattern.
type Options struct {
	// Prefix is a tag prefix to strip before parsing, e.g. "release-".
	Prefix string

	// Exclude, when non-nil, marks matching versions as excluded.
	// The pattern is evaluated against the raw string before any
	// prefix stripping or normalization.
	Exclude *regexp.Regexp
}

// prepare applies the shared pre-parse steps: exclusion matching on the
// untouched raw string, then prefix and leading-v stripping.
func prepare(raw string, opts Options) (normalized string, excluded bool) {
	if opts.Exclude != nil && opts.Exclude.MatchString(raw) {
		excluded = true
	}
	return version.StripPrefix(raw, opts.Prefix), excluded
}

// guard rejects comparisons between Versions of different schemes, and
// between Versions not produced by the calling strategy.
func guard(name string, a, b version.Version) error {
	if a.Scheme() == name && b.Scheme() == name {
		return nil
	}
	return errors.NewWithContext(
		errors.ErrCodeCrossScheme,
		fmt.Sprintf("cannot compare %s version with %s version under scheme %s",
			a.Scheme(), b.Scheme(), name),
		map[string]any{
			"left":   a.Raw(),
			"right":  b.Raw(),
			"scheme": name,
		},
	)
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func isAlpha(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

// cmpNumStr compares two non-negative integers given as decimal
// strings without converting them, so arbitrarily long components
// never overflow. Empty strings count as zero.
func cmpNumStr(a, b string) int {
	a = strings.TrimLeft(a, "0")
	b = strings.TrimLeft(b, "0")
	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	}
	return strings.Compare(a, b)
}

func cmpInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// prereleaseTokens are the markers shared by the generic family of
// schemes. A token match anywhere in the lowered version flags the
// whole version as a pre-release.
var prereleaseTokens = []string{"alpha", "beta", "rc", "pre", "dev"}

func hasPrereleaseToken(s string) bool {
	low := strings.ToLower(s)
	for _, tok := range prereleaseTokens {
		idx := strings.Index(low, tok)
		for idx >= 0 {
			// A token embedded in a longer alphabetic run (e.g. the
			// "rc" in "march") is not a marker.
			before := idx - 1
			after := idx + len(tok)
			leftOK := before < 0 || !isAlpha(low[before])
			rightOK := after >= len(low) || !isAlpha(low[after])
			if leftOK && rightOK {
				return true
			}
			next := strings.Index(low[idx+1:], tok)
			if next < 0 {
				break
			}
			idx += 1 + next
		}
	}
	return false
}
