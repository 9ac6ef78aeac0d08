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

package version

import (
	"fmt"
	"strings"
)

// Version is an immutable parsed representation of a single upstream
// version string. It carries the exact raw string as fetched, the
// normalized form produced by the owning scheme strategy, and an opaque
// precedence key used only for ordering within the same scheme.
//
// Versions are constructed by scheme strategies via New and never
// mutated afterwards. Two Versions are comparable only when they share
// the same scheme identifier; comparison across schemes is a caller
// bug, not an implicit fallback.
type Version struct {
	raw        string
	normalized string
	scheme     string
	excluded   bool
	prerelease bool
	key        any
}

// New constructs a Version. The key is the strategy-specific precedence
// key; it is never serialized and never compared across schemes.
func New(raw, normalized, scheme string, key any) Version {
	return Version{
		raw:        raw,
		normalized: normalized,
		scheme:     scheme,
		key:        key,
	}
}

// Raw returns the version string exactly as fetched.
func (v Version) Raw() string { return v.raw }

// Normalized returns the raw string after prefix stripping and
// scheme-specific normalization.
func (v Version) Normalized() string { return v.normalized }

// Scheme returns the identifier of the strategy that produced this object.
func (v Version) Scheme() string { return v.scheme }

// Key returns the strategy-specific precedence key. It is opaque to
// everything except the strategy that produced it.
func (v Version) Key() any { return v.key }

// Excluded reports whether the caller-supplied exclusion pattern
// matched the raw string. Excluded versions are retained in history but
// skipped by every selection operation.
func (v Version) Excluded() bool { return v.excluded }

// Prerelease reports whether the owning strategy classified this
// version as a pre-release (alpha, beta, rc, dev and similar markers)
// per its ecosystem convention.
func (v Version) Prerelease() bool { return v.prerelease }

// MarkExcluded returns a copy of v flagged as excluded.
func (v Version) MarkExcluded() Version {
	v.excluded = true
	return v
}

// MarkPrerelease returns a copy of v flagged as a pre-release.
func (v Version) MarkPrerelease() Version {
	v.prerelease = true
	return v
}

// SameScheme reports whether v and o were produced by the same strategy.
func (v Version) SameScheme(o Version) bool { return v.scheme == o.scheme }

// String implements fmt.Stringer using the normalized form.
func (v Version) String() string { return v.normalized }

// StripPrefix removes the caller-configured tag prefix from raw, when
// present. Absence of the prefix is not a failure: not every tag in a
// release history necessarily carries it. Any leading "v" directly
// followed by a digit is also dropped, since the plain and v-prefixed
// spellings of the same tag are equivalent in every supported scheme.
func StripPrefix(raw, prefix string) string {
	s := strings.TrimSpace(raw)
	if prefix != "" {
		p := strings.TrimSpace(prefix)
		if trimmed, ok := strings.CutPrefix(s, p); ok {
			s = strings.TrimSpace(trimmed)
		}
	}
	if len(s) > 1 && s[0] == 'v' && s[1] >= '0' && s[1] <= '9' {
		s = s[1:]
	}
	return s
}

// ParseError reports a single raw string that the resolved strategy
// could not tokenize at all. It is non-fatal: batch operations collect
// ParseErrors and continue with the remaining entries.
type ParseError struct {
	// Raw is the offending version string exactly as fetched.
	Raw string
	// Scheme is the identifier of the strategy that rejected it.
	Scheme string
	// Reason is a human-readable description of the grammar failure.
	Reason string
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("cannot parse %q as %s version: %s", e.Raw, e.Scheme, e.Reason)
}

// NewParseError constructs a ParseError for the given raw string.
func NewParseError(raw, scheme, reason string) *ParseError {
	return &ParseError{Raw: raw, Scheme: scheme, Reason: reason}
}
