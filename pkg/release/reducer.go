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

package release

import (
	stderrors "errors"
	"fmt"
	"regexp"
	"sort"

	"github.com/pombredanne/anitya/pkg/errors"
	"github.com/pombredanne/anitya/pkg/scheme"
	"github.com/pombredanne/anitya/pkg/version"
)

// Request describes one candidate-set reduction: the raw version
// strings fetched from upstream plus the project's parsing
// configuration.
type Request struct {
	// Versions are the raw version strings, in fetch order.
	Versions []string `json:"versions" yaml:"versions"`

	// Scheme is the scheme identifier to resolve. Unknown identifiers
	// fall back to generic, reported through Reduction.KnownScheme.
	Scheme string `json:"scheme" yaml:"scheme"`

	// Prefix is an optional tag prefix to strip, e.g. "release-".
	Prefix string `json:"prefix,omitempty" yaml:"prefix,omitempty"`

	// ExcludePattern is an optional regular expression; matching raw
	// strings stay in the history but are never selected as newest.
	ExcludePattern string `json:"exclude_pattern,omitempty" yaml:"exclude_pattern,omitempty"`

	// SkipPrereleases additionally bars pre-release versions from the
	// newest slot.
	SkipPrereleases bool `json:"skip_prereleases,omitempty" yaml:"skip_prereleases,omitempty"`
}

// Reduction is the outcome of reducing one candidate set.
type Reduction struct {
	// Scheme is the canonical name of the strategy that was applied.
	Scheme string

	// KnownScheme is false when the requested identifier was not in
	// the registry and the generic fallback was applied. An advisory,
	// not an error.
	KnownScheme bool

	// History holds every successfully parsed version, sorted strictly
	// descending. Entries with equal precedence keep their input
	// order. Excluded entries are present.
	History []version.Version

	// Newest points at the first selectable entry of History, nil
	// when every entry is excluded or the history is empty.
	Newest *version.Version

	// Failures collects the entries the strategy could not parse.
	Failures []*version.ParseError

	strategy scheme.Strategy
}

// Strategy returns the strategy that produced this reduction, for
// follow-up comparisons against the same scheme.
func (r *Reduction) Strategy() scheme.Strategy { return r.strategy }

// Reducer turns raw candidate sets into ordered histories. It is
// stateless apart from the registry it resolves schemes against and
// safe for concurrent use across independent projects.
type Reducer struct {
	registry *scheme.Registry
}

// NewReducer returns a Reducer resolving against the given registry.
func NewReducer(registry *scheme.Registry) *Reducer {
	return &Reducer{registry: registry}
}

// Reduce parses every raw version independently, collects parse
// failures without aborting, sorts the survivors descending and
// selects the newest selectable entry. The only error condition is an
// invalid exclusion pattern, which is caller configuration, not
// upstream data.
func (r *Reducer) Reduce(req Request) (*Reduction, error) {
	strategy, known := r.registry.Resolve(req.Scheme)

	opts := scheme.Options{Prefix: req.Prefix}
	if req.ExcludePattern != "" {
		re, err := regexp.Compile(req.ExcludePattern)
		if err != nil {
			return nil, errors.WrapWithContext(errors.ErrCodeInvalidRequest,
				fmt.Sprintf("invalid exclusion pattern %q", req.ExcludePattern),
				err, map[string]any{"scheme": req.Scheme})
		}
		opts.Exclude = re
	}

	red := &Reduction{
		Scheme:      strategy.Name(),
		KnownScheme: known,
		strategy:    strategy,
	}

	for _, raw := range req.Versions {
		v, err := strategy.Parse(raw, opts)
		if err != nil {
			var perr *version.ParseError
			if stderrors.As(err, &perr) {
				red.Failures = append(red.Failures, perr)
				continue
			}
			return nil, err
		}
		red.History = append(red.History, v)
	}

	// Everything in History came from one strategy, so Compare cannot
	// fail; the stable sort keeps first-seen entries on top of ties.
	sort.SliceStable(red.History, func(i, j int) bool {
		c, _ := strategy.Compare(red.History[i], red.History[j])
		return c > 0
	})

	for i := range red.History {
		v := &red.History[i]
		if v.Excluded() {
			continue
		}
		if req.SkipPrereleases && v.Prerelease() {
			continue
		}
		red.Newest = v
		break
	}
	return red, nil
}
