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

// SchemeHaskell is the identifier of the Haskell/Hackage strategy.
const SchemeHaskell = "Haskell (Hackage)"

var haskellRegex = regexp.MustCompile(`^[0-9]+(?:\.[0-9]+)*$`)

type haskellKey struct {
	components []string
}

// Haskell implements Hackage PVP ordering: strictly dotted numeric
// versions compared component by component, where a version that is a
// proper prefix of another sorts below it, so "1.0" precedes "1.0.0".
// This deliberately differs from the zero-padding rule of the generic
// scheme.
type Haskell struct{}

// NewHaskell returns the Haskell/Hackage strategy.
func NewHaskell() *Haskell { return &Haskell{} }

// Name implements Strategy.
func (s *Haskell) Name() string { return SchemeHaskell }

// Parse implements Strategy.
func (s *Haskell) Parse(raw string, opts Options) (version.Version, error) {
	normalized, excluded := prepare(raw, opts)
	if !haskellRegex.MatchString(normalized) {
		return version.Version{}, version.NewParseError(raw, s.Name(), "not a dotted numeric PVP version")
	}
	key := haskellKey{components: strings.Split(normalized, ".")}
	v := version.New(raw, normalized, s.Name(), key)
	if excluded {
		v = v.MarkExcluded()
	}
	return v, nil
}

// Compare implements Strategy.
func (s *Haskell) Compare(a, b version.Version) (int, error) {
	if err := guard(s.Name(), a, b); err != nil {
		return 0, err
	}
	ka := a.Key().(haskellKey)
	kb := b.Key().(haskellKey)
	for i := 0; i < len(ka.components) && i < len(kb.components); i++ {
		if c := cmpNumStr(ka.components[i], kb.components[i]); c != 0 {
			return c, nil
		}
	}
	return cmpInt(len(ka.components), len(kb.components)), nil
}
