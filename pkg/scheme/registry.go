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
	"sort"
	"sync"

	"github.com/pombredanne/anitya/pkg/errors"
)

// Registry resolves scheme identifiers to strategies. Lookup is a
// case-sensitive exact match against a table fixed at construction;
// an identifier the table does not carry resolves to the generic
// fallback with known reported false, never to an error. Callers may
// extend the table with Register until the first Resolve, after which
// it is read-only.
type Registry struct {
	mu         sync.RWMutex
	strategies map[string]Strategy
	frozen     bool
	freeze     sync.Once
}

// NewRegistry returns a registry preloaded with every built-in
// strategy under its canonical name plus the common short aliases.
func NewRegistry() *Registry {
	r := &Registry{strategies: map[string]Strategy{}}

	add := func(s Strategy, aliases ...string) {
		r.strategies[s.Name()] = s
		for _, a := range aliases {
			r.strategies[a] = s
		}
	}
	add(NewGeneric())
	add(NewRPM(), "RPM")
	add(NewDebian(), "debian", "dpkg")
	add(NewSemantic(), "semantic", "semver")
	add(NewPython(), "Python", "python", "pep440", "PEP440")
	add(NewPerl(), "perl", "cpan", "CPAN")
	add(NewHaskell(), "haskell", "hackage")
	add(NewGentoo(), "gentoo", "ebuild")
	add(NewCalendar(), "calendar", "calver", "date")
	return r
}

// Register adds a strategy under the given identifier. It fails once
// the registry has served its first Resolve.
func (r *Registry) Register(identifier string, s Strategy) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.frozen {
		return errors.New(errors.ErrCodeInvalidRequest,
			fmt.Sprintf("registry is frozen, cannot register scheme %q", identifier))
	}
	if _, exists := r.strategies[identifier]; exists {
		return errors.New(errors.ErrCodeInvalidRequest,
			fmt.Sprintf("scheme %q is already registered", identifier))
	}
	r.strategies[identifier] = s
	return nil
}

// Resolve returns the strategy for identifier. The second return
// reports whether the identifier was known; when false the generic
// fallback is returned and the caller should surface an advisory.
func (r *Registry) Resolve(identifier string) (Strategy, bool) {
	// Freeze pays the write lock once; later calls stay read-only.
	r.freeze.Do(func() {
		r.mu.Lock()
		r.frozen = true
		r.mu.Unlock()
	})

	r.mu.RLock()
	defer r.mu.RUnlock()
	if s, ok := r.strategies[identifier]; ok {
		return s, true
	}
	return r.strategies[SchemeGeneric], false
}

// Names returns the sorted canonical strategy names, without aliases.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	seen := map[string]bool{}
	var names []string
	for _, s := range r.strategies {
		if !seen[s.Name()] {
			seen[s.Name()] = true
			names = append(names, s.Name())
		}
	}
	sort.Strings(names)
	return names
}

var (
	defaultRegistry     *Registry
	defaultRegistryOnce sync.Once
)

// Default returns the process-wide registry shared by the CLI and the
// daemon.
func Default() *Registry {
	defaultRegistryOnce.Do(func() {
		defaultRegistry = NewRegistry()
	})
	return defaultRegistry
}
