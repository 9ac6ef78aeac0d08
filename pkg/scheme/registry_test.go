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
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryResolve(t *testing.T) {
	r := NewRegistry()

	tests := []struct {
		identifier string
		wantName   string
		wantKnown  bool
	}{
		{identifier: "generic", wantName: SchemeGeneric, wantKnown: true},
		{identifier: "rpm", wantName: SchemeRPM, wantKnown: true},
		{identifier: "RPM", wantName: SchemeRPM, wantKnown: true},
		{identifier: "Debian", wantName: SchemeDebian, wantKnown: true},
		{identifier: "semver", wantName: SchemeSemantic, wantKnown: true},
		{identifier: "pep440", wantName: SchemePython, wantKnown: true},
		{identifier: "Python (PEP 440)", wantName: SchemePython, wantKnown: true},
		{identifier: "cpan", wantName: SchemePerl, wantKnown: true},
		{identifier: "hackage", wantName: SchemeHaskell, wantKnown: true},
		{identifier: "ebuild", wantName: SchemeGentoo, wantKnown: true},
		{identifier: "calver", wantName: SchemeCalendar, wantKnown: true},

		// Unknown identifiers fall back to generic with an advisory.
		{identifier: "no-such-ecosystem", wantName: SchemeGeneric, wantKnown: false},
		{identifier: "", wantName: SchemeGeneric, wantKnown: false},

		// Matching is case-sensitive exact match.
		{identifier: "SEMVER", wantName: SchemeGeneric, wantKnown: false},
	}

	for _, tt := range tests {
		t.Run("resolve_"+tt.identifier, func(t *testing.T) {
			s, known := r.Resolve(tt.identifier)
			require.NotNil(t, s)
			assert.Equal(t, tt.wantName, s.Name())
			assert.Equal(t, tt.wantKnown, known)
		})
	}
}

func TestRegistryFreezesOnFirstResolve(t *testing.T) {
	r := NewRegistry()

	err := r.Register("custom", NewGeneric())
	require.NoError(t, err)

	s, known := r.Resolve("custom")
	require.True(t, known)
	require.Equal(t, SchemeGeneric, s.Name())

	err = r.Register("too-late", NewGeneric())
	require.Error(t, err)
}

func TestRegistryConcurrentResolve(t *testing.T) {
	r := NewRegistry()

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for _, id := range []string{"rpm", "semver", "no-such-ecosystem"} {
				s, _ := r.Resolve(id)
				assert.NotNil(t, s)
			}
		}()
	}
	wg.Wait()

	// The first Resolve froze the table, no matter which goroutine won.
	err := r.Register("too-late", NewGeneric())
	require.Error(t, err)
}

func TestRegistryRejectsDuplicates(t *testing.T) {
	r := NewRegistry()
	err := r.Register("rpm", NewGeneric())
	require.Error(t, err)
}

func TestRegistryNames(t *testing.T) {
	names := NewRegistry().Names()
	require.Len(t, names, 9)
	assert.Contains(t, names, SchemeGeneric)
	assert.Contains(t, names, SchemeRPM)
	assert.Contains(t, names, SchemeCalendar)
}
