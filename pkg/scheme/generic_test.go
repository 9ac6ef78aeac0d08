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
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGenericOrdering(t *testing.T) {
	runOrderCases(t, NewGeneric(), []orderCase{
		{"1.1", "1.0", 1},
		{"1.0", "1.0", 0},
		{"1.10", "1.9", 1},
		{"2.0", "1.99.99", 1},

		// Zero padding: the shorter tuple extends with zeros.
		{"1.0", "1.0.0", 0},
		{"1.0.1", "1.0", 1},

		// A numeric segment outranks an alphabetic one, which puts
		// pre-release suffixes below the plain release.
		{"1.0", "1.0rc1", 1},
		{"1.0", "1.0a", 1},
		{"1.0rc2", "1.0rc1", 1},
		{"1.0beta", "1.0alpha", 1},

		// Separators only delimit, they never order.
		{"1-0", "1.0", 0},
		{"1_0", "1.0", 0},

		// Case folds before lexicographic comparison.
		{"1.0B", "1.0a", 1},

		// Huge components stay exact.
		{"1.18446744073709551616", "1.18446744073709551615", 1},
	})
}

func TestGenericParse(t *testing.T) {
	gen := NewGeneric()

	tests := []struct {
		name       string
		raw        string
		prefix     string
		normalized string
		prerelease bool
		wantErr    bool
	}{
		{name: "plain", raw: "1.0", normalized: "1.0"},
		{name: "v prefix dropped", raw: "v2.3", normalized: "2.3"},
		{name: "custom prefix", raw: "release-1.1", prefix: "release-", normalized: "1.1"},
		{name: "prefix absent", raw: "2.0", prefix: "release-", normalized: "2.0"},
		{name: "rc marks prerelease", raw: "1.0-rc1", normalized: "1.0-rc1", prerelease: true},
		{name: "dev marks prerelease", raw: "1.0.dev3", normalized: "1.0.dev3", prerelease: true},
		{name: "rc inside a word does not", raw: "1.0-march", normalized: "1.0-march"},
		{name: "no alphanumeric content", raw: "---", wantErr: true},
		{name: "empty", raw: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := gen.Parse(tt.raw, Options{Prefix: tt.prefix})
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.raw, v.Raw())
			require.Equal(t, tt.normalized, v.Normalized())
			require.Equal(t, SchemeGeneric, v.Scheme())
			require.Equal(t, tt.prerelease, v.Prerelease())
		})
	}
}
