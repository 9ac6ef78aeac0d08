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

func TestPythonOrdering(t *testing.T) {
	runOrderCases(t, NewPython(), []orderCase{
		{"1.1", "1.0", 1},
		{"1.0", "1.0.0", 0},
		{"1.10", "1.9", 1},

		// Phase order within one core: dev, alpha, beta, rc, final,
		// post.
		{"1.0a1", "1.0.dev1", 1},
		{"1.0b1", "1.0a2", 1},
		{"1.0rc1", "1.0b2", 1},
		{"1.0", "1.0rc1", 1},
		{"1.0.post1", "1.0", 1},
		{"1.0.post2", "1.0.post1", 1},
		{"1.0a2", "1.0a1", 1},
		{"1.0.dev2", "1.0.dev1", 1},

		// A dev release of a post release still precedes it.
		{"1.0.post1", "1.0.post1.dev2", 1},

		// Spelling variants normalize to the same phase.
		{"1.0alpha1", "1.0a1", 0},
		{"1.0-beta.2", "1.0b2", 0},
		{"1.0c1", "1.0rc1", 0},
		{"1.0-1", "1.0.post1", 0},
		{"1.0.rev2", "1.0.post2", 0},

		// Epoch dominates everything after it.
		{"1!0.5", "2.0", 1},
		{"2!1.0", "1!9.9", 1},

		// Local segments break final ties, numeric above alphanumeric.
		{"1.0+local", "1.0", 1},
		{"1.0+2", "1.0+abc", 1},
		{"1.0+abc.2", "1.0+abc.1", 1},
	})
}

func TestPythonParse(t *testing.T) {
	py := NewPython()

	tests := []struct {
		name       string
		raw        string
		prerelease bool
		wantErr    bool
	}{
		{name: "release only", raw: "1.2.3"},
		{name: "epoch", raw: "2!1.0"},
		{name: "dev", raw: "1.0.dev3", prerelease: true},
		{name: "alpha", raw: "1.0a1", prerelease: true},
		{name: "rc with separator", raw: "1.0-rc-2", prerelease: true},
		{name: "post is not a prerelease", raw: "1.0.post1"},
		{name: "local", raw: "1.0+ubuntu.1"},
		{name: "letters rejected", raw: "abc", wantErr: true},
		{name: "dangling dot rejected", raw: "1.0.", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := py.Parse(tt.raw, Options{})
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.prerelease, v.Prerelease())
		})
	}
}
