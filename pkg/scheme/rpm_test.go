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

func TestRPMOrdering(t *testing.T) {
	runOrderCases(t, NewRPM(), []orderCase{
		{"1.1", "1.0", 1},
		{"1.0", "1.0", 0},
		{"1.10", "1.9", 1},

		// Leading zeros in digit runs are insignificant.
		{"1.01", "1.1", 0},
		{"1.001", "1.1", 0},

		// More segments win when the shared ones tie.
		{"1.0.1", "1.0", 1},
		{"1.0a", "1.0", 1},
		{"1.0.rc1", "1.0", 1},

		// A tilde sorts below everything, including nothing at all.
		{"1.0", "1.0~rc1", 1},
		{"1.0~rc2", "1.0~rc1", 1},
		{"1.0~~", "1.0~", -1},
		{"1.0~rc1", "1.0~rc1", 0},

		// Epoch dominates the rest of the version.
		{"2:1.0", "1.9", 1},
		{"2:0.1", "1:9.9", 1},
		{"0:1.0", "1.0", 0},

		// Digit runs beat letter runs at the same position.
		{"1.2", "1.a", 1},

		// Separator choice is irrelevant.
		{"1.0.1", "1.0-1", 0},
	})
}

func TestRPMNewestFromSpecExample(t *testing.T) {
	rpm := NewRPM()

	raws := []string{"1.0", "1.0~rc1", "2:1.0"}
	newest := mustParse(t, rpm, raws[0])
	for _, raw := range raws[1:] {
		v := mustParse(t, rpm, raw)
		c, err := rpm.Compare(v, newest)
		require.NoError(t, err)
		if c > 0 {
			newest = v
		}
	}
	require.Equal(t, "2:1.0", newest.Raw())
}

func TestRPMParse(t *testing.T) {
	rpm := NewRPM()

	tests := []struct {
		name       string
		raw        string
		prerelease bool
		wantErr    bool
	}{
		{name: "plain", raw: "1.0"},
		{name: "epoch", raw: "3:2.4.1"},
		{name: "tilde is a prerelease", raw: "1.0~rc1", prerelease: true},
		{name: "rc token is a prerelease", raw: "1.0.rc1", prerelease: true},
		{name: "epoch only", raw: "2:", wantErr: true},
		{name: "punctuation only", raw: "..~", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := rpm.Parse(tt.raw, Options{})
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.prerelease, v.Prerelease())
		})
	}
}
