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

func TestHaskellOrdering(t *testing.T) {
	runOrderCases(t, NewHaskell(), []orderCase{
		{"1.1", "1.0", 1},
		{"1.0", "1.0", 0},
		{"1.10", "1.9", 1},
		{"2", "1.9.9", 1},

		// PVP: a proper prefix sorts below the longer version. This
		// is the one scheme where "1.0" and "1.0.0" differ.
		{"1.0.0", "1.0", 1},
		{"1.0.0.0", "1.0.0", 1},
	})
}

func TestHaskellParse(t *testing.T) {
	hs := NewHaskell()

	v, err := hs.Parse("0.13.2.1", Options{})
	require.NoError(t, err)
	require.Equal(t, SchemeHaskell, v.Scheme())

	for _, raw := range []string{"1.0-rc1", "1.0a", "abc", ""} {
		_, err := hs.Parse(raw, Options{})
		require.Error(t, err, "raw %q", raw)
	}
}
