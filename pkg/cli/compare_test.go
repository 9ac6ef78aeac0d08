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

package cli

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCompare(t *testing.T, args ...string) compareReport {
	t.Helper()
	out := filepath.Join(t.TempDir(), "report.json")
	full := append([]string{"compare", "--output", out}, args...)
	require.NoError(t, compareCmd().Run(context.Background(), full))

	data, err := os.ReadFile(out)
	require.NoError(t, err)

	var rep compareReport
	require.NoError(t, json.Unmarshal(data, &rep))
	return rep
}

func TestCompareRPMTilde(t *testing.T) {
	rep := runCompare(t, "--scheme", "rpm", "1.0~rc1", "1.0")

	assert.Equal(t, "rpm", rep.Scheme)
	assert.Equal(t, -1, rep.Result)
	assert.Equal(t, "older", rep.Relation)
}

func TestCompareDebianEpoch(t *testing.T) {
	rep := runCompare(t, "--scheme", "Debian", "1:1.0", "2.0")

	assert.Equal(t, 1, rep.Result)
	assert.Equal(t, "newer", rep.Relation)
}

func TestCompareEqualWithPrefix(t *testing.T) {
	rep := runCompare(t, "--scheme", "semver", "--prefix", "v", "v1.2.3", "1.2.3")

	assert.Equal(t, 0, rep.Result)
	assert.Equal(t, "equal", rep.Relation)
}

func TestCompareUnknownSchemeAdvisory(t *testing.T) {
	rep := runCompare(t, "--scheme", "no-such-scheme", "1.0", "1.1")

	assert.Equal(t, "generic", rep.Scheme)
	assert.NotEmpty(t, rep.SchemeAdvisory)
	assert.Equal(t, -1, rep.Result)
}

func TestCompareEmptySchemeNoAdvisory(t *testing.T) {
	rep := runCompare(t, "1.0", "1.1")

	assert.Equal(t, "generic", rep.Scheme)
	assert.Empty(t, rep.SchemeAdvisory)
}

func TestCompareRequiresTwoArgs(t *testing.T) {
	err := compareCmd().Run(context.Background(), []string{"compare", "1.0"})
	assert.Error(t, err)
}

func TestCompareRejectsUnparseable(t *testing.T) {
	err := compareCmd().Run(context.Background(),
		[]string{"compare", "--scheme", "semver", "1.2.3", "not-a-version"})
	assert.Error(t, err)
}

func TestRelation(t *testing.T) {
	assert.Equal(t, "older", relation(-1))
	assert.Equal(t, "equal", relation(0))
	assert.Equal(t, "newer", relation(1))
}
