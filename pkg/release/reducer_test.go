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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pombredanne/anitya/pkg/scheme"
)

func newTestReducer() *Reducer {
	return NewReducer(scheme.NewRegistry())
}

func rawHistory(red *Reduction) []string {
	out := make([]string, 0, len(red.History))
	for _, v := range red.History {
		out = append(out, v.Raw())
	}
	return out
}

func TestReduceRPMEpochAndTilde(t *testing.T) {
	red, err := newTestReducer().Reduce(Request{
		Versions: []string{"1.0", "1.0~rc1", "2:1.0"},
		Scheme:   "rpm",
	})
	require.NoError(t, err)
	require.True(t, red.KnownScheme)
	require.NotNil(t, red.Newest)

	assert.Equal(t, "2:1.0", red.Newest.Raw())
	assert.Equal(t, []string{"2:1.0", "1.0", "1.0~rc1"}, rawHistory(red))
	assert.Empty(t, red.Failures)
}

func TestReduceSemanticBuildMetadataStability(t *testing.T) {
	red, err := newTestReducer().Reduce(Request{
		Versions: []string{"1.2.3", "1.2.3-beta.1", "1.2.3+build5"},
		Scheme:   "semver",
	})
	require.NoError(t, err)
	require.NotNil(t, red.Newest)

	// "1.2.3" and "1.2.3+build5" tie; the first-seen entry stays on
	// top and becomes newest.
	assert.Equal(t, []string{"1.2.3", "1.2.3+build5", "1.2.3-beta.1"}, rawHistory(red))
	assert.Equal(t, "1.2.3", red.Newest.Raw())
}

func TestReducePrefixStripping(t *testing.T) {
	red, err := newTestReducer().Reduce(Request{
		Versions: []string{"release-1.0", "release-1.1", "2.0"},
		Scheme:   "generic",
		Prefix:   "release-",
	})
	require.NoError(t, err)
	require.NotNil(t, red.Newest)

	assert.Equal(t, "2.0", red.Newest.Raw())
	assert.Equal(t, []string{"2.0", "release-1.1", "release-1.0"}, rawHistory(red))
	assert.Equal(t, "1.1", red.History[1].Normalized())
}

func TestReduceUnknownSchemeAdvisory(t *testing.T) {
	red, err := newTestReducer().Reduce(Request{
		Versions: []string{"1.0", "1.1"},
		Scheme:   "no-such-ecosystem",
	})
	require.NoError(t, err)
	require.NotNil(t, red.Newest)

	assert.False(t, red.KnownScheme)
	assert.Equal(t, scheme.SchemeGeneric, red.Scheme)
	assert.Equal(t, "1.1", red.Newest.Raw())
}

func TestReduceCollectsParseFailures(t *testing.T) {
	red, err := newTestReducer().Reduce(Request{
		Versions: []string{"1.0", "abc", "1.1"},
		Scheme:   "cpan",
	})
	require.NoError(t, err)
	require.NotNil(t, red.Newest)

	assert.Equal(t, []string{"1.1", "1.0"}, rawHistory(red))
	assert.Equal(t, "1.1", red.Newest.Raw())
	require.Len(t, red.Failures, 1)
	assert.Equal(t, "abc", red.Failures[0].Raw)
}

func TestReduceExclusionRetainedButNeverNewest(t *testing.T) {
	red, err := newTestReducer().Reduce(Request{
		Versions:       []string{"1.0", "2.0-beta", "1.5"},
		Scheme:         "generic",
		ExcludePattern: `-beta$`,
	})
	require.NoError(t, err)
	require.NotNil(t, red.Newest)

	// The excluded entry still sorts into the history.
	assert.Equal(t, []string{"2.0-beta", "1.5", "1.0"}, rawHistory(red))
	assert.Equal(t, "1.5", red.Newest.Raw())
	assert.True(t, red.History[0].Excluded())
}

func TestReduceAllExcluded(t *testing.T) {
	red, err := newTestReducer().Reduce(Request{
		Versions:       []string{"1.0", "1.1"},
		Scheme:         "generic",
		ExcludePattern: `.`,
	})
	require.NoError(t, err)
	assert.Nil(t, red.Newest)
	assert.Len(t, red.History, 2)
}

func TestReduceSkipPrereleases(t *testing.T) {
	red, err := newTestReducer().Reduce(Request{
		Versions:        []string{"1.0.0", "1.1.0-rc.1"},
		Scheme:          "semver",
		SkipPrereleases: true,
	})
	require.NoError(t, err)
	require.NotNil(t, red.Newest)

	assert.Equal(t, []string{"1.1.0-rc.1", "1.0.0"}, rawHistory(red))
	assert.Equal(t, "1.0.0", red.Newest.Raw())
}

func TestReduceInvalidExclusionPattern(t *testing.T) {
	_, err := newTestReducer().Reduce(Request{
		Versions:       []string{"1.0"},
		Scheme:         "generic",
		ExcludePattern: `(`,
	})
	require.Error(t, err)
}

func TestReduceIsDeterministic(t *testing.T) {
	req := Request{
		Versions: []string{"1.0", "1.0.0", "0.9", "1.0-0"},
		Scheme:   "generic",
	}
	r := newTestReducer()

	first, err := r.Reduce(req)
	require.NoError(t, err)
	second, err := r.Reduce(req)
	require.NoError(t, err)

	assert.Equal(t, rawHistory(first), rawHistory(second))
	assert.Equal(t, first.Newest.Raw(), second.Newest.Raw())
}
