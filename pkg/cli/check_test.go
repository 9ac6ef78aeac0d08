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
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pombredanne/anitya/pkg/checker"
	"github.com/pombredanne/anitya/pkg/release"
)

func TestCheckCommand(t *testing.T) {
	dir := t.TempDir()

	versions := filepath.Join(dir, "versions.txt")
	require.NoError(t, os.WriteFile(versions, []byte("1.0\n1.0~rc1\n2:1.0\n"), 0o644))

	cfgPath := filepath.Join(dir, "projects.yaml")
	cfgYAML := fmt.Sprintf(`projects:
  - name: curl
    scheme: rpm
    source: %s
    previous: "1.0"
`, versions)
	require.NoError(t, os.WriteFile(cfgPath, []byte(cfgYAML), 0o644))

	out := filepath.Join(dir, "report.json")
	err := checkCmd().Run(context.Background(),
		[]string{"check", "--config", cfgPath, "--output", out})
	require.NoError(t, err)

	data, err := os.ReadFile(out)
	require.NoError(t, err)

	var report checker.RunReport
	require.NoError(t, json.Unmarshal(data, &report))
	require.Len(t, report.Projects, 1)
	assert.Equal(t, release.OutcomeAdvanced, report.Projects[0].Outcome)
	assert.Equal(t, "2:1.0", report.Projects[0].Latest)
	assert.Equal(t, 1, report.Advanced)
}

func TestCheckCommandFailsOnProjectError(t *testing.T) {
	dir := t.TempDir()

	cfgPath := filepath.Join(dir, "projects.yaml")
	cfgYAML := fmt.Sprintf(`projects:
  - name: broken
    source: %s
`, filepath.Join(dir, "absent.txt"))
	require.NoError(t, os.WriteFile(cfgPath, []byte(cfgYAML), 0o644))

	err := checkCmd().Run(context.Background(),
		[]string{"check", "--config", cfgPath, "--output", filepath.Join(dir, "report.json")})
	assert.Error(t, err)
}

func TestCheckCommandMissingConfig(t *testing.T) {
	err := checkCmd().Run(context.Background(),
		[]string{"check", "--config", filepath.Join(t.TempDir(), "nope.yaml")})
	assert.Error(t, err)
}
