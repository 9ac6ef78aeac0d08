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

package serializer

import (
	"bytes"
	"context"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

type checkReport struct {
	Project string   `json:"project" yaml:"project"`
	Scheme  string   `json:"scheme" yaml:"scheme"`
	Latest  string   `json:"latest" yaml:"latest"`
	History []string `json:"history" yaml:"history"`
}

func sampleReport() checkReport {
	return checkReport{
		Project: "curl",
		Scheme:  "rpm",
		Latest:  "8.5.0",
		History: []string{"8.5.0", "8.4.0"},
	}
}

func TestWriterJSON(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(FormatJSON, &buf)
	require.NoError(t, w.Serialize(context.Background(), sampleReport()))

	var got checkReport
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, sampleReport(), got)
}

func TestWriterYAML(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(FormatYAML, &buf)
	require.NoError(t, w.Serialize(context.Background(), sampleReport()))

	var got checkReport
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, sampleReport(), got)
}

func TestWriterTable(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(FormatTable, &buf)
	require.NoError(t, w.Serialize(context.Background(), sampleReport()))

	out := buf.String()
	assert.Contains(t, out, "FIELD")
	assert.Contains(t, out, "Project")
	assert.Contains(t, out, "curl")
	assert.Contains(t, out, "History.[0]")
}

func TestWriterTableEmpty(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(FormatTable, &buf)
	require.NoError(t, w.Serialize(context.Background(), struct{}{}))
	assert.Contains(t, buf.String(), "<empty>")
}

func TestWriterUnknownFormatDefaultsToJSON(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(Format("xml"), &buf)
	require.NoError(t, w.Serialize(context.Background(), sampleReport()))
	assert.True(t, strings.HasPrefix(strings.TrimSpace(buf.String()), "{"))
}

func TestNewFileWriterOrStdout(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.json")
	w := NewFileWriterOrStdout(FormatJSON, path)
	require.NoError(t, w.Serialize(context.Background(), sampleReport()))
	require.NoError(t, w.Close())

	r, err := NewFileReaderAuto(path)
	require.NoError(t, err)
	defer r.Close()

	var got checkReport
	require.NoError(t, r.Deserialize(&got))
	assert.Equal(t, sampleReport(), got)
}

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		path string
		want Format
	}{
		{"report.json", FormatJSON},
		{"report.yaml", FormatYAML},
		{"report.YML", FormatYAML},
		{"report.txt", FormatTable},
		{"report.xml", FormatJSON},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatFromPath(tt.path), tt.path)
	}
}
