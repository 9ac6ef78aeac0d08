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
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Reader deserializes structured data from JSON or YAML sources.
// Close must be called on readers that own a file handle; it is
// idempotent and a no-op otherwise.
type Reader struct {
	format Format
	input  io.Reader
	closer io.Closer
}

// NewReader returns a Reader for the given format. Table data is
// write-only and rejected here.
func NewReader(format Format, input io.Reader) (*Reader, error) {
	if format.IsUnknown() {
		return nil, fmt.Errorf("unknown format: %s", format)
	}
	if format == FormatTable {
		return nil, fmt.Errorf("table format does not support deserialization")
	}
	r := &Reader{format: format, input: input}
	if c, ok := input.(io.Closer); ok {
		r.closer = c
	}
	return r, nil
}

// NewFileReaderAuto opens path and picks the format from its
// extension.
func NewFileReaderAuto(path string) (*Reader, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	r, err := NewReader(FormatFromPath(path), file)
	if err != nil {
		file.Close()
		return nil, err
	}
	return r, nil
}

// Deserialize decodes the source into v.
func (r *Reader) Deserialize(v any) error {
	switch r.format {
	case FormatJSON:
		if err := json.NewDecoder(r.input).Decode(v); err != nil {
			return fmt.Errorf("failed to deserialize JSON: %w", err)
		}
		return nil
	case FormatYAML:
		if err := yaml.NewDecoder(r.input).Decode(v); err != nil {
			return fmt.Errorf("failed to deserialize YAML: %w", err)
		}
		return nil
	}
	return fmt.Errorf("unsupported format: %s", r.format)
}

// Close releases the underlying file handle, if any.
func (r *Reader) Close() error {
	if r.closer != nil {
		err := r.closer.Close()
		r.closer = nil
		return err
	}
	return nil
}

// ReadVersionList extracts raw version strings from data. Three
// layouts are accepted: a JSON array of strings, a YAML list of
// strings, and plain text with one version per line where blank lines
// and #-comments are skipped. The layout is sniffed from the content,
// so upstream endpoints can serve whichever they have.
func ReadVersionList(data []byte) ([]string, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, nil
	}

	if trimmed[0] == '[' {
		var versions []string
		if err := json.Unmarshal(trimmed, &versions); err != nil {
			return nil, fmt.Errorf("failed to parse JSON version list: %w", err)
		}
		return versions, nil
	}

	if trimmed[0] == '-' {
		var versions []string
		if err := yaml.Unmarshal(trimmed, &versions); err != nil {
			return nil, fmt.Errorf("failed to parse YAML version list: %w", err)
		}
		return versions, nil
	}

	var versions []string
	scanner := bufio.NewScanner(bytes.NewReader(trimmed))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		versions = append(versions, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to scan version list: %w", err)
	}
	return versions, nil
}

// ReadVersionListFile reads a version list from a local file.
func ReadVersionListFile(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return ReadVersionList(data)
}
