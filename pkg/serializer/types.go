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

// Package serializer reads and writes check data in JSON, YAML and
// table form.
//
// Usage:
//
//	w := serializer.NewWriter(serializer.FormatYAML, os.Stdout)
//	defer w.Close()
//	if err := w.Serialize(ctx, report); err != nil {
//		log.Fatal(err)
//	}
//
// For HTTP responses:
//
//	serializer.RespondJSON(w, http.StatusOK, report)
package serializer

import (
	"context"
	"log/slog"
	"strings"
)

// Serializer writes a value in some output format. The context is for
// cancellation on implementations that perform slow I/O.
type Serializer interface {
	Serialize(ctx context.Context, v any) error
}

// Closer is implemented by serializers holding releasable resources,
// typically file handles.
type Closer interface {
	Close() error
}

// Format is an output format.
type Format string

const (
	// FormatJSON is machine-readable indented JSON.
	FormatJSON Format = "json"
	// FormatYAML is human-readable YAML.
	FormatYAML Format = "yaml"
	// FormatTable is tabular output with flattened field names.
	// Write-only.
	FormatTable Format = "table"
)

// IsUnknown reports whether f is not one of the supported formats.
func (f Format) IsUnknown() bool {
	switch f {
	case FormatJSON, FormatYAML, FormatTable:
		return false
	}
	return true
}

// SupportedFormats lists the formats accepted by the CLI flags.
func SupportedFormats() []string {
	return []string{string(FormatJSON), string(FormatYAML), string(FormatTable)}
}

// FormatFromPath picks a format from a file extension,
// case-insensitively. Unknown extensions default to JSON.
func FormatFromPath(path string) Format {
	lower := strings.ToLower(path)
	switch {
	case strings.HasSuffix(lower, ".json"):
		return FormatJSON
	case strings.HasSuffix(lower, ".yaml"), strings.HasSuffix(lower, ".yml"):
		return FormatYAML
	case strings.HasSuffix(lower, ".table"), strings.HasSuffix(lower, ".txt"):
		return FormatTable
	}
	slog.Warn("unknown file extension, defaulting to JSON", "path", path)
	return FormatJSON
}
