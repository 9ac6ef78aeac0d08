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

package logging

import (
	"log"
	"log/slog"
	"os"
	"strings"
)

// logLevelEnvVar controls the default verbosity when no explicit
// level is given.
const logLevelEnvVar = "LOG_LEVEL"

// SetDefaultStructuredLogger installs a JSON slog logger on stderr as
// the process default, tagged with the module name and version. The
// level comes from the LOG_LEVEL environment variable, defaulting to
// INFO.
func SetDefaultStructuredLogger(module, version string) {
	SetDefaultStructuredLoggerWithLevel(module, version, os.Getenv(logLevelEnvVar))
}

// SetDefaultStructuredLoggerWithLevel is SetDefaultStructuredLogger
// with an explicit level, overriding the environment.
func SetDefaultStructuredLoggerWithLevel(module, version, level string) {
	slog.SetDefault(NewStructuredLogger(module, version, level))
}

// NewStructuredLogger returns a JSON slog logger on stderr tagged with
// the module name and version. Debug level enables source location
// tracking. An empty or unrecognized level falls back to LOG_LEVEL,
// then to INFO.
func NewStructuredLogger(module, version, level string) *slog.Logger {
	lvl := ParseLevel(level)
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level:     lvl,
		AddSource: lvl == slog.LevelDebug,
	})
	return slog.New(handler).With(
		"module", module,
		"version", version,
	)
}

// NewLogLogger bridges the default structured logger into a standard
// library *log.Logger for dependencies that only speak log.Printf.
func NewLogLogger(level slog.Level, addSource bool) *log.Logger {
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level:     level,
		AddSource: addSource,
	})
	return slog.NewLogLogger(handler, level)
}

// ParseLevel maps a level name to its slog level, case-insensitively.
// Unknown or empty names consult LOG_LEVEL once, then default to INFO.
func ParseLevel(level string) slog.Level {
	if level == "" {
		level = os.Getenv(logLevelEnvVar)
	}
	switch strings.ToUpper(strings.TrimSpace(level)) {
	case "DEBUG":
		return slog.LevelDebug
	case "INFO":
		return slog.LevelInfo
	case "WARN", "WARNING":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	}
	return slog.LevelInfo
}
