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

package checker

import (
	"time"

	"github.com/pombredanne/anitya/pkg/release"
)

// ParseFailure is one raw string the scheme could not tokenize.
type ParseFailure struct {
	Raw    string `json:"raw" yaml:"raw"`
	Reason string `json:"reason" yaml:"reason"`
}

// ProjectReport is the result of checking one project.
type ProjectReport struct {
	Project string `json:"project" yaml:"project"`

	// Scheme is the canonical scheme that was applied.
	Scheme string `json:"scheme" yaml:"scheme"`

	// SchemeAdvisory is set when the configured scheme identifier was
	// unknown and the generic fallback was applied.
	SchemeAdvisory string `json:"scheme_advisory,omitempty" yaml:"scheme_advisory,omitempty"`

	Outcome  release.Outcome `json:"outcome,omitempty" yaml:"outcome,omitempty"`
	Previous string          `json:"previous,omitempty" yaml:"previous,omitempty"`
	Latest   string          `json:"latest,omitempty" yaml:"latest,omitempty"`

	// History is the ordered raw version history, newest first.
	History []string `json:"history,omitempty" yaml:"history,omitempty"`

	// Excluded lists the raw versions retained in History but barred
	// from the newest slot.
	Excluded []string `json:"excluded,omitempty" yaml:"excluded,omitempty"`

	Failures []ParseFailure `json:"parse_failures,omitempty" yaml:"parse_failures,omitempty"`

	// Error is set when the check itself failed, e.g. the version
	// source was unreachable. Mutually exclusive with Outcome.
	Error string `json:"error,omitempty" yaml:"error,omitempty"`

	Duration time.Duration `json:"duration_ns" yaml:"duration_ns"`
}

// RunReport is the result of one check run across all projects.
type RunReport struct {
	// ID uniquely identifies the run in logs and output.
	ID string `json:"id" yaml:"id"`

	Started  time.Time     `json:"started" yaml:"started"`
	Duration time.Duration `json:"duration_ns" yaml:"duration_ns"`

	Projects []ProjectReport `json:"projects" yaml:"projects"`

	// Advanced counts projects whose newest version moved forward.
	Advanced int `json:"advanced" yaml:"advanced"`
	// Regressed counts projects whose newest version moved backward.
	Regressed int `json:"regressed" yaml:"regressed"`
	// Errors counts projects whose check failed outright.
	Errors int `json:"errors" yaml:"errors"`
}
