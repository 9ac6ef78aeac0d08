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

// Package config loads the project list the checker runs against.
package config

import (
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"

	"github.com/pombredanne/anitya/pkg/errors"
)

// configPathEnvVar overrides the config file location.
const configPathEnvVar = "ANITYA_CONFIG"

// DefaultPath is the config file used when neither the flag nor
// ANITYA_CONFIG names one.
const DefaultPath = "projects.yaml"

// Project is one monitored upstream project.
type Project struct {
	// Name identifies the project in output and logs.
	Name string `json:"name" yaml:"name"`

	// Scheme is the version scheme identifier. Empty or unknown
	// identifiers fall back to the generic scheme.
	Scheme string `json:"scheme,omitempty" yaml:"scheme,omitempty"`

	// Prefix is a tag prefix stripped before parsing.
	Prefix string `json:"prefix,omitempty" yaml:"prefix,omitempty"`

	// ExcludePattern marks matching raw versions as excluded.
	ExcludePattern string `json:"exclude_pattern,omitempty" yaml:"exclude_pattern,omitempty"`

	// SkipPrereleases bars pre-releases from the newest slot.
	SkipPrereleases bool `json:"skip_prereleases,omitempty" yaml:"skip_prereleases,omitempty"`

	// Source is where the raw version list comes from: a local file
	// path or an http(s) URL. The payload may be plain lines, a JSON
	// array or a YAML list.
	Source string `json:"source" yaml:"source"`

	// Previous is the last recorded newest version, empty before the
	// first check.
	Previous string `json:"previous,omitempty" yaml:"previous,omitempty"`
}

// Config is the full checker configuration.
type Config struct {
	// Projects lists the monitored projects, checked in order unless
	// the checker runs them in parallel.
	Projects []Project `json:"projects" yaml:"projects"`

	// Workers caps the parallel checks; zero means the default.
	Workers int `json:"workers,omitempty" yaml:"workers,omitempty"`
}

// ResolvePath picks the config file path: the explicit flag value,
// then ANITYA_CONFIG, then DefaultPath.
func ResolvePath(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	if env := os.Getenv(configPathEnvVar); env != "" {
		return env
	}
	return DefaultPath
}

// Load reads and validates a config file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidRequest,
			fmt.Sprintf("failed to read config %s", path), err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidRequest,
			fmt.Sprintf("failed to parse config %s", path), err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the config for caller mistakes that would otherwise
// surface mid-run: missing names or sources, duplicate names and
// exclusion patterns that do not compile.
func (c *Config) Validate() error {
	if len(c.Projects) == 0 {
		return errors.New(errors.ErrCodeInvalidRequest, "config has no projects")
	}
	if c.Workers < 0 {
		return errors.New(errors.ErrCodeInvalidRequest, "workers must not be negative")
	}

	seen := map[string]bool{}
	for i, p := range c.Projects {
		if p.Name == "" {
			return errors.NewWithContext(errors.ErrCodeInvalidRequest,
				"project has no name", map[string]any{"index": i})
		}
		if seen[p.Name] {
			return errors.NewWithContext(errors.ErrCodeInvalidRequest,
				"duplicate project name", map[string]any{"project": p.Name})
		}
		seen[p.Name] = true

		if p.Source == "" {
			return errors.NewWithContext(errors.ErrCodeInvalidRequest,
				"project has no version source", map[string]any{"project": p.Name})
		}
		if p.ExcludePattern != "" {
			if _, err := regexp.Compile(p.ExcludePattern); err != nil {
				return errors.WrapWithContext(errors.ErrCodeInvalidRequest,
					"invalid exclusion pattern", err, map[string]any{
						"project": p.Name,
						"pattern": p.ExcludePattern,
					})
			}
		}
	}
	return nil
}
