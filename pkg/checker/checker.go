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

// Package checker runs version checks for configured projects: fetch
// the raw version list, reduce it to an ordered history and detect
// movement against the recorded previous version.
package checker

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/pombredanne/anitya/pkg/config"
	"github.com/pombredanne/anitya/pkg/defaults"
	"github.com/pombredanne/anitya/pkg/release"
	"github.com/pombredanne/anitya/pkg/scheme"
	"github.com/pombredanne/anitya/pkg/serializer"
)

// Checker coordinates parallel project checks. Projects are
// independent, so one slow or broken upstream never affects the rest
// of the run.
type Checker struct {
	// Registry resolves scheme identifiers. If nil, a fresh registry
	// with the built-in strategies is used.
	Registry *scheme.Registry

	// HTTP fetches version lists for http(s) sources. If nil, a
	// default reader with the shared timeouts is used.
	HTTP *serializer.HTTPReader

	// Serializer receives the finished RunReport. If nil, the report
	// is only returned.
	Serializer serializer.Serializer

	// Workers caps concurrent project checks; zero means
	// defaults.CheckWorkers.
	Workers int
}

// Run checks every project in cfg and returns the aggregated report.
// Individual project failures land in their ProjectReport; Run only
// errors when the run as a whole cannot proceed.
func (c *Checker) Run(ctx context.Context, cfg *config.Config) (*RunReport, error) {
	registry := c.Registry
	if registry == nil {
		registry = scheme.NewRegistry()
	}
	httpReader := c.HTTP
	if httpReader == nil {
		httpReader = serializer.NewHTTPReader()
	}
	workers := c.Workers
	if workers == 0 {
		workers = cfg.Workers
	}
	if workers <= 0 {
		workers = defaults.CheckWorkers
	}

	report := &RunReport{
		ID:       uuid.NewString(),
		Started:  time.Now().UTC(),
		Projects: make([]ProjectReport, len(cfg.Projects)),
	}
	slog.Info("starting check run",
		"run_id", report.ID,
		"projects", len(cfg.Projects),
		"workers", workers)

	start := time.Now()
	defer func() {
		checkRunDuration.Observe(time.Since(start).Seconds())
	}()

	reducer := release.NewReducer(registry)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i := range cfg.Projects {
		i := i
		g.Go(func() error {
			report.Projects[i] = c.checkProject(gctx, reducer, httpReader, cfg.Projects[i])
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	report.Duration = time.Since(start)

	for i := range report.Projects {
		switch {
		case report.Projects[i].Error != "":
			report.Errors++
		case report.Projects[i].Outcome == release.OutcomeAdvanced:
			report.Advanced++
		case report.Projects[i].Outcome == release.OutcomeRegressed:
			report.Regressed++
		}
	}
	slog.Info("check run complete",
		"run_id", report.ID,
		"advanced", report.Advanced,
		"regressed", report.Regressed,
		"errors", report.Errors,
		"duration", report.Duration)

	if c.Serializer != nil {
		if err := c.Serializer.Serialize(ctx, report); err != nil {
			return nil, err
		}
	}
	return report, nil
}

func (c *Checker) checkProject(
	ctx context.Context,
	reducer *release.Reducer,
	httpReader *serializer.HTTPReader,
	project config.Project,
) ProjectReport {
	pr := ProjectReport{Project: project.Name}

	start := time.Now()
	defer func() {
		pr.Duration = time.Since(start)
		checkProjectDuration.WithLabelValues(project.Name).Observe(pr.Duration.Seconds())
	}()

	ctx, cancel := context.WithTimeout(ctx, defaults.CheckTimeout)
	defer cancel()

	versions, err := fetchVersions(ctx, httpReader, project.Source)
	if err != nil {
		slog.Error("failed to fetch version list",
			"project", project.Name,
			"source", project.Source,
			"error", err)
		pr.Error = err.Error()
		checkTotal.WithLabelValues("error").Inc()
		return pr
	}

	red, err := reducer.Reduce(release.Request{
		Versions:        versions,
		Scheme:          project.Scheme,
		Prefix:          project.Prefix,
		ExcludePattern:  project.ExcludePattern,
		SkipPrereleases: project.SkipPrereleases,
	})
	if err != nil {
		pr.Error = err.Error()
		checkTotal.WithLabelValues("error").Inc()
		return pr
	}
	pr.Scheme = red.Scheme
	if !red.KnownScheme && project.Scheme != "" {
		pr.SchemeAdvisory = "unknown scheme " + project.Scheme + ", generic applied"
		slog.Warn("unknown scheme, falling back to generic",
			"project", project.Name,
			"scheme", project.Scheme)
	}

	res, err := release.Detect(project.Previous, red)
	if err != nil {
		pr.Error = err.Error()
		checkTotal.WithLabelValues("error").Inc()
		return pr
	}

	pr.Outcome = res.Outcome
	pr.Previous = res.Previous
	pr.Latest = res.Latest
	for _, v := range red.History {
		pr.History = append(pr.History, v.Raw())
		if v.Excluded() {
			pr.Excluded = append(pr.Excluded, v.Raw())
		}
	}
	for _, f := range red.Failures {
		pr.Failures = append(pr.Failures, ParseFailure{Raw: f.Raw, Reason: f.Reason})
	}
	if n := len(red.Failures); n > 0 {
		checkParseFailures.Add(float64(n))
		slog.Warn("some versions did not parse",
			"project", project.Name,
			"scheme", pr.Scheme,
			"skipped", n)
	}

	checkTotal.WithLabelValues("success").Inc()
	checkOutcomeTotal.WithLabelValues(string(res.Outcome)).Inc()
	slog.Debug("project check complete",
		"project", project.Name,
		"outcome", res.Outcome,
		"latest", res.Latest)
	return pr
}

// fetchVersions loads the raw version list from a local file or an
// http(s) URL.
func fetchVersions(ctx context.Context, httpReader *serializer.HTTPReader, source string) ([]string, error) {
	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		return httpReader.ReadVersionList(ctx, source)
	}
	return serializer.ReadVersionListFile(source)
}
