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
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	checkRunDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "anitya_check_run_duration_seconds",
			Help:    "Time taken by a complete check run across all projects",
			Buckets: []float64{1, 5, 10, 30, 60, 120, 300},
		},
	)

	checkProjectDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "anitya_check_project_duration_seconds",
			Help:    "Time taken to check a single project",
			Buckets: []float64{0.1, 0.5, 1, 5, 10, 30},
		},
		[]string{"project"},
	)

	checkTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "anitya_check_total",
			Help: "Total number of project checks",
		},
		[]string{"status"}, // success or error
	)

	checkOutcomeTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "anitya_check_outcome_total",
			Help: "Change detection outcomes across project checks",
		},
		[]string{"outcome"},
	)

	checkParseFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "anitya_check_parse_failures_total",
			Help: "Raw version strings skipped because they did not parse",
		},
	)
)
