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

// Package server provides the operational HTTP surface for the check
// daemon: liveness and readiness probes, Prometheus metrics, and a
// read-only view of the most recent check run.
//
// The server carries the usual middleware for an exposed endpoint
// (request IDs, rate limiting, panic recovery, request logging) but
// deliberately no project management API. Projects are configured
// through the YAML config file, not over HTTP.
//
// Typical usage:
//
//	srv := server.New(server.NewConfig())
//	srv.SetReport(report) // after each check run
//	if err := srv.Start(ctx); err != nil {
//		...
//	}
package server
