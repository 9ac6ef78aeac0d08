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

// Package api wires the check daemon together: it loads the project
// configuration, runs the checker on an interval, and serves the
// operational HTTP endpoints from pkg/server.
//
// # Usage
//
//	package main
//
//	import (
//	    "log"
//	    "github.com/pombredanne/anitya/pkg/api"
//	)
//
//	func main() {
//	    if err := api.Serve(); err != nil {
//	        log.Fatalf("server error: %v", err)
//	    }
//	}
//
// # Endpoints
//
// Application endpoints (with rate limiting):
//   - GET /v1/report - Latest check run report
//
// System endpoints (no rate limiting):
//   - GET /healthz - Health check (liveness probe)
//   - GET /readyz  - Readiness check
//   - GET /metrics - Prometheus metrics
//
// # Environment
//
//   - ANITYA_CONFIG: project configuration file path
//   - CHECK_INTERVAL_SECONDS: period between check runs
//   - PORT, SHUTDOWN_TIMEOUT_SECONDS, LOG_LEVEL: see pkg/server and
//     pkg/logging
package api
