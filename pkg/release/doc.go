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

// Package release reduces fetched candidate version sets into ordered
// histories and detects movement against the previously recorded
// newest version.
//
// Both operations are pure transforms of their inputs: parse failures
// on individual entries are collected, never fatal, and repeated calls
// on the same input yield identical results, which makes the package
// safe to run across a worker pool with no shared state.
package release
