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

// Package scheme implements per-ecosystem version parsing and
// comparison strategies behind one polymorphic interface.
//
// Each strategy owns the grammar and the ordering rules of a single
// packaging ecosystem (RPM, Debian, Semantic Versioning, PEP 440,
// CPAN, Hackage, Gentoo ebuilds, calendar dates) plus a generic
// fallback for everything else. A Registry resolves scheme
// identifiers to strategies; identifiers it does not know resolve to
// the generic strategy with an advisory rather than an error, so
// dirty project metadata never aborts a monitoring run.
//
// Usage:
//
//	strategy, known := scheme.Default().Resolve("rpm")
//	v1, err := strategy.Parse("1.0~rc1", scheme.Options{})
//	v2, err := strategy.Parse("2:1.0", scheme.Options{})
//	c, err := strategy.Compare(v1, v2) // c < 0
//
// Versions from different strategies are never comparable; Compare
// rejects them with a CROSS_SCHEME_COMPARISON error since such a call
// is a caller bug rather than bad upstream data.
package scheme
