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

package release

import (
	"github.com/pombredanne/anitya/pkg/scheme"
	"github.com/pombredanne/anitya/pkg/version"
)

// Outcome classifies the movement between the previously recorded
// newest version and the current reduction.
type Outcome string

const (
	// OutcomeNoHistory: no previous version recorded, a newest exists.
	OutcomeNoHistory Outcome = "no_history"

	// OutcomeAllExcluded: the reduction produced no selectable newest,
	// regardless of whether a previous version exists.
	OutcomeAllExcluded Outcome = "all_excluded"

	// OutcomeUnchanged: previous and newest compare equal.
	OutcomeUnchanged Outcome = "unchanged"

	// OutcomeAdvanced: newest compares above previous.
	OutcomeAdvanced Outcome = "advanced"

	// OutcomeRegressed: newest compares below previous. Flagged
	// rather than silently accepted; it usually means a misconfigured
	// scheme or a withdrawn release.
	OutcomeRegressed Outcome = "regressed"
)

// Result is one change-detection verdict. Previous and Latest carry
// the compared raw strings where the outcome involves both sides.
type Result struct {
	Outcome  Outcome               `json:"outcome" yaml:"outcome"`
	Previous string                `json:"previous,omitempty" yaml:"previous,omitempty"`
	Latest   string                `json:"latest,omitempty" yaml:"latest,omitempty"`
	Failures []*version.ParseError `json:"-" yaml:"-"`
}

// Detect compares the previously recorded raw version, empty when the
// project has never been checked, against the reduction's newest.
// Parse failures from the reduction ride along on the Result so a
// caller can report skipped entries next to a valid outcome; they
// never influence the outcome itself.
func Detect(previous string, red *Reduction) (*Result, error) {
	res := &Result{Failures: red.Failures}

	if red.Newest == nil {
		res.Outcome = OutcomeAllExcluded
		res.Previous = previous
		return res, nil
	}
	res.Latest = red.Newest.Raw()

	if previous == "" {
		res.Outcome = OutcomeNoHistory
		return res, nil
	}
	res.Previous = previous

	strategy := red.Strategy()
	pv, err := strategy.Parse(previous, scheme.Options{})
	if err != nil {
		// The recorded previous version does not parse under the
		// configured scheme; surface it as caller configuration
		// trouble rather than guessing an ordering.
		return nil, err
	}

	c, err := strategy.Compare(pv, *red.Newest)
	if err != nil {
		return nil, err
	}
	switch {
	case c == 0:
		res.Outcome = OutcomeUnchanged
	case c < 0:
		res.Outcome = OutcomeAdvanced
	default:
		res.Outcome = OutcomeRegressed
	}
	return res, nil
}
