// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package freshness

import (
	"fmt"
	"time"

	"github.com/bureau-foundation/freshness/lib/asset"
)

// maxConstraintsPerWindow caps constraint generation for one window.
// A pathologically small maximum lag (or a very wide window) would
// otherwise produce unbounded output; generation truncates at the cap
// rather than failing.
const maxConstraintsPerWindow = 100

// samplingEpsilon keeps the no-schedule sampling step positive even
// for degenerate lag values, guaranteeing forward progress.
const samplingEpsilon = 6 * time.Second

// Constraint is one time-bound freshness requirement: by
// RequiredByTime, the asset must have incorporated upstream data at
// least as recent as RequiredDataTime. Constraints are pure derived
// values; every constraint from one generation carries the upstream
// key set verbatim and satisfies
// RequiredDataTime = RequiredByTime - MaximumLag.
type Constraint struct {
	Keys             asset.KeySet `json:"asset_keys"`
	RequiredDataTime time.Time    `json:"required_data_time"`
	RequiredByTime   time.Time    `json:"required_by_time"`
}

// ConstraintsForWindow computes the constraints policy imposes within
// [windowStart, windowEnd). With a cron schedule, one constraint is
// emitted per tick inside the window. Without one, the requirement
// holds continuously and is approximated by sampling at a tenth of the
// maximum lag: fine enough that granularity is well under the lag
// itself, while bounding the number of samples per lag-window of
// elapsed time.
//
// The result ascends by RequiredByTime and contains no duplicates.
// An empty window, or a schedule whose next tick falls past the
// window, yields an empty result. Generation truncates at 100
// constraints.
func ConstraintsForWindow(ticks TickSource, policy Policy, windowStart, windowEnd time.Time, upstream asset.KeySet) ([]Constraint, error) {
	if !windowStart.Before(windowEnd) {
		return nil, nil
	}

	var next func() (time.Time, bool)
	if policy.HasCronSchedule() {
		iterator, err := ticks.TicksForward(windowStart, policy.CronSchedule(), policy.CronTimezone())
		if err != nil {
			return nil, fmt.Errorf("enumerating schedule ticks: %w", err)
		}
		next = iterator.Next
	} else {
		step := policy.MaximumLag()/10 + samplingEpsilon
		cursor := windowStart
		next = func() (time.Time, bool) {
			tick := cursor
			cursor = cursor.Add(step)
			return tick, true
		}
	}

	var constraints []Constraint
	for {
		tick, ok := next()
		if !ok || !tick.Before(windowEnd) {
			break
		}
		constraints = append(constraints, Constraint{
			Keys:             upstream,
			RequiredDataTime: tick.Add(-policy.MaximumLag()),
			RequiredByTime:   tick,
		})
		if len(constraints) == maxConstraintsPerWindow {
			break
		}
	}
	return constraints, nil
}
