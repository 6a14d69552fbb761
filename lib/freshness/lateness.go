// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package freshness

import (
	"fmt"
	"time"

	"github.com/bureau-foundation/freshness/lib/asset"
)

// Lateness is the outcome of a lateness evaluation. When Known is
// true, Minutes is how far past its policy the asset is: zero means on
// time, a positive value means overdue by that many minutes. When
// Known is false the asset's lateness cannot be determined — some
// upstream data timestamp is missing — and Minutes is meaningless.
// Callers must treat unknown as its own case, never as zero.
type Lateness struct {
	Minutes float64 `json:"minutes"`
	Known   bool    `json:"known"`
}

// MinutesLate computes how many minutes past policy the asset is at
// evaluationTime, given the timestamp of the upstream data actually
// incorporated for each relevant upstream key. A zero time value
// records that no upstream data was used (the upstream never
// materialized); a single zero value makes the overall result unknown.
//
// The lateness anchor is the most recent schedule tick at or before
// evaluationTime when the policy has a cron schedule, and
// evaluationTime itself otherwise. Each upstream behind
// anchor - MaximumLag contributes its shortfall; the worst upstream
// governs the result, floored at zero. An empty mapping evaluates to
// zero: with no dependencies there is nothing to be late on.
func MinutesLate(ticks TickSource, policy Policy, evaluationTime time.Time, usedDataTimes map[asset.Key]time.Time) (Lateness, error) {
	anchor := evaluationTime
	if policy.HasCronSchedule() {
		iterator, err := ticks.TicksBackward(evaluationTime, policy.CronSchedule(), policy.CronTimezone())
		if err != nil {
			return Lateness{}, fmt.Errorf("enumerating schedule ticks: %w", err)
		}
		tick, ok := iterator.Next()
		if !ok {
			return Lateness{}, fmt.Errorf("no schedule tick at or before %s", evaluationTime.Format(time.RFC3339))
		}
		anchor = tick
	}

	requiredTime := anchor.Add(-policy.MaximumLag())

	result := Lateness{Known: true}
	for _, usedDataTime := range usedDataTimes {
		if usedDataTime.IsZero() {
			return Lateness{}, nil
		}
		if usedDataTime.Before(requiredTime) {
			shortfall := requiredTime.Sub(usedDataTime).Minutes()
			if shortfall > result.Minutes {
				result.Minutes = shortfall
			}
		}
	}
	return result, nil
}
