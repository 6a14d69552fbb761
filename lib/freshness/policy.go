// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package freshness

import (
	"time"

	"github.com/bureau-foundation/freshness/lib/cron"
)

// Policy specifies how up to date an asset is expected to be with
// respect to its upstream data.
//
// Without a cron schedule, the asset must incorporate upstream data no
// older than the maximum lag at every point in time ("the events table
// always holds data from at most an hour ago"). With a cron schedule,
// the requirement applies at each schedule tick ("by 9AM the signups
// table holds all of yesterday's data"), evaluated in the schedule
// timezone (UTC when unset).
//
// A Policy is an immutable value: construct with NewPolicy, compare
// with ==, and share freely across concurrent evaluations.
type Policy struct {
	maximumLag   time.Duration
	cronSchedule string
	cronTimezone string
}

// NewPolicy constructs a validated Policy. maximumLag must be
// positive. cronSchedule, when non-empty, must be a 5-field cron
// expression. cronTimezone, when non-empty, requires a schedule and
// must name an IANA timezone.
func NewPolicy(maximumLag time.Duration, cronSchedule, cronTimezone string) (Policy, error) {
	if maximumLag <= 0 {
		return Policy{}, &ParameterError{
			Param:  "maximum lag",
			Detail: "must be positive, got " + maximumLag.String(),
		}
	}
	if cronSchedule != "" {
		if _, err := cron.Parse(cronSchedule); err != nil {
			return Policy{}, definitionErrorf("invalid cron schedule %q: %v", cronSchedule, err)
		}
	}
	if cronTimezone != "" {
		if cronSchedule == "" {
			return Policy{}, definitionErrorf("cron schedule timezone %q given without a cron schedule", cronTimezone)
		}
		if _, err := time.LoadLocation(cronTimezone); err != nil {
			return Policy{}, definitionErrorf("invalid cron schedule timezone %q: %v", cronTimezone, err)
		}
	}
	return Policy{
		maximumLag:   maximumLag,
		cronSchedule: cronSchedule,
		cronTimezone: cronTimezone,
	}, nil
}

// MaximumLag returns the upper bound on the age of incorporated
// upstream data.
func (p Policy) MaximumLag() time.Duration { return p.maximumLag }

// CronSchedule returns the cron expression, or "" when the policy
// applies continuously.
func (p Policy) CronSchedule() string { return p.cronSchedule }

// CronTimezone returns the IANA timezone the schedule is evaluated
// in, or "" for UTC.
func (p Policy) CronTimezone() string { return p.cronTimezone }

// HasCronSchedule reports whether the policy is anchored to a cron
// schedule.
func (p Policy) HasCronSchedule() bool { return p.cronSchedule != "" }

// IsZero reports whether p is the zero Policy (never produced by
// NewPolicy).
func (p Policy) IsZero() bool { return p == Policy{} }
