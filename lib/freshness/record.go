// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package freshness

import (
	"time"

	"github.com/bureau-foundation/freshness/lib/asset"
)

// PolicyRecord is the serialized form of a Policy, for passing policy
// definitions between processes as JSON or CBOR. Decoded records are
// re-validated through NewPolicy, so a hand-edited record cannot
// smuggle in an invalid policy.
type PolicyRecord struct {
	// MaximumLagMinutes is the maximum lag as fractional minutes.
	MaximumLagMinutes float64 `json:"maximum_lag_minutes"`

	CronSchedule         string `json:"cron_schedule,omitempty"`
	CronScheduleTimezone string `json:"cron_schedule_timezone,omitempty"`
}

// Record returns the serialized form of p.
func (p Policy) Record() PolicyRecord {
	return PolicyRecord{
		MaximumLagMinutes:    p.maximumLag.Minutes(),
		CronSchedule:         p.cronSchedule,
		CronScheduleTimezone: p.cronTimezone,
	}
}

// PolicyFromRecord validates record and returns the Policy it
// describes.
func PolicyFromRecord(record PolicyRecord) (Policy, error) {
	lag := time.Duration(record.MaximumLagMinutes * float64(time.Minute))
	return NewPolicy(lag, record.CronSchedule, record.CronScheduleTimezone)
}

// LatenessReport pairs an asset with its evaluated lateness, for CLI
// and orchestration-layer output.
type LatenessReport struct {
	Key      asset.Key `json:"asset_key"`
	Lateness Lateness  `json:"lateness"`
}
