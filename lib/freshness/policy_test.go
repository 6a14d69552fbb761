// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package freshness

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func mustPolicy(t *testing.T, maximumLag time.Duration, cronSchedule, cronTimezone string) Policy {
	t.Helper()
	policy, err := NewPolicy(maximumLag, cronSchedule, cronTimezone)
	if err != nil {
		t.Fatalf("NewPolicy(%v, %q, %q): %v", maximumLag, cronSchedule, cronTimezone, err)
	}
	return policy
}

func TestNewPolicyValid(t *testing.T) {
	tests := []struct {
		name     string
		lag      time.Duration
		schedule string
		timezone string
	}{
		{"lag_only", 30 * time.Minute, "", ""},
		{"with_schedule", 24 * time.Hour, "0 9 * * *", ""},
		{"with_schedule_and_timezone", 24 * time.Hour, "0 9 * * *", "America/Los_Angeles"},
		{"utc_timezone", time.Hour, "*/15 * * * *", "UTC"},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			policy, err := NewPolicy(test.lag, test.schedule, test.timezone)
			if err != nil {
				t.Fatalf("NewPolicy: %v", err)
			}
			if policy.MaximumLag() != test.lag {
				t.Errorf("MaximumLag = %v, want %v", policy.MaximumLag(), test.lag)
			}
			if policy.CronSchedule() != test.schedule {
				t.Errorf("CronSchedule = %q, want %q", policy.CronSchedule(), test.schedule)
			}
			if policy.CronTimezone() != test.timezone {
				t.Errorf("CronTimezone = %q, want %q", policy.CronTimezone(), test.timezone)
			}
			if policy.HasCronSchedule() != (test.schedule != "") {
				t.Errorf("HasCronSchedule = %v", policy.HasCronSchedule())
			}
			if policy.IsZero() {
				t.Error("IsZero = true for constructed policy")
			}
		})
	}
}

func TestNewPolicyInvalid(t *testing.T) {
	tests := []struct {
		name           string
		lag            time.Duration
		schedule       string
		timezone       string
		wantDefinition bool
		wantParameter  bool
	}{
		{"bad_cron", time.Hour, "not-a-cron", "", true, false},
		{"six_field_cron", time.Hour, "0 0 * * * *", "", true, false},
		{"timezone_without_schedule", time.Hour, "", "UTC", true, false},
		{"unresolvable_timezone", time.Hour, "0 9 * * *", "Mars/Olympus_Mons", true, false},
		{"zero_lag", 0, "", "", false, true},
		{"negative_lag", -time.Minute, "", "", false, true},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := NewPolicy(test.lag, test.schedule, test.timezone)
			if err == nil {
				t.Fatal("NewPolicy = nil error, want error")
			}
			var definitionErr *DefinitionError
			if errors.As(err, &definitionErr) != test.wantDefinition {
				t.Errorf("DefinitionError match = %v, want %v (err %v)", !test.wantDefinition, test.wantDefinition, err)
			}
			var parameterErr *ParameterError
			if errors.As(err, &parameterErr) != test.wantParameter {
				t.Errorf("ParameterError match = %v, want %v (err %v)", !test.wantParameter, test.wantParameter, err)
			}
		})
	}
}

func TestNewPolicyErrorNamesInput(t *testing.T) {
	_, err := NewPolicy(time.Hour, "not-a-cron", "")
	if err == nil {
		t.Fatal("want error")
	}
	if got := err.Error(); !strings.Contains(got, "not-a-cron") {
		t.Errorf("error %q does not name the offending schedule", got)
	}

	_, err = NewPolicy(time.Hour, "0 9 * * *", "Mars/Olympus_Mons")
	if err == nil {
		t.Fatal("want error")
	}
	if got := err.Error(); !strings.Contains(got, "Mars/Olympus_Mons") {
		t.Errorf("error %q does not name the offending timezone", got)
	}
}

func TestPolicyEquality(t *testing.T) {
	a := mustPolicy(t, time.Hour, "0 9 * * *", "UTC")
	b := mustPolicy(t, time.Hour, "0 9 * * *", "UTC")
	c := mustPolicy(t, time.Hour, "0 10 * * *", "UTC")

	if a != b {
		t.Error("identical policies compare unequal")
	}
	if a == c {
		t.Error("different policies compare equal")
	}
}

func TestPolicyRecordRoundTrip(t *testing.T) {
	policy := mustPolicy(t, 90*time.Minute, "0 9 * * *", "America/New_York")

	record := policy.Record()
	if record.MaximumLagMinutes != 90 {
		t.Errorf("MaximumLagMinutes = %v, want 90", record.MaximumLagMinutes)
	}

	decoded, err := PolicyFromRecord(record)
	if err != nil {
		t.Fatalf("PolicyFromRecord: %v", err)
	}
	if decoded != policy {
		t.Errorf("round trip = %+v, want %+v", decoded, policy)
	}
}

func TestPolicyFromRecordRevalidates(t *testing.T) {
	_, err := PolicyFromRecord(PolicyRecord{MaximumLagMinutes: 60, CronSchedule: "nope"})
	if err == nil {
		t.Error("PolicyFromRecord accepted an invalid schedule")
	}
	_, err = PolicyFromRecord(PolicyRecord{MaximumLagMinutes: 0})
	if err == nil {
		t.Error("PolicyFromRecord accepted a zero lag")
	}
}
