// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package freshness

import (
	"testing"
	"time"

	"github.com/bureau-foundation/freshness/lib/asset"
)

var (
	keyA = asset.MustKey("warehouse/a")
	keyB = asset.MustKey("warehouse/b")
)

func TestMinutesLateWithoutSchedule(t *testing.T) {
	source := NewCronTicks()
	policy := mustPolicy(t, 60*time.Minute, "", "")
	evaluationTime := utc(2026, 3, 1, 12, 0)

	tests := []struct {
		name string
		used map[asset.Key]time.Time
		want float64
	}{
		{
			// Data from 90 minutes ago against a 60 minute lag:
			// 30 minutes behind the required time.
			name: "behind_by_30",
			used: map[asset.Key]time.Time{keyA: evaluationTime.Add(-90 * time.Minute)},
			want: 30,
		},
		{
			name: "exactly_on_time",
			used: map[asset.Key]time.Time{keyA: evaluationTime.Add(-60 * time.Minute)},
			want: 0,
		},
		{
			// An upstream ahead of schedule contributes no
			// negative lateness.
			name: "ahead_of_schedule",
			used: map[asset.Key]time.Time{keyA: evaluationTime.Add(-5 * time.Minute)},
			want: 0,
		},
		{
			// The worst upstream governs.
			name: "max_across_upstreams",
			used: map[asset.Key]time.Time{
				keyA: evaluationTime.Add(-90 * time.Minute),
				keyB: evaluationTime.Add(-150 * time.Minute),
			},
			want: 90,
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			lateness, err := MinutesLate(source, policy, evaluationTime, test.used)
			if err != nil {
				t.Fatalf("MinutesLate: %v", err)
			}
			if !lateness.Known {
				t.Fatal("Known = false, want true")
			}
			if lateness.Minutes != test.want {
				t.Errorf("Minutes = %v, want %v", lateness.Minutes, test.want)
			}
		})
	}
}

func TestMinutesLateWithSchedule(t *testing.T) {
	// Daily 9AM schedule with a 24 hour lag, evaluated at 10AM:
	// the anchor is 9AM today, the required data time 9AM yesterday.
	// Upstream data from 8AM yesterday is 60 minutes short.
	source := NewCronTicks()
	policy := mustPolicy(t, 1440*time.Minute, "0 9 * * *", "")

	lateness, err := MinutesLate(source, policy, utc(2026, 3, 18, 10, 0), map[asset.Key]time.Time{
		keyA: utc(2026, 3, 17, 8, 0),
	})
	if err != nil {
		t.Fatalf("MinutesLate: %v", err)
	}
	if !lateness.Known {
		t.Fatal("Known = false, want true")
	}
	if lateness.Minutes != 60 {
		t.Errorf("Minutes = %v, want 60", lateness.Minutes)
	}
}

func TestMinutesLateAnchorOnTick(t *testing.T) {
	// Evaluating exactly on a tick anchors to that tick.
	source := NewCronTicks()
	policy := mustPolicy(t, 60*time.Minute, "0 9 * * *", "")

	lateness, err := MinutesLate(source, policy, utc(2026, 3, 18, 9, 0), map[asset.Key]time.Time{
		keyA: utc(2026, 3, 18, 7, 30),
	})
	if err != nil {
		t.Fatal(err)
	}
	// Required time is 8AM; data from 7:30 is 30 minutes short.
	if !lateness.Known || lateness.Minutes != 30 {
		t.Errorf("lateness = %+v, want {30 true}", lateness)
	}
}

func TestMinutesLateEmptyUpstreams(t *testing.T) {
	source := NewCronTicks()
	policy := mustPolicy(t, time.Hour, "", "")

	lateness, err := MinutesLate(source, policy, utc(2026, 3, 1, 12, 0), nil)
	if err != nil {
		t.Fatal(err)
	}
	if !lateness.Known || lateness.Minutes != 0 {
		t.Errorf("lateness = %+v, want {0 true} (nothing to be late on)", lateness)
	}
}

func TestMinutesLateUnknown(t *testing.T) {
	source := NewCronTicks()
	policy := mustPolicy(t, time.Hour, "", "")
	evaluationTime := utc(2026, 3, 1, 12, 0)

	// A single missing upstream timestamp makes the result unknown,
	// regardless of the other upstreams.
	lateness, err := MinutesLate(source, policy, evaluationTime, map[asset.Key]time.Time{
		keyA: evaluationTime.Add(-5 * time.Minute),
		keyB: {},
	})
	if err != nil {
		t.Fatal(err)
	}
	if lateness.Known {
		t.Errorf("Known = true, want false (missing upstream data)")
	}
}

func TestMinutesLateTimezoneAnchor(t *testing.T) {
	// 9AM in New York (EST, UTC-5) is 14:00 UTC. Evaluating at
	// 15:00 UTC anchors to the 14:00 UTC tick.
	source := NewCronTicks()
	policy := mustPolicy(t, 60*time.Minute, "0 9 * * *", "America/New_York")

	lateness, err := MinutesLate(source, policy, utc(2026, 1, 10, 15, 0), map[asset.Key]time.Time{
		keyA: utc(2026, 1, 10, 12, 30),
	})
	if err != nil {
		t.Fatal(err)
	}
	// Required time is 13:00 UTC; data from 12:30 is 30 minutes
	// short.
	if !lateness.Known || lateness.Minutes != 30 {
		t.Errorf("lateness = %+v, want {30 true}", lateness)
	}
}

func TestMinutesLateWithFakeTicks(t *testing.T) {
	source := &fakeTicks{ticks: []time.Time{
		utc(2026, 3, 1, 6, 0),
		utc(2026, 3, 1, 18, 0),
	}}
	policy := mustPolicy(t, 2*time.Hour, "0 6,18 * * *", "")

	lateness, err := MinutesLate(source, policy, utc(2026, 3, 1, 20, 0), map[asset.Key]time.Time{
		keyA: utc(2026, 3, 1, 15, 0),
	})
	if err != nil {
		t.Fatal(err)
	}
	// Anchor 18:00, required 16:00, data from 15:00: 60 minutes.
	if !lateness.Known || lateness.Minutes != 60 {
		t.Errorf("lateness = %+v, want {60 true}", lateness)
	}
}
