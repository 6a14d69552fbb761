// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package clock

import (
	"testing"
	"time"
)

func TestFakeClock(t *testing.T) {
	initial := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	c := Fake(initial)

	if !c.Now().Equal(initial) {
		t.Errorf("Now = %v, want %v", c.Now(), initial)
	}

	c.Advance(90 * time.Minute)
	if want := initial.Add(90 * time.Minute); !c.Now().Equal(want) {
		t.Errorf("after Advance: Now = %v, want %v", c.Now(), want)
	}

	target := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)
	c.Set(target)
	if !c.Now().Equal(target) {
		t.Errorf("after Set: Now = %v, want %v", c.Now(), target)
	}
}
