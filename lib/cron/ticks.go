// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package cron

import "time"

// Ticks is a lazy sequence of schedule instants. A forward sequence
// ascends from its start instant; a reverse sequence descends from its
// end instant. The sequence is unbounded in principle and is pulled
// one element at a time with Next.
type Ticks struct {
	schedule Schedule
	loc      *time.Location
	cursor   time.Time
	reverse  bool
	started  bool
	done     bool
}

// Forward returns the ascending sequence of schedule ticks at or after
// start, evaluated against the wall clock of loc. A nil loc means UTC.
// Ticks have minute granularity: a start instant with sub-minute
// precision is rounded up to the next minute boundary.
func (s Schedule) Forward(start time.Time, loc *time.Location) *Ticks {
	if loc == nil {
		loc = time.UTC
	}
	return &Ticks{schedule: s, loc: loc, cursor: start}
}

// Reverse returns the descending sequence of schedule ticks at or
// before end, evaluated against the wall clock of loc. A nil loc means
// UTC.
func (s Schedule) Reverse(end time.Time, loc *time.Location) *Ticks {
	if loc == nil {
		loc = time.UTC
	}
	return &Ticks{schedule: s, loc: loc, cursor: end, reverse: true}
}

// Next returns the next tick in the sequence. The second result is
// false once the search bound is exhausted (an impossible schedule, or
// a sequence walked years past its origin); the sequence stays
// exhausted thereafter.
func (t *Ticks) Next() (time.Time, bool) {
	if t.done {
		return time.Time{}, false
	}

	var tick time.Time
	var err error
	switch {
	case !t.started && t.reverse:
		tick, err = t.schedule.searchBackward(t.cursor.In(t.loc).Truncate(time.Minute), t.loc)
	case !t.started:
		tick, err = t.schedule.searchForward(alignUp(t.cursor.In(t.loc)), t.loc)
	case t.reverse:
		tick, err = t.schedule.searchBackward(t.cursor.Add(-time.Minute), t.loc)
	default:
		tick, err = t.schedule.searchForward(t.cursor.Add(time.Minute), t.loc)
	}
	t.started = true
	if err != nil {
		t.done = true
		return time.Time{}, false
	}
	t.cursor = tick
	return tick, true
}

// alignUp rounds t up to the next minute boundary, leaving
// minute-aligned instants unchanged.
func alignUp(t time.Time) time.Time {
	aligned := t.Truncate(time.Minute)
	if aligned.Before(t) {
		aligned = aligned.Add(time.Minute)
	}
	return aligned
}
