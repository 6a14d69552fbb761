// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package freshness

import (
	"fmt"
	"sync"
	"time"

	"github.com/bureau-foundation/freshness/lib/cron"
)

// TickIterator yields successive schedule tick instants. Next returns
// false once the sequence is exhausted. Sequences may be unbounded;
// callers terminate iteration themselves (window boundary, constraint
// cap, first element).
type TickIterator interface {
	Next() (time.Time, bool)
}

// TickSource produces the instants at which a cron expression fires.
// Constraint generation and lateness evaluation consume this interface
// so tests can substitute a deterministic fake for real calendar
// arithmetic. Implementations must be safe for concurrent use.
type TickSource interface {
	// TicksForward returns the ascending tick sequence at or after
	// start, evaluated in timezone ("" means UTC).
	TicksForward(start time.Time, expression, timezone string) (TickIterator, error)

	// TicksBackward returns the descending tick sequence at or
	// before end, evaluated in timezone ("" means UTC).
	TicksBackward(end time.Time, expression, timezone string) (TickIterator, error)

	// Valid reports whether expression parses as a cron expression.
	Valid(expression string) bool
}

// CronTicks is the production TickSource, backed by the cron package.
// Parsed schedules and resolved locations are cached per input string,
// so repeated evaluations of the same policy skip re-parsing.
//
// The zero value is not usable; construct with NewCronTicks.
type CronTicks struct {
	mu        sync.Mutex
	schedules map[string]cron.Schedule
	locations map[string]*time.Location
}

// NewCronTicks returns an empty, ready-to-use CronTicks.
func NewCronTicks() *CronTicks {
	return &CronTicks{
		schedules: make(map[string]cron.Schedule),
		locations: make(map[string]*time.Location),
	}
}

// TicksForward implements TickSource.
func (c *CronTicks) TicksForward(start time.Time, expression, timezone string) (TickIterator, error) {
	schedule, loc, err := c.resolve(expression, timezone)
	if err != nil {
		return nil, err
	}
	return schedule.Forward(start, loc), nil
}

// TicksBackward implements TickSource.
func (c *CronTicks) TicksBackward(end time.Time, expression, timezone string) (TickIterator, error) {
	schedule, loc, err := c.resolve(expression, timezone)
	if err != nil {
		return nil, err
	}
	return schedule.Reverse(end, loc), nil
}

// Valid implements TickSource.
func (c *CronTicks) Valid(expression string) bool {
	_, _, err := c.resolve(expression, "")
	return err == nil
}

// resolve returns the cached schedule and location for the given
// expression and timezone, parsing and caching on first use.
func (c *CronTicks) resolve(expression, timezone string) (cron.Schedule, *time.Location, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	schedule, ok := c.schedules[expression]
	if !ok {
		var err error
		schedule, err = cron.Parse(expression)
		if err != nil {
			return cron.Schedule{}, nil, err
		}
		c.schedules[expression] = schedule
	}

	if timezone == "" {
		return schedule, time.UTC, nil
	}
	loc, ok := c.locations[timezone]
	if !ok {
		var err error
		loc, err = time.LoadLocation(timezone)
		if err != nil {
			return cron.Schedule{}, nil, fmt.Errorf("resolving timezone %q: %w", timezone, err)
		}
		c.locations[timezone] = loc
	}
	return schedule, loc, nil
}
