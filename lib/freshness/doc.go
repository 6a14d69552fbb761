// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package freshness computes time-bound freshness constraints and
// lateness figures for data assets governed by a freshness policy.
//
// A Policy states how old the upstream data incorporated into an asset
// may be (the maximum lag), either continuously or at the ticks of a
// cron schedule. From a policy, ConstraintsForWindow derives the set
// of constraints that must hold within a time window, and MinutesLate
// measures how far past policy an asset currently is given the
// observed timestamps of the upstream data it used.
//
// The package is purely functional over its inputs: no I/O, no shared
// mutable state. Cron arithmetic is consumed through the TickSource
// interface so evaluation logic can be tested against a deterministic
// fake; CronTicks is the production implementation. The surrounding
// orchestration layer owns everything else — scheduling runs,
// persisting materializations, deciding what to do with a lateness
// signal.
package freshness
