// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package cron parses standard 5-field cron expressions and computes
// schedule occurrences forward and backward in time.
//
// Supported syntax:
//
//	┌───────────── minute (0-59)
//	│ ┌───────────── hour (0-23)
//	│ │ ┌───────────── day of month (1-31)
//	│ │ │ ┌───────────── month (1-12)
//	│ │ │ │ ┌───────────── day of week (0-6, 0=Sunday)
//	│ │ │ │ │
//	* * * * *
//
// Each field supports:
//   - Single values: 5
//   - Ranges: 1-5
//   - Lists: 1,3,5
//   - Steps: */15, 1-30/5
//   - Wildcard: *
//
// Day-of-month and day-of-week combine the standard cron way: when
// both fields are restricted (neither is "*"), a day matches if either
// field matches, so "0 0 13 * 5" fires on the 13th and on every
// Friday.
//
// Occurrences are evaluated against the wall clock of a caller-supplied
// time.Location (nil means UTC), so "0 9 * * *" fires at 9AM local time
// in that zone across DST transitions. Next and Prev compute single
// occurrences; Forward and Reverse expose the occurrence sequence as a
// lazy iterator for callers that walk a time window.
//
// No @yearly/@monthly shortcuts, no seconds field, no named
// days/months. This is intentionally minimal.
package cron
