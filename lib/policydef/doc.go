// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package policydef parses and validates freshness definitions files.
//
// A definitions file declares the assets governed by freshness
// policies: for each asset, its key, the upstream assets it
// incorporates data from, and the policy itself (maximum lag, optional
// cron schedule and timezone). Files are authored as YAML or as JSONC
// (JSON extended with comments and trailing commas); both parse to the
// same validated entries.
//
// The typical flow:
//
//  1. ReadFile: definitions bytes → validated []Entry (every key and
//     policy has been through its constructor)
//  2. freshness.ConstraintsForWindow / freshness.MinutesLate over
//     each entry
//
// The package also parses observed-data reports — the mapping from
// upstream asset to the timestamp of the data actually used — which
// feed lateness evaluation.
package policydef
