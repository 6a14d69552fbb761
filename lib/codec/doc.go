// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package codec provides the standard CBOR encoding configuration for
// freshness records.
//
// Two serialization formats with a clear boundary:
//
//   - JSON for human-facing surfaces: definitions files, CLI --json
//     output, observed-data reports.
//   - CBOR for records handed to the orchestration layer: policy
//     snapshots, constraint sets, lateness reports.
//
// This package provides the shared CBOR encoding and decoding modes so
// that every consumer encodes identically without duplicating
// configuration. The encoder uses Core Deterministic Encoding (RFC
// 8949 §4.2): sorted map keys, smallest integer encoding, no
// indefinite-length items. Same logical data always produces identical
// bytes, so equal snapshots compare byte-equal.
//
// For buffer-oriented operations:
//
//	data, err := codec.Marshal(value)
//	err = codec.Unmarshal(data, &value)
//
// For stream-oriented operations:
//
//	encoder := codec.NewEncoder(w)
//	decoder := codec.NewDecoder(r)
//
// Record types carry `json` struct tags only: fxamacker/cbor reads
// json tags as fallback when cbor tags are absent, so a single tag
// controls field naming and omitempty for both formats.
package codec
