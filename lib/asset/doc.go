// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package asset provides validated, immutable identifiers for data
// assets. An asset key is a slash-separated hierarchical path
// ("warehouse/events/signups") represented as a comparable value type,
// and a KeySet is a sorted, deduplicated collection of keys shared
// verbatim by every freshness constraint emitted for one evaluation.
//
// Constructors validate their inputs and return errors for invalid
// paths. JSON and CBOR marshaling use the canonical path form via
// encoding.TextMarshaler.
package asset
