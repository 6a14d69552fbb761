// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package clock provides an injectable time abstraction for
// testability.
//
// Code that needs the current instant accepts a Clock parameter (or
// holds a Clock field) instead of calling time.Now directly. In
// production, Real() provides standard library behavior. In tests,
// Fake() provides a deterministic clock that moves only when Advance
// or Set is called:
//
//	c := clock.Fake(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
//	evaluateAt := c.Now()
//	c.Advance(5 * time.Minute)
package clock
