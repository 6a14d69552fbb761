// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package clock

import "time"

// Clock abstracts the current time for testability. Production code
// injects Real(); tests inject Fake() with a fixed, controllable
// instant.
//
// Freshness evaluation is purely functional over explicit instants, so
// this interface is deliberately narrow: the only ambient time
// dependency in this module is "what is the evaluation instant right
// now", at the CLI boundary.
type Clock interface {
	// Now returns the current time.
	Now() time.Time
}
