// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package freshness

import "fmt"

// DefinitionError reports a policy definition that can never be valid:
// a malformed cron expression, a timezone without a schedule to anchor
// it to, or a timezone that does not resolve. Definition errors are
// surfaced at construction time and are not retryable.
type DefinitionError struct {
	Detail string
}

func (e *DefinitionError) Error() string {
	return "invalid freshness policy definition: " + e.Detail
}

func definitionErrorf(format string, args ...any) *DefinitionError {
	return &DefinitionError{Detail: fmt.Sprintf(format, args...)}
}

// ParameterError reports a parameter value that is out of range or
// cannot be parsed (a non-positive or non-numeric maximum lag).
type ParameterError struct {
	Param  string
	Detail string
}

func (e *ParameterError) Error() string {
	return "invalid parameter " + e.Param + ": " + e.Detail
}
