// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package cli provides the command tree for the freshness CLI: nested
// commands with lazy pflag flag sets and structured help output.
package cli
