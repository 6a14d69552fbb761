// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/bureau-foundation/freshness/cmd/freshness/cli"
	"github.com/bureau-foundation/freshness/lib/policydef"
)

func validateCommand() *cli.Command {
	return &cli.Command{
		Name:    "validate",
		Summary: "Validate a freshness definitions file",
		Usage:   "freshness validate <definitions-file>",
		Examples: []cli.Example{
			{Description: "Check a definitions file", Command: "freshness validate freshness.yaml"},
		},
		Run: func(args []string) error {
			return runValidate(os.Stdout, args)
		},
	}
}

func runValidate(stdout io.Writer, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("expected exactly one definitions file, got %d arguments", len(args))
	}
	entries, err := policydef.ReadFile(args[0])
	if err != nil {
		return err
	}
	for _, entry := range entries {
		schedule := "continuous"
		if entry.Policy.HasCronSchedule() {
			schedule = entry.Policy.CronSchedule()
			if tz := entry.Policy.CronTimezone(); tz != "" {
				schedule += " (" + tz + ")"
			}
		}
		fmt.Fprintf(stdout, "%s: maximum lag %s, schedule %s, %d upstream\n",
			entry.Key, entry.Policy.MaximumLag(), schedule, len(entry.Upstream))
	}
	fmt.Fprintf(stdout, "ok: %d asset definitions\n", len(entries))
	return nil
}
