// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/pflag"

	"github.com/bureau-foundation/freshness/cmd/freshness/cli"
	"github.com/bureau-foundation/freshness/lib/asset"
	"github.com/bureau-foundation/freshness/lib/clock"
	"github.com/bureau-foundation/freshness/lib/codec"
	"github.com/bureau-foundation/freshness/lib/freshness"
	"github.com/bureau-foundation/freshness/lib/policydef"
)

// assetConstraints is the per-asset output record of the constraints
// command.
type assetConstraints struct {
	Key         asset.Key              `json:"asset_key"`
	Constraints []freshness.Constraint `json:"constraints"`
}

type constraintsOptions struct {
	windowStart string
	windowEnd   string
	jsonOutput  bool
	cborOutput  bool
}

func constraintsCommand(clk clock.Clock) *cli.Command {
	var options constraintsOptions
	return &cli.Command{
		Name:    "constraints",
		Summary: "Compute freshness constraints over a time window",
		Usage:   "freshness constraints [flags] <definitions-file>",
		Examples: []cli.Example{
			{
				Description: "Constraints for the next 24 hours",
				Command:     "freshness constraints freshness.yaml",
			},
			{
				Description: "A specific window, as JSON",
				Command:     "freshness constraints --window-start 2026-03-01T00:00:00Z --window-end 2026-03-02T00:00:00Z --json freshness.yaml",
			},
		},
		Flags: func() *pflag.FlagSet {
			flags := pflag.NewFlagSet("constraints", pflag.ContinueOnError)
			flags.StringVar(&options.windowStart, "window-start", "", "window start, RFC 3339 (default: now)")
			flags.StringVar(&options.windowEnd, "window-end", "", "window end, RFC 3339 (default: start + 24h)")
			flags.BoolVar(&options.jsonOutput, "json", false, "emit JSON")
			flags.BoolVar(&options.cborOutput, "cbor", false, "emit deterministic CBOR")
			return flags
		},
		Run: func(args []string) error {
			return runConstraints(clk, os.Stdout, options, args)
		},
	}
}

func runConstraints(clk clock.Clock, stdout io.Writer, options constraintsOptions, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("expected exactly one definitions file, got %d arguments", len(args))
	}
	if options.jsonOutput && options.cborOutput {
		return fmt.Errorf("--json and --cbor are mutually exclusive")
	}

	windowStart, err := parseInstant(options.windowStart, clk.Now())
	if err != nil {
		return fmt.Errorf("--window-start: %w", err)
	}
	windowEnd, err := parseInstant(options.windowEnd, windowStart.Add(24*time.Hour))
	if err != nil {
		return fmt.Errorf("--window-end: %w", err)
	}
	if !windowStart.Before(windowEnd) {
		return fmt.Errorf("window start %s is not before window end %s",
			windowStart.Format(time.RFC3339), windowEnd.Format(time.RFC3339))
	}

	entries, err := policydef.ReadFile(args[0])
	if err != nil {
		return err
	}

	source := freshness.NewCronTicks()
	results := make([]assetConstraints, 0, len(entries))
	for _, entry := range entries {
		constraints, err := freshness.ConstraintsForWindow(source, entry.Policy, windowStart, windowEnd, entry.Upstream)
		if err != nil {
			return fmt.Errorf("asset %q: %w", entry.Key, err)
		}
		results = append(results, assetConstraints{Key: entry.Key, Constraints: constraints})
	}

	switch {
	case options.jsonOutput:
		encoder := json.NewEncoder(stdout)
		encoder.SetIndent("", "  ")
		return encoder.Encode(results)
	case options.cborOutput:
		return codec.NewEncoder(stdout).Encode(results)
	default:
		return printConstraintsTable(stdout, results)
	}
}

func printConstraintsTable(stdout io.Writer, results []assetConstraints) error {
	tw := tabwriter.NewWriter(stdout, 2, 0, 3, ' ', 0)
	fmt.Fprintf(tw, "ASSET\tREQUIRED BY\tREQUIRED DATA\tUPSTREAM\n")
	for _, result := range results {
		for _, constraint := range result.Constraints {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n",
				result.Key,
				constraint.RequiredByTime.Format(time.RFC3339),
				constraint.RequiredDataTime.Format(time.RFC3339),
				strings.Join(constraint.Keys.Strings(), ","),
			)
		}
	}
	return tw.Flush()
}

// parseInstant parses an RFC 3339 flag value, returning fallback when
// the flag was not given.
func parseInstant(value string, fallback time.Time) (time.Time, error) {
	if value == "" {
		return fallback, nil
	}
	instant, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, err
	}
	return instant, nil
}
