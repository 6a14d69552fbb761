// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/pflag"

	"github.com/bureau-foundation/freshness/cmd/freshness/cli"
	"github.com/bureau-foundation/freshness/lib/asset"
	"github.com/bureau-foundation/freshness/lib/clock"
	"github.com/bureau-foundation/freshness/lib/freshness"
	"github.com/bureau-foundation/freshness/lib/policydef"
)

type latenessOptions struct {
	observedFile string
	at           string
	jsonOutput   bool
}

func latenessCommand(clk clock.Clock) *cli.Command {
	var options latenessOptions
	return &cli.Command{
		Name:    "lateness",
		Summary: "Evaluate how late each asset's data is",
		Description: "Reads asset definitions and an observation report mapping\n" +
			"upstream asset keys to the data times last used, then reports\n" +
			"how many minutes late each asset is against its policy.",
		Usage: "freshness lateness --observed <report-file> [flags] <definitions-file>",
		Examples: []cli.Example{
			{
				Description: "Evaluate lateness as of now",
				Command:     "freshness lateness --observed observed.json freshness.yaml",
			},
			{
				Description: "Evaluate at a fixed instant, as JSON",
				Command:     "freshness lateness --observed observed.json --at 2026-03-01T10:00:00Z --json freshness.yaml",
			},
		},
		Flags: func() *pflag.FlagSet {
			flags := pflag.NewFlagSet("lateness", pflag.ContinueOnError)
			flags.StringVar(&options.observedFile, "observed", "", "JSON report of upstream key to RFC 3339 data time (or null)")
			flags.StringVar(&options.at, "at", "", "evaluation time, RFC 3339 (default: now)")
			flags.BoolVar(&options.jsonOutput, "json", false, "emit JSON")
			return flags
		},
		Run: func(args []string) error {
			return runLateness(clk, os.Stdout, options, args)
		},
	}
}

func runLateness(clk clock.Clock, stdout io.Writer, options latenessOptions, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("expected exactly one definitions file, got %d arguments", len(args))
	}
	if options.observedFile == "" {
		return fmt.Errorf("--observed is required")
	}

	evaluationTime, err := parseInstant(options.at, clk.Now())
	if err != nil {
		return fmt.Errorf("--at: %w", err)
	}

	entries, err := policydef.ReadFile(args[0])
	if err != nil {
		return err
	}
	observed, err := policydef.ReadReportFile(options.observedFile)
	if err != nil {
		return err
	}

	source := freshness.NewCronTicks()
	reports := make([]freshness.LatenessReport, 0, len(entries))
	for _, entry := range entries {
		// Upstream keys absent from the observation report map to the
		// zero time, which MinutesLate treats as unknown.
		usedDataTimes := make(map[asset.Key]time.Time, len(entry.Upstream))
		for _, key := range entry.Upstream {
			usedDataTimes[key] = observed[key]
		}
		lateness, err := freshness.MinutesLate(source, entry.Policy, evaluationTime, usedDataTimes)
		if err != nil {
			return fmt.Errorf("asset %q: %w", entry.Key, err)
		}
		reports = append(reports, freshness.LatenessReport{Key: entry.Key, Lateness: lateness})
	}

	if options.jsonOutput {
		encoder := json.NewEncoder(stdout)
		encoder.SetIndent("", "  ")
		return encoder.Encode(reports)
	}
	return printLatenessTable(stdout, reports)
}

func printLatenessTable(stdout io.Writer, reports []freshness.LatenessReport) error {
	tw := tabwriter.NewWriter(stdout, 2, 0, 3, ' ', 0)
	fmt.Fprintf(tw, "ASSET\tMINUTES LATE\n")
	for _, report := range reports {
		if !report.Lateness.Known {
			fmt.Fprintf(tw, "%s\tunknown\n", report.Key)
			continue
		}
		fmt.Fprintf(tw, "%s\t%.1f\n", report.Key, report.Lateness.Minutes)
	}
	return tw.Flush()
}
