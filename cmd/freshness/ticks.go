// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/pflag"

	"github.com/bureau-foundation/freshness/cmd/freshness/cli"
	"github.com/bureau-foundation/freshness/lib/clock"
	"github.com/bureau-foundation/freshness/lib/cron"
)

type ticksOptions struct {
	timezone string
	count    int
	from     string
	reverse  bool
}

func ticksCommand(clk clock.Clock) *cli.Command {
	var options ticksOptions
	return &cli.Command{
		Name:    "ticks",
		Summary: "Print upcoming (or past) ticks of a cron expression",
		Usage:   "freshness ticks [flags] <cron-expression>",
		Examples: []cli.Example{
			{
				Description: "The next five daily 9 AM ticks",
				Command:     "freshness ticks --count 5 '0 9 * * *'",
			},
			{
				Description: "Past hourly ticks in New York time",
				Command:     "freshness ticks --reverse --timezone America/New_York '0 * * * *'",
			},
		},
		Flags: func() *pflag.FlagSet {
			flags := pflag.NewFlagSet("ticks", pflag.ContinueOnError)
			flags.StringVar(&options.timezone, "timezone", "", "IANA timezone for the schedule (default: UTC)")
			flags.IntVar(&options.count, "count", 10, "number of ticks to print")
			flags.StringVar(&options.from, "from", "", "starting instant, RFC 3339 (default: now)")
			flags.BoolVar(&options.reverse, "reverse", false, "walk backward from the starting instant")
			return flags
		},
		Run: func(args []string) error {
			return runTicks(clk, os.Stdout, options, args)
		},
	}
}

func runTicks(clk clock.Clock, stdout io.Writer, options ticksOptions, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("expected exactly one cron expression, got %d arguments", len(args))
	}
	if options.count <= 0 {
		return fmt.Errorf("--count must be positive, got %d", options.count)
	}

	schedule, err := cron.Parse(args[0])
	if err != nil {
		return err
	}
	location := time.UTC
	if options.timezone != "" {
		location, err = time.LoadLocation(options.timezone)
		if err != nil {
			return fmt.Errorf("--timezone: %w", err)
		}
	}
	start, err := parseInstant(options.from, clk.Now())
	if err != nil {
		return fmt.Errorf("--from: %w", err)
	}

	var ticks *cron.Ticks
	if options.reverse {
		ticks = schedule.Reverse(start, location)
	} else {
		ticks = schedule.Forward(start, location)
	}
	for i := 0; i < options.count; i++ {
		tick, ok := ticks.Next()
		if !ok {
			break
		}
		fmt.Fprintln(stdout, tick.In(location).Format(time.RFC3339))
	}
	return nil
}
