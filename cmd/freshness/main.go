// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"os"

	"github.com/bureau-foundation/freshness/cmd/freshness/cli"
	"github.com/bureau-foundation/freshness/lib/clock"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	return rootCommand(clock.Real()).Execute(os.Args[1:])
}

func rootCommand(clk clock.Clock) *cli.Command {
	return &cli.Command{
		Name:    "freshness",
		Summary: "Evaluate freshness policies for data assets",
		Description: "freshness computes the time-bound constraints a freshness policy\n" +
			"imposes on a data asset and how many minutes overdue the asset\n" +
			"currently is, given the timestamps of the upstream data it used.",
		Subcommands: []*cli.Command{
			validateCommand(),
			constraintsCommand(clk),
			latenessCommand(clk),
			ticksCommand(clk),
		},
	}
}
