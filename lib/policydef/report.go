// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package policydef

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/tidwall/jsonc"

	"github.com/bureau-foundation/freshness/lib/asset"
)

// ParseReport parses an observed-data report: a JSON object mapping
// upstream asset key to the RFC 3339 timestamp of the data that was
// incorporated, with null meaning "no upstream data was used". A null
// maps to the zero time, the missing-data marker lateness evaluation
// expects. Comments and trailing commas are tolerated.
func ParseReport(data []byte) (map[asset.Key]time.Time, error) {
	var raw map[string]*string
	if err := json.Unmarshal(jsonc.ToJSON(data), &raw); err != nil {
		return nil, fmt.Errorf("parsing report: %w", err)
	}

	report := make(map[asset.Key]time.Time, len(raw))
	for path, value := range raw {
		key, err := asset.NewKey(path)
		if err != nil {
			return nil, fmt.Errorf("report: %w", err)
		}
		if value == nil {
			report[key] = time.Time{}
			continue
		}
		timestamp, err := time.Parse(time.RFC3339, *value)
		if err != nil {
			return nil, fmt.Errorf("report: asset %q: %w", path, err)
		}
		report[key] = timestamp
	}
	return report, nil
}

// ReadReportFile loads and parses an observed-data report file.
func ReadReportFile(path string) (map[asset.Key]time.Time, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	report, err := ParseReport(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return report, nil
}
