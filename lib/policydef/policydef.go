// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package policydef

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	"github.com/bureau-foundation/freshness/lib/asset"
	"github.com/bureau-foundation/freshness/lib/freshness"
)

// File is the on-disk shape of a freshness definitions file.
type File struct {
	Assets []AssetDefinition `yaml:"assets" json:"assets"`
}

// AssetDefinition declares one governed asset: its key, the upstream
// assets whose data it incorporates, and the freshness policy it must
// satisfy.
type AssetDefinition struct {
	Key      string       `yaml:"key" json:"key"`
	Upstream []string     `yaml:"upstream" json:"upstream"`
	Policy   PolicyFields `yaml:"policy" json:"policy"`
}

// PolicyFields is the unvalidated policy block of an asset definition.
type PolicyFields struct {
	// MaximumLag is a Go duration string ("90m", "24h").
	MaximumLag string `yaml:"maximum_lag" json:"maximum_lag"`

	CronSchedule         string `yaml:"cron_schedule" json:"cron_schedule"`
	CronScheduleTimezone string `yaml:"cron_schedule_timezone" json:"cron_schedule_timezone"`
}

// Entry is a validated asset definition: every field has been through
// its constructor, so an Entry is safe to evaluate directly.
type Entry struct {
	Key      asset.Key
	Upstream asset.KeySet
	Policy   freshness.Policy
}

// ReadFile loads and validates a definitions file. The format is
// chosen by extension: .yaml/.yml parse as YAML, .json/.jsonc as JSON
// extended with comments and trailing commas.
func ReadFile(path string) ([]Entry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	var entries []Entry
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		entries, err = ParseYAML(data)
	case ".json", ".jsonc":
		entries, err = ParseJSON(data)
	default:
		return nil, fmt.Errorf("%s: unsupported definitions format %q", path, filepath.Ext(path))
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return entries, nil
}

// ParseYAML parses and validates YAML definitions bytes.
func ParseYAML(data []byte) ([]Entry, error) {
	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing definitions: %w", err)
	}
	return resolve(file)
}

// ParseJSON parses and validates JSON definitions bytes. The input may
// contain // line comments, /* block comments */, and trailing commas;
// they are stripped before unmarshaling.
func ParseJSON(data []byte) ([]Entry, error) {
	var file File
	if err := json.Unmarshal(jsonc.ToJSON(data), &file); err != nil {
		return nil, fmt.Errorf("parsing definitions: %w", err)
	}
	return resolve(file)
}

// resolve validates every definition and rejects duplicate asset keys.
func resolve(file File) ([]Entry, error) {
	entries := make([]Entry, 0, len(file.Assets))
	seen := make(map[asset.Key]bool, len(file.Assets))

	for index, definition := range file.Assets {
		key, err := asset.NewKey(definition.Key)
		if err != nil {
			return nil, fmt.Errorf("asset #%d: %w", index, err)
		}
		if seen[key] {
			return nil, fmt.Errorf("asset %q: defined twice", key)
		}
		seen[key] = true

		upstream := make([]asset.Key, 0, len(definition.Upstream))
		for _, path := range definition.Upstream {
			upstreamKey, err := asset.NewKey(path)
			if err != nil {
				return nil, fmt.Errorf("asset %q: upstream: %w", key, err)
			}
			upstream = append(upstream, upstreamKey)
		}

		policy, err := resolvePolicy(definition.Policy)
		if err != nil {
			return nil, fmt.Errorf("asset %q: %w", key, err)
		}

		entries = append(entries, Entry{
			Key:      key,
			Upstream: asset.NewKeySet(upstream...),
			Policy:   policy,
		})
	}
	return entries, nil
}

// resolvePolicy turns the raw policy block into a validated Policy.
// An unparseable maximum_lag is a parameter error, consistent with the
// out-of-range check inside NewPolicy.
func resolvePolicy(fields PolicyFields) (freshness.Policy, error) {
	if fields.MaximumLag == "" {
		return freshness.Policy{}, &freshness.ParameterError{
			Param:  "maximum_lag",
			Detail: "missing",
		}
	}
	lag, err := time.ParseDuration(fields.MaximumLag)
	if err != nil {
		return freshness.Policy{}, &freshness.ParameterError{
			Param:  "maximum_lag",
			Detail: fmt.Sprintf("cannot parse %q as a duration", fields.MaximumLag),
		}
	}
	return freshness.NewPolicy(lag, fields.CronSchedule, fields.CronScheduleTimezone)
}
