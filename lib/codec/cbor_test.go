// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package codec

import (
	"bytes"
	"testing"
	"time"

	"github.com/bureau-foundation/freshness/lib/asset"
	"github.com/bureau-foundation/freshness/lib/freshness"
)

func TestPolicyRecordRoundTrip(t *testing.T) {
	original := freshness.PolicyRecord{
		MaximumLagMinutes:    90,
		CronSchedule:         "0 9 * * *",
		CronScheduleTimezone: "America/New_York",
	}

	data, err := Marshal(original)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	var decoded freshness.PolicyRecord
	if err := Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if decoded != original {
		t.Errorf("roundtrip mismatch: got %+v, want %+v", decoded, original)
	}
}

func TestConstraintRoundTripPreservesKeys(t *testing.T) {
	// asset.Key has unexported data and serializes via its text form;
	// the TextMarshaler configuration must preserve it through CBOR.
	original := freshness.Constraint{
		Keys:             asset.NewKeySet(asset.MustKey("warehouse/events"), asset.MustKey("warehouse/users")),
		RequiredDataTime: time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC),
		RequiredByTime:   time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC),
	}

	data, err := Marshal(original)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	var decoded freshness.Constraint
	if err := Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if !decoded.Keys.Equal(original.Keys) {
		t.Errorf("Keys = %v, want %v", decoded.Keys, original.Keys)
	}
	if !decoded.RequiredByTime.Equal(original.RequiredByTime) {
		t.Errorf("RequiredByTime = %v, want %v", decoded.RequiredByTime, original.RequiredByTime)
	}
}

func TestMarshalDeterministic(t *testing.T) {
	record := freshness.PolicyRecord{MaximumLagMinutes: 60, CronSchedule: "0 7 * * *"}

	first, err := Marshal(record)
	if err != nil {
		t.Fatal(err)
	}
	second, err := Marshal(record)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(first, second) {
		t.Error("equal values encoded to different bytes")
	}
}

func TestEncoderDecoderStream(t *testing.T) {
	var buffer bytes.Buffer

	records := []freshness.PolicyRecord{
		{MaximumLagMinutes: 30},
		{MaximumLagMinutes: 1440, CronSchedule: "0 9 * * *"},
	}
	encoder := NewEncoder(&buffer)
	for _, record := range records {
		if err := encoder.Encode(record); err != nil {
			t.Fatalf("Encode: %v", err)
		}
	}

	decoder := NewDecoder(&buffer)
	for i, want := range records {
		var got freshness.PolicyRecord
		if err := decoder.Decode(&got); err != nil {
			t.Fatalf("Decode #%d: %v", i, err)
		}
		if got != want {
			t.Errorf("record #%d = %+v, want %+v", i, got, want)
		}
	}
}
