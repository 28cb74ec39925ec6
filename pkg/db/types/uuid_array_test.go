package dbtypes

import (
	"testing"

	"github.com/google/uuid"
)

func TestUUIDArrayRoundTrip(t *testing.T) {
	ids := UUIDArray{uuid.New(), uuid.New()}

	value, err := ids.Value()
	if err != nil {
		t.Fatalf("Value() error: %v", err)
	}

	var parsed UUIDArray
	if err := parsed.Scan(value); err != nil {
		t.Fatalf("Scan() error: %v", err)
	}

	if len(parsed) != len(ids) {
		t.Fatalf("expected %d ids, got %d", len(ids), len(parsed))
	}
	for i := range ids {
		if parsed[i] != ids[i] {
			t.Fatalf("id %d mismatch: %s != %s", i, parsed[i], ids[i])
		}
	}
}

func TestUUIDArrayScanEmpty(t *testing.T) {
	var parsed UUIDArray
	if err := parsed.Scan("{}"); err != nil {
		t.Fatalf("Scan empty error: %v", err)
	}
	if len(parsed) != 0 {
		t.Fatalf("expected empty array, got %v", parsed)
	}

	if err := parsed.Scan(nil); err != nil {
		t.Fatalf("Scan nil error: %v", err)
	}
	if len(parsed) != 0 {
		t.Fatalf("expected empty array, got %v", parsed)
	}
}

func TestUUIDArrayContains(t *testing.T) {
	target := uuid.New()
	ids := UUIDArray{uuid.New(), target}

	if !ids.Contains(target) {
		t.Fatal("expected Contains to find id")
	}
	if ids.Contains(uuid.New()) {
		t.Fatal("expected Contains to miss unknown id")
	}
}
