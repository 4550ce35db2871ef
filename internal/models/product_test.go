package models

import (
	"errors"
	"sort"
	"testing"
)

func TestSizeStockScanRoundTrip(t *testing.T) {
	original := SizeStock{"M": 2, "L": 0}
	value, err := original.Value()
	if err != nil {
		t.Fatalf("Value returned error: %v", err)
	}

	var decoded SizeStock
	if err := decoded.Scan(value); err != nil {
		t.Fatalf("Scan returned error: %v", err)
	}
	if decoded["M"] != 2 || decoded["L"] != 0 {
		t.Fatalf("round trip mismatch: got %v", decoded)
	}
}

func TestSizeStockScanMalformed(t *testing.T) {
	var sizes SizeStock
	err := sizes.Scan([]byte(`{"M": "not a number"`))
	if err == nil {
		t.Fatal("expected decode error for malformed sizes JSON")
	}
	if !errors.Is(err, ErrMalformedSizes) {
		t.Fatalf("expected ErrMalformedSizes, got %v", err)
	}
}

func TestSizeStockScanEmpty(t *testing.T) {
	var sizes SizeStock
	if err := sizes.Scan(nil); err != nil {
		t.Fatalf("Scan(nil) returned error: %v", err)
	}
	if len(sizes) != 0 {
		t.Fatalf("expected empty stock, got %v", sizes)
	}
}

func TestSizeStockAvailableFiltersZeroQuantities(t *testing.T) {
	sizes := SizeStock{"S": 0, "M": 3, "L": 1, "XL": 0}
	available := sizes.Available()
	sort.Strings(available)

	if len(available) != 2 {
		t.Fatalf("expected 2 available sizes, got %v", available)
	}
	if available[0] != "L" || available[1] != "M" {
		t.Fatalf("unexpected available sizes: %v", available)
	}
}

func TestImageListScanMalformed(t *testing.T) {
	var images ImageList
	err := images.Scan("not json")
	if err == nil {
		t.Fatal("expected decode error for malformed images JSON")
	}
	if !errors.Is(err, ErrMalformedImages) {
		t.Fatalf("expected ErrMalformedImages, got %v", err)
	}
}

func TestProductLinesRoundTrip(t *testing.T) {
	lines := ProductLines{"جاكيت - قياس: M (15000 د.ع)"}
	value, err := lines.Value()
	if err != nil {
		t.Fatalf("Value returned error: %v", err)
	}

	var decoded ProductLines
	if err := decoded.Scan(value); err != nil {
		t.Fatalf("Scan returned error: %v", err)
	}
	if len(decoded) != 1 || decoded[0] != lines[0] {
		t.Fatalf("round trip mismatch: got %v", decoded)
	}
}
