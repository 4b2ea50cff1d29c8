package repository

import (
	"testing"
	"time"
)

func TestDBTimeScan(t *testing.T) {
	want := time.Date(2025, 3, 4, 10, 11, 12, 345000000, time.UTC)

	cases := []any{
		"2025-03-04 10:11:12.345",
		[]byte("2025-03-04T10:11:12.345Z"),
		want,
	}
	for _, c := range cases {
		var got dbTime
		if err := got.Scan(c); err != nil {
			t.Fatalf("scan %v: %v", c, err)
		}
		if !got.Equal(want) {
			t.Errorf("scan %v: expected %v, got %v", c, want, got.Time)
		}
	}

	var plain dbTime
	if err := plain.Scan("2025-03-04 10:11:12"); err != nil {
		t.Fatalf("scan without fraction: %v", err)
	}
	if err := plain.Scan(42); err == nil {
		t.Error("expected error for int input")
	}
}
