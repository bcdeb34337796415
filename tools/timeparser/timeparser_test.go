package timeparser

import (
	"testing"
	"time"
)

func TestParseMeterTimestamp(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want time.Time
	}{
		{name: "dashboard format", in: "2024-12-16 14:25:00", want: time.Date(2024, 12, 16, 14, 25, 0, 0, time.UTC)},
		{name: "slash format", in: "16/12/2024 14:25:00", want: time.Date(2024, 12, 16, 14, 25, 0, 0, time.UTC)},
		{name: "date only", in: "2024-12-16", want: time.Date(2024, 12, 16, 0, 0, 0, 0, time.UTC)},
		{name: "rfc3339", in: "2024-12-16T14:25:00Z", want: time.Date(2024, 12, 16, 14, 25, 0, 0, time.UTC)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseMeterTimestamp(tt.in)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParseMeterTimestampRejectsGarbage(t *testing.T) {
	if _, err := ParseMeterTimestamp("yesterday"); err == nil {
		t.Fatal("expected an error for an unparseable timestamp")
	}
	if _, err := ParseMeterTimestamp(""); err == nil {
		t.Fatal("expected an error for an empty timestamp")
	}
}

func TestIsStale(t *testing.T) {
	now := time.Date(2024, 12, 16, 14, 0, 0, 0, time.UTC)

	fresh := now.Add(-30 * time.Minute)
	if IsStale(fresh, now, 60) {
		t.Error("a 30 minute old reading is not stale at 60 minute tolerance")
	}

	old := now.Add(-2 * time.Hour)
	if !IsStale(old, now, 60) {
		t.Error("a 2 hour old reading is stale at 60 minute tolerance")
	}

	// Clock skew on the device: a future timestamp counts by distance too.
	future := now.Add(90 * time.Minute)
	if !IsStale(future, now, 60) {
		t.Error("a reading from the future past the tolerance is stale")
	}
}
