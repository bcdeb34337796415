package telemetry

import (
	"testing"
	"time"
)

func TestBatteryStatusThresholds(t *testing.T) {
	c := NewClassifier(3.4, 3.2, 1440)

	tests := []struct {
		voltage float64
		want    string
	}{
		{3.6, BatteryGood},
		{3.41, BatteryGood},
		{3.4, BatteryLow}, // boundary is inclusive
		{3.3, BatteryLow},
		{3.2, BatteryCritical},
		{3.0, BatteryCritical},
	}
	for _, tt := range tests {
		if got := c.BatteryStatus(tt.voltage); got != tt.want {
			t.Errorf("BatteryStatus(%v) = %q, want %q", tt.voltage, got, tt.want)
		}
	}
}

func TestIsStale(t *testing.T) {
	c := NewClassifier(3.4, 3.2, 60)
	now := time.Date(2024, 12, 16, 14, 0, 0, 0, time.UTC)

	if c.IsStale("2024-12-16 13:30:00", now) {
		t.Error("reading 30 minutes old is fresh at 60 minute tolerance")
	}
	if !c.IsStale("2024-12-16 10:00:00", now) {
		t.Error("reading 4 hours old is stale")
	}
	if !c.IsStale("not a timestamp", now) {
		t.Error("unparseable communication time counts as stale")
	}
}

func TestRepositoryDerivesBatteryStatus(t *testing.T) {
	repo := NewRepository(NewClassifier(3.4, 3.2, 1440))

	bySN := make(map[string]Reading)
	for _, r := range repo.List() {
		bySN[r.MeterSN] = r
	}

	if got := bySN["MTR001"].BatteryStatus; got != BatteryGood {
		t.Errorf("MTR001 (3.58V) = %q, want %q", got, BatteryGood)
	}
	if got := bySN["MTR002"].BatteryStatus; got != BatteryLow {
		t.Errorf("MTR002 (3.31V) = %q, want %q", got, BatteryLow)
	}
	if got := bySN["MTR004"].BatteryStatus; got != BatteryCritical {
		t.Errorf("MTR004 (3.12V) = %q, want %q", got, BatteryCritical)
	}
}

func TestRepositoryMarksStaleReadings(t *testing.T) {
	repo := NewRepository(NewClassifier(3.4, 3.2, 60))
	now := time.Date(2024, 12, 16, 15, 0, 0, 0, time.UTC)
	repo.refreshDerived(now)

	bySN := make(map[string]Reading)
	for _, r := range repo.List() {
		bySN[r.MeterSN] = r
	}

	if bySN["MTR001"].Stale {
		t.Error("MTR001 (35 minutes old) is fresh at 60 minute tolerance")
	}
	if !bySN["MTR005"].Stale {
		t.Error("MTR005 (5 hours old) is stale at 60 minute tolerance")
	}
}

func TestRepositoryListReturnsCopy(t *testing.T) {
	repo := NewRepository(NewClassifier(3.4, 3.2, 1440))

	first := repo.List()
	first[0].MeterSN = "TAMPERED"

	if repo.List()[0].MeterSN == "TAMPERED" {
		t.Error("List must not expose the underlying slice")
	}
}
