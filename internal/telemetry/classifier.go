package telemetry

import (
	"time"

	"github.com/grh-water/water-console/tools/timeparser"
)

// Battery status labels shown in the monitoring grid
const (
	BatteryGood     = "Good"
	BatteryLow      = "Low"
	BatteryCritical = "Critical"
)

// Classifier derives display statuses from raw reading values with
// configurable thresholds
type Classifier struct {
	lowVoltage      float64
	criticalVoltage float64
	staleMinutes    int
}

// NewClassifier creates a classifier with the specified thresholds
func NewClassifier(lowVoltage, criticalVoltage float64, staleMinutes int) *Classifier {
	return &Classifier{
		lowVoltage:      lowVoltage,
		criticalVoltage: criticalVoltage,
		staleMinutes:    staleMinutes,
	}
}

// BatteryStatus classifies a battery voltage
func (c *Classifier) BatteryStatus(voltage float64) string {
	switch {
	case voltage <= c.criticalVoltage:
		return BatteryCritical
	case voltage <= c.lowVoltage:
		return BatteryLow
	default:
		return BatteryGood
	}
}

// IsStale reports whether a reading's communication time is older than the
// staleness window. Unparseable timestamps count as stale.
func (c *Classifier) IsStale(communicationTime string, now time.Time) bool {
	t, err := timeparser.ParseMeterTimestamp(communicationTime)
	if err != nil {
		return true
	}
	return timeparser.IsStale(t, now, c.staleMinutes)
}
