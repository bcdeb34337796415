package timeparser

import (
	"fmt"
	"time"
)

// ParseMeterTimestamp attempts to parse a meter timestamp with the formats
// the deployed devices are known to emit
func ParseMeterTimestamp(dateStr string) (time.Time, error) {
	formats := []string{
		"2006-01-02 15:04:05", // dashboard format
		"02/01/2006 15:04:05", // DD/MM/YYYY HH:mm:ss
		"2006-01-02",          // date-only form fields
		time.RFC3339,          // Standard RFC3339
	}

	var lastErr error
	for _, format := range formats {
		t, err := time.Parse(format, dateStr)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}

	return time.Time{}, fmt.Errorf("failed to parse timestamp '%s': %w", dateStr, lastErr)
}

// IsStale reports whether a device's last communication is older than the
// tolerance window, relative to now
func IsStale(communicationTime, now time.Time, toleranceMinutes int) bool {
	diff := now.Sub(communicationTime)
	if diff < 0 {
		diff = -diff
	}
	return diff > time.Duration(toleranceMinutes)*time.Minute
}
