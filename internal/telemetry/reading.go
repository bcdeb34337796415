// Package telemetry holds the raw meter-reading rows behind the data
// monitoring and data query pages. Readings are a different schema from the
// billed meter entity and are kept separate on purpose.
package telemetry

import "time"

// Reading represents one raw telemetry row as reported by a meter. Stale is
// derived: it flags a communication time older than the configured window.
type Reading struct {
	ID                int
	Sort              int
	AreaName          string
	MeterSN           string
	CommunicationTime string
	Stale             bool
	PositiveTotalFlow float64
	Voltage           float64
	BatteryStatus     string
	EMDisturbance     string
	ValveStatus       string
	PositiveFlowRate  string
	DeviceID          int
	IMEI              string
	PCI               string
	SNR               string
	IMSI              string
}

// Repository serves telemetry rows. No live feed reaches the console, so
// the repository is seeded with the last known snapshot.
type Repository struct {
	classifier *Classifier
	readings   []Reading
}

// NewRepository creates a telemetry repository with derived statuses
// filled in.
func NewRepository(classifier *Classifier) *Repository {
	r := &Repository{
		classifier: classifier,
		readings:   sampleReadings(),
	}
	r.refreshDerived(time.Now())
	return r
}

// List returns a copy of all readings.
func (r *Repository) List() []Reading {
	out := make([]Reading, len(r.readings))
	copy(out, r.readings)
	return out
}

// Refresh recomputes the derived status columns.
func (r *Repository) Refresh() {
	r.refreshDerived(time.Now())
}

func (r *Repository) refreshDerived(now time.Time) {
	for i := range r.readings {
		r.readings[i].BatteryStatus = r.classifier.BatteryStatus(r.readings[i].Voltage)
		r.readings[i].Stale = r.classifier.IsStale(r.readings[i].CommunicationTime, now)
	}
}

func sampleReadings() []Reading {
	return []Reading{
		{ID: 1, Sort: 1, AreaName: "Operaciones", MeterSN: "MTR001", CommunicationTime: "2024-12-16 14:25:00", PositiveTotalFlow: 1250.5, Voltage: 3.58, EMDisturbance: "Normal", ValveStatus: "Open", PositiveFlowRate: "15.2 L/min", DeviceID: 1001, IMEI: "351756051523999", PCI: "100", SNR: "12.5", IMSI: "310260123456789"},
		{ID: 2, Sort: 2, AreaName: "Calidad", MeterSN: "MTR002", CommunicationTime: "2024-12-16 13:45:00", PositiveTotalFlow: 890.3, Voltage: 3.31, EMDisturbance: "High", ValveStatus: "Open", PositiveFlowRate: "8.7 L/min", DeviceID: 1002, IMEI: "351756051524000", PCI: "101", SNR: "10.8", IMSI: "310260123456790"},
		{ID: 3, Sort: 3, AreaName: "Mantenimiento", MeterSN: "MTR003", CommunicationTime: "2024-12-16 12:30:00", PositiveTotalFlow: 2100.8, Voltage: 3.61, EMDisturbance: "Normal", ValveStatus: "Closed", PositiveFlowRate: "0.0 L/min", DeviceID: 1003, IMEI: "351756051524001", PCI: "102", SNR: "14.2", IMSI: "310260123456791"},
		{ID: 4, Sort: 4, AreaName: "Operaciones", MeterSN: "MTR004", CommunicationTime: "2024-12-16 11:15:00", PositiveTotalFlow: 567.2, Voltage: 3.12, EMDisturbance: "Normal", ValveStatus: "Open", PositiveFlowRate: "22.1 L/min", DeviceID: 1004, IMEI: "351756051524002", PCI: "103", SNR: "9.3", IMSI: "310260123456792"},
		{ID: 5, Sort: 5, AreaName: "Calidad", MeterSN: "MTR005", CommunicationTime: "2024-12-16 10:00:00", PositiveTotalFlow: 3340.1, Voltage: 3.55, EMDisturbance: "Low", ValveStatus: "Open", PositiveFlowRate: "18.9 L/min", DeviceID: 1005, IMEI: "351756051524003", PCI: "104", SNR: "13.7", IMSI: "310260123456793"},
	}
}
