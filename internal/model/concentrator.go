package model

import (
	"github.com/grh-water/water-console/internal/tableapi"
)

// Concentrator represents a data concentrator device
type Concentrator struct {
	ID                string
	AreaName          string
	DeviceSN          string
	DeviceName        string
	DeviceTime        string
	DeviceStatus      Status
	Operator          string
	InstalledTime     string
	CommunicationTime string
	InstructionManual string
}

// Gateway is the LoRa gateway sub-record collected on the concentrator
// form. The backend has no table for it, so it is never persisted; saving
// one only logs a warning (see the concentrator page).
type Gateway struct {
	GatewayID        string
	EUI              string
	Name             string
	Description      string
	AntennaPlacement string
}

// ConcentratorMapper translates between concentrator records and entities.
type ConcentratorMapper struct{}

func (ConcentratorMapper) FromRecord(r tableapi.Record) Concentrator {
	return Concentrator{
		ID:                r.ID.String(),
		AreaName:          r.Fields.Str("Area Name"),
		DeviceSN:          r.Fields.Str("Device S/N"),
		DeviceName:        r.Fields.Str("Device Name"),
		DeviceTime:        r.Fields.Str("Device Time"),
		DeviceStatus:      StatusFromBackend(r.Fields.Str("Device Status")),
		Operator:          r.Fields.Str("Operator"),
		InstalledTime:     r.Fields.Str("Installed Time"),
		CommunicationTime: r.Fields.Str("Communication Time"),
		InstructionManual: r.Fields.Str("Instruction Manual"),
	}
}

func (ConcentratorMapper) Fields(c Concentrator) tableapi.FieldMap {
	return tableapi.FieldMap{
		"Area Name":          c.AreaName,
		"Device S/N":         c.DeviceSN,
		"Device Name":        c.DeviceName,
		"Device Time":        c.DeviceTime,
		"Device Status":      c.DeviceStatus.Backend(),
		"Operator":           c.Operator,
		"Installed Time":     c.InstalledTime,
		"Communication Time": c.CommunicationTime,
		"Instruction Manual": c.InstructionManual,
	}
}
