package model

import (
	"github.com/grh-water/water-console/internal/tableapi"
)

// Project represents a water project installation
type Project struct {
	ID                string
	AreaName          string
	DeviceSN          string
	DeviceName        string
	DeviceType        string
	DeviceStatus      Status
	Operator          string
	InstalledTime     string
	CommunicationTime string
	InstructionManual string
}

// ProjectMapper translates between project records and entities.
type ProjectMapper struct{}

// FromRecord builds a Project from a backend record, defaulting every
// absent field.
func (ProjectMapper) FromRecord(r tableapi.Record) Project {
	return Project{
		ID:                r.ID.String(),
		AreaName:          r.Fields.Str("Area name"),
		DeviceSN:          r.Fields.Str("Device S/N"),
		DeviceName:        r.Fields.Str("Device Name"),
		DeviceType:        r.Fields.Str("Device Type"),
		DeviceStatus:      StatusFromBackend(r.Fields.Str("Device Status")),
		Operator:          r.Fields.Str("Operator"),
		InstalledTime:     r.Fields.Str("Installed Time"),
		CommunicationTime: r.Fields.Str("Communication Time"),
		InstructionManual: r.Fields.Str("Instruction Manual"),
	}
}

// Fields re-emits every backend key. Updates are full-field overwrites, so
// unchanged fields must be present too.
func (ProjectMapper) Fields(p Project) tableapi.FieldMap {
	return tableapi.FieldMap{
		"Area name":          p.AreaName,
		"Device S/N":         p.DeviceSN,
		"Device Name":        p.DeviceName,
		"Device Type":        p.DeviceType,
		"Device Status":      p.DeviceStatus.Backend(),
		"Operator":           p.Operator,
		"Installed Time":     p.InstalledTime,
		"Communication Time": p.CommunicationTime,
		"Instruction Manual": p.InstructionManual,
	}
}
