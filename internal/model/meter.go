package model

import (
	"github.com/grh-water/water-console/internal/tableapi"
)

// Meter represents a billed water meter. Optional billing fields are
// pointers: nil means the field was never set or was cleared, which the
// backend stores as null rather than "".
type Meter struct {
	ID                string
	CreatedAt         string
	UpdatedAt         string
	AreaName          string
	AccountNumber     *string
	UserName          *string
	UserAddress       *string
	MeterSN           string
	MeterName         string
	MeterStatus       string
	ProtocolType      string
	PriceNo           *string
	PriceName         *string
	DMAPartition      *string
	SupplyTypes       string
	DeviceID          string
	DeviceName        string
	DeviceType        string
	UsageAnalysisType string
	InstalledTime     string
}

// MeterMapper translates between meter records and entities.
type MeterMapper struct{}

func (MeterMapper) FromRecord(r tableapi.Record) Meter {
	return Meter{
		ID:                r.ID.String(),
		CreatedAt:         r.Fields.Str("CreatedAt"),
		UpdatedAt:         r.Fields.Str("UpdatedAt"),
		AreaName:          r.Fields.Str("Area Name"),
		AccountNumber:     r.Fields.NullStr("Account Number"),
		UserName:          r.Fields.NullStr("User Name"),
		UserAddress:       r.Fields.NullStr("User Address"),
		MeterSN:           r.Fields.Str("Meter S/N"),
		MeterName:         r.Fields.Str("Meter Name"),
		MeterStatus:       r.Fields.Str("Meter Status"),
		ProtocolType:      r.Fields.Str("Protocol Type"),
		PriceNo:           r.Fields.NullStr("Price No."),
		PriceName:         r.Fields.NullStr("Price Name"),
		DMAPartition:      r.Fields.NullStr("DMA Partition"),
		SupplyTypes:       r.Fields.Str("Supply Types"),
		DeviceID:          r.Fields.Str("Device ID"),
		DeviceName:        r.Fields.Str("Device Name"),
		DeviceType:        r.Fields.Str("Device Type"),
		UsageAnalysisType: r.Fields.Str("Usage Analysis Type"),
		InstalledTime:     r.Fields.Str("Installed Time"),
	}
}

func (MeterMapper) Fields(m Meter) tableapi.FieldMap {
	return tableapi.FieldMap{
		"CreatedAt":           m.CreatedAt,
		"UpdatedAt":           m.UpdatedAt,
		"Area Name":           m.AreaName,
		"Account Number":      m.AccountNumber,
		"User Name":           m.UserName,
		"User Address":        m.UserAddress,
		"Meter S/N":           m.MeterSN,
		"Meter Name":          m.MeterName,
		"Meter Status":        m.MeterStatus,
		"Protocol Type":       m.ProtocolType,
		"Price No.":           m.PriceNo,
		"Price Name":          m.PriceName,
		"DMA Partition":       m.DMAPartition,
		"Supply Types":        m.SupplyTypes,
		"Device ID":           m.DeviceID,
		"Device Name":         m.DeviceName,
		"Device Type":         m.DeviceType,
		"Usage Analysis Type": m.UsageAnalysisType,
		"Installed Time":      m.InstalledTime,
	}
}
