package ui

import (
	"time"

	"github.com/charmbracelet/bubbles/table"
	"github.com/grh-water/water-console/internal/model"
	"github.com/grh-water/water-console/internal/resource"
)

// orEmpty and nullable bridge the meter's tri-state optional fields to the
// form's plain strings: nil renders as "" and "" saves back as nil.
func orEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func nullable(v string) *string {
	if v == "" {
		return nil
	}
	return &v
}

// NewMetersPage builds the meter management page.
func NewMetersPage(client *resource.Client[model.Meter]) *CrudPage[model.Meter] {
	return NewCrudPage(crudConfig[model.Meter]{
		title: "Meters",
		columns: []column{
			{"Area", 14}, {"Account", 10}, {"User", 14}, {"Meter S/N", 12},
			{"Meter Name", 16}, {"Status", 10}, {"Protocol", 10}, {"Device ID", 10},
			{"Installed", 18},
		},
		row: func(m model.Meter) table.Row {
			return table.Row{
				m.AreaName, orEmpty(m.AccountNumber), orEmpty(m.UserName), m.MeterSN,
				m.MeterName, m.MeterStatus, m.ProtocolType, m.DeviceID, m.InstalledTime,
			}
		},
		id: func(m model.Meter) string { return m.ID },
		searchFields: func(m model.Meter) []string {
			return []string{m.MeterSN, m.MeterName, m.AreaName}
		},
		fields: []field[model.Meter]{
			{label: "Area Name", required: true,
				get: func(m model.Meter) string { return m.AreaName },
				set: func(m model.Meter, v string) model.Meter { m.AreaName = v; return m }},
			{label: "Account Number",
				get: func(m model.Meter) string { return orEmpty(m.AccountNumber) },
				set: func(m model.Meter, v string) model.Meter { m.AccountNumber = nullable(v); return m }},
			{label: "User Name",
				get: func(m model.Meter) string { return orEmpty(m.UserName) },
				set: func(m model.Meter, v string) model.Meter { m.UserName = nullable(v); return m }},
			{label: "User Address",
				get: func(m model.Meter) string { return orEmpty(m.UserAddress) },
				set: func(m model.Meter, v string) model.Meter { m.UserAddress = nullable(v); return m }},
			{label: "Meter S/N", required: true,
				get: func(m model.Meter) string { return m.MeterSN },
				set: func(m model.Meter, v string) model.Meter { m.MeterSN = v; return m }},
			{label: "Meter Name", required: true,
				get: func(m model.Meter) string { return m.MeterName },
				set: func(m model.Meter, v string) model.Meter { m.MeterName = v; return m }},
			{label: "Meter Status",
				get: func(m model.Meter) string { return m.MeterStatus },
				set: func(m model.Meter, v string) model.Meter { m.MeterStatus = v; return m }},
			{label: "Protocol Type",
				get: func(m model.Meter) string { return m.ProtocolType },
				set: func(m model.Meter, v string) model.Meter { m.ProtocolType = v; return m }},
			{label: "Price No.",
				get: func(m model.Meter) string { return orEmpty(m.PriceNo) },
				set: func(m model.Meter, v string) model.Meter { m.PriceNo = nullable(v); return m }},
			{label: "Price Name",
				get: func(m model.Meter) string { return orEmpty(m.PriceName) },
				set: func(m model.Meter, v string) model.Meter { m.PriceName = nullable(v); return m }},
			{label: "DMA Partition",
				get: func(m model.Meter) string { return orEmpty(m.DMAPartition) },
				set: func(m model.Meter, v string) model.Meter { m.DMAPartition = nullable(v); return m }},
			{label: "Supply Types",
				get: func(m model.Meter) string { return m.SupplyTypes },
				set: func(m model.Meter, v string) model.Meter { m.SupplyTypes = v; return m }},
			{label: "Device ID",
				get: func(m model.Meter) string { return m.DeviceID },
				set: func(m model.Meter, v string) model.Meter { m.DeviceID = v; return m }},
			{label: "Device Name",
				get: func(m model.Meter) string { return m.DeviceName },
				set: func(m model.Meter, v string) model.Meter { m.DeviceName = v; return m }},
			{label: "Device Type",
				get: func(m model.Meter) string { return m.DeviceType },
				set: func(m model.Meter, v string) model.Meter { m.DeviceType = v; return m }},
			{label: "Usage Analysis Type",
				get: func(m model.Meter) string { return m.UsageAnalysisType },
				set: func(m model.Meter, v string) model.Meter { m.UsageAnalysisType = v; return m }},
			{label: "Installed Time",
				get: func(m model.Meter) string { return m.InstalledTime },
				set: func(m model.Meter, v string) model.Meter { m.InstalledTime = v; return m }},
		},
		template: func() model.Meter {
			now := time.Now().Format("2006-01-02 15:04:05")
			return model.Meter{CreatedAt: now, UpdatedAt: now}
		},
		ops: ops[model.Meter]{
			load:   client.List,
			create: client.Create,
			update: client.Update,
			delete: client.Delete,
		},
	})
}
