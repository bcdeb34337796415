package ui

import (
	"github.com/charmbracelet/bubbles/table"
	"github.com/grh-water/water-console/internal/model"
	"github.com/grh-water/water-console/internal/resource"
)

var statusOptions = []string{string(model.StatusActive), string(model.StatusInactive)}

// NewProjectsPage builds the project installation page.
func NewProjectsPage(client *resource.Client[model.Project]) *CrudPage[model.Project] {
	return NewCrudPage(crudConfig[model.Project]{
		title: "Projects",
		columns: []column{
			{"Area", 16}, {"Device S/N", 12}, {"Device Name", 18}, {"Type", 12},
			{"Status", 10}, {"Operator", 14}, {"Installed", 18}, {"Communication", 18},
		},
		row: func(p model.Project) table.Row {
			return table.Row{
				p.AreaName, p.DeviceSN, p.DeviceName, p.DeviceType,
				string(p.DeviceStatus), p.Operator, p.InstalledTime, p.CommunicationTime,
			}
		},
		id: func(p model.Project) string { return p.ID },
		searchFields: func(p model.Project) []string {
			return []string{p.AreaName, p.DeviceSN, p.DeviceName}
		},
		fields: []field[model.Project]{
			{label: "Area name", required: true,
				get: func(p model.Project) string { return p.AreaName },
				set: func(p model.Project, v string) model.Project { p.AreaName = v; return p }},
			{label: "Device S/N", required: true,
				get: func(p model.Project) string { return p.DeviceSN },
				set: func(p model.Project, v string) model.Project { p.DeviceSN = v; return p }},
			{label: "Device Name", required: true,
				get: func(p model.Project) string { return p.DeviceName },
				set: func(p model.Project, v string) model.Project { p.DeviceName = v; return p }},
			{label: "Device Type",
				get: func(p model.Project) string { return p.DeviceType },
				set: func(p model.Project, v string) model.Project { p.DeviceType = v; return p }},
			{label: "Device Status", options: statusOptions,
				get: func(p model.Project) string { return string(p.DeviceStatus) },
				set: func(p model.Project, v string) model.Project { p.DeviceStatus = model.Status(v); return p }},
			{label: "Operator",
				get: func(p model.Project) string { return p.Operator },
				set: func(p model.Project, v string) model.Project { p.Operator = v; return p }},
			{label: "Installed Time",
				get: func(p model.Project) string { return p.InstalledTime },
				set: func(p model.Project, v string) model.Project { p.InstalledTime = v; return p }},
			{label: "Communication Time",
				get: func(p model.Project) string { return p.CommunicationTime },
				set: func(p model.Project, v string) model.Project { p.CommunicationTime = v; return p }},
			{label: "Instruction Manual",
				get: func(p model.Project) string { return p.InstructionManual },
				set: func(p model.Project, v string) model.Project { p.InstructionManual = v; return p }},
		},
		template: func() model.Project {
			return model.Project{DeviceStatus: model.StatusActive}
		},
		toggle: func(p model.Project) model.Project {
			p.DeviceStatus = p.DeviceStatus.Toggle()
			return p
		},
		ops: ops[model.Project]{
			load:   client.List,
			create: client.Create,
			update: client.Update,
			delete: client.Delete,
		},
	})
}
