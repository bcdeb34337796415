package ui

import (
	"context"
	"strconv"

	"github.com/charmbracelet/bubbles/table"
	"github.com/grh-water/water-console/internal/model"
	"github.com/grh-water/water-console/internal/repository"
)

// NewAreasPage builds the organizational area management page.
func NewAreasPage(repo *repository.AreaRepository) *CrudPage[model.Area] {
	return NewCrudPage(crudConfig[model.Area]{
		title: "Areas",
		columns: []column{
			{"ID", 5}, {"Area", 16}, {"Area No.", 10}, {"Code", 8}, {"Sort", 6},
			{"Push Address", 18}, {"Note", 18}, {"Time", 12},
		},
		row: func(a model.Area) table.Row {
			return table.Row{
				strconv.Itoa(a.ID), a.Name, a.No, a.Code, strconv.Itoa(a.Sort),
				a.PushAddress, a.Note, a.Time,
			}
		},
		id: func(a model.Area) string { return strconv.Itoa(a.ID) },
		searchFields: func(a model.Area) []string {
			return []string{a.Name, a.No, a.Code}
		},
		fields: []field[model.Area]{
			{label: "Area", required: true,
				get: func(a model.Area) string { return a.Name },
				set: func(a model.Area, v string) model.Area { a.Name = v; return a }},
			{label: "Area No.", required: true,
				get: func(a model.Area) string { return a.No },
				set: func(a model.Area, v string) model.Area { a.No = v; return a }},
			{label: "Code", required: true,
				get: func(a model.Area) string { return a.Code },
				set: func(a model.Area, v string) model.Area { a.Code = v; return a }},
			{label: "Sort",
				get: func(a model.Area) string { return strconv.Itoa(a.Sort) },
				set: func(a model.Area, v string) model.Area {
					if n, err := strconv.Atoi(v); err == nil {
						a.Sort = n
					}
					return a
				}},
			{label: "Push Address",
				get: func(a model.Area) string { return a.PushAddress },
				set: func(a model.Area, v string) model.Area { a.PushAddress = v; return a }},
			{label: "Note",
				get: func(a model.Area) string { return a.Note },
				set: func(a model.Area, v string) model.Area { a.Note = v; return a }},
			{label: "Time",
				get: func(a model.Area) string { return a.Time },
				set: func(a model.Area, v string) model.Area { a.Time = v; return a }},
		},
		template: func() model.Area {
			return model.Area{}
		},
		ops: ops[model.Area]{
			load: func(context.Context) ([]model.Area, error) {
				return repo.List(), nil
			},
			create: func(_ context.Context, draft model.Area) (model.Area, error) {
				return repo.Create(draft), nil
			},
			update: func(_ context.Context, id string, draft model.Area) (model.Area, error) {
				n, err := strconv.Atoi(id)
				if err != nil {
					return model.Area{}, err
				}
				updated, _ := repo.Update(n, draft)
				return updated, nil
			},
			delete: func(_ context.Context, id string) error {
				n, err := strconv.Atoi(id)
				if err != nil {
					return err
				}
				repo.Delete(n)
				return nil
			},
		},
	})
}
