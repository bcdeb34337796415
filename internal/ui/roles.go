package ui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/table"
	"github.com/grh-water/water-console/internal/model"
	"github.com/grh-water/water-console/internal/repository"
)

// NewRolesPage builds the role management page over the local role
// repository.
func NewRolesPage(repo *repository.RoleRepository) *CrudPage[model.Role] {
	return NewCrudPage(crudConfig[model.Role]{
		title: "Roles",
		columns: []column{
			{"Name", 20}, {"Description", 30}, {"Status", 10}, {"Created", 12},
		},
		row: func(r model.Role) table.Row {
			return table.Row{r.Name, r.Description, string(r.Status), r.CreatedAt}
		},
		id: func(r model.Role) string { return r.ID },
		searchFields: func(r model.Role) []string {
			return []string{r.Name}
		},
		fields: []field[model.Role]{
			{label: "Name", required: true,
				get: func(r model.Role) string { return r.Name },
				set: func(r model.Role, v string) model.Role { r.Name = v; return r }},
			{label: "Description",
				get: func(r model.Role) string { return r.Description },
				set: func(r model.Role, v string) model.Role { r.Description = v; return r }},
			{label: "Status", options: statusOptions,
				get: func(r model.Role) string { return string(r.Status) },
				set: func(r model.Role, v string) model.Role { r.Status = model.Status(v); return r }},
			{label: "Created",
				get: func(r model.Role) string { return r.CreatedAt },
				set: func(r model.Role, v string) model.Role { r.CreatedAt = v; return r }},
		},
		template: func() model.Role {
			return model.Role{Status: model.StatusActive, CreatedAt: time.Now().Format("2006-01-02")}
		},
		ops: ops[model.Role]{
			load: func(context.Context) ([]model.Role, error) {
				return repo.List(), nil
			},
			create: func(_ context.Context, draft model.Role) (model.Role, error) {
				return repo.Create(draft), nil
			},
			update: func(_ context.Context, id string, draft model.Role) (model.Role, error) {
				updated, _ := repo.Update(id, draft)
				return updated, nil
			},
			delete: func(_ context.Context, id string) error {
				repo.Delete(id)
				return nil
			},
		},
	})
}
