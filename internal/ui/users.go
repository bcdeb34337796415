package ui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/table"
	"github.com/grh-water/water-console/internal/model"
	"github.com/grh-water/water-console/internal/repository"
)

// NewUsersPage builds the user management page. The role field cycles
// through the roles currently in the role repository; the denormalized
// role name is resolved by the repository at save time.
func NewUsersPage(users *repository.UserRepository, roles *repository.RoleRepository) *CrudPage[model.User] {
	roleOptions := func() []string {
		list := roles.List()
		names := make([]string, 0, len(list))
		for _, r := range list {
			names = append(names, r.Name)
		}
		return names
	}

	roleIDByName := func(name string) string {
		for _, r := range roles.List() {
			if r.Name == name {
				return r.ID
			}
		}
		return ""
	}

	roleNameByID := func(id string) string {
		if r, ok := roles.Get(id); ok {
			return r.Name
		}
		return ""
	}

	return NewCrudPage(crudConfig[model.User]{
		title: "Users",
		columns: []column{
			{"Name", 20}, {"Email", 24}, {"Role", 14}, {"Status", 10}, {"Created", 12},
		},
		row: func(u model.User) table.Row {
			return table.Row{u.Name, u.Email, u.RoleName, string(u.Status), u.CreatedAt}
		},
		id: func(u model.User) string { return u.ID },
		searchFields: func(u model.User) []string {
			return []string{u.Name, u.Email}
		},
		fields: []field[model.User]{
			{label: "Name", required: true,
				get: func(u model.User) string { return u.Name },
				set: func(u model.User, v string) model.User { u.Name = v; return u }},
			{label: "Email", required: true,
				get: func(u model.User) string { return u.Email },
				set: func(u model.User, v string) model.User { u.Email = v; return u }},
			{label: "Role", required: true, options: roleOptions(),
				get: func(u model.User) string { return roleNameByID(u.RoleID) },
				set: func(u model.User, v string) model.User { u.RoleID = roleIDByName(v); return u }},
			{label: "Status", options: statusOptions,
				get: func(u model.User) string { return string(u.Status) },
				set: func(u model.User, v string) model.User { u.Status = model.Status(v); return u }},
			{label: "Created",
				get: func(u model.User) string { return u.CreatedAt },
				set: func(u model.User, v string) model.User { u.CreatedAt = v; return u }},
		},
		template: func() model.User {
			return model.User{Status: model.StatusActive, CreatedAt: time.Now().Format("2006-01-02")}
		},
		ops: ops[model.User]{
			load: func(context.Context) ([]model.User, error) {
				return users.List(), nil
			},
			create: func(_ context.Context, draft model.User) (model.User, error) {
				return users.Create(draft), nil
			},
			update: func(_ context.Context, id string, draft model.User) (model.User, error) {
				updated, _ := users.Update(id, draft)
				return updated, nil
			},
			delete: func(_ context.Context, id string) error {
				users.Delete(id)
				return nil
			},
		},
	})
}
