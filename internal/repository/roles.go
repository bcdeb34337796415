// Package repository holds the in-memory collections for the entities that
// never got a backend table: roles, users, organizational areas and the
// operator tree. State is transient and lost on exit, like the source
// system's page state.
package repository

import (
	"time"

	"github.com/google/uuid"
	"github.com/grh-water/water-console/internal/model"
)

// RoleRepository handles role storage
type RoleRepository struct {
	roles []model.Role
}

// NewRoleRepository creates a role repository seeded with the built-in
// roles.
func NewRoleRepository() *RoleRepository {
	return &RoleRepository{
		roles: []model.Role{
			{ID: "1", Name: "SUPER_ADMIN", Description: "Full access", Status: model.StatusActive, CreatedAt: "2025-12-17"},
			{ID: "2", Name: "USER", Description: "Regular user", Status: model.StatusActive, CreatedAt: "2025-12-16"},
		},
	}
}

// List returns a copy of all roles.
func (r *RoleRepository) List() []model.Role {
	out := make([]model.Role, len(r.roles))
	copy(out, r.roles)
	return out
}

// Get returns the role with the given id.
func (r *RoleRepository) Get(id string) (model.Role, bool) {
	for _, role := range r.roles {
		if role.ID == id {
			return role, true
		}
	}
	return model.Role{}, false
}

// Create stores a new role and assigns its id.
func (r *RoleRepository) Create(draft model.Role) model.Role {
	draft.ID = uuid.NewString()
	if draft.CreatedAt == "" {
		draft.CreatedAt = time.Now().Format("2006-01-02")
	}
	r.roles = append(r.roles, draft)
	return draft
}

// Update replaces the role with the given id.
func (r *RoleRepository) Update(id string, draft model.Role) (model.Role, bool) {
	for i, role := range r.roles {
		if role.ID == id {
			draft.ID = id
			r.roles[i] = draft
			return draft, true
		}
	}
	return model.Role{}, false
}

// Delete removes the role with the given id.
func (r *RoleRepository) Delete(id string) bool {
	for i, role := range r.roles {
		if role.ID == id {
			r.roles = append(r.roles[:i], r.roles[i+1:]...)
			return true
		}
	}
	return false
}
