package repository

import (
	"time"

	"github.com/google/uuid"
	"github.com/grh-water/water-console/internal/model"
)

// UserRepository handles user storage. Role names are denormalized onto
// users at save time from the role repository.
type UserRepository struct {
	users []model.User
	roles *RoleRepository
}

// NewUserRepository creates a user repository seeded with the known
// accounts.
func NewUserRepository(roles *RoleRepository) *UserRepository {
	return &UserRepository{
		roles: roles,
		users: []model.User{
			{ID: "1", Name: "Admin GRH", Email: "grh@domain.com", RoleID: "1", RoleName: "SUPER_ADMIN", Status: model.StatusActive, CreatedAt: "2025-12-17"},
			{ID: "2", Name: "User CESPT", Email: "cespt@domain.com", RoleID: "2", RoleName: "USER", Status: model.StatusActive, CreatedAt: "2025-12-16"},
		},
	}
}

// List returns a copy of all users.
func (r *UserRepository) List() []model.User {
	out := make([]model.User, len(r.users))
	copy(out, r.users)
	return out
}

// resolveRoleName looks the role name up at save time, so a renamed role
// is reflected the next time a user is saved (and not before).
func (r *UserRepository) resolveRoleName(roleID string) string {
	if role, ok := r.roles.Get(roleID); ok {
		return role.Name
	}
	return ""
}

// Create stores a new user, assigning its id and resolving the role name.
func (r *UserRepository) Create(draft model.User) model.User {
	draft.ID = uuid.NewString()
	draft.RoleName = r.resolveRoleName(draft.RoleID)
	if draft.CreatedAt == "" {
		draft.CreatedAt = time.Now().Format("2006-01-02")
	}
	r.users = append(r.users, draft)
	return draft
}

// Update replaces the user with the given id, re-resolving the role name.
func (r *UserRepository) Update(id string, draft model.User) (model.User, bool) {
	for i, user := range r.users {
		if user.ID == id {
			draft.ID = id
			draft.RoleName = r.resolveRoleName(draft.RoleID)
			r.users[i] = draft
			return draft, true
		}
	}
	return model.User{}, false
}

// Delete removes the user with the given id.
func (r *UserRepository) Delete(id string) bool {
	for i, user := range r.users {
		if user.ID == id {
			r.users = append(r.users[:i], r.users[i+1:]...)
			return true
		}
	}
	return false
}
