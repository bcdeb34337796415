package repository

import (
	"testing"

	"github.com/grh-water/water-console/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoleCreateAssignsID(t *testing.T) {
	repo := NewRoleRepository()
	created := repo.Create(model.Role{Name: "AUDITOR", Status: model.StatusActive})

	assert.NotEmpty(t, created.ID)
	assert.NotEmpty(t, created.CreatedAt, "missing created date is filled in")

	got, ok := repo.Get(created.ID)
	require.True(t, ok)
	assert.Equal(t, "AUDITOR", got.Name)
}

func TestRoleUpdateMissing(t *testing.T) {
	repo := NewRoleRepository()
	_, ok := repo.Update("no-such-id", model.Role{Name: "X"})
	assert.False(t, ok)
}

func TestRoleDelete(t *testing.T) {
	repo := NewRoleRepository()
	require.True(t, repo.Delete("2"))
	_, ok := repo.Get("2")
	assert.False(t, ok)
	assert.Len(t, repo.List(), 1)
}

func TestUserCreateResolvesRoleName(t *testing.T) {
	roles := NewRoleRepository()
	users := NewUserRepository(roles)

	created := users.Create(model.User{Name: "Ana", Email: "ana@d.com", RoleID: "2"})
	assert.Equal(t, "USER", created.RoleName)
	assert.NotEmpty(t, created.ID)
}

func TestUserRoleNameResolvedAtSaveTime(t *testing.T) {
	roles := NewRoleRepository()
	users := NewUserRepository(roles)

	created := users.Create(model.User{Name: "Ana", RoleID: "2"})
	require.Equal(t, "USER", created.RoleName)

	// Renaming the role does not rewrite stored users...
	role, ok := roles.Get("2")
	require.True(t, ok)
	role.Name = "VIEWER"
	_, ok = roles.Update("2", role)
	require.True(t, ok)

	for _, u := range users.List() {
		if u.ID == created.ID {
			assert.Equal(t, "USER", u.RoleName, "stored name is stale until the next save")
		}
	}

	// ...but the next save picks the new name up.
	updated, ok := users.Update(created.ID, model.User{Name: "Ana", RoleID: "2"})
	require.True(t, ok)
	assert.Equal(t, "VIEWER", updated.RoleName)
}

func TestUserUnknownRoleResolvesEmpty(t *testing.T) {
	users := NewUserRepository(NewRoleRepository())
	created := users.Create(model.User{Name: "Ana", RoleID: "999"})
	assert.Equal(t, "", created.RoleName)
}

func TestAreaCreateAssignsSequentialIDs(t *testing.T) {
	repo := NewAreaRepository()
	a := repo.Create(model.Area{Name: "Facturación"})
	b := repo.Create(model.Area{Name: "Campo"})

	assert.Equal(t, 4, a.ID)
	assert.Equal(t, 5, b.ID)
	assert.Len(t, repo.List(), 5)
}

func TestAreaUpdateAndDelete(t *testing.T) {
	repo := NewAreaRepository()

	updated, ok := repo.Update(2, model.Area{Name: "Calidad y Pruebas", No: "002", Code: "QA02"})
	require.True(t, ok)
	assert.Equal(t, 2, updated.ID, "id is preserved across updates")

	require.True(t, repo.Delete(2))
	for _, a := range repo.List() {
		assert.NotEqual(t, 2, a.ID)
	}
	assert.False(t, repo.Delete(2), "deleting twice fails")
}

func TestOperatorTreeFindArea(t *testing.T) {
	repo := NewOperatorRepository()

	root, ok := repo.FindArea(1)
	require.True(t, ok)
	assert.Equal(t, "GRH", root.Name)

	child, ok := repo.FindArea(2)
	require.True(t, ok)
	assert.Equal(t, "CESPT", child.Name)

	_, ok = repo.FindArea(99)
	assert.False(t, ok)
}

func TestOperatorCreateUnderArea(t *testing.T) {
	repo := NewOperatorRepository()

	created, ok := repo.Create(2, model.Operator{LoginName: "op.nuevo", UserName: "Nuevo"})
	require.True(t, ok)
	assert.Equal(t, 4, created.ID)

	area, _ := repo.FindArea(2)
	assert.Len(t, area.Operators, 3)

	_, ok = repo.Create(99, model.Operator{LoginName: "x"})
	assert.False(t, ok, "creating under a missing area fails")
}

func TestOperatorUpdateScopedToArea(t *testing.T) {
	repo := NewOperatorRepository()

	updated, ok := repo.Update(2, 2, model.Operator{LoginName: "op.cespt", UserName: "Renombrado"})
	require.True(t, ok)
	assert.Equal(t, 2, updated.ID)
	assert.Equal(t, "Renombrado", updated.UserName)

	// Operator 1 lives under area 1, not area 2.
	_, ok = repo.Update(2, 1, model.Operator{LoginName: "x"})
	assert.False(t, ok)
}

func TestOperatorDelete(t *testing.T) {
	repo := NewOperatorRepository()

	require.True(t, repo.Delete(2, 3))
	area, _ := repo.FindArea(2)
	assert.Len(t, area.Operators, 1)

	assert.False(t, repo.Delete(2, 3), "deleting twice fails")
}
