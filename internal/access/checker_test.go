package access_test

import (
	"context"
	"testing"

	"go-inspecta/internal/access"

	"github.com/stretchr/testify/assert"
)

func sampleIdentity() *access.Identity {
	return &access.Identity{
		Username:      "12345",
		FullName:      "John Doe",
		Role:          access.RoleQCField,
		IsActive:      true,
		Permissions:   []string{access.PermViewRecords, access.PermCreateRecords},
		AllowedMenus:  []string{"sanitasi_besar"},
		AllowedPlants: []string{"Plant-1"},
	}
}

func TestChecker_HasPermission(t *testing.T) {
	checker := access.NewChecker(sampleIdentity())

	for _, tag := range []string{access.PermViewRecords, access.PermCreateRecords} {
		assert.True(t, checker.HasPermission(tag), tag)
	}
	for _, tag := range []string{access.PermManageUsers, access.PermDeleteRecords, "", "VIEW_RECORDS"} {
		assert.False(t, checker.HasPermission(tag), tag)
	}
}

func TestChecker_NoIdentity(t *testing.T) {
	checker := access.NewChecker(nil)

	assert.False(t, checker.Authenticated())
	assert.Nil(t, checker.Identity())
	for _, tag := range access.CatalogTags(access.SeedCatalog()) {
		assert.False(t, checker.HasPermission(tag))
	}
	assert.False(t, checker.HasMenuAccess("sanitasi_besar"))
	assert.False(t, checker.HasPlantAccess("Plant-1"))
	assert.NotNil(t, checker.AllowedPlants())
	assert.Empty(t, checker.AllowedPlants())
	assert.NotNil(t, checker.AllowedMenus())
	assert.Empty(t, checker.Permissions())
}

func TestChecker_MenuAndPlant(t *testing.T) {
	checker := access.NewChecker(sampleIdentity())

	assert.True(t, checker.HasMenuAccess("sanitasi_besar"))
	assert.False(t, checker.HasMenuAccess("kliping"))
	assert.True(t, checker.HasPlantAccess("Plant-1"))
	assert.False(t, checker.HasPlantAccess("Plant-2"))
	assert.True(t, checker.HasAnyPermission(access.PermManageUsers, access.PermViewRecords))
	assert.False(t, checker.HasAnyPermission())
}

func TestChecker_ReturnsCopies(t *testing.T) {
	identity := sampleIdentity()
	checker := access.NewChecker(identity)

	plants := checker.AllowedPlants()
	plants[0] = "Plant-9"
	snapshot := checker.Identity()
	snapshot.Permissions[0] = access.PermManageUsers

	assert.Equal(t, "Plant-1", identity.AllowedPlants[0])
	assert.Equal(t, access.PermViewRecords, identity.Permissions[0])
}

func TestFromContext(t *testing.T) {
	assert.False(t, access.FromContext(context.Background()).Authenticated())

	ctx := access.WithIdentity(context.Background(), sampleIdentity())
	checker := access.FromContext(ctx)
	assert.True(t, checker.Authenticated())
	assert.Equal(t, "12345", checker.Username())
}

func TestParseRole(t *testing.T) {
	for _, v := range []string{"admin", "supervisor", "qc_field", " manajer "} {
		_, ok := access.ParseRole(v)
		assert.True(t, ok, v)
	}
	for _, v := range []string{"", "Admin", "manager", "superadmin", "qc-field"} {
		_, ok := access.ParseRole(v)
		assert.False(t, ok, v)
	}
	assert.Len(t, access.Roles(), 4)
}

func TestNormalizeSet(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, access.NormalizeSet([]string{" a", "b", "", "a "}))
	assert.Equal(t, []string{}, access.NormalizeSet(nil))
}

func TestGroupByCategory(t *testing.T) {
	groups := access.GroupByCategory(access.SeedCatalog())

	assert.Equal(t, "admin", groups[0].Category)
	assert.Len(t, groups[0].Permissions, 3)
	assert.Len(t, groups, 4)
}
