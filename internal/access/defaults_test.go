package access_test

import (
	"testing"

	"go-inspecta/internal/access"

	"github.com/stretchr/testify/assert"
)

func TestDefaults_Bundle(t *testing.T) {
	d, err := access.NewDefaults(access.CatalogTags(access.SeedCatalog()))
	assert.NoError(t, err)

	assert.ElementsMatch(t, access.CatalogTags(access.SeedCatalog()), d.Bundle(access.RoleAdmin))
	assert.Equal(t, []string{access.PermViewRecords, access.PermCreateRecords}, d.Bundle(access.RoleQCField))
	assert.Equal(t,
		[]string{access.PermViewMasterData, access.PermViewRecords, access.PermViewReports},
		d.Bundle(access.RoleManajer),
	)
	assert.Equal(t, []string{}, d.Bundle(access.Role("guest")))

	ok, err := d.Includes(access.RoleSupervisor, access.PermUpdateRecords)
	assert.NoError(t, err)
	assert.True(t, ok)

	ok, err = d.Includes(access.RoleSupervisor, access.PermManageUsers)
	assert.NoError(t, err)
	assert.False(t, ok)
}

func TestDefaults_Reload(t *testing.T) {
	d, err := access.NewDefaults([]string{access.PermViewAdminPanel})
	assert.NoError(t, err)
	assert.Equal(t, []string{access.PermViewAdminPanel}, d.Bundle(access.RoleAdmin))

	assert.NoError(t, d.Reload([]string{access.PermViewAdminPanel, "export_reports"}))
	assert.Equal(t, []string{access.PermViewAdminPanel, "export_reports"}, d.Bundle(access.RoleAdmin))
}

func TestDefaults_EmptyCatalogFallsBackToSeed(t *testing.T) {
	d, err := access.NewDefaults(nil)
	assert.NoError(t, err)
	assert.Len(t, d.Bundle(access.RoleAdmin), len(access.SeedCatalog()))
}
