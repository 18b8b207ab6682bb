package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_ShippedCatalog(t *testing.T) {
	cat, err := Load("../../configs/roles.yaml")
	require.NoError(t, err)

	// Every enumerated role is present and internally consistent.
	for _, role := range AllRoles {
		rc, ok := cat.Get(role)
		require.True(t, ok, "role %s missing", role)
		assert.Equal(t, role, rc.Role)
		assert.LessOrEqual(t, rc.SalaryMin, rc.SalaryMax)
	}

	// Managerial/operational split matches the role semantics.
	assert.True(t, cat.Roles[RoleManager].Managerial)
	assert.True(t, cat.Roles[RoleAccountant].Managerial)
	assert.False(t, cat.Roles[RoleTechnician].Managerial)
	assert.False(t, cat.Roles[RoleWorker].Managerial)
	assert.False(t, cat.Roles[RoleSalesperson].Managerial)
}

func writeCatalog(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "roles.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_RejectsMalformedTable(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"not yaml", "{{{"},
		{"missing roles key", "balance: {}"},
		{"negative coefficient", `
roles:
  manager:
    managerial: true
    per_star: {efficiency: -2}
    salary_min: 100
    salary_max: 200
`},
		{"unknown impact field", `
roles:
  manager:
    managerial: true
    per_star: {charisma: 3}
    salary_min: 100
    salary_max: 200
`},
		{"unknown role name", `
roles:
  wizard:
    managerial: true
    per_star: {efficiency: 2}
    salary_min: 100
    salary_max: 200
`},
		{"missing salary band", `
roles:
  manager:
    managerial: true
    per_star: {efficiency: 2}
`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeCatalog(t, tt.content))
			assert.Error(t, err)
		})
	}
}

func TestLoad_RejectsPartialCatalog(t *testing.T) {
	// A valid single role still fails: the full enumeration is required.
	_, err := Load(writeCatalog(t, `
roles:
  manager:
    managerial: true
    per_star: {efficiency: 2}
    salary_min: 100
    salary_max: 200
`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing roles")
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestStaffImpact_ClampsStars(t *testing.T) {
	rc := RoleConfig{PerStar: Impact{Efficiency: 2}}

	assert.Equal(t, 2.0, rc.StaffImpact(0).Efficiency, "stars clamp up to 1")
	assert.Equal(t, 10.0, rc.StaffImpact(9).Efficiency, "stars clamp down to 5")
	assert.Equal(t, 6.0, rc.StaffImpact(3).Efficiency)
}

func TestPlayerImpact_SkillScale(t *testing.T) {
	rc := RoleConfig{PerStar: Impact{SalesBonusPct: 3}}

	assert.Equal(t, 15.0, rc.PlayerImpact(100).SalesBonusPct, "skill 100 maps to 5 stars")
	assert.Equal(t, 7.5, rc.PlayerImpact(50).SalesBonusPct)
	assert.Zero(t, rc.PlayerImpact(-10).SalesBonusPct)

	nan := rc.PlayerImpact(nanValue())
	assert.Zero(t, nan.SalesBonusPct)
}

func nanValue() float64 {
	z := 0.0
	return z / z
}

func TestRoleValid(t *testing.T) {
	for _, role := range AllRoles {
		assert.True(t, role.Valid())
	}
	assert.False(t, Role("ceo").Valid())
	assert.False(t, Role("").Valid())
}
