package business

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talgya/mogul/internal/catalog"
)

func metricsFixture() *Business {
	return &Business{
		Kind:         KindService,
		State:        StateActive,
		MinEmployees: 1,
		MaxEmployees: 4,
		Reputation:   40,
		Employees: []*Employee{
			{Role: catalog.RoleTechnician, Stars: 3, SkillEfficiency: 70, Productivity: 70, EffortPercent: 100},
			{Role: catalog.RoleWorker, Stars: 2, SkillEfficiency: 50, Productivity: 60, EffortPercent: 100},
		},
	}
}

func TestComputeEfficiency_ZeroWhenUnderstaffed(t *testing.T) {
	cat := loadCatalog(t)
	b := metricsFixture()
	b.MinEmployees = 10

	assert.Zero(t, ComputeEfficiency(b, cat, nil, TotalImpact{}))
}

func TestComputeEfficiency_ZeroWhenRequiredRoleUnfilled(t *testing.T) {
	cat := loadCatalog(t)
	b := metricsFixture()
	b.RequiredRoles = []catalog.Role{catalog.RoleSalesperson}

	assert.Zero(t, ComputeEfficiency(b, cat, nil, TotalImpact{}))

	// Player covering the role restores the score.
	b.PlayerRoles.Operational = catalog.RoleSalesperson
	b.PlayerRoles.EffortPercent = 100
	got := ComputeEfficiency(b, cat, SkillMap{catalog.RoleSalesperson: 60}, TotalImpact{})
	assert.Greater(t, got, 0.0)
}

func TestComputeEfficiency_ManagersAddBonus(t *testing.T) {
	cat := loadCatalog(t)
	base := metricsFixture()
	managed := metricsFixture()
	managed.Employees = append(managed.Employees,
		&Employee{Role: catalog.RoleManager, Stars: 4, SkillEfficiency: 80, Productivity: 70, EffortPercent: 100})

	eBase := ComputeEfficiency(base, cat, nil, TotalImpact{})
	eManaged := ComputeEfficiency(managed, cat, nil, TotalImpact{})
	assert.Greater(t, eManaged, eBase)
	// A manager adds at most the per-manager cap.
	assert.LessOrEqual(t, eManaged-eBase, 10.0+1e-9)
}

func TestComputeEfficiency_StaffProductivityBonusLifts(t *testing.T) {
	cat := loadCatalog(t)
	b := metricsFixture()

	plain := ComputeEfficiency(b, cat, nil, TotalImpact{})
	boosted := ComputeEfficiency(b, cat, nil, impactWith(func(i *TotalImpact) {
		i.StaffProductivityBonus = 20
	}))
	assert.Greater(t, boosted, plain)
}

func TestComputeEfficiency_EventEffectsAndClamp(t *testing.T) {
	cat := loadCatalog(t)
	b := metricsFixture()
	b.EventsHistory = []Event{
		{EfficiencyEffect: 60},
		{EfficiencyEffect: 60},
		{EfficiencyEffect: 60},
		{EfficiencyEffect: 60},
		{EfficiencyEffect: -999}, // Newest-last: the 4-event window keeps this, drops the first
	}

	got := ComputeEfficiency(b, cat, nil, TotalImpact{})
	assert.GreaterOrEqual(t, got, 0.0)
	assert.LessOrEqual(t, got, 100.0)
}

func TestComputeEfficiency_NaNInputs(t *testing.T) {
	cat := loadCatalog(t)
	b := metricsFixture()
	b.Employees[0].SkillEfficiency = math.NaN()
	b.Employees[0].Productivity = math.NaN()

	got := ComputeEfficiency(b, cat, nil, TotalImpact{})
	require.False(t, math.IsNaN(got))
	assert.GreaterOrEqual(t, got, 0.0)
	assert.LessOrEqual(t, got, 100.0)
}

func TestComputeReputation_DriftsTowardTarget(t *testing.T) {
	b := metricsFixture()
	b.Reputation = 0

	// Target with efficiency 60, avg 2.5 stars: 0.6*60 + 0.2*50 = 46.
	next := ComputeReputation(b, 60, TotalImpact{})
	assert.InDelta(t, 4.6, next, 0.01, "moves 10%% of the gap per quarter")

	// From above, it drifts down.
	b.Reputation = 100
	next = ComputeReputation(b, 60, TotalImpact{})
	assert.Less(t, next, 100.0)
	assert.Greater(t, next, 90.0)
}

func TestComputeReputation_Clamped(t *testing.T) {
	b := metricsFixture()
	b.Reputation = math.NaN()
	b.MarketingBonus = 1e9

	next := ComputeReputation(b, 100, TotalImpact{})
	require.False(t, math.IsNaN(next))
	assert.GreaterOrEqual(t, next, 0.0)
	assert.LessOrEqual(t, next, 100.0)
}
