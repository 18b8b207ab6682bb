// Package catalog loads the static role/position configuration: which
// roles exist, whether they stack, what they contribute to a business, and
// what they cost the person holding them. The catalog is read-only input
// data — the simulation never mutates it.
package catalog

// Role identifies a business position.
type Role string

const (
	RoleManager     Role = "manager"
	RoleSalesperson Role = "salesperson"
	RoleAccountant  Role = "accountant"
	RoleMarketer    Role = "marketer"
	RoleTechnician  Role = "technician"
	RoleWorker      Role = "worker"
	RoleLawyer      Role = "lawyer"
	RoleHR          Role = "hr"
)

// AllRoles enumerates every valid role. Order is stable for iteration.
var AllRoles = []Role{
	RoleManager,
	RoleSalesperson,
	RoleAccountant,
	RoleMarketer,
	RoleTechnician,
	RoleWorker,
	RoleLawyer,
	RoleHR,
}

// Valid reports whether r names a known role.
func (r Role) Valid() bool {
	switch r {
	case RoleManager, RoleSalesperson, RoleAccountant, RoleMarketer,
		RoleTechnician, RoleWorker, RoleLawyer, RoleHR:
		return true
	}
	return false
}

// Impact is one actor's contribution to a business's quarter. All fields
// accumulate additively across the staff.
type Impact struct {
	Efficiency             float64 `json:"efficiency"`
	SalesBonusPct          float64 `json:"sales_bonus_pct"`
	TaxReductionPct        float64 `json:"tax_reduction_pct"`
	ExpenseReductionPct    float64 `json:"expense_reduction_pct"`
	ReputationBonus        float64 `json:"reputation_bonus"`
	StaffProductivityBonus float64 `json:"staff_productivity_bonus"`
}

// Add accumulates another contribution into i.
func (i *Impact) Add(o Impact) {
	i.Efficiency += o.Efficiency
	i.SalesBonusPct += o.SalesBonusPct
	i.TaxReductionPct += o.TaxReductionPct
	i.ExpenseReductionPct += o.ExpenseReductionPct
	i.ReputationBonus += o.ReputationBonus
	i.StaffProductivityBonus += o.StaffProductivityBonus
}

// Scale multiplies every field by f (effort weighting).
func (i Impact) Scale(f float64) Impact {
	return Impact{
		Efficiency:             i.Efficiency * f,
		SalesBonusPct:          i.SalesBonusPct * f,
		TaxReductionPct:        i.TaxReductionPct * f,
		ExpenseReductionPct:    i.ExpenseReductionPct * f,
		ReputationBonus:        i.ReputationBonus * f,
		StaffProductivityBonus: i.StaffProductivityBonus * f,
	}
}

// RoleConfig is the capability record for one role.
type RoleConfig struct {
	Role       Role
	Managerial bool // Managerial roles stack and scale by effort; operational roles are exclusive and always full effect.

	// PerStar holds the contribution per employee star (1–5).
	PerStar Impact

	// EnergyCost is quarterly player energy spent at 100% effort.
	EnergyCost float64
	// MoodEffect is the quarterly player mood delta while occupying the role.
	MoodEffect float64
	// SkillGrowth is quarterly skill gain while occupying the role.
	SkillGrowth float64

	// Salary band (quarterly) used when hiring for the role.
	SalaryMin int64
	SalaryMax int64
}

// StaffImpact returns the contribution of an employee with the given star
// rating. Stars outside 1–5 clamp.
func (rc RoleConfig) StaffImpact(stars int) Impact {
	if stars < 1 {
		stars = 1
	}
	if stars > 5 {
		stars = 5
	}
	return rc.PerStar.Scale(float64(stars))
}

// PlayerImpact returns the contribution of the player holding the role at
// the given skill level (0–100). Skill maps onto the same 0–5 scale the
// staff star rating uses.
func (rc RoleConfig) PlayerImpact(skillLevel float64) Impact {
	if skillLevel < 0 || skillLevel != skillLevel {
		skillLevel = 0
	}
	if skillLevel > 100 {
		skillLevel = 100
	}
	return rc.PerStar.Scale(skillLevel / 20.0)
}
