// Staffing impact aggregation: employees and player roles become the
// numeric modifiers the financial model consumes. Pure — queried every
// quarter and by management screens, never mutates anything.
package business

import (
	"math"

	"github.com/talgya/mogul/internal/balance"
	"github.com/talgya/mogul/internal/catalog"
)

// TotalImpact is the capped, additive sum of every actor's contribution to
// one business for one quarter.
type TotalImpact struct {
	catalog.Impact
}

// PlayerSkills exposes the player's skill level for a role. The player
// package satisfies this; tests use a plain map adapter.
type PlayerSkills interface {
	SkillFor(role catalog.Role) float64 // 0–100
}

// SkillMap adapts a plain map to PlayerSkills.
type SkillMap map[catalog.Role]float64

func (m SkillMap) SkillFor(role catalog.Role) float64 {
	return m[role]
}

// AggregateImpact sums staff and player contributions for one business.
// Managerial contributions scale by the actor's effort fraction;
// operational roles always land at full effect. Tax and expense reductions
// cap at their configured ceilings.
func AggregateImpact(b *Business, cat *catalog.Catalog, skills PlayerSkills) TotalImpact {
	var total TotalImpact
	if b == nil || cat == nil {
		return total
	}

	for _, e := range b.Employees {
		rc, ok := cat.Get(e.Role)
		if !ok {
			continue
		}
		impact := rc.StaffImpact(e.Stars)
		if rc.Managerial {
			impact = impact.Scale(e.EffortFraction())
		}
		total.Add(impact)
	}

	if skills != nil {
		effort := b.PlayerRoles.EffortFraction()
		for _, role := range b.PlayerRoles.All() {
			rc, ok := cat.Get(role)
			if !ok {
				continue
			}
			impact := rc.PlayerImpact(skills.SkillFor(role))
			if rc.Managerial {
				impact = impact.Scale(effort)
			}
			total.Add(impact)
		}
	}

	total.sanitize()
	return total
}

// sanitize caps the reductions and scrubs any non-finite accumulation.
func (t *TotalImpact) sanitize() {
	scrub := func(v *float64) {
		if math.IsNaN(*v) || math.IsInf(*v, 0) {
			*v = 0
		}
	}
	scrub(&t.Efficiency)
	scrub(&t.SalesBonusPct)
	scrub(&t.TaxReductionPct)
	scrub(&t.ExpenseReductionPct)
	scrub(&t.ReputationBonus)
	scrub(&t.StaffProductivityBonus)

	if t.TaxReductionPct > balance.MaxTaxReductionPct {
		t.TaxReductionPct = balance.MaxTaxReductionPct
	}
	if t.TaxReductionPct < 0 {
		t.TaxReductionPct = 0
	}
	if t.ExpenseReductionPct > balance.MaxExpenseReductionPct {
		t.ExpenseReductionPct = balance.MaxExpenseReductionPct
	}
	if t.ExpenseReductionPct < 0 {
		t.ExpenseReductionPct = 0
	}
}
