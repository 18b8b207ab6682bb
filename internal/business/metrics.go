// Metrics model: efficiency and reputation scores recomputed each quarter,
// feeding back into demand the following turn.
package business

import (
	"math"

	"github.com/talgya/mogul/internal/balance"
	"github.com/talgya/mogul/internal/catalog"
)

// ComputeEfficiency blends staff contribution, management bonuses, the
// player's own work and recent event effects into a 0–100 score. A business
// below minimum staffing scores zero outright.
func ComputeEfficiency(b *Business, cat *catalog.Catalog, skills PlayerSkills, impact TotalImpact) float64 {
	if b == nil || !b.MinStaffingMet() {
		return 0
	}

	// (a) Average employee contribution, productivity boosted by any staff
	// productivity bonus before averaging.
	staffScore := 0.0
	staffCount := 0
	managerBonus := 0.0
	for _, e := range b.Employees {
		rc, ok := roleConfig(cat, e.Role)
		if ok && rc.Managerial {
			// (b) Managers add up to the per-manager cap, proportional to
			// their own skill.
			skill := clampPct(finiteOr(e.SkillEfficiency, 0))
			managerBonus += balance.ManagerEfficiencyBonusCap * (skill / 100) * e.EffortFraction()
			continue
		}

		skill := clampPct(finiteOr(e.SkillEfficiency, 0))
		prod := clampPct(finiteOr(e.Productivity, 0) + impact.StaffProductivityBonus)
		staffScore += skill * (prod / 100) * e.EffortFraction()
		staffCount++
	}
	if staffCount > 0 {
		staffScore /= float64(staffCount)
	}

	// (c) Player working an operational role contributes like a staffer at
	// their skill level; (d) otherwise managerial roles add the manager
	// bonus.
	playerScore := 0.0
	if skills != nil {
		if op := b.PlayerRoles.Operational; op != "" {
			skill := clampPct(skills.SkillFor(op))
			playerScore = skill * b.PlayerRoles.EffortFraction()
			if staffCount == 0 {
				staffScore = playerScore
			} else {
				staffScore = (staffScore*float64(staffCount) + playerScore) / float64(staffCount+1)
			}
		} else {
			for _, role := range b.PlayerRoles.Managerial {
				skill := clampPct(skills.SkillFor(role))
				managerBonus += balance.ManagerEfficiencyBonusCap * (skill / 100) * b.PlayerRoles.EffortFraction()
			}
		}
	}

	// (e) Recent events push the score around for a few quarters.
	eventEffect := 0.0
	for _, ev := range b.RecentEvents(balance.EventWindow) {
		eventEffect += finiteOr(ev.EfficiencyEffect, 0)
	}

	score := staffScore + managerBonus + impact.Efficiency + eventEffect
	return round2(clampPct(finiteOr(score, 0)))
}

// ComputeReputation moves the current reputation a fixed fraction of the
// way toward its target: a blend of efficiency, team quality, marketing and
// recent events.
func ComputeReputation(b *Business, efficiency float64, impact TotalImpact) float64 {
	current := clampPct(finiteOr(b.Reputation, 0))

	avgStars := 0.0
	if len(b.Employees) > 0 {
		for _, e := range b.Employees {
			stars := e.Stars
			if stars < 1 {
				stars = 1
			}
			if stars > 5 {
				stars = 5
			}
			avgStars += float64(stars)
		}
		avgStars /= float64(len(b.Employees))
	}

	eventDelta := 0.0
	for _, ev := range b.RecentEvents(balance.EventWindow) {
		eventDelta += finiteOr(ev.ReputationEffect, 0)
	}

	target := 0.6*clampPct(efficiency) +
		0.2*(avgStars/5*100) +
		finiteOr(b.MarketingBonus, 0) +
		impact.ReputationBonus +
		eventDelta
	target = clampPct(finiteOr(target, 0))

	next := current + (target-current)*balance.ReputationDriftRate
	return round2(clampPct(finiteOr(next, 0)))
}

func roleConfig(cat *catalog.Catalog, role catalog.Role) (catalog.RoleConfig, bool) {
	if cat == nil {
		return catalog.RoleConfig{}, false
	}
	return cat.Get(role)
}

// round2 keeps stored scores tidy without hiding drift.
func round2(f float64) float64 {
	return math.Round(f*100) / 100
}
