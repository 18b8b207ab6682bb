// Business step: the per-business quarterly pass. For each business it
// aggregates role impacts, runs the financial model against the current
// metrics, pays the player their ownership share of the cash flow, and
// finally recomputes efficiency and reputation for the next quarter.
package engine

import (
	"fmt"
	"math"

	"github.com/talgya/mogul/internal/business"
	"github.com/talgya/mogul/internal/macro"
)

func stepBusiness(ctx *Context, st *TurnState) {
	for _, b := range st.State.Businesses {
		switch b.State {
		case business.StateOpening:
			tickOpening(st, b)
			continue
		}

		impact := business.AggregateImpact(b, ctx.Catalog, st.State.Player)
		cond := conditionsFor(st, b)

		result := business.ComputeQuarter(b, impact, cond, st.State.Turn)

		// Write-back: inventory, restock, report, owner's cash.
		b.Inventory = result.NewInventory
		restockCost := autoRestock(b)

		report := result.Report
		b.LastReport = &report

		share := b.PlayerSharePct() / 100
		if st.State.Player != nil {
			cash := float64(report.CashFlow-restockCost) * share
			st.State.Player.Money += int64(math.Round(cash))
		}

		st.BusinessIncome += report.Income
		st.BusinessExpenses += report.Expenses
		st.BusinessNet += report.NetProfit

		if result.StaffingShort && b.State == business.StateActive {
			st.Notify("warning", "Insufficient staffing",
				fmt.Sprintf("%s is below minimum staffing. Output is crippled until you hire.", b.Name))
		}

		// Metrics feed the NEXT quarter: update after finances.
		eff := business.ComputeEfficiency(b, ctx.Catalog, st.State.Player, impact)
		rep := business.ComputeReputation(b, eff, impact)
		b.Efficiency = eff
		b.Reputation = rep

		trimEvents(b)
	}
}

// tickOpening advances construction; the business activates when the
// counter runs out.
func tickOpening(st *TurnState, b *business.Business) {
	b.OpeningProgress--
	if b.OpeningProgress <= 0 {
		b.OpeningProgress = 0
		b.State = business.StateActive
		st.Notify("info", "Business opened",
			fmt.Sprintf("%s is open for business.", b.Name))
	}
}

// conditionsFor assembles the macro inputs for one business's quarter.
func conditionsFor(st *TurnState, b *business.Business) business.Conditions {
	cond := business.Conditions{
		CycleModifier:  1.0,
		Phase:          macro.PhaseGrowth,
		CycleIntensity: 0.5,
		SalaryIndex:    1.0,
		CostIndex:      1.0,
	}

	eco := st.State.Country(b.Country)
	if eco == nil {
		return cond
	}

	cond.CycleModifier = eco.MarketModifier()
	if eco.Cycle != nil {
		cond.Phase = eco.Cycle.Phase
		cond.CycleIntensity = eco.Cycle.Intensity
	}
	cond.SalaryIndex = eco.SalaryIndex
	cond.CostIndex = macro.CumulativeMultiplier(eco.ChronologicalHistory(), macro.CategoryBusiness)
	return cond
}

// autoRestock tops the warehouse back up to the configured level after
// sales, returning the cash spent.
func autoRestock(b *business.Business) int64 {
	if b.Kind != business.KindProduct || b.Inventory.AutoRestock <= 0 {
		return 0
	}
	want := b.Inventory.AutoRestock
	if want > b.Inventory.MaxStock {
		want = b.Inventory.MaxStock
	}
	if want < 0 {
		want = 0
	}
	if b.Inventory.CurrentStock >= want {
		return 0
	}

	units := want - b.Inventory.CurrentStock
	b.Inventory.CurrentStock = want
	return int64(math.Round(float64(units) * b.Inventory.SafeUnitCost()))
}

// trimEvents keeps the business event history bounded.
func trimEvents(b *business.Business) {
	const keep = 8
	if len(b.EventsHistory) > keep {
		b.EventsHistory = b.EventsHistory[len(b.EventsHistory)-keep:]
	}
}
