// Quarterly financial model. Dispatches on business state: opening
// businesses have no finances, frozen ones pay fixed costs, active ones run
// the full demand → revenue → tax pipeline. Every path returns a complete,
// finite result — NaN and invalid inputs substitute documented defaults.
package business

import (
	"math"

	"github.com/talgya/mogul/internal/balance"
	"github.com/talgya/mogul/internal/macro"
)

// Conditions carries the macro inputs the financial model reads. The
// orchestrator fills it once per country per quarter.
type Conditions struct {
	CycleModifier  float64     // Market demand multiplier from the business cycle
	Phase          macro.Phase // Current cycle phase (recession asymmetry)
	CycleIntensity float64     // 0.3–1.0

	// SalaryIndex and CostIndex are cumulative inflation multipliers for
	// wages and premises costs (≥ 1).
	SalaryIndex float64
	CostIndex   float64

	PayrollTaxRate float64
}

// Normalize substitutes safe values for missing or invalid fields.
func (c Conditions) Normalize() Conditions {
	c.CycleModifier = finiteOr(c.CycleModifier, 1.0)
	if c.CycleModifier < 0 {
		c.CycleModifier = 0
	}
	c.CycleIntensity = finiteOr(c.CycleIntensity, balance.MinIntensity)
	c.SalaryIndex = finiteOr(c.SalaryIndex, 1.0)
	if c.SalaryIndex < 1 {
		c.SalaryIndex = 1
	}
	c.CostIndex = finiteOr(c.CostIndex, 1.0)
	if c.CostIndex < 1 {
		c.CostIndex = 1
	}
	c.PayrollTaxRate = finiteOr(c.PayrollTaxRate, balance.PayrollTaxRate)
	if c.PayrollTaxRate < 0 {
		c.PayrollTaxRate = 0
	}
	return c
}

// Result is one quarter's computed finances plus the inventory to carry
// forward.
type Result struct {
	Report       Report
	NewInventory Inventory
	// PurchaseCost is the cash spent producing/acquiring stock this
	// quarter. It hits cash flow only; P&L expenses carry COGS instead.
	PurchaseCost int64
	// StaffingShort is set when minimum staffing was unmet (demand was
	// penalized and efficiency zeroed upstream).
	StaffingShort bool
}

// ComputeQuarter runs the financial pipeline for one business. The quarter
// argument is recorded in the report. Opening businesses return a zero
// report — their progress counter belongs to the orchestrator.
func ComputeQuarter(b *Business, impact TotalImpact, cond Conditions, quarter int) Result {
	cond = cond.Normalize()

	switch b.State {
	case StateOpening:
		return Result{Report: Report{Quarter: quarter}, NewInventory: b.Inventory}
	case StateFrozen:
		return frozenQuarter(b, cond, quarter)
	default:
		return activeQuarter(b, impact, cond, quarter)
	}
}

// frozenQuarter charges fixed expenses with zero income.
func frozenQuarter(b *Business, cond Conditions, quarter int) Result {
	fixed := fixedCosts(b, cond)

	expenses := roundMoney(fixed)
	return Result{
		Report: Report{
			Quarter:     quarter,
			Income:      0,
			Expenses:    expenses,
			GrossProfit: -expenses,
			Tax:         0,
			NetProfit:   -expenses,
			CashFlow:    -expenses,
		},
		NewInventory: b.Inventory,
	}
}

// activeQuarter runs the full pipeline: OpEx, revenue by kind, tax, outputs.
func activeQuarter(b *Business, impact TotalImpact, cond Conditions, quarter int) Result {
	staffed := b.MinStaffingMet()
	opex := operatingExpenses(b, impact, cond)

	var (
		salesIncome  float64
		cogs         float64
		purchaseCost float64
		salesVolume  int
		demand       float64
		priceUsed    float64
		newInv       = b.Inventory
	)

	switch b.Kind {
	case KindProduct:
		salesIncome, cogs, purchaseCost, salesVolume, demand, priceUsed, newInv = productRevenue(b, impact, cond, staffed)
	default:
		salesIncome, demand, priceUsed = serviceRevenue(b, impact, cond, staffed)
	}

	gross := salesIncome - cogs - opex
	tax := taxAmount(gross, b.TaxRate, impact.TaxReductionPct)

	income := roundMoney(salesIncome)
	expenses := roundMoney(cogs + opex + tax)
	netProfit := roundMoney(gross - tax)
	cashFlow := roundMoney(salesIncome - opex - tax - purchaseCost)

	return Result{
		Report: Report{
			Quarter:     quarter,
			Income:      income,
			Expenses:    expenses,
			GrossProfit: roundMoney(gross),
			Tax:         roundMoney(tax),
			NetProfit:   netProfit,
			CashFlow:    cashFlow,
			SalesVolume: salesVolume,
			Demand:      finiteOr(demand, 0),
			PriceUsed:   finiteOr(priceUsed, 0),
		},
		NewInventory:  newInv,
		PurchaseCost:  roundMoney(purchaseCost),
		StaffingShort: !staffed,
	}
}

// fixedCosts is rent, utilities and insurance — what even a mothballed
// business keeps paying.
func fixedCosts(b *Business, cond Conditions) float64 {
	slots := b.MaxEmployees
	if slots < 1 {
		slots = 1
	}
	rent := float64(balance.RentPerEmployeeSlot+balance.UtilitiesPerEmployeeSlot) * float64(slots) * cond.CostIndex
	insurance := 0.0
	if b.HasInsurance {
		insurance = finiteOr(float64(b.InsuranceCost), 0)
	}
	return rent + insurance
}

// operatingExpenses sums inflation-indexed salaries (with the KPI swing),
// payroll tax, premises costs, insurance and the fixed floor, then scales
// down by the role-driven expense reduction.
func operatingExpenses(b *Business, impact TotalImpact, cond Conditions) float64 {
	salaries := 0.0
	for _, e := range b.Employees {
		s := finiteOr(float64(e.Salary), 0)
		if s < 0 {
			s = 0
		}
		s *= cond.SalaryIndex

		// KPI adjustment: strong performers cost a bonus, weak ones take
		// a cut.
		prod := finiteOr(e.Productivity, 0)
		if prod >= balance.KPIBonusThreshold {
			s *= 1 + balance.KPISalarySwing
		} else if prod <= balance.KPIPenaltyThreshold {
			s *= 1 - balance.KPISalarySwing
		}
		salaries += s
	}

	payrollTax := salaries * cond.PayrollTaxRate
	opex := salaries + payrollTax + fixedCosts(b, cond) + balance.MinFixedCosts

	reduction := impact.ExpenseReductionPct / 100
	if reduction > balance.MaxExpenseReductionPct/100 {
		reduction = balance.MaxExpenseReductionPct / 100
	}
	if reduction < 0 || math.IsNaN(reduction) {
		reduction = 0
	}
	opex *= 1 - reduction

	if opex < 0 || !finite(opex) {
		opex = 0
	}
	return opex
}

// serviceRevenue: demand is capacity-anchored, shaved by elastic losses
// once the normalized price leaves the reputation-adjusted safe band.
func serviceRevenue(b *Business, impact TotalImpact, cond Conditions, staffed bool) (income, demand, priceUsed float64) {
	eff := clampPct(finiteOr(b.Efficiency, 0))
	rep := clampPct(finiteOr(b.Reputation, 0))

	level := b.NormalizedPriceLevel()
	normPrice := float64(level) / balance.ServicePriceDivisor

	// Reputation widens the price band customers tolerate.
	threshold := 1.0 + rep/200
	priceMod := 1.0
	if normPrice > threshold {
		priceMod = math.Pow(threshold/normPrice, balance.ElasticityExponent)
	}

	staffingMod := 1.0
	if !staffed {
		staffingMod = balance.StaffingPenalty
	}

	salesMod := 1 + impact.SalesBonusPct/100

	demand = float64(b.MaxEmployees) *
		balance.BaseServiceDemand *
		(eff / 100) *
		(0.5 + rep/100) *
		priceMod *
		cond.CycleModifier *
		staffingMod *
		salesMod
	demand = finiteOr(demand, 0)
	if demand < 0 {
		demand = 0
	}

	served := math.Floor(demand)
	income = served * balance.BaseRevenuePerPriceLevel * float64(level)
	priceUsed = balance.BaseRevenuePerPriceLevel * float64(level)
	return income, demand, priceUsed
}

// productRevenue: markup-keyed elasticity with asymmetric recession
// behavior, production capped by capacity, sales capped by stock.
func productRevenue(b *Business, impact TotalImpact, cond Conditions, staffed bool) (income, cogs, purchaseCost float64, salesVolume int, demand, priceUsed float64, newInv Inventory) {
	newInv = b.Inventory

	unitCost := b.Inventory.SafeUnitCost()
	level := b.NormalizedPriceLevel()
	normPrice := float64(level) * balance.ProductPriceFactor
	sellPrice := unitCost * normPrice
	priceUsed = sellPrice

	eff := clampPct(finiteOr(b.Efficiency, 0))
	rep := clampPct(finiteOr(b.Reputation, 0))

	// Markup as percent of sell price; negative when selling below cost.
	markupPct := 0.0
	if sellPrice > 0 {
		markupPct = (sellPrice - unitCost) / sellPrice * 100
	}

	safeMarkup := balance.SafeMarkupPct + rep/10
	markupMod := 1.0
	overpriced := markupPct > safeMarkup
	if overpriced {
		markupMod = math.Pow(safeMarkup/markupPct, balance.ElasticityExponent)
	}

	// Recession asymmetry: value goods hold demand, expensive ones bleed it.
	if cond.Phase == macro.PhaseRecession {
		if overpriced {
			markupMod *= 1 - cond.CycleIntensity*balance.RecessionLuxuryDragMax
		} else {
			markupMod *= balance.RecessionValueResist
		}
	}

	staffingMod := 1.0
	if !staffed {
		staffingMod = balance.StaffingPenalty
	}
	salesMod := 1 + impact.SalesBonusPct/100

	demand = float64(b.MaxEmployees) *
		balance.BaseProductDemand *
		(eff / 100) *
		(0.5 + rep/100) *
		markupMod *
		cond.CycleModifier *
		staffingMod *
		salesMod
	demand = finiteOr(demand, 0)
	if demand < 0 {
		demand = 0
	}

	// Production: plan capped by worker capacity.
	workers := len(b.Employees)
	if b.PlayerRoles.Operational != "" {
		workers++
	}
	capacity := float64(workers) * balance.BaseUnitsPerWorker * (eff / 100)
	plan := b.Quantity
	if plan < 0 {
		plan = 0
	}
	production := plan
	if float64(production) > capacity {
		production = int(capacity)
	}

	stock := b.Inventory.CurrentStock
	if stock < 0 {
		stock = 0
	}
	maxStock := b.Inventory.MaxStock
	if maxStock < 0 {
		maxStock = 0
	}
	// MaxStock is a hard bound; zero capacity means nothing is stored or
	// produced.
	if stock > maxStock {
		stock = maxStock
	}
	if stock+production > maxStock {
		production = maxStock - stock
	}
	if production < 0 {
		production = 0
	}

	demandUnits := int(math.Floor(demand))
	available := stock + production
	sold := demandUnits
	if sold > available {
		sold = available
	}
	if sold < 0 {
		sold = 0
	}

	income = float64(sold) * sellPrice
	cogs = float64(sold) * unitCost
	purchaseCost = float64(production) * unitCost
	salesVolume = sold

	remaining := stock + production - sold
	if remaining < 0 {
		remaining = 0
	}
	if remaining > maxStock {
		remaining = maxStock
	}
	newInv.CurrentStock = remaining
	newInv.UnitPrice = sellPrice
	newInv.UnitCost = unitCost

	return income, cogs, purchaseCost, salesVolume, demand, priceUsed, newInv
}

// taxAmount applies the role-reduced effective rate to positive gross
// profit only. Never negative.
func taxAmount(gross, baseRate, taxReductionPct float64) float64 {
	if !finite(gross) || gross <= 0 {
		return 0
	}
	baseRate = finiteOr(baseRate, 0)
	if baseRate < 0 {
		baseRate = 0
	}
	relief := taxReductionPct / 100
	if !finite(relief) || relief < 0 {
		relief = 0
	}
	if relief > balance.EffectiveTaxReliefCap {
		relief = balance.EffectiveTaxReliefCap
	}
	return math.Round(gross * baseRate * (1 - relief))
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

func finiteOr(f, def float64) float64 {
	if finite(f) {
		return f
	}
	return def
}

func roundMoney(f float64) int64 {
	if !finite(f) {
		return 0
	}
	return int64(math.Round(f))
}
