// Package balance holds the tuning constants behind every economic formula.
// Formulas elsewhere reference these by name — no magic numbers inline.
package balance

// Inflation model.
const (
	// WorldInflationAnchor is the long-run rate yearly inflation drifts toward.
	WorldInflationAnchor = 2.5

	// InflationDamping is the weight of last year's rate in the new trend.
	// The remainder (1 - damping) pulls toward the world anchor.
	InflationDamping = 0.7

	// InflationNoise bounds the random perturbation on the yearly rate, in
	// percentage points either way.
	InflationNoise = 0.8

	MinInflation = 0.1
	MaxInflation = 20.0

	// KeyRateSpread is the central-bank premium over inflation.
	KeyRateSpread = 1.5
	// KeyRateNoise bounds the random wobble on the key-rate target.
	KeyRateNoise = 0.3
	// KeyRateMaxStep caps how far the key rate moves in one year.
	KeyRateMaxStep = 1.0
	KeyRateFloor   = 0.1

	// InflationHistoryCap bounds the stored yearly history (newest first).
	InflationHistoryCap = 20
)

// Business cycle phases.
const (
	GrowthModifier    = 1.2
	PeakModifier      = 1.5
	RecessionModifier = 0.6
	RecoveryModifier  = 0.9

	// PeakIntensityBoost and RecessionIntensityDrag scale the phase modifier
	// by the drawn intensity.
	PeakIntensityBoost     = 0.3
	RecessionIntensityDrag = 0.2

	// Market fluctuation multiplier bounds, applied every quarter.
	FluctuationLow  = 0.9
	FluctuationHigh = 1.1

	MinIntensity = 0.3
	MaxIntensity = 1.0

	// Event odds when entering a volatile phase.
	CrisisChance = 0.35
	BoomChance   = 0.40
)

// Staffing and role impact caps.
const (
	MaxTaxReductionPct     = 80.0
	MaxExpenseReductionPct = 50.0

	// EffectiveTaxReliefCap limits how much of the base tax rate role
	// bonuses can shave off.
	EffectiveTaxReliefCap = 0.5
)

// Business finance.
const (
	// BaseServiceDemand is clients per employee slot per quarter before
	// modifiers.
	BaseServiceDemand = 40.0

	// BaseProductDemand is units demanded per employee slot per quarter
	// before modifiers.
	BaseProductDemand = 60.0

	// BaseRevenuePerPriceLevel is revenue per served client per price level.
	BaseRevenuePerPriceLevel = 12

	// ServicePriceDivisor normalizes a 1–10 price level for the service
	// elasticity curve (level 5 ⇒ 1.0).
	ServicePriceDivisor = 5.0

	// ProductPriceFactor normalizes a 1–10 price level into a markup
	// multiplier over unit cost (level 2 ⇒ sell at cost).
	ProductPriceFactor = 0.5

	// ElasticityExponent shapes demand loss beyond the safe price threshold.
	ElasticityExponent = 1.5

	// SafeMarkupPct is the markup percentage products sustain without
	// losing demand, before the reputation adjustment.
	SafeMarkupPct = 30.0

	// StaffingPenalty multiplies demand when minimum staffing is unmet.
	StaffingPenalty = 0.2

	// BaseUnitsPerWorker is quarterly production capacity per worker at
	// 100% efficiency.
	BaseUnitsPerWorker = 25.0

	// RentPerEmployeeSlot and UtilitiesPerEmployeeSlot are quarterly costs
	// per max-employee slot, before inflation indexing.
	RentPerEmployeeSlot      = 300
	UtilitiesPerEmployeeSlot = 80

	// MinFixedCosts is the quarterly operating floor every business pays.
	MinFixedCosts = 200

	PayrollTaxRate = 0.20

	// KPI salary adjustment thresholds.
	KPIBonusThreshold   = 80.0
	KPIPenaltyThreshold = 50.0
	KPISalarySwing      = 0.10

	// Recession asymmetry for product demand: low-margin goods resist the
	// downturn, high-margin goods lose extra demand.
	RecessionValueResist   = 1.05
	RecessionLuxuryDragMax = 0.3
)

// Numeric-defensive fallbacks (invalid inputs substitute these, never NaN).
const (
	DefaultUnitPrice = 100.0
	DefaultUnitCost  = 50.0
)

// Metrics model.
const (
	// ReputationDriftRate is the fraction of the gap to target reputation
	// closed each quarter.
	ReputationDriftRate = 0.10

	// ManagerEfficiencyBonusCap is the per-manager ceiling on the
	// efficiency bonus.
	ManagerEfficiencyBonusCap = 10.0

	// EventWindow is how many recent business events feed metrics.
	EventWindow = 4
)

// Player life.
const (
	BaseCostOfLiving = 900

	// RuinFloor is the money level below which the defeat countdown runs.
	RuinFloor = -5000

	// RuinQuarters is how many consecutive quarters below the floor end
	// the run.
	RuinQuarters = 2

	// EffortEnergyDrain is energy lost per quarter per 100% of committed
	// role effort.
	EffortEnergyDrain = 12.0
	EnergyRecovery    = 20.0
)
