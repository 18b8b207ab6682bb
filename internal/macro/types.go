// Package macro models the country-level economy: yearly inflation,
// the central-bank key rate, and the business-cycle state machine whose
// market modifier feeds business demand each quarter.
package macro

// Category classifies goods for inflation indexing. Different good classes
// inflate at different speeds relative to the headline rate.
type Category string

const (
	CategoryDefault   Category = "default"
	CategoryHousing   Category = "housing"
	CategoryBusiness  Category = "business"
	CategoryLuxury    Category = "luxury"
	CategoryServices  Category = "services"
	CategoryUtilities Category = "utilities"
	CategoryFood      Category = "food"
)

// Phase is one stage of the business cycle.
type Phase string

const (
	PhaseGrowth    Phase = "growth"
	PhasePeak      Phase = "peak"
	PhaseRecession Phase = "recession"
	PhaseRecovery  Phase = "recovery"
)

// Next returns the phase that follows p in the fixed cycle
// growth → peak → recession → recovery → growth.
func (p Phase) Next() Phase {
	switch p {
	case PhaseGrowth:
		return PhasePeak
	case PhasePeak:
		return PhaseRecession
	case PhaseRecession:
		return PhaseRecovery
	case PhaseRecovery:
		return PhaseGrowth
	default:
		return PhaseGrowth
	}
}

// EventKind classifies a macro event.
type EventKind string

const (
	EventCrisis EventKind = "crisis"
	EventBoom   EventKind = "boom"
)

// Event is an active macro shock affecting a country's rates while it lasts.
type Event struct {
	ID           string    `json:"id"`
	Kind         EventKind `json:"kind"`
	Title        string    `json:"title"`
	QuartersLeft int       `json:"quarters_left"`

	// Rate effects while active, in percentage points.
	InflationEffect    float64 `json:"inflation_effect"`
	UnemploymentEffect float64 `json:"unemployment_effect"`
	GDPGrowthEffect    float64 `json:"gdp_growth_effect"`
}

// Cycle is the persisted business-cycle state for one country.
type Cycle struct {
	Phase          Phase   `json:"phase"`
	QuartersLeft   int     `json:"quarters_left"`
	Intensity      float64 `json:"intensity"`       // 0.3–1.0, drawn per phase
	MarketModifier float64 `json:"market_modifier"` // Current demand multiplier
}

// CountryEconomy is the persistent macro record for one country. Inflation
// fields mutate once per year, the cycle once per quarter — both driven by
// the turn counter, never ad hoc.
type CountryEconomy struct {
	Code string `json:"code"`
	Name string `json:"name"`

	Inflation    float64 `json:"inflation"`     // Current yearly rate, percent
	KeyRate      float64 `json:"key_rate"`      // Central-bank rate, percent
	Unemployment float64 `json:"unemployment"`  // Percent
	GDPGrowth    float64 `json:"gdp_growth"`    // Percent
	CorporateTax float64 `json:"corporate_tax"` // Fraction, e.g. 0.2
	PersonalTax  float64 `json:"personal_tax"`  // Fraction

	// SalaryIndex and CostOfLivingIndex compound with inflation and drive
	// wages and lifestyle costs. Both start at 1.0.
	SalaryIndex       float64 `json:"salary_index"`
	CostOfLivingIndex float64 `json:"cost_of_living_index"`

	// InflationHistory stores past yearly rates NEWEST FIRST. Consumers
	// compounding over time must use ChronologicalHistory.
	InflationHistory []float64 `json:"inflation_history"`

	ActiveEvents []Event `json:"active_events"`
	Cycle        *Cycle  `json:"cycle,omitempty"`
}

// ChronologicalHistory returns the inflation history oldest→newest. The
// stored order is newest-first; this is the documented reversal point for
// anything that compounds rates over time.
func (c *CountryEconomy) ChronologicalHistory() []float64 {
	out := make([]float64, len(c.InflationHistory))
	for i, r := range c.InflationHistory {
		out[len(out)-1-i] = r
	}
	return out
}

// CrisisActive reports whether any crisis event is currently running.
func (c *CountryEconomy) CrisisActive() bool {
	for _, e := range c.ActiveEvents {
		if e.Kind == EventCrisis && e.QuartersLeft > 0 {
			return true
		}
	}
	return false
}

// MarketModifier returns the current cycle demand multiplier, 1.0 when no
// cycle has been initialized yet.
func (c *CountryEconomy) MarketModifier() float64 {
	if c.Cycle == nil || c.Cycle.MarketModifier <= 0 {
		return 1.0
	}
	return c.Cycle.MarketModifier
}
