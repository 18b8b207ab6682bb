// Yearly inflation model: a bounded, trend-following rate and the
// compounding price multipliers derived from it.
package macro

import (
	"math"

	"github.com/talgya/mogul/internal/balance"
	"github.com/talgya/mogul/internal/entropy"
)

// categoryMultipliers scale the headline rate per good class. Housing and
// business costs outrun headline inflation; staple food lags it.
var categoryMultipliers = map[Category]float64{
	CategoryDefault:   1.0,
	CategoryHousing:   1.5,
	CategoryBusiness:  1.3,
	CategoryLuxury:    1.2,
	CategoryServices:  1.1,
	CategoryUtilities: 0.9,
	CategoryFood:      0.5,
}

// CategoryMultiplier returns the inflation multiplier for a good class.
// Unknown categories fall back to the default 1.0.
func CategoryMultiplier(cat Category) float64 {
	if m, ok := categoryMultipliers[cat]; ok {
		return m
	}
	return 1.0
}

// ShouldApplyInflation reports whether the yearly inflation update runs on
// this turn. Turn 0 is setup; the update lands on the first quarter of each
// simulated year (turns 1, 5, 9, ...).
func ShouldApplyInflation(turn int) bool {
	return turn > 0 && turn%4 == 1
}

// GenerateYearlyInflation computes next year's rate from the previous one.
// The previous rate is damped toward the long-run world anchor, widened
// while a crisis runs, and perturbed by bounded noise, then clamped and
// rounded to 0.1. Call exactly once per year, gated by ShouldApplyInflation.
func GenerateYearlyInflation(prev float64, eco *CountryEconomy, rng entropy.Source) float64 {
	if !isFinite(prev) || prev < 0 {
		prev = balance.WorldInflationAnchor
	}

	trend := prev*balance.InflationDamping + balance.WorldInflationAnchor*(1-balance.InflationDamping)

	if eco != nil {
		for _, e := range eco.ActiveEvents {
			if e.QuartersLeft > 0 {
				trend += e.InflationEffect
			}
		}
	}

	noise := rng.Range(-balance.InflationNoise, balance.InflationNoise)
	rate := trend + noise

	if rate < balance.MinInflation {
		rate = balance.MinInflation
	}
	if rate > balance.MaxInflation {
		rate = balance.MaxInflation
	}
	return math.Round(rate*10) / 10
}

// ApplyInflation indexes a price by one yearly rate for the given category.
// Invalid inputs leave the price untouched — a price never becomes NaN or
// falls because of inflation alone.
func ApplyInflation(basePrice, rate float64, cat Category) float64 {
	if !isFinite(basePrice) {
		return balance.DefaultUnitPrice
	}
	if basePrice <= 0 {
		return basePrice
	}
	if !isFinite(rate) || rate < 0 {
		return basePrice
	}
	return math.Round(basePrice * (1 + rate*CategoryMultiplier(cat)/100))
}

// CumulativeMultiplier compounds a chronological (oldest→newest) history of
// yearly rates into one price multiplier. Negative or invalid entries count
// as zero, so the result is always ≥ 1: prices never fall from inflation
// alone. Callers holding a CountryEconomy must pass ChronologicalHistory().
func CumulativeMultiplier(history []float64, cat Category) float64 {
	mult := 1.0
	catMult := CategoryMultiplier(cat)
	for _, rate := range history {
		if !isFinite(rate) || rate < 0 {
			continue
		}
		mult *= 1 + rate*catMult/100
	}
	if mult < 1 {
		return 1
	}
	return mult
}

// NextKeyRate moves the central-bank rate toward inflation plus a fixed
// spread, at most one point per year, never below the floor.
func NextKeyRate(inflation, prev float64, rng entropy.Source) float64 {
	if !isFinite(inflation) || inflation < 0 {
		inflation = balance.WorldInflationAnchor
	}
	if !isFinite(prev) || prev < 0 {
		prev = inflation
	}

	target := inflation + balance.KeyRateSpread + rng.Range(-balance.KeyRateNoise, balance.KeyRateNoise)

	delta := target - prev
	if delta > balance.KeyRateMaxStep {
		delta = balance.KeyRateMaxStep
	}
	if delta < -balance.KeyRateMaxStep {
		delta = -balance.KeyRateMaxStep
	}

	rate := prev + delta
	if rate < balance.KeyRateFloor {
		rate = balance.KeyRateFloor
	}
	return math.Round(rate*10) / 10
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
