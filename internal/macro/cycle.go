// Business-cycle state machine: growth → peak → recession → recovery.
package macro

import (
	"math"

	"github.com/google/uuid"

	"github.com/talgya/mogul/internal/balance"
	"github.com/talgya/mogul/internal/entropy"
)

// phaseDurations holds the [min, max] phase length in quarters.
var phaseDurations = map[Phase][2]int{
	PhaseGrowth:    {4, 10},
	PhasePeak:      {2, 4},
	PhaseRecession: {2, 6},
	PhaseRecovery:  {3, 6},
}

// BaseModifier returns the market demand modifier for a phase before
// intensity and fluctuation.
func BaseModifier(p Phase) float64 {
	switch p {
	case PhaseGrowth:
		return balance.GrowthModifier
	case PhasePeak:
		return balance.PeakModifier
	case PhaseRecession:
		return balance.RecessionModifier
	case PhaseRecovery:
		return balance.RecoveryModifier
	default:
		return 1.0
	}
}

// NewCycle starts a fresh cycle in the growth phase with a random duration.
// Used when a country has no persisted cycle yet.
func NewCycle(rng entropy.Source) *Cycle {
	c := &Cycle{
		Phase:        PhaseGrowth,
		QuartersLeft: drawDuration(PhaseGrowth, rng),
		Intensity:    rng.Range(balance.MinIntensity, balance.MaxIntensity),
	}
	c.MarketModifier = BaseModifier(PhaseGrowth)
	return c
}

// TickCycle advances a country's cycle by one quarter and refreshes its
// market modifier. Entering peak or recession may emit a macro event; the
// returned event is nil otherwise. fluctuation must already be in
// [FluctuationLow, FluctuationHigh] — the caller owns the noise stream.
func TickCycle(eco *CountryEconomy, rng entropy.Source, fluctuation float64) *Event {
	if eco.Cycle == nil {
		eco.Cycle = NewCycle(rng)
	}
	c := eco.Cycle

	var emitted *Event
	c.QuartersLeft--
	if c.QuartersLeft <= 0 {
		c.Phase = c.Phase.Next()
		c.QuartersLeft = drawDuration(c.Phase, rng)
		c.Intensity = rng.Range(balance.MinIntensity, balance.MaxIntensity)
		emitted = maybeEmitEvent(c, rng)
	}

	c.MarketModifier = ModifierFor(c.Phase, c.Intensity, fluctuation)
	return emitted
}

// ModifierFor computes the quarterly market modifier for a phase at the
// given intensity, scaled by the fluctuation multiplier, rounded to 2
// decimals. Pure — the randomness lives in the inputs.
func ModifierFor(phase Phase, intensity, fluctuation float64) float64 {
	if !isFinite(intensity) || intensity < 0 {
		intensity = balance.MinIntensity
	}
	if !isFinite(fluctuation) || fluctuation <= 0 {
		fluctuation = 1.0
	}

	mod := BaseModifier(phase)
	switch phase {
	case PhasePeak:
		mod += intensity * balance.PeakIntensityBoost
	case PhaseRecession:
		mod -= intensity * balance.RecessionIntensityDrag
	}

	mod *= fluctuation
	if mod < 0 {
		mod = 0
	}
	return math.Round(mod*100) / 100
}

func drawDuration(p Phase, rng entropy.Source) int {
	d, ok := phaseDurations[p]
	if !ok {
		return 4
	}
	return rng.IntBetween(d[0], d[1])
}

// maybeEmitEvent rolls for a crisis on entering recession and a boom on
// entering peak.
func maybeEmitEvent(c *Cycle, rng entropy.Source) *Event {
	switch c.Phase {
	case PhaseRecession:
		if rng.Float() < balance.CrisisChance {
			return &Event{
				ID:                 uuid.NewString(),
				Kind:               EventCrisis,
				Title:              "Financial crisis",
				QuartersLeft:       c.QuartersLeft,
				InflationEffect:    rng.Range(5, 10),
				UnemploymentEffect: rng.Range(3, 6),
				GDPGrowthEffect:    -5,
			}
		}
	case PhasePeak:
		if rng.Float() < balance.BoomChance {
			return &Event{
				ID:                 uuid.NewString(),
				Kind:               EventBoom,
				Title:              "Economic boom",
				QuartersLeft:       c.QuartersLeft,
				InflationEffect:    2,
				UnemploymentEffect: -2,
				GDPGrowthEffect:    4,
			}
		}
	}
	return nil
}
