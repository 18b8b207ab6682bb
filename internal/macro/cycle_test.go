package macro

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talgya/mogul/internal/balance"
	"github.com/talgya/mogul/internal/entropy"
)

func TestPhaseSequence(t *testing.T) {
	assert.Equal(t, PhasePeak, PhaseGrowth.Next())
	assert.Equal(t, PhaseRecession, PhasePeak.Next())
	assert.Equal(t, PhaseRecovery, PhaseRecession.Next())
	assert.Equal(t, PhaseGrowth, PhaseRecovery.Next())
	assert.Equal(t, PhaseGrowth, Phase("bogus").Next())
}

func TestModifierFor(t *testing.T) {
	tests := []struct {
		name        string
		phase       Phase
		intensity   float64
		fluctuation float64
		want        float64
	}{
		{"growth flat", PhaseGrowth, 0.5, 1.0, 1.2},
		{"recovery flat", PhaseRecovery, 0.5, 1.0, 0.9},
		{"peak intensity boost", PhasePeak, 1.0, 1.0, 1.8},
		{"recession intensity drag", PhaseRecession, 1.0, 1.0, 0.4},
		{"fluctuation applies", PhaseGrowth, 0.5, 1.1, 1.32},
		{"rounded to 2dp", PhasePeak, 0.33, 1.0, 1.6},
		{"NaN intensity falls back", PhaseRecession, math.NaN(), 1.0, 0.54},
		{"bad fluctuation falls back", PhaseGrowth, 0.5, math.NaN(), 1.2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, ModifierFor(tt.phase, tt.intensity, tt.fluctuation), 1e-9)
		})
	}
}

func TestTickCycle_InitializesMissingCycle(t *testing.T) {
	eco := &CountryEconomy{}
	TickCycle(eco, entropy.NewSeeded(7), 1.0)

	require.NotNil(t, eco.Cycle)
	assert.GreaterOrEqual(t, eco.Cycle.Intensity, balance.MinIntensity)
	assert.LessOrEqual(t, eco.Cycle.Intensity, balance.MaxIntensity)
	assert.Greater(t, eco.Cycle.MarketModifier, 0.0)
}

func TestTickCycle_TransitionsOnExpiry(t *testing.T) {
	eco := &CountryEconomy{Cycle: &Cycle{
		Phase:        PhaseGrowth,
		QuartersLeft: 1,
		Intensity:    0.5,
	}}
	TickCycle(eco, entropy.NewSeeded(3), 1.0)

	assert.Equal(t, PhasePeak, eco.Cycle.Phase)
	assert.GreaterOrEqual(t, eco.Cycle.QuartersLeft, phaseDurations[PhasePeak][0])
	assert.LessOrEqual(t, eco.Cycle.QuartersLeft, phaseDurations[PhasePeak][1])
}

func TestTickCycle_FullRotation(t *testing.T) {
	eco := &CountryEconomy{}
	rng := entropy.NewSeeded(42)
	seen := map[Phase]bool{}

	for q := 0; q < 120; q++ {
		TickCycle(eco, rng, 1.0)
		seen[eco.Cycle.Phase] = true
		assert.GreaterOrEqual(t, eco.Cycle.MarketModifier, 0.0)
	}

	for _, p := range []Phase{PhaseGrowth, PhasePeak, PhaseRecession, PhaseRecovery} {
		assert.True(t, seen[p], "phase %s never reached in 30 years", p)
	}
}

func TestTickCycle_EventEffectsBounded(t *testing.T) {
	eco := &CountryEconomy{}
	rng := entropy.NewSeeded(11)

	for q := 0; q < 400; q++ {
		ev := TickCycle(eco, rng, 1.0)
		if ev == nil {
			continue
		}
		switch ev.Kind {
		case EventCrisis:
			assert.GreaterOrEqual(t, ev.InflationEffect, 5.0)
			assert.LessOrEqual(t, ev.InflationEffect, 10.0)
			assert.GreaterOrEqual(t, ev.UnemploymentEffect, 3.0)
			assert.LessOrEqual(t, ev.UnemploymentEffect, 6.0)
			assert.Equal(t, -5.0, ev.GDPGrowthEffect)
			assert.Equal(t, PhaseRecession, eco.Cycle.Phase)
		case EventBoom:
			assert.Equal(t, 2.0, ev.InflationEffect)
			assert.Equal(t, -2.0, ev.UnemploymentEffect)
			assert.Equal(t, 4.0, ev.GDPGrowthEffect)
			assert.Equal(t, PhasePeak, eco.Cycle.Phase)
		}
		assert.NotEmpty(t, ev.ID)
	}
}

func TestMarketModifier_Fallback(t *testing.T) {
	eco := &CountryEconomy{}
	assert.Equal(t, 1.0, eco.MarketModifier())

	eco.Cycle = &Cycle{MarketModifier: 1.35}
	assert.Equal(t, 1.35, eco.MarketModifier())
}
