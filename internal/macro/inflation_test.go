package macro

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talgya/mogul/internal/balance"
	"github.com/talgya/mogul/internal/entropy"
)

func TestShouldApplyInflation(t *testing.T) {
	assert.False(t, ShouldApplyInflation(0), "turn 0 is setup, no inflation")

	for turn := 1; turn <= 24; turn++ {
		want := turn%4 == 1
		assert.Equal(t, want, ShouldApplyInflation(turn), "turn %d", turn)
	}
}

func TestCumulativeMultiplier_NeverBelowOne(t *testing.T) {
	histories := [][]float64{
		{},
		{0},
		{2.5},
		{0.1, 0.1, 0.1},
		{-3.0, 2.0}, // Negative rates count as zero
		{math.NaN(), 5.0},
		{20, 20, 20, 20, 20},
	}
	for _, h := range histories {
		for _, cat := range []Category{CategoryDefault, CategoryFood, CategoryHousing} {
			m := CumulativeMultiplier(h, cat)
			assert.GreaterOrEqual(t, m, 1.0, "history %v cat %s", h, cat)
			assert.False(t, math.IsNaN(m))
		}
	}
}

func TestCumulativeMultiplier_SingleYearExact(t *testing.T) {
	// A one-element history must compound exactly once — no skip-on-length-1.
	got := CumulativeMultiplier([]float64{3.0}, CategoryDefault)
	assert.InDelta(t, 1.03, got, 1e-12)

	got = CumulativeMultiplier([]float64{4.0}, CategoryHousing)
	assert.InDelta(t, 1+4.0*1.5/100, got, 1e-12)
}

func TestCumulativeMultiplier_TenYearScenario(t *testing.T) {
	history := []float64{2.1, 2.3, 2.5, 2.4, 2.2, 2.6, 2.8, 2.5, 2.3, 2.7}
	mult := CumulativeMultiplier(history, CategoryDefault)
	final := 1000 * mult
	assert.Greater(t, final, 1000.0)
	assert.Greater(t, final, 1200.0, "a decade of ~2.5%% compounds past 1200")
}

func TestApplyInflation(t *testing.T) {
	tests := []struct {
		name string
		base float64
		rate float64
		cat  Category
		want float64
	}{
		{"default category", 100, 5, CategoryDefault, 105},
		{"housing 1.5x", 100, 4, CategoryHousing, 106},
		{"food 0.5x", 100, 4, CategoryFood, 102},
		{"business 1.3x", 1000, 10, CategoryBusiness, 1130},
		{"zero rate", 100, 0, CategoryDefault, 100},
		{"negative rate ignored", 100, -3, CategoryDefault, 100},
		{"zero price", 0, 5, CategoryDefault, 0},
		{"negative price unchanged", -50, 5, CategoryDefault, -50},
		{"NaN rate", 100, math.NaN(), CategoryDefault, 100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ApplyInflation(tt.base, tt.rate, tt.cat))
		})
	}
}

func TestApplyInflation_InvalidBaseStaysFinite(t *testing.T) {
	for _, base := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		got := ApplyInflation(base, 5, CategoryDefault)
		require.False(t, math.IsNaN(got))
		require.False(t, math.IsInf(got, 0))
		assert.GreaterOrEqual(t, got, 0.0)
	}
}

func TestApplyInflation_NeverLowersPrice(t *testing.T) {
	for rate := 0.0; rate <= 20; rate += 0.5 {
		for _, cat := range []Category{CategoryDefault, CategoryFood, CategoryHousing, CategoryUtilities} {
			got := ApplyInflation(250, rate, cat)
			assert.GreaterOrEqual(t, got, 250.0, "rate %.1f cat %s", rate, cat)
		}
	}
}

func TestGenerateYearlyInflation_Bounds(t *testing.T) {
	eco := &CountryEconomy{}
	for _, v := range []float64{0, 0.25, 0.5, 0.75, 0.999} {
		rng := entropy.Fixed{Value: v}
		for _, prev := range []float64{0.1, 2.5, 12, 20, math.NaN(), -4} {
			rate := GenerateYearlyInflation(prev, eco, rng)
			assert.GreaterOrEqual(t, rate, balance.MinInflation)
			assert.LessOrEqual(t, rate, balance.MaxInflation)
			// Rounded to 0.1.
			assert.InDelta(t, math.Round(rate*10)/10, rate, 1e-12)
		}
	}
}

func TestGenerateYearlyInflation_TrendsTowardAnchor(t *testing.T) {
	eco := &CountryEconomy{}
	rng := entropy.Fixed{Value: 0.5} // Zero noise

	high := GenerateYearlyInflation(10, eco, rng)
	assert.Less(t, high, 10.0, "high rates damp down toward the anchor")

	low := GenerateYearlyInflation(0.5, eco, rng)
	assert.Greater(t, low, 0.5, "low rates drift up toward the anchor")
}

func TestGenerateYearlyInflation_CrisisWidens(t *testing.T) {
	rng := entropy.Fixed{Value: 0.5}
	calm := &CountryEconomy{}
	crisis := &CountryEconomy{ActiveEvents: []Event{{
		Kind: EventCrisis, QuartersLeft: 2, InflationEffect: 7,
	}}}

	base := GenerateYearlyInflation(2.5, calm, rng)
	widened := GenerateYearlyInflation(2.5, crisis, rng)
	assert.Greater(t, widened, base)
}

func TestNextKeyRate(t *testing.T) {
	rng := entropy.Fixed{Value: 0.5} // Zero noise

	// Target = inflation + spread; step capped at ±1 per year.
	got := NextKeyRate(4.0, 5.0, rng)
	assert.InDelta(t, 5.5, got, 1e-9)

	got = NextKeyRate(10.0, 3.0, rng)
	assert.InDelta(t, 4.0, got, 1e-9, "upward move clamps to +1")

	got = NextKeyRate(0.1, 8.0, rng)
	assert.InDelta(t, 7.0, got, 1e-9, "downward move clamps to -1")

	got = NextKeyRate(0.1, 0.2, rng)
	assert.GreaterOrEqual(t, got, balance.KeyRateFloor)
}

func TestChronologicalHistory(t *testing.T) {
	eco := &CountryEconomy{InflationHistory: []float64{2.7, 2.3, 2.1}} // Newest first
	assert.Equal(t, []float64{2.1, 2.3, 2.7}, eco.ChronologicalHistory())
}
