package engine

import (
	"fmt"
	"slices"

	"golang.org/x/exp/maps"

	"github.com/talgya/mogul/internal/balance"
	"github.com/talgya/mogul/internal/macro"
)

// stepInflation runs once per in-game year, on the first quarter. It draws
// the new yearly rate for every country, records it, and lets the central
// bank chase it with the key rate. This is the last pipeline step: every
// other step this quarter saw the pre-adjustment price level.
func stepInflation(ctx *Context, st *TurnState) {
	if !macro.ShouldApplyInflation(st.State.Turn) {
		return
	}

	// Sorted order keeps the rng draw sequence seed-deterministic.
	codes := maps.Keys(st.State.Countries)
	slices.Sort(codes)
	for _, code := range codes {
		eco := st.State.Countries[code]
		rate := macro.GenerateYearlyInflation(eco.Inflation, eco, ctx.Rand)
		eco.Inflation = rate

		// Newest first, bounded.
		eco.InflationHistory = append([]float64{rate}, eco.InflationHistory...)
		if len(eco.InflationHistory) > balance.InflationHistoryCap {
			eco.InflationHistory = eco.InflationHistory[:balance.InflationHistoryCap]
		}

		eco.KeyRate = macro.NextKeyRate(rate, eco.KeyRate, ctx.Rand)

		if st.State.Player != nil && st.State.Player.Country == code {
			st.Notify("info", "Yearly inflation",
				fmt.Sprintf("Prices in %s rose %.1f%% this year. Key rate is now %.1f%%.", code, rate, eco.KeyRate))
		}
	}
}
