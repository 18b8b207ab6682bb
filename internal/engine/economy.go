// Economy step: ticks each country's business cycle, applies and expires
// macro events, and drifts unemployment and GDP toward phase-typical levels.
package engine

import (
	"fmt"
	"math"
	"slices"

	"golang.org/x/exp/maps"

	"github.com/talgya/mogul/internal/balance"
	"github.com/talgya/mogul/internal/macro"
)

// phaseUnemployment is the unemployment level each phase pulls toward.
var phaseUnemployment = map[macro.Phase]float64{
	macro.PhaseGrowth:    5.0,
	macro.PhasePeak:      4.0,
	macro.PhaseRecession: 9.0,
	macro.PhaseRecovery:  7.0,
}

// phaseGDPGrowth is the baseline yearly GDP growth per phase.
var phaseGDPGrowth = map[macro.Phase]float64{
	macro.PhaseGrowth:    3.0,
	macro.PhasePeak:      4.0,
	macro.PhaseRecession: -2.0,
	macro.PhaseRecovery:  1.5,
}

func stepEconomy(ctx *Context, st *TurnState) {
	tick := uint64(st.State.Turn)

	// Countries draw from the shared rng: iterate in sorted order so the
	// draw sequence is a function of the seed, not of map layout.
	codes := maps.Keys(st.State.Countries)
	slices.Sort(codes)
	for _, code := range codes {
		eco := st.State.Countries[code]
		// Expire old events before the cycle may emit a new one.
		kept := eco.ActiveEvents[:0]
		for _, ev := range eco.ActiveEvents {
			ev.QuartersLeft--
			if ev.QuartersLeft > 0 {
				kept = append(kept, ev)
			}
		}
		eco.ActiveEvents = kept

		fluct := ctx.Fluct.RangeAt(tick, balance.FluctuationLow, balance.FluctuationHigh)
		if emitted := macro.TickCycle(eco, ctx.Rand, fluct); emitted != nil {
			eco.ActiveEvents = append(eco.ActiveEvents, *emitted)
			notifyMacroEvent(st, code, emitted)
		}

		driftRates(eco)
	}
}

// driftRates moves unemployment and GDP growth toward phase-typical values,
// shifted by whatever events are running.
func driftRates(eco *macro.CountryEconomy) {
	phase := macro.PhaseGrowth
	if eco.Cycle != nil {
		phase = eco.Cycle.Phase
	}

	targetU := phaseUnemployment[phase]
	targetG := phaseGDPGrowth[phase]
	for _, ev := range eco.ActiveEvents {
		targetU += ev.UnemploymentEffect
		targetG += ev.GDPGrowthEffect
	}

	if math.IsNaN(eco.Unemployment) {
		eco.Unemployment = targetU
	}
	eco.Unemployment += (targetU - eco.Unemployment) * 0.2
	if eco.Unemployment < 1 {
		eco.Unemployment = 1
	}
	if eco.Unemployment > 25 {
		eco.Unemployment = 25
	}

	if math.IsNaN(eco.GDPGrowth) {
		eco.GDPGrowth = targetG
	}
	eco.GDPGrowth += (targetG - eco.GDPGrowth) * 0.3
}

func notifyMacroEvent(st *TurnState, country string, ev *macro.Event) {
	switch ev.Kind {
	case macro.EventCrisis:
		st.Notify("crisis", ev.Title,
			fmt.Sprintf("A financial crisis has hit %s. Prices and unemployment are climbing.", country))
	case macro.EventBoom:
		st.Notify("boom", ev.Title,
			fmt.Sprintf("The economy of %s is booming. Demand is up across the board.", country))
	}
}
