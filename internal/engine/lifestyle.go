package engine

import (
	"math"

	"github.com/talgya/mogul/internal/balance"
)

// stepLifestyle charges the quarterly cost of living. The base cost scales
// with the chosen lifestyle level and the country's accumulated cost of
// living index, so inflation bites the wallet even with a fixed lifestyle.
func stepLifestyle(ctx *Context, st *TurnState) {
	p := st.State.Player
	if p == nil {
		return
	}

	level := p.LifestyleLevel
	if level < 1 || math.IsNaN(level) {
		level = 1
	}

	costIndex := 1.0
	if eco := st.State.Country(p.Country); eco != nil && eco.CostOfLivingIndex > 0 {
		costIndex = eco.CostOfLivingIndex
	}

	spend := int64(math.Round(balance.BaseCostOfLiving * level * costIndex))
	p.Money -= spend
	st.LifestyleSpend += spend
}
