// Market step: refreshes each country's salary and cost-of-living indexes
// from the inflation history. Runs after the economy step so a fresh cycle
// exists, and before jobs/lifestyle which consume the indexes. Inflation
// itself lands at the end of the turn, so these indexes always reflect the
// prior year's rates.
package engine

import (
	"slices"

	"golang.org/x/exp/maps"

	"github.com/talgya/mogul/internal/macro"
)

func stepMarket(_ *Context, st *TurnState) {
	codes := maps.Keys(st.State.Countries)
	slices.Sort(codes)
	for _, code := range codes {
		eco := st.State.Countries[code]
		history := eco.ChronologicalHistory()
		eco.SalaryIndex = macro.CumulativeMultiplier(history, macro.CategoryDefault)
		eco.CostOfLivingIndex = macro.CumulativeMultiplier(history, macro.CategoryHousing)
	}
}
