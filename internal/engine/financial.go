package engine

// stepFinancial folds the quarter's accumulators into a single report and
// appends it to the game record.
func stepFinancial(ctx *Context, st *TurnState) {
	closing := int64(0)
	if st.State.Player != nil {
		closing = st.State.Player.Money
	}

	report := QuarterReport{
		Quarter:          st.State.Turn,
		BusinessIncome:   st.BusinessIncome,
		BusinessExpenses: st.BusinessExpenses,
		BusinessNet:      st.BusinessNet,
		WageIncome:       st.WageIncome,
		LifestyleSpend:   st.LifestyleSpend,
		NetChange:        closing - st.openingMoney,
		ClosingMoney:     closing,
	}
	st.State.Reports = append(st.State.Reports, report)

	const keep = 40
	if len(st.State.Reports) > keep {
		st.State.Reports = st.State.Reports[len(st.State.Reports)-keep:]
	}
}
