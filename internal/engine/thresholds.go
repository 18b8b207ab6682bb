package engine

import (
	"fmt"

	"github.com/talgya/mogul/internal/balance"
	"github.com/talgya/mogul/internal/player"
)

// stepThresholds runs end-of-quarter defeat checks. Ruin requires sitting
// below the debt floor for consecutive quarters; a single bad quarter only
// earns a warning.
func stepThresholds(ctx *Context, st *TurnState) {
	p := st.State.Player
	if p == nil {
		return
	}

	checkRuin(st, p)
	if st.State.Ended {
		return
	}
	checkHealth(st, p)
}

func checkRuin(st *TurnState, p *player.Player) {
	if p.Money > balance.RuinFloor {
		p.QuartersBelowFloor = 0
		return
	}

	p.QuartersBelowFloor++
	if p.QuartersBelowFloor >= balance.RuinQuarters {
		st.State.Ended = true
		st.State.EndReason = "bankruptcy"
		st.Notify("defeat", "Bankruptcy",
			fmt.Sprintf("Debts of %d have buried you. The game is over.", -p.Money))
		return
	}

	st.Notify("warning", "Creditors circling",
		"Your debt is past the point of no return. Recover next quarter or lose everything.")
}

func checkHealth(st *TurnState, p *player.Player) {
	if p.Stats.Health > 0 {
		return
	}
	st.State.Ended = true
	st.State.EndReason = "health"
	st.Notify("defeat", "Collapse", "Your health has given out. The game is over.")
}
