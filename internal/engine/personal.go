// Personal step: energy, mood and health dynamics. Role work drains
// energy per the catalog; rest recovers it; running on empty erodes mood
// and, eventually, health.
package engine

import "github.com/talgya/mogul/internal/balance"

func stepPersonal(ctx *Context, st *TurnState) {
	p := st.State.Player
	if p == nil {
		return
	}

	drain := 0.0
	moodDelta := 0.0
	for _, b := range st.State.Businesses {
		effort := b.PlayerRoles.EffortFraction()
		for _, role := range b.PlayerRoles.All() {
			rc, ok := ctx.Catalog.Get(role)
			if !ok {
				drain += balance.EffortEnergyDrain * effort
				continue
			}
			drain += rc.EnergyCost * effort
			moodDelta += rc.MoodEffect * effort
		}
	}
	if p.Job != nil {
		drain += balance.EffortEnergyDrain
	}

	p.Stats.Energy += balance.EnergyRecovery - drain
	p.Stats.Mood += moodDelta

	// Exhaustion sours mood; burnout chips health.
	if p.Stats.Energy < 20 {
		p.Stats.Mood -= 5
		p.Stats.Health -= 2
	} else if p.Stats.Mood > 70 && p.Stats.Health < 100 {
		p.Stats.Health += 1
	}

	p.ClampStats()
}
