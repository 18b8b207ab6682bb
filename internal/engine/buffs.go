package engine

// stepBuffs applies every active buff's stat effects, then decrements the
// timers and drops expired entries.
func stepBuffs(ctx *Context, st *TurnState) {
	p := st.State.Player
	if p == nil || len(p.Buffs) == 0 {
		return
	}

	kept := p.Buffs[:0]
	for _, b := range p.Buffs {
		p.Stats.Energy += b.EnergyEffect
		p.Stats.Mood += b.MoodEffect
		p.Stats.Health += b.HealthEffect

		b.QuartersLeft--
		if b.QuartersLeft > 0 {
			kept = append(kept, b)
		} else {
			st.Notify("info", "Effect expired", b.Name+" has worn off.")
		}
	}
	p.Buffs = kept
	p.ClampStats()
}
