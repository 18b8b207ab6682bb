// Jobs step: the player's wage income and the workforce's slow drift —
// experience accrues, productivity converges on skill.
package engine

import "math"

func stepJobs(_ *Context, st *TurnState) {
	p := st.State.Player
	if p != nil && p.Job != nil {
		eco := st.State.Country(p.Job.Country)
		index := 1.0
		if eco != nil && eco.SalaryIndex > 1 {
			index = eco.SalaryIndex
		}
		wage := int64(math.Round(float64(p.Job.Salary) * index))
		if wage < 0 {
			wage = 0
		}
		p.Money += wage
		p.Job.Quarters++
		st.WageIncome = wage
	}

	for _, b := range st.State.Businesses {
		for _, e := range b.Employees {
			e.ExperienceQuarters++

			// Productivity drifts toward skill, with a small tenure bonus
			// that tops out at +10.
			skill := e.SkillEfficiency
			if math.IsNaN(skill) || skill < 0 {
				skill = 0
			}
			tenure := float64(e.ExperienceQuarters) / 4
			if tenure > 10 {
				tenure = 10
			}
			target := skill + tenure
			if target > 100 {
				target = 100
			}
			if math.IsNaN(e.Productivity) {
				e.Productivity = 0
			}
			e.Productivity += (target - e.Productivity) * 0.25
			if e.Productivity < 0 {
				e.Productivity = 0
			}
			if e.Productivity > 100 {
				e.Productivity = 100
			}
		}
	}
}
