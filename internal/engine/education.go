// Education step: course progress plus on-the-job skill growth for every
// role the player occupies.
package engine

import "fmt"

func stepEducation(ctx *Context, st *TurnState) {
	p := st.State.Player
	if p == nil {
		return
	}

	kept := p.Courses[:0]
	for _, course := range p.Courses {
		p.GrowSkill(course.Skill, course.SkillGain)
		course.QuartersLeft--
		if course.QuartersLeft > 0 {
			kept = append(kept, course)
			continue
		}
		st.Notify("info", "Course completed",
			fmt.Sprintf("%s finished — %s skill improved.", course.Name, course.Skill))
	}
	p.Courses = kept

	// Occupying a role trains it.
	for _, b := range st.State.Businesses {
		effort := b.PlayerRoles.EffortFraction()
		for _, role := range b.PlayerRoles.All() {
			rc, ok := ctx.Catalog.Get(role)
			if !ok {
				continue
			}
			p.GrowSkill(role, rc.SkillGrowth*effort)
		}
	}
}
