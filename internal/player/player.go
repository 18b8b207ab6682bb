// Package player holds the player record: money, personal stats, role
// skills, employment and lifestyle. The turn pipeline mutates a copy and
// commits it with the rest of the state.
package player

import (
	"math"

	"github.com/talgya/mogul/internal/catalog"
)

// Stats are the player's personal condition, each 0–100.
type Stats struct {
	Energy float64 `json:"energy"`
	Mood   float64 `json:"mood"`
	Health float64 `json:"health"`
}

// Job is the player's salaried employment, if any.
type Job struct {
	Title    string `json:"title"`
	Salary   int64  `json:"salary"` // Quarterly, before indexing
	Country  string `json:"country"`
	Quarters int    `json:"quarters"` // Tenure
}

// Course is an in-progress education item.
type Course struct {
	Name         string       `json:"name"`
	Skill        catalog.Role `json:"skill"`
	QuartersLeft int          `json:"quarters_left"`
	SkillGain    float64      `json:"skill_gain"` // Per quarter while enrolled
}

// Buff is a timed stat modifier from events, purchases or lifestyle.
type Buff struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	QuartersLeft int     `json:"quarters_left"`
	EnergyEffect float64 `json:"energy_effect"`
	MoodEffect   float64 `json:"mood_effect"`
	HealthEffect float64 `json:"health_effect"`
}

// Player is the full player record.
type Player struct {
	Name    string `json:"name"`
	Country string `json:"country"` // Home country code
	Money   int64  `json:"money"`

	Stats Stats `json:"stats"`

	// Skills maps role identifiers to 0–100 proficiency. Roles the player
	// never trained sit at zero.
	Skills map[catalog.Role]float64 `json:"skills"`

	Job     *Job     `json:"job,omitempty"`
	Courses []Course `json:"courses,omitempty"`
	Buffs   []Buff   `json:"buffs,omitempty"`

	// LifestyleLevel scales quarterly cost of living (1 = modest).
	LifestyleLevel float64 `json:"lifestyle_level"`

	// QuartersBelowFloor counts consecutive quarters of ruinous debt for
	// the defeat check.
	QuartersBelowFloor int `json:"quarters_below_floor"`
}

// SkillFor implements the business.PlayerSkills lookup. Missing or invalid
// skills read as zero.
func (p *Player) SkillFor(role catalog.Role) float64 {
	if p == nil || p.Skills == nil {
		return 0
	}
	return clampSkill(p.Skills[role])
}

// GrowSkill raises a skill by delta, clamped to [0, 100].
func (p *Player) GrowSkill(role catalog.Role, delta float64) {
	if p.Skills == nil {
		p.Skills = make(map[catalog.Role]float64)
	}
	p.Skills[role] = clampSkill(p.Skills[role] + delta)
}

// Clone deep-copies the player for turn isolation.
func (p *Player) Clone() *Player {
	cp := *p
	cp.Skills = make(map[catalog.Role]float64, len(p.Skills))
	for k, v := range p.Skills {
		cp.Skills[k] = v
	}
	if p.Job != nil {
		jc := *p.Job
		cp.Job = &jc
	}
	cp.Courses = append([]Course(nil), p.Courses...)
	cp.Buffs = append([]Buff(nil), p.Buffs...)
	return &cp
}

// ClampStats forces every stat back into [0, 100]; NaN reads as zero.
func (p *Player) ClampStats() {
	p.Stats.Energy = clampSkill(p.Stats.Energy)
	p.Stats.Mood = clampSkill(p.Stats.Mood)
	p.Stats.Health = clampSkill(p.Stats.Health)
}

func clampSkill(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
