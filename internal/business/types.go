// Package business models a single business: its staff, inventory, and the
// quarterly financial pipeline that turns demand into money.
package business

import (
	"math"

	"github.com/talgya/mogul/internal/balance"
	"github.com/talgya/mogul/internal/catalog"
)

// Kind distinguishes the two revenue models.
type Kind string

const (
	// KindService sells capacity: revenue scales with served clients.
	KindService Kind = "service"
	// KindProduct sells stock: revenue scales with units sold at a markup.
	KindProduct Kind = "product"
)

// State is the business lifecycle stage.
type State string

const (
	StateOpening State = "opening" // Under construction, no finances yet
	StateActive  State = "active"  // Full quarterly pipeline
	StateFrozen  State = "frozen"  // Mothballed: fixed expenses, zero income
)

// Employee is one hired staff member.
type Employee struct {
	ID   string `json:"id"`
	Name string `json:"name"`

	Role  catalog.Role `json:"role"`
	Stars int          `json:"stars"` // 1–5 rating

	SkillEfficiency    float64 `json:"skill_efficiency"` // 0–100
	Salary             int64   `json:"salary"`           // Quarterly baseline
	Productivity       float64 `json:"productivity"`     // 0–100
	ExperienceQuarters int     `json:"experience_quarters"`
	EffortPercent      float64 `json:"effort_percent"` // 10–100
}

// EffortFraction returns the employee's commitment as a 0–1 fraction,
// clamped to the valid 10–100 band.
func (e *Employee) EffortFraction() float64 {
	p := e.EffortPercent
	if math.IsNaN(p) || p < 10 {
		p = 10
	}
	if p > 100 {
		p = 100
	}
	return p / 100
}

// Inventory is the product-business stock snapshot.
type Inventory struct {
	CurrentStock int     `json:"current_stock"`
	MaxStock     int     `json:"max_stock"`
	UnitPrice    float64 `json:"unit_price"` // Sell price per unit
	UnitCost     float64 `json:"unit_cost"`  // Acquisition/production cost per unit
	AutoRestock  int     `json:"auto_restock"`
}

// SafeUnitCost returns the unit cost, substituting the documented default
// when the stored value is missing or invalid.
func (inv *Inventory) SafeUnitCost() float64 {
	if inv == nil || math.IsNaN(inv.UnitCost) || math.IsInf(inv.UnitCost, 0) || inv.UnitCost <= 0 {
		return balance.DefaultUnitCost
	}
	return inv.UnitCost
}

// SafeUnitPrice returns the unit sell price with the same guard.
func (inv *Inventory) SafeUnitPrice() float64 {
	if inv == nil || math.IsNaN(inv.UnitPrice) || math.IsInf(inv.UnitPrice, 0) || inv.UnitPrice <= 0 {
		return balance.DefaultUnitPrice
	}
	return inv.UnitPrice
}

// Partner is one ownership stake. Shares across a business sum to 100.
type Partner struct {
	Name     string  `json:"name"`
	SharePct float64 `json:"share_pct"`
	Invested int64   `json:"invested"`
	IsPlayer bool    `json:"is_player"`
}

// Event is a notable business occurrence whose effects feed the metrics
// model for a few quarters.
type Event struct {
	ID      string `json:"id"`
	Quarter int    `json:"quarter"`
	Title   string `json:"title"`

	EfficiencyEffect float64 `json:"efficiency_effect"`
	ReputationEffect float64 `json:"reputation_effect"`
}

// PlayerRoles tracks which positions the player personally fills in one
// business: any number of managerial roles plus at most one operational.
type PlayerRoles struct {
	Managerial  []catalog.Role `json:"managerial"`
	Operational catalog.Role   `json:"operational,omitempty"` // Empty = none
	// EffortPercent is the player's commitment across these roles, 10–100.
	EffortPercent float64 `json:"effort_percent"`
}

// All returns every role the player occupies in this business.
func (pr PlayerRoles) All() []catalog.Role {
	roles := make([]catalog.Role, 0, len(pr.Managerial)+1)
	roles = append(roles, pr.Managerial...)
	if pr.Operational != "" {
		roles = append(roles, pr.Operational)
	}
	return roles
}

// EffortFraction returns the player's commitment as a 0–1 fraction.
func (pr PlayerRoles) EffortFraction() float64 {
	p := pr.EffortPercent
	if math.IsNaN(p) || p < 10 {
		p = 10
	}
	if p > 100 {
		p = 100
	}
	return p / 100
}

// Report is the last-quarter financial summary written back after every
// active quarter.
type Report struct {
	Quarter     int   `json:"quarter"`
	Income      int64 `json:"income"`
	Expenses    int64 `json:"expenses"`
	GrossProfit int64 `json:"gross_profit"`
	Tax         int64 `json:"tax"`
	NetProfit   int64 `json:"net_profit"`
	CashFlow    int64 `json:"cash_flow"`

	SalesVolume int     `json:"sales_volume"`
	Demand      float64 `json:"demand"`
	PriceUsed   float64 `json:"price_used"` // Effective sell price (debug)
}

// Business is the full record for one business.
type Business struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Kind    Kind   `json:"kind"`
	Country string `json:"country"`

	State           State `json:"state"`
	OpeningProgress int   `json:"opening_progress"` // Quarters until open

	PriceLevel int       `json:"price_level"` // 1–10
	Quantity   int       `json:"quantity"`    // Target production plan (product kind)
	Inventory  Inventory `json:"inventory"`

	Employees     []*Employee    `json:"employees"`
	MaxEmployees  int            `json:"max_employees"`
	MinEmployees  int            `json:"min_employees"`
	RequiredRoles []catalog.Role `json:"required_roles"`
	PlayerRoles   PlayerRoles    `json:"player_roles"`

	Reputation float64 `json:"reputation"` // 0–100
	Efficiency float64 `json:"efficiency"` // 0–100

	TaxRate       float64 `json:"tax_rate"` // Fraction, e.g. 0.2
	HasInsurance  bool    `json:"has_insurance"`
	InsuranceCost int64   `json:"insurance_cost"`

	MarketingBonus float64 `json:"marketing_bonus"` // Reputation target bonus

	Partners      []Partner `json:"partners"`
	EventsHistory []Event   `json:"events_history"`

	LastReport *Report `json:"last_report,omitempty"`
}

// PlayerSharePct returns the player's ownership share. A business without
// an explicit partner table is wholly player-owned.
func (b *Business) PlayerSharePct() float64 {
	if len(b.Partners) == 0 {
		return 100
	}
	for _, p := range b.Partners {
		if p.IsPlayer {
			return clampPct(p.SharePct)
		}
	}
	return 0
}

// NormalizedPriceLevel clamps the 1–10 price level.
func (b *Business) NormalizedPriceLevel() int {
	if b.PriceLevel < 1 {
		return 1
	}
	if b.PriceLevel > 10 {
		return 10
	}
	return b.PriceLevel
}

// MinStaffingMet reports whether the business has enough staff and every
// required operational role is covered by an employee or the player.
func (b *Business) MinStaffingMet() bool {
	if len(b.Employees) < b.MinEmployees {
		return false
	}
	for _, required := range b.RequiredRoles {
		if !b.roleCovered(required) {
			return false
		}
	}
	return true
}

func (b *Business) roleCovered(role catalog.Role) bool {
	for _, e := range b.Employees {
		if e.Role == role {
			return true
		}
	}
	if b.PlayerRoles.Operational == role {
		return true
	}
	for _, r := range b.PlayerRoles.Managerial {
		if r == role {
			return true
		}
	}
	return false
}

// RecentEvents returns the last n business events, newest last.
func (b *Business) RecentEvents(n int) []Event {
	if len(b.EventsHistory) <= n {
		return b.EventsHistory
	}
	return b.EventsHistory[len(b.EventsHistory)-n:]
}

// Clone deep-copies the business so a turn can mutate freely before commit.
func (b *Business) Clone() *Business {
	cp := *b
	cp.Employees = make([]*Employee, len(b.Employees))
	for i, e := range b.Employees {
		ec := *e
		cp.Employees[i] = &ec
	}
	cp.RequiredRoles = append([]catalog.Role(nil), b.RequiredRoles...)
	cp.PlayerRoles.Managerial = append([]catalog.Role(nil), b.PlayerRoles.Managerial...)
	cp.Partners = append([]Partner(nil), b.Partners...)
	cp.EventsHistory = append([]Event(nil), b.EventsHistory...)
	if b.LastReport != nil {
		rc := *b.LastReport
		cp.LastReport = &rc
	}
	return &cp
}

func clampPct(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
