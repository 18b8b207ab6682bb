// Package engine runs the quarterly turn pipeline: a fixed ordered list of
// steps that each read and mutate a working copy of the game state, which
// commits atomically at the end of the pass.
package engine

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/talgya/mogul/internal/business"
	"github.com/talgya/mogul/internal/macro"
	"github.com/talgya/mogul/internal/player"
)

// Notification is a plain record handed to the presentation layer. The
// core only produces these; delivery is someone else's job.
type Notification struct {
	ID      string `json:"id"`
	Type    string `json:"type"` // "info", "warning", "crisis", "boom", "defeat"
	Title   string `json:"title"`
	Message string `json:"message"`
	Date    string `json:"date"` // Quarter label, e.g. "Y3 Q2"
	IsRead  bool   `json:"is_read"`
}

// QuarterReport is the financial rollup for one committed quarter.
type QuarterReport struct {
	Quarter          int   `json:"quarter"`
	BusinessIncome   int64 `json:"business_income"`
	BusinessExpenses int64 `json:"business_expenses"`
	BusinessNet      int64 `json:"business_net"`
	WageIncome       int64 `json:"wage_income"`
	LifestyleSpend   int64 `json:"lifestyle_spend"`
	NetChange        int64 `json:"net_change"`
	ClosingMoney     int64 `json:"closing_money"`
}

// GameState is the committed state between turns. A turn never mutates the
// previous committed state — it works on a deep copy.
type GameState struct {
	Turn int `json:"turn"` // Quarters elapsed; 0 = pre-game

	Player     *player.Player                   `json:"player"`
	Businesses []*business.Business             `json:"businesses"`
	Countries  map[string]*macro.CountryEconomy `json:"countries"`

	Notifications []Notification  `json:"notifications"`
	Reports       []QuarterReport `json:"reports"`

	Ended     bool   `json:"ended"`
	EndReason string `json:"end_reason,omitempty"`
}

// Clone deep-copies the whole state for turn isolation.
func (g *GameState) Clone() *GameState {
	cp := *g
	if g.Player != nil {
		cp.Player = g.Player.Clone()
	}
	cp.Businesses = make([]*business.Business, len(g.Businesses))
	for i, b := range g.Businesses {
		cp.Businesses[i] = b.Clone()
	}
	cp.Countries = make(map[string]*macro.CountryEconomy, len(g.Countries))
	for code, eco := range g.Countries {
		ec := *eco
		ec.InflationHistory = append([]float64(nil), eco.InflationHistory...)
		ec.ActiveEvents = append([]macro.Event(nil), eco.ActiveEvents...)
		if eco.Cycle != nil {
			cc := *eco.Cycle
			ec.Cycle = &cc
		}
		cp.Countries[code] = &ec
	}
	cp.Notifications = append([]Notification(nil), g.Notifications...)
	cp.Reports = append([]QuarterReport(nil), g.Reports...)
	return &cp
}

// Country returns the economy record for a code, falling back to the
// player's home country. Never nil once the game is initialized.
func (g *GameState) Country(code string) *macro.CountryEconomy {
	if eco, ok := g.Countries[code]; ok {
		return eco
	}
	if g.Player != nil {
		if eco, ok := g.Countries[g.Player.Country]; ok {
			return eco
		}
	}
	return nil
}

// QuarterLabel renders a turn counter as "Y<year> Q<quarter>".
func QuarterLabel(turn int) string {
	if turn <= 0 {
		return "Y1 Q0"
	}
	return fmt.Sprintf("Y%d Q%d", (turn-1)/4+1, (turn-1)%4+1)
}

// TurnState is the ephemeral working state of one quarter: the mutable
// copy plus the per-step accumulators the financial rollup reads.
type TurnState struct {
	State *GameState

	// Rollup accumulators, filled by earlier steps and consumed by the
	// financial step.
	BusinessIncome   int64
	BusinessExpenses int64
	BusinessNet      int64
	WageIncome       int64
	LifestyleSpend   int64

	openingMoney int64
}

// Notify appends a notification stamped with the current quarter.
func (st *TurnState) Notify(kind, title, message string) {
	st.State.Notifications = append(st.State.Notifications, Notification{
		ID:      uuid.NewString(),
		Type:    kind,
		Title:   title,
		Message: message,
		Date:    QuarterLabel(st.State.Turn),
	})
}
