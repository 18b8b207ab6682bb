// The turn pipeline: a typed, ordered list of named steps. The order is
// part of the contract — in particular, the inflation step is last so that
// every other step works against the prior year's rates.
package engine

import (
	"fmt"
	"log/slog"

	"github.com/talgya/mogul/internal/catalog"
	"github.com/talgya/mogul/internal/entropy"
)

// Context carries the read-only collaborators every step may use. Steps
// receive all state explicitly — there is no ambient global to reach into.
type Context struct {
	Catalog *catalog.Catalog
	Rand    entropy.Source
	// Fluct drives the quarterly market fluctuation so consecutive
	// quarters wander smoothly instead of jumping.
	Fluct *entropy.NoiseStream
}

// Step is one named stage of the quarterly pass.
type Step struct {
	Name string
	Run  func(ctx *Context, st *TurnState)
}

// StepInflation names the step whose terminal position is load-bearing.
const StepInflation = "inflation"

// Steps returns the fixed turn order. Steps other than inflation are
// logically independent but still execute exactly once per quarter.
func Steps() []Step {
	return []Step{
		{Name: "economy", Run: stepEconomy},
		{Name: "market", Run: stepMarket},
		{Name: "education", Run: stepEducation},
		{Name: "jobs", Run: stepJobs},
		{Name: "personal", Run: stepPersonal},
		{Name: "business", Run: stepBusiness},
		{Name: "buffs", Run: stepBuffs},
		{Name: "lifestyle", Run: stepLifestyle},
		{Name: "thresholds", Run: stepThresholds},
		{Name: "financial", Run: stepFinancial},
		{Name: StepInflation, Run: stepInflation},
	}
}

// Pipeline advances a game one quarter at a time.
type Pipeline struct {
	ctx   *Context
	steps []Step
}

// NewPipeline builds the production pipeline. It validates the step
// ordering contract at construction so a bad edit fails immediately, not
// three steps into a turn.
func NewPipeline(ctx *Context) (*Pipeline, error) {
	steps := Steps()
	if len(steps) == 0 || steps[len(steps)-1].Name != StepInflation {
		return nil, fmt.Errorf("pipeline: %s step must run last", StepInflation)
	}
	return &Pipeline{ctx: ctx, steps: steps}, nil
}

// RunTurn executes one full quarter against a committed state and returns
// the next committed state. The input is never mutated; if the run has
// ended, the input is returned unchanged.
func (p *Pipeline) RunTurn(prev *GameState) *GameState {
	if prev.Ended {
		return prev
	}

	st := &TurnState{State: prev.Clone()}
	st.State.Turn++
	if st.State.Player != nil {
		st.openingMoney = st.State.Player.Money
	}

	for _, step := range p.steps {
		step.Run(p.ctx, st)
	}

	slog.Debug("turn committed",
		"turn", st.State.Turn,
		"quarter", QuarterLabel(st.State.Turn),
		"money", playerMoney(st.State),
		"ended", st.State.Ended,
	)
	return st.State
}

func playerMoney(g *GameState) int64 {
	if g.Player == nil {
		return 0
	}
	return g.Player.Money
}
