// Command mogulsim runs the quarterly economic simulation headless: it
// seeds (or resumes) a game, advances a number of quarters, prints the
// financial rollups and serves the committed state over HTTP.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"

	"github.com/talgya/mogul/internal/api"
	"github.com/talgya/mogul/internal/business"
	"github.com/talgya/mogul/internal/catalog"
	"github.com/talgya/mogul/internal/engine"
	"github.com/talgya/mogul/internal/entropy"
	"github.com/talgya/mogul/internal/macro"
	"github.com/talgya/mogul/internal/persistence"
	"github.com/talgya/mogul/internal/player"
)

func main() {
	var (
		seed        = flag.Int64("seed", 42, "simulation seed")
		quarters    = flag.Int("quarters", 40, "quarters to simulate")
		dbPath      = flag.String("db", "data/mogul.db", "save database path")
		catalogPath = flag.String("catalog", "configs/roles.yaml", "role catalog path")
		apiPort     = flag.Int("port", 8080, "HTTP API port")
		resume      = flag.Bool("resume", false, "resume from the latest save")
	)
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	slog.Info("MOGUL — quarterly economic simulation", "seed", *seed)

	cat, err := catalog.Load(*catalogPath)
	if err != nil {
		slog.Error("invalid role catalog", "path", *catalogPath, "error", err)
		os.Exit(1)
	}
	slog.Info("role catalog loaded", "path", *catalogPath)

	os.MkdirAll("data", 0755)
	db, err := persistence.Open(*dbPath)
	if err != nil {
		slog.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer db.Close()
	slog.Info("database opened", "path", *dbPath)

	var state *engine.GameState
	if *resume {
		state, err = db.LoadLatest()
		if err != nil {
			slog.Error("failed to load save", "error", err)
			os.Exit(1)
		}
	}
	if state == nil {
		slog.Info("starting a new game")
		state = newGame(*seed)
		if err := db.SaveState(state); err != nil {
			slog.Error("initial save failed", "error", err)
		}
	} else {
		slog.Info("game resumed", "turn", state.Turn, "quarter", engine.QuarterLabel(state.Turn))
	}

	pipeline, err := engine.NewPipeline(&engine.Context{
		Catalog: cat,
		Rand:    entropy.NewSeeded(*seed),
		Fluct:   entropy.NewNoiseStream(*seed, 0),
	})
	if err != nil {
		slog.Error("pipeline construction failed", "error", err)
		os.Exit(1)
	}

	apiServer := &api.Server{DB: db, Port: *apiPort}
	apiServer.SetState(state)
	apiServer.Start()
	fmt.Printf("API: http://localhost:%d/api/v1/status\n\n", *apiPort)

	for i := 0; i < *quarters; i++ {
		state = pipeline.RunTurn(state)
		apiServer.SetState(state)

		if err := db.SaveState(state); err != nil {
			slog.Error("save failed", "turn", state.Turn, "error", err)
		}

		printQuarter(state)

		if state.Ended {
			fmt.Printf("\nGame over after %s: %s\n", engine.QuarterLabel(state.Turn), state.EndReason)
			break
		}
	}

	if !state.Ended {
		fmt.Printf("\nSimulated %s. Final net worth: %s\n",
			engine.QuarterLabel(state.Turn), humanize.Comma(state.Player.Money))
	}
}

func printQuarter(g *engine.GameState) {
	if len(g.Reports) == 0 {
		return
	}
	r := g.Reports[len(g.Reports)-1]

	fmt.Printf("%-7s  money %12s  business %10s  wages %8s  living %8s\n",
		engine.QuarterLabel(r.Quarter),
		humanize.Comma(r.ClosingMoney),
		humanize.Comma(r.BusinessNet),
		humanize.Comma(r.WageIncome),
		humanize.Comma(-r.LifestyleSpend),
	)

	for _, n := range g.Notifications {
		if n.Date == engine.QuarterLabel(r.Quarter) && !n.IsRead {
			fmt.Printf("         [%s] %s — %s\n", n.Type, n.Title, n.Message)
		}
	}
}

// newGame builds the demo scenario: a salaried player in France with a
// staffed coffee shop and a small electronics retailer under construction.
func newGame(seed int64) *engine.GameState {
	rng := entropy.NewSeeded(seed + 400)

	p := &player.Player{
		Name:    "Alex",
		Country: "FR",
		Money:   60_000,
		Stats:   player.Stats{Energy: 80, Mood: 70, Health: 90},
		Skills: map[catalog.Role]float64{
			catalog.RoleManager:     45,
			catalog.RoleMarketer:    30,
			catalog.RoleSalesperson: 20,
		},
		Job: &player.Job{
			Title:   "Analyst",
			Salary:  9_000,
			Country: "FR",
		},
		LifestyleLevel: 1,
	}

	coffee := &business.Business{
		ID:         uuid.NewString(),
		Name:       "Third Wave Coffee",
		Kind:       business.KindService,
		Country:    "FR",
		State:      business.StateActive,
		PriceLevel: 5,
		Employees: []*business.Employee{
			{
				ID: uuid.NewString(), Name: "Marion", Role: catalog.RoleManager,
				Stars: 3, SkillEfficiency: 60, Salary: 4_500, Productivity: 55,
				EffortPercent: 100,
			},
			{
				ID: uuid.NewString(), Name: "Theo", Role: catalog.RoleSalesperson,
				Stars: 2, SkillEfficiency: 45, Salary: 3_000, Productivity: 45,
				EffortPercent: 100,
			},
		},
		MaxEmployees:  4,
		MinEmployees:  2,
		RequiredRoles: []catalog.Role{catalog.RoleManager},
		PlayerRoles: business.PlayerRoles{
			Managerial:    []catalog.Role{catalog.RoleMarketer},
			EffortPercent: 40,
		},
		Reputation:    35,
		Efficiency:    40,
		TaxRate:       0.25,
		HasInsurance:  true,
		InsuranceCost: 350,
	}

	retail := &business.Business{
		ID:              uuid.NewString(),
		Name:            "Volt Electronics",
		Kind:            business.KindProduct,
		Country:         "FR",
		State:           business.StateOpening,
		OpeningProgress: 2,
		PriceLevel:      6,
		Quantity:        120,
		Inventory: business.Inventory{
			CurrentStock: 0,
			MaxStock:     400,
			UnitCost:     90,
			AutoRestock:  150,
		},
		Employees: []*business.Employee{
			{
				ID: uuid.NewString(), Name: "Ines", Role: catalog.RoleWorker,
				Stars: 2, SkillEfficiency: 40, Salary: 2_800, Productivity: 40,
				EffortPercent: 100,
			},
		},
		MaxEmployees: 3,
		MinEmployees: 1,
		TaxRate:      0.25,
	}

	fr := &macro.CountryEconomy{
		Code:              "FR",
		Name:              "France",
		Inflation:         2.2,
		KeyRate:           3.5,
		Unemployment:      7.2,
		GDPGrowth:         1.8,
		CorporateTax:      0.25,
		PersonalTax:       0.30,
		SalaryIndex:       1,
		CostOfLivingIndex: 1,
		Cycle:             macro.NewCycle(rng),
	}
	us := &macro.CountryEconomy{
		Code:              "US",
		Name:              "United States",
		Inflation:         2.8,
		KeyRate:           4.5,
		Unemployment:      4.1,
		GDPGrowth:         2.5,
		CorporateTax:      0.21,
		PersonalTax:       0.24,
		SalaryIndex:       1,
		CostOfLivingIndex: 1,
		Cycle:             macro.NewCycle(rng),
	}

	return &engine.GameState{
		Player:     p,
		Businesses: []*business.Business{coffee, retail},
		Countries:  map[string]*macro.CountryEconomy{"FR": fr, "US": us},
	}
}
