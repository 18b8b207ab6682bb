// Package api provides a read-only HTTP view over the committed game
// state. It never mutates the simulation: every handler works against the
// snapshot installed after the last turn.
package api

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/talgya/mogul/internal/engine"
	"github.com/talgya/mogul/internal/persistence"
)

// Server serves the game state over HTTP.
type Server struct {
	DB   *persistence.DB
	Port int

	mu    sync.RWMutex
	state *engine.GameState
}

// SetState installs a freshly committed state. The server never holds a
// reference the pipeline might mutate, so callers pass the committed copy.
func (s *Server) SetState(g *engine.GameState) {
	s.mu.Lock()
	s.state = g
	s.mu.Unlock()
}

func (s *Server) snapshot() *engine.GameState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Start begins serving the HTTP API in a goroutine.
func (s *Server) Start() {
	mux := http.NewServeMux()

	mux.HandleFunc("/api/v1/status", s.handleStatus)
	mux.HandleFunc("/api/v1/player", s.handlePlayer)
	mux.HandleFunc("/api/v1/businesses", s.handleBusinesses)
	mux.HandleFunc("/api/v1/business/", s.handleBusinessDetail)
	mux.HandleFunc("/api/v1/economy", s.handleEconomy)
	mux.HandleFunc("/api/v1/reports", s.handleReports)
	mux.HandleFunc("/api/v1/notifications", s.handleNotifications)

	addr := fmt.Sprintf(":%d", s.Port)
	slog.Info("HTTP API starting", "addr", addr)

	go func() {
		handler := corsMiddleware(mux)
		if err := http.ListenAndServe(addr, handler); err != nil {
			slog.Error("HTTP server error", "error", err)
		}
	}()
}

// corsMiddleware allows localhost dev frontends plus anything listed in
// the MOGUL_CORS_ORIGINS env var (comma-separated).
func corsMiddleware(next http.Handler) http.Handler {
	allowedOrigins := map[string]bool{
		"http://localhost:5173": true,
		"http://localhost:3000": true,
	}
	if env := os.Getenv("MOGUL_CORS_ORIGINS"); env != "" {
		for _, origin := range strings.Split(env, ",") {
			origin = strings.TrimSpace(origin)
			if origin != "" {
				allowedOrigins[origin] = true
			}
		}
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		if allowedOrigins[origin] {
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		}
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	g := s.snapshot()
	if g == nil {
		http.Error(w, "no game loaded", http.StatusServiceUnavailable)
		return
	}

	status := map[string]any{
		"turn":       g.Turn,
		"quarter":    engine.QuarterLabel(g.Turn),
		"ended":      g.Ended,
		"businesses": len(g.Businesses),
		"countries":  len(g.Countries),
	}
	if g.EndReason != "" {
		status["end_reason"] = g.EndReason
	}
	if g.Player != nil {
		status["player"] = g.Player.Name
		status["money"] = g.Player.Money
	}
	writeJSON(w, status)
}

func (s *Server) handlePlayer(w http.ResponseWriter, r *http.Request) {
	g := s.snapshot()
	if g == nil || g.Player == nil {
		http.Error(w, "no game loaded", http.StatusServiceUnavailable)
		return
	}
	writeJSON(w, g.Player)
}

func (s *Server) handleBusinesses(w http.ResponseWriter, r *http.Request) {
	type businessSummary struct {
		ID         string  `json:"id"`
		Name       string  `json:"name"`
		Kind       string  `json:"kind"`
		State      string  `json:"state"`
		Country    string  `json:"country"`
		Employees  int     `json:"employees"`
		Efficiency float64 `json:"efficiency"`
		Reputation float64 `json:"reputation"`
		NetProfit  *int64  `json:"net_profit,omitempty"`
	}

	g := s.snapshot()
	if g == nil {
		http.Error(w, "no game loaded", http.StatusServiceUnavailable)
		return
	}

	out := make([]businessSummary, 0, len(g.Businesses))
	for _, b := range g.Businesses {
		entry := businessSummary{
			ID:         b.ID,
			Name:       b.Name,
			Kind:       string(b.Kind),
			State:      string(b.State),
			Country:    b.Country,
			Employees:  len(b.Employees),
			Efficiency: b.Efficiency,
			Reputation: b.Reputation,
		}
		if b.LastReport != nil {
			net := b.LastReport.NetProfit
			entry.NetProfit = &net
		}
		out = append(out, entry)
	}
	writeJSON(w, out)
}

func (s *Server) handleBusinessDetail(w http.ResponseWriter, r *http.Request) {
	g := s.snapshot()
	if g == nil {
		http.Error(w, "no game loaded", http.StatusServiceUnavailable)
		return
	}

	id := strings.TrimPrefix(r.URL.Path, "/api/v1/business/")
	for _, b := range g.Businesses {
		if b.ID == id {
			writeJSON(w, b)
			return
		}
	}
	http.Error(w, "business not found", http.StatusNotFound)
}

func (s *Server) handleEconomy(w http.ResponseWriter, r *http.Request) {
	g := s.snapshot()
	if g == nil {
		http.Error(w, "no game loaded", http.StatusServiceUnavailable)
		return
	}
	writeJSON(w, g.Countries)
}

func (s *Server) handleReports(w http.ResponseWriter, r *http.Request) {
	g := s.snapshot()
	if g == nil {
		http.Error(w, "no game loaded", http.StatusServiceUnavailable)
		return
	}

	limit := 12
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			limit = n
		}
	}

	reports := g.Reports
	if len(reports) > limit {
		reports = reports[len(reports)-limit:]
	}

	// The in-memory state keeps a bounded window; deeper history lives in
	// the save database.
	if len(reports) < limit && s.DB != nil {
		if stored, err := s.DB.Reports(limit); err == nil && len(stored) > len(reports) {
			reports = stored
		}
	}
	writeJSON(w, reports)
}

func (s *Server) handleNotifications(w http.ResponseWriter, r *http.Request) {
	g := s.snapshot()
	if g == nil {
		http.Error(w, "no game loaded", http.StatusServiceUnavailable)
		return
	}

	unreadOnly := r.URL.Query().Get("unread") == "true"
	out := make([]engine.Notification, 0, len(g.Notifications))
	for _, n := range g.Notifications {
		if unreadOnly && n.IsRead {
			continue
		}
		out = append(out, n)
	}
	writeJSON(w, out)
}

func writeJSON(w http.ResponseWriter, data any) {
	w.Header().Set("Content-Type", "application/json")
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.Encode(data)
}
