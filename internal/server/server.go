// ABOUTME: HTTP API server for coach-facing features: chat, leaderboard, quests, catalog.
// ABOUTME: chi router with request logging and CORS; JSON in, JSON out.
package server

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/stslabs/motiv8r/internal/auth"
	"github.com/stslabs/motiv8r/internal/quests"
	"github.com/stslabs/motiv8r/internal/store"
	"github.com/stslabs/motiv8r/internal/tasks"
)

// replyDelay simulates the coach thinking before the demo auto-reply.
const replyDelay = 1500 * time.Millisecond

// Server holds dependencies for HTTP handlers.
type Server struct {
	store     *store.Store
	engine    *quests.Engine
	provider  auth.Provider
	scheduler *tasks.Scheduler
	log       *slog.Logger
	router    chi.Router
}

// New creates a Server with all routes configured. A nil scheduler
// disables the demo chat auto-reply.
func New(st *store.Store, engine *quests.Engine, provider auth.Provider, scheduler *tasks.Scheduler, log *slog.Logger) *Server {
	s := &Server{
		store:     st,
		engine:    engine,
		provider:  provider,
		scheduler: scheduler,
		log:       log,
		router:    chi.NewRouter(),
	}
	s.routes()
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// Close cancels any pending delayed tasks.
func (s *Server) Close() {
	if s.scheduler != nil {
		s.scheduler.Stop()
	}
}

func (s *Server) routes() {
	s.router.Use(RequestLogging(s.log))
	s.router.Use(CORS)

	s.router.Route("/api/v1", func(r chi.Router) {
		r.Get("/exercises", s.handleSearchExercises)
		r.Get("/exercises/{name}", s.handleGetExercise)
		r.Get("/quests/today", s.handleTodayQuests)
		r.Post("/quests/{id}/claim", s.handleClaimQuest)
		r.Get("/leaderboard", s.handleLeaderboard)
		r.Get("/messages", s.handleListMessages)
		r.Post("/messages", s.handlePostMessage)
		r.Get("/programs", s.handleListPrograms)
	})
}

func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func respondError(w http.ResponseWriter, status int, msg string) {
	respondJSON(w, status, map[string]string{"error": msg})
}
