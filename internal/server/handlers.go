// ABOUTME: HTTP handlers for catalog, quests, leaderboard, chat, and programs.
// ABOUTME: Auth errors return 401; domain errors return 400 with a message.
package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"sort"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/stslabs/motiv8r/internal/auth"
	"github.com/stslabs/motiv8r/internal/catalog"
	"github.com/stslabs/motiv8r/internal/models"
	"github.com/stslabs/motiv8r/internal/program"
	"github.com/stslabs/motiv8r/internal/store"
)

func (s *Server) handleSearchExercises(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")
	if q == "" {
		respondJSON(w, http.StatusOK, catalog.All())
		return
	}
	results := catalog.Search(q)
	if results == nil {
		results = []*models.Exercise{}
	}
	respondJSON(w, http.StatusOK, results)
}

func (s *Server) handleGetExercise(w http.ResponseWriter, r *http.Request) {
	name, err := url.PathUnescape(chi.URLParam(r, "name"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "bad exercise name")
		return
	}
	ex, ok := catalog.Lookup(name)
	if !ok {
		respondError(w, http.StatusNotFound, "exercise not found: "+name)
		return
	}
	respondJSON(w, http.StatusOK, ex)
}

func (s *Server) handleTodayQuests(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]any{
		"quests":      s.engine.Status(),
		"all_claimed": s.engine.AllClaimed(),
		"total_xp":    s.engine.TotalXP(),
	})
}

func (s *Server) handleClaimQuest(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	xp, err := s.engine.Claim(id)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{
		"quest_id":    id,
		"xp_awarded":  xp,
		"total_xp":    s.engine.TotalXP(),
		"all_claimed": s.engine.AllClaimed(),
	})
}

// leaderboardEntry is one row of the XP ranking.
type leaderboardEntry struct {
	Name string      `json:"name"`
	Role models.Role `json:"role"`
	XP   int         `json:"xp"`
	You  bool        `json:"you,omitempty"`
}

// demoCohort pads the leaderboard so a single-athlete store still has a
// ranking to climb.
var demoCohort = []leaderboardEntry{
	{Name: "Jordan P.", Role: models.RoleAthlete, XP: 2840},
	{Name: "Sam K.", Role: models.RoleAthlete, XP: 1960},
	{Name: "Riley T.", Role: models.RoleAthlete, XP: 1210},
	{Name: "Casey M.", Role: models.RoleAthlete, XP: 640},
}

func (s *Server) handleLeaderboard(w http.ResponseWriter, r *http.Request) {
	entries := make([]leaderboardEntry, len(demoCohort))
	copy(entries, demoCohort)

	if profile, err := s.provider.Current(); err == nil {
		entries = append(entries, leaderboardEntry{
			Name: profile.Name,
			Role: profile.Role,
			XP:   s.engine.TotalXP(),
			You:  true,
		})
	}

	sort.SliceStable(entries, func(i, j int) bool { return entries[i].XP > entries[j].XP })
	respondJSON(w, http.StatusOK, entries)
}

func (s *Server) handleListMessages(w http.ResponseWriter, r *http.Request) {
	var messages []models.Message
	s.store.Get(store.KeyMessages, &messages)
	if messages == nil {
		messages = []models.Message{}
	}
	respondJSON(w, http.StatusOK, messages)
}

type postMessageInput struct {
	Body string `json:"body"`
}

func (s *Server) handlePostMessage(w http.ResponseWriter, r *http.Request) {
	profile, err := s.provider.Current()
	if err != nil {
		if errors.Is(err, auth.ErrSignedOut) {
			respondError(w, http.StatusUnauthorized, "sign in to send messages")
			return
		}
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	var input postMessageInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondError(w, http.StatusBadRequest, "bad request body")
		return
	}
	if strings.TrimSpace(input.Body) == "" {
		respondError(w, http.StatusBadRequest, "message body is empty")
		return
	}

	msg := models.NewMessage(profile.Name, profile.Role, strings.TrimSpace(input.Body))
	s.appendMessage(*msg)

	// Demo mode: the coach "replies" after a short delay. The task is
	// cancelled with the scheduler on server teardown.
	if s.scheduler != nil && profile.Role == models.RoleAthlete {
		s.scheduler.After(replyDelay, func() {
			reply := models.NewMessage("Coach", models.RoleCoach,
				"Nice work — keep the tempo honest and log your RPE.")
			s.appendMessage(*reply)
		})
	}

	respondJSON(w, http.StatusCreated, msg)
}

func (s *Server) appendMessage(msg models.Message) {
	var messages []models.Message
	s.store.Get(store.KeyMessages, &messages)
	messages = append(messages, msg)
	if err := s.store.Set(store.KeyMessages, messages); err != nil {
		s.log.Warn("message not persisted", "error", err)
	}
}

func (s *Server) handleListPrograms(w http.ResponseWriter, r *http.Request) {
	programs := program.LoadAll(s.store)
	if programs == nil {
		programs = []*models.Program{}
	}
	respondJSON(w, http.StatusOK, programs)
}
