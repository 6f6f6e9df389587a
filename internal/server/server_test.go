// ABOUTME: HTTP API tests over httptest with an in-memory store.
// ABOUTME: Quest routes use a fixed clock so the daily selection is stable.
package server

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stslabs/motiv8r/internal/auth"
	"github.com/stslabs/motiv8r/internal/models"
	"github.com/stslabs/motiv8r/internal/quests"
	"github.com/stslabs/motiv8r/internal/store"
	"github.com/stslabs/motiv8r/internal/tasks"
)

func jan1Clock() time.Time {
	return time.Date(2024, time.January, 1, 9, 0, 0, 0, time.UTC)
}

func newTestServer(t *testing.T) (*Server, *store.Store) {
	t.Helper()
	st := store.New(store.NewMemory())
	engine := quests.NewEngine(st).WithClock(jan1Clock)
	provider := auth.NewDemoProvider(st)
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	s := New(st, engine, provider, tasks.New(), log)
	t.Cleanup(s.Close)
	return s, st
}

func doRequest(t *testing.T, s *Server, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	w := httptest.NewRecorder()
	s.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, v any) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("decode response: %v", err)
	}
}

func TestListExercises(t *testing.T) {
	s, _ := newTestServer(t)

	w := doRequest(t, s, http.MethodGet, "/api/v1/exercises", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}

	var exercises []models.Exercise
	decode(t, w, &exercises)
	if len(exercises) == 0 {
		t.Error("expected catalog exercises")
	}
}

func TestSearchExercises(t *testing.T) {
	s, _ := newTestServer(t)

	w := doRequest(t, s, http.MethodGet, "/api/v1/exercises?q=squat", "")
	var exercises []models.Exercise
	decode(t, w, &exercises)
	if len(exercises) == 0 {
		t.Fatal("expected squat matches")
	}
	for _, ex := range exercises {
		if !strings.Contains(strings.ToLower(ex.Name), "squat") {
			t.Errorf("unexpected match %q", ex.Name)
		}
	}
}

func TestGetExercise(t *testing.T) {
	s, _ := newTestServer(t)

	w := doRequest(t, s, http.MethodGet, "/api/v1/exercises/bench%20press", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}
	var ex models.Exercise
	decode(t, w, &ex)
	if ex.Name != "Bench Press" {
		t.Errorf("Name = %q", ex.Name)
	}

	w = doRequest(t, s, http.MethodGet, "/api/v1/exercises/unknown", "")
	if w.Code != http.StatusNotFound {
		t.Errorf("missing exercise status = %d", w.Code)
	}
}

func TestTodayQuests(t *testing.T) {
	s, _ := newTestServer(t)

	w := doRequest(t, s, http.MethodGet, "/api/v1/quests/today", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}

	var resp struct {
		Quests     []quests.QuestStatus `json:"quests"`
		AllClaimed bool                 `json:"all_claimed"`
		TotalXP    int                  `json:"total_xp"`
	}
	decode(t, w, &resp)
	if len(resp.Quests) != 3 {
		t.Errorf("quests = %d, want 3", len(resp.Quests))
	}
	if resp.AllClaimed {
		t.Error("fresh day reports all claimed")
	}
}

func TestClaimQuest(t *testing.T) {
	s, _ := newTestServer(t)

	// Incomplete quest claims are rejected.
	w := doRequest(t, s, http.MethodPost, "/api/v1/quests/double_day/claim", "")
	if w.Code != http.StatusBadRequest {
		t.Errorf("incomplete claim status = %d", w.Code)
	}

	s.engine.Apply(quests.EventWorkoutCompleted())
	s.engine.Apply(quests.EventWorkoutCompleted())

	w = doRequest(t, s, http.MethodPost, "/api/v1/quests/double_day/claim", "")
	if w.Code != http.StatusOK {
		t.Fatalf("claim status = %d, body %s", w.Code, w.Body.String())
	}
	var resp struct {
		XPAwarded int `json:"xp_awarded"`
		TotalXP   int `json:"total_xp"`
	}
	decode(t, w, &resp)
	if resp.XPAwarded != 250 || resp.TotalXP != 250 {
		t.Errorf("awarded %d total %d, want 250/250", resp.XPAwarded, resp.TotalXP)
	}

	// Re-claim is a no-op, not an error.
	w = doRequest(t, s, http.MethodPost, "/api/v1/quests/double_day/claim", "")
	if w.Code != http.StatusOK {
		t.Fatalf("re-claim status = %d", w.Code)
	}
	decode(t, w, &resp)
	if resp.XPAwarded != 0 || resp.TotalXP != 250 {
		t.Errorf("re-claim awarded %d total %d", resp.XPAwarded, resp.TotalXP)
	}
}

func TestLeaderboard(t *testing.T) {
	s, _ := newTestServer(t)

	if _, err := s.provider.SignInDemo(models.RoleAthlete); err != nil {
		t.Fatal(err)
	}
	s.engine.AwardXP(5000)

	w := doRequest(t, s, http.MethodGet, "/api/v1/leaderboard", "")
	var entries []leaderboardEntry
	decode(t, w, &entries)

	if len(entries) != len(demoCohort)+1 {
		t.Fatalf("entries = %d", len(entries))
	}
	if !entries[0].You || entries[0].XP != 5000 {
		t.Errorf("top entry = %+v, want the signed-in athlete", entries[0])
	}
	for i := 1; i < len(entries); i++ {
		if entries[i].XP > entries[i-1].XP {
			t.Errorf("leaderboard not sorted at %d", i)
		}
	}
}

func TestLeaderboardSignedOut(t *testing.T) {
	s, _ := newTestServer(t)

	w := doRequest(t, s, http.MethodGet, "/api/v1/leaderboard", "")
	var entries []leaderboardEntry
	decode(t, w, &entries)
	if len(entries) != len(demoCohort) {
		t.Errorf("entries = %d, want demo cohort only", len(entries))
	}
}

func TestPostMessageRequiresAuth(t *testing.T) {
	s, _ := newTestServer(t)

	w := doRequest(t, s, http.MethodPost, "/api/v1/messages", `{"body":"hi"}`)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", w.Code)
	}
}

func TestPostAndListMessages(t *testing.T) {
	s, st := newTestServer(t)

	if _, err := s.provider.SignInDemo(models.RoleAthlete); err != nil {
		t.Fatal(err)
	}

	w := doRequest(t, s, http.MethodPost, "/api/v1/messages", `{"body":"done with day 1"}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}

	// Athlete messages schedule a demo coach reply.
	if got := s.scheduler.Pending(); got != 1 {
		t.Errorf("pending tasks = %d, want 1", got)
	}

	w = doRequest(t, s, http.MethodGet, "/api/v1/messages", "")
	var messages []models.Message
	decode(t, w, &messages)
	if len(messages) != 1 {
		t.Fatalf("messages = %d", len(messages))
	}
	if messages[0].Body != "done with day 1" || messages[0].Role != models.RoleAthlete {
		t.Errorf("message = %+v", messages[0])
	}

	var stored []models.Message
	if !st.Get(store.KeyMessages, &stored) {
		t.Error("messages not persisted")
	}
}

func TestPostMessageEmptyBody(t *testing.T) {
	s, _ := newTestServer(t)
	if _, err := s.provider.SignInDemo(models.RoleAthlete); err != nil {
		t.Fatal(err)
	}

	w := doRequest(t, s, http.MethodPost, "/api/v1/messages", `{"body":"   "}`)
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestCORSPreflight(t *testing.T) {
	s, _ := newTestServer(t)

	w := doRequest(t, s, http.MethodOptions, "/api/v1/exercises", "")
	if w.Code != http.StatusNoContent {
		t.Errorf("preflight status = %d", w.Code)
	}
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Errorf("Allow-Origin = %q", got)
	}
}

func TestListProgramsEmpty(t *testing.T) {
	s, _ := newTestServer(t)

	w := doRequest(t, s, http.MethodGet, "/api/v1/programs", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if body := strings.TrimSpace(w.Body.String()); body != "[]" {
		t.Errorf("body = %q, want empty array", body)
	}
}
