package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/rakhmonovquvonchbek/taskemon/internal/progression"
	"github.com/rakhmonovquvonchbek/taskemon/internal/telemetry"
)

const (
	defaultCurveLevels = 10
	maxCurveLevels     = 100
	maxBodyBytes       = 1 << 20
)

// API holds what the handlers depend on.
type API struct {
	Store  *progression.Store
	Events telemetry.Repository
	Logger *slog.Logger
}

type errorBody struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func (a *API) writeError(w http.ResponseWriter, r *http.Request, err error) {
	code := http.StatusInternalServerError
	switch {
	case errors.Is(err, progression.ErrPlayerNotFound), errors.Is(err, errQuestNotFound):
		code = http.StatusNotFound
	case errors.Is(err, progression.ErrInvalidPlayer),
		errors.Is(err, progression.ErrInvalidTask),
		errors.Is(err, errBadRequest):
		code = http.StatusBadRequest
	}
	msg := err.Error()
	if code == http.StatusInternalServerError {
		a.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "err", err)
		msg = "internal server error"
	}
	writeJSON(w, code, errorBody{Error: msg})
}

var (
	errBadRequest    = errors.New("bad request")
	errQuestNotFound = errors.New("quest not found")
)

func badRequest(format string, args ...any) error {
	return fmt.Errorf("%w: %s", errBadRequest, fmt.Sprintf(format, args...))
}

func decodeBody(w http.ResponseWriter, r *http.Request, v any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return badRequest("invalid json body: %v", err)
	}
	return nil
}

func RegisterAPIRoutes(mux *http.ServeMux, rr *RouteRegistry, api *API) {
	if api.Logger == nil {
		api.Logger = slog.Default()
	}

	Handle(mux, rr, "GET /api/routes", "List API routes", "", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, rr.List())
	})

	Handle(mux, rr, "GET /api/classes", "List character classes", "", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, progression.Classes())
	})

	Handle(mux, rr, "POST /api/players", "Create player",
		`{"name":"Ada","avatar":"🧙","characterClass":"scholar"}`, api.createPlayer)
	Handle(mux, rr, "GET /api/players/{id}", "Get player with level progress", "", api.getPlayer)
	Handle(mux, rr, "GET /api/players/{id}/quests/available", "List quests the player can pick up", "", api.availableQuests)
	Handle(mux, rr, "POST /api/players/{id}/quests/{questID}/complete", "Complete a quest", "", api.completeQuest)
	Handle(mux, rr, "POST /api/players/{id}/tasks", "Create a task quest; finalXP is computed when omitted",
		`{"title":"Study Go","category":"learning","difficulty":"hard","importance":"really-should","avoidance":"neutral","urgency":"this-week"}`,
		api.createTask)
	Handle(mux, rr, "POST /api/players/{id}/xp", "Award XP", `{"amount":50}`, api.awardXP)
	Handle(mux, rr, "GET /api/players/{id}/achievements", "List achievements credited to the player", "", api.playerAchievements)
	Handle(mux, rr, "POST /api/players/{id}/achievements/check", "Unlock any achievements the player now qualifies for", "", api.checkAchievements)

	Handle(mux, rr, "GET /api/quests", "List quests, optionally ?category=", "", api.listQuests)
	Handle(mux, rr, "GET /api/achievements", "List the achievement catalog", "", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, api.Store.Achievements(r.Context()))
	})
	Handle(mux, rr, "POST /api/tasks/xp", "Preview task XP from wizard answers",
		`{"difficulty":"hard","importance":"life-changing","avoidance":"really-avoid","urgency":"today"}`, api.previewTaskXP)
	Handle(mux, rr, "GET /api/xp/curve", "XP thresholds, ?levels=N", "", api.xpCurve)
	Handle(mux, rr, "GET /api/telemetry/stats", "Aggregate progression events, ?since=RFC3339", "", api.telemetryStats)
}

type playerResponse struct {
	Player   progression.Player        `json:"player"`
	Progress progression.LevelProgress `json:"progress"`
}

func (a *API) player(r *http.Request) (progression.Player, error) {
	id := r.PathValue("id")
	p, ok := a.Store.Player(r.Context(), id)
	if !ok {
		return progression.Player{}, fmt.Errorf("%w: %s", progression.ErrPlayerNotFound, id)
	}
	return p, nil
}

func (a *API) createPlayer(w http.ResponseWriter, r *http.Request) {
	var body progression.NewPlayer
	if err := decodeBody(w, r, &body); err != nil {
		a.writeError(w, r, err)
		return
	}
	p, err := a.Store.CreatePlayer(r.Context(), body)
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, playerResponse{Player: p, Progress: progression.Progress(p)})
}

func (a *API) getPlayer(w http.ResponseWriter, r *http.Request) {
	p, err := a.player(r)
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, playerResponse{Player: p, Progress: progression.Progress(p)})
}

func (a *API) availableQuests(w http.ResponseWriter, r *http.Request) {
	p, err := a.player(r)
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, a.Store.AvailableQuests(r.Context(), p.ID))
}

type completeResponse struct {
	progression.CompletionResult
	Player progression.Player `json:"player"`
}

func (a *API) completeQuest(w http.ResponseWriter, r *http.Request) {
	p, err := a.player(r)
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	questID := r.PathValue("questID")
	if _, ok := a.Store.Quest(r.Context(), questID); !ok {
		a.writeError(w, r, fmt.Errorf("%w: %s", errQuestNotFound, questID))
		return
	}

	res := a.Store.CompleteQuest(r.Context(), p.ID, questID)
	p, _ = a.Store.Player(r.Context(), p.ID)
	writeJSON(w, http.StatusOK, completeResponse{CompletionResult: res, Player: p})
}

type taskRequest struct {
	Title       string                      `json:"title"`
	Description string                      `json:"description"`
	Category    progression.QuestCategory   `json:"category"`
	Difficulty  progression.QuestDifficulty `json:"difficulty"`
	Importance  progression.Importance      `json:"importance"`
	Avoidance   progression.Avoidance       `json:"avoidance"`
	Urgency     progression.Urgency         `json:"urgency"`
	BaseXP      int                         `json:"baseXP"`
	FinalXP     *int                        `json:"finalXP"`
	Bonuses     []progression.Bonus         `json:"bonuses"`
}

func (t taskRequest) options() progression.TaskOptions {
	return progression.TaskOptions{
		Difficulty: t.Difficulty,
		Importance: t.Importance,
		Avoidance:  t.Avoidance,
		Urgency:    t.Urgency,
	}
}

func (t taskRequest) taskData() progression.TaskData {
	data := progression.TaskData{
		Title:       t.Title,
		Description: t.Description,
		Category:    t.Category,
		Difficulty:  t.Difficulty,
		Importance:  t.Importance,
		Avoidance:   t.Avoidance,
		Urgency:     t.Urgency,
		BaseXP:      t.BaseXP,
		Bonuses:     t.Bonuses,
	}
	if t.FinalXP != nil {
		data.FinalXP = *t.FinalXP
		return data
	}
	xp := progression.CalculateTaskXP(t.options())
	data.BaseXP = xp.BaseXP
	data.FinalXP = xp.FinalXP
	data.Bonuses = xp.Bonuses
	return data
}

func (a *API) createTask(w http.ResponseWriter, r *http.Request) {
	var body taskRequest
	if err := decodeBody(w, r, &body); err != nil {
		a.writeError(w, r, err)
		return
	}
	if body.Category != "" && !body.Category.IsValid() {
		a.writeError(w, r, badRequest("unknown category %q", body.Category))
		return
	}
	if body.FinalXP != nil && *body.FinalXP < 0 {
		a.writeError(w, r, badRequest("finalXP must not be negative"))
		return
	}

	q, err := a.Store.CreateTaskFromData(r.Context(), r.PathValue("id"), body.taskData())
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, q)
}

func (a *API) previewTaskXP(w http.ResponseWriter, r *http.Request) {
	var body taskRequest
	if err := decodeBody(w, r, &body); err != nil {
		a.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, progression.CalculateTaskXP(body.options()))
}

type awardResponse struct {
	progression.LevelResult
	Player progression.Player `json:"player"`
}

func (a *API) awardXP(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Amount int `json:"amount"`
	}
	if err := decodeBody(w, r, &body); err != nil {
		a.writeError(w, r, err)
		return
	}
	id := r.PathValue("id")
	res, err := a.Store.AwardXP(r.Context(), id, body.Amount)
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	p, _ := a.Store.Player(r.Context(), id)
	writeJSON(w, http.StatusOK, awardResponse{LevelResult: res, Player: p})
}

func (a *API) playerAchievements(w http.ResponseWriter, r *http.Request) {
	p, err := a.player(r)
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, a.Store.UnlockedAchievements(r.Context(), p.ID))
}

func (a *API) checkAchievements(w http.ResponseWriter, r *http.Request) {
	p, err := a.player(r)
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"unlocked": a.Store.CheckAchievements(r.Context(), p.ID),
	})
}

func (a *API) listQuests(w http.ResponseWriter, r *http.Request) {
	raw := strings.TrimSpace(r.URL.Query().Get("category"))
	if raw == "" {
		writeJSON(w, http.StatusOK, a.Store.Quests(r.Context()))
		return
	}
	cat := progression.QuestCategory(raw)
	if !cat.IsValid() {
		a.writeError(w, r, badRequest("unknown category %q", raw))
		return
	}
	writeJSON(w, http.StatusOK, a.Store.QuestsByCategory(r.Context(), cat))
}

func (a *API) xpCurve(w http.ResponseWriter, r *http.Request) {
	levels := defaultCurveLevels
	if raw := r.URL.Query().Get("levels"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > maxCurveLevels {
			a.writeError(w, r, badRequest("levels must be between 1 and %d", maxCurveLevels))
			return
		}
		levels = n
	}
	writeJSON(w, http.StatusOK, progression.Curve(levels))
}

func (a *API) telemetryStats(w http.ResponseWriter, r *http.Request) {
	var since time.Time
	if raw := r.URL.Query().Get("since"); raw != "" {
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			a.writeError(w, r, badRequest("since must be RFC3339"))
			return
		}
		since = t
	}
	if a.Events == nil {
		a.writeError(w, r, errors.New("telemetry is not configured"))
		return
	}
	events, err := a.Events.GetEvents(since, nil)
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	stats, err := telemetry.CalculateStats(events, since)
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}
