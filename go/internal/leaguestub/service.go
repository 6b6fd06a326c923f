package leaguestub

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/mcdev12/leaguefixture/go/internal/models"
	"github.com/rs/zerolog/log"
)

// Service exposes App over the league API's HTTP routes
type Service struct {
	app *App
}

// NewService creates the HTTP layer of the stub
func NewService(app *App) *Service {
	return &Service{app: app}
}

// Register mounts every route on mux
func (s *Service) Register(mux *http.ServeMux) {
	mux.HandleFunc("POST /api/v1/leagues", s.createLeague)
	mux.HandleFunc("PUT /api/v1/leagues", s.updateLeague)
	mux.HandleFunc("GET /api/v1/leagues", s.listLeagues)
	mux.HandleFunc("POST /api/v1/users", s.createUser)
	mux.HandleFunc("POST /api/v1/teams", s.createTeam)
	mux.HandleFunc("POST /api/v1/availabilities", s.createAvailability)
	mux.HandleFunc("POST /api/v1/games", s.createGame)
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
}

func (s *Service) createLeague(w http.ResponseWriter, r *http.Request) {
	var req models.LeagueRequest
	if !decodeBody(w, r, &req) {
		return
	}
	league, err := s.app.CreateLeague(r.Context(), req)
	if err != nil {
		writeError(r.Context(), w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]int{"leagueId": league.LeagueID})
}

func (s *Service) updateLeague(w http.ResponseWriter, r *http.Request) {
	var req models.LeagueRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if _, err := s.app.UpdateLeague(r.Context(), req); err != nil {
		writeError(r.Context(), w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
}

func (s *Service) listLeagues(w http.ResponseWriter, r *http.Request) {
	leagues, err := s.app.ListLeagues(r.Context())
	if err != nil {
		writeError(r.Context(), w, err)
		return
	}
	writeJSON(w, http.StatusOK, leagues)
}

func (s *Service) createUser(w http.ResponseWriter, r *http.Request) {
	var req models.UserRequest
	if !decodeBody(w, r, &req) {
		return
	}
	user, err := s.app.CreateUser(r.Context(), req)
	if err != nil {
		writeError(r.Context(), w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]int{"userId": user.UserID})
}

func (s *Service) createTeam(w http.ResponseWriter, r *http.Request) {
	var req models.TeamRequest
	if !decodeBody(w, r, &req) {
		return
	}
	team, err := s.app.CreateTeam(r.Context(), req)
	if err != nil {
		writeError(r.Context(), w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]int{"teamId": team.TeamID})
}

func (s *Service) createAvailability(w http.ResponseWriter, r *http.Request) {
	var req models.AvailabilityRequest
	if !decodeBody(w, r, &req) {
		return
	}
	availability, err := s.app.CreateAvailability(r.Context(), req)
	if err != nil {
		writeError(r.Context(), w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]int{"availabilityId": availability.AvailabilityID})
}

func (s *Service) createGame(w http.ResponseWriter, r *http.Request) {
	var req models.GameRequest
	if !decodeBody(w, r, &req) {
		return
	}
	game, err := s.app.CreateGame(r.Context(), req)
	if err != nil {
		writeError(r.Context(), w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]int{"gameId": game.GameID})
}

func decodeBody(w http.ResponseWriter, r *http.Request, dest interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(dest); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "malformedJson"})
		return false
	}
	return true
}

func writeError(ctx context.Context, w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, ErrInvalid):
		status = http.StatusBadRequest
	case errors.Is(err, ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, ErrConflict):
		status = http.StatusConflict
	}
	log.Ctx(ctx).Warn().Err(err).Int("status", status).Msg("stub rejected request")
	writeJSON(w, status, map[string]string{"error": err.Error()})
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
