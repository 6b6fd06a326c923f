package leaguestub

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/mcdev12/leaguefixture/go/internal/models"
	"github.com/rs/zerolog/log"
)

// LeagueRepository defines what the app layer needs from the repository
type LeagueRepository interface {
	CreateLeague(ctx context.Context, req models.LeagueRequest) (*models.League, error)
	UpdateLeague(ctx context.Context, req models.LeagueRequest) (*models.League, error)
	GetLeague(ctx context.Context, leagueID int) (*models.League, error)
	ListLeagues(ctx context.Context) ([]models.League, error)
	IsLeagueNameInUse(ctx context.Context, name string, exceptLeagueID int) (bool, error)
	CreateUser(ctx context.Context, req models.UserRequest) (*models.User, error)
	GetUser(ctx context.Context, userID int) (*models.User, error)
	CreateTeam(ctx context.Context, req models.TeamRequest, manager models.User) (*models.Team, error)
	GetTeam(ctx context.Context, teamID int) (*models.Team, error)
	CreateAvailability(ctx context.Context, req models.AvailabilityRequest) (*models.Availability, error)
	CreateGame(ctx context.Context, req models.GameRequest) (*models.Game, error)
}

// App applies the league API's validation rules on top of the repository
type App struct {
	repo     LeagueRepository
	validate *validator.Validate
}

// NewApp creates a new stub App
func NewApp(repo LeagueRepository) *App {
	return &App{
		repo:     repo,
		validate: validator.New(),
	}
}

// CreateLeague creates a new league with validation
func (a *App) CreateLeague(ctx context.Context, req models.LeagueRequest) (*models.League, error) {
	if err := a.validateLeagueRequest(ctx, req, 0); err != nil {
		return nil, err
	}

	league, err := a.repo.CreateLeague(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("failed to create league: %w", err)
	}

	log.Debug().Int("league_id", league.LeagueID).Str("name", league.Name).Msg("stub created league")
	return league, nil
}

// UpdateLeague replaces every field of an existing league
func (a *App) UpdateLeague(ctx context.Context, req models.LeagueRequest) (*models.League, error) {
	if req.LeagueID == 0 {
		return nil, fmt.Errorf("%w: leagueId is required", ErrInvalid)
	}
	if _, err := a.repo.GetLeague(ctx, req.LeagueID); err != nil {
		return nil, err
	}
	if err := a.validateLeagueRequest(ctx, req, req.LeagueID); err != nil {
		return nil, err
	}

	league, err := a.repo.UpdateLeague(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("failed to update league: %w", err)
	}

	log.Debug().Int("league_id", league.LeagueID).Msg("stub updated league")
	return league, nil
}

func (a *App) ListLeagues(ctx context.Context) ([]models.League, error) {
	return a.repo.ListLeagues(ctx)
}

func (a *App) CreateUser(ctx context.Context, req models.UserRequest) (*models.User, error) {
	if err := a.validateStruct(req); err != nil {
		return nil, err
	}
	return a.repo.CreateUser(ctx, req)
}

// CreateTeam registers a team; the league and the manager must both exist
func (a *App) CreateTeam(ctx context.Context, req models.TeamRequest) (*models.Team, error) {
	if err := a.validateStruct(req); err != nil {
		return nil, err
	}
	if _, err := a.repo.GetLeague(ctx, req.LeagueID); err != nil {
		return nil, err
	}
	manager, err := a.repo.GetUser(ctx, req.ManagerID)
	if err != nil {
		return nil, err
	}
	return a.repo.CreateTeam(ctx, req, *manager)
}

func (a *App) CreateAvailability(ctx context.Context, req models.AvailabilityRequest) (*models.Availability, error) {
	if err := a.validateStruct(req); err != nil {
		return nil, err
	}
	if _, ok := models.ParseWeekday(string(req.Weekday)); !ok {
		return nil, fmt.Errorf("%w: invalid weekday %q", ErrInvalid, req.Weekday)
	}
	if _, err := a.repo.GetLeague(ctx, req.LeagueID); err != nil {
		return nil, err
	}
	return a.repo.CreateAvailability(ctx, req)
}

// CreateGame schedules a game; both teams must belong to the league
func (a *App) CreateGame(ctx context.Context, req models.GameRequest) (*models.Game, error) {
	if err := a.validateStruct(req); err != nil {
		return nil, err
	}
	if _, err := a.repo.GetLeague(ctx, req.LeagueID); err != nil {
		return nil, err
	}
	for _, teamID := range []int{req.Team1ID, req.Team2ID} {
		team, err := a.repo.GetTeam(ctx, teamID)
		if err != nil {
			return nil, err
		}
		if team.LeagueID != req.LeagueID {
			return nil, fmt.Errorf("%w: team %d is not in league %d", ErrInvalid, teamID, req.LeagueID)
		}
	}
	return a.repo.CreateGame(ctx, req)
}

// validateLeagueRequest validates a create or update league request
func (a *App) validateLeagueRequest(ctx context.Context, req models.LeagueRequest, leagueID int) error {
	if err := a.validateStruct(req); err != nil {
		return err
	}
	if !models.ValidateGameType(req.Game) {
		return fmt.Errorf("%w: invalid game %q", ErrInvalid, req.Game)
	}
	inUse, err := a.repo.IsLeagueNameInUse(ctx, req.Name, leagueID)
	if err != nil {
		return err
	}
	if inUse {
		return fmt.Errorf("%w: league name %q is in use", ErrConflict, req.Name)
	}
	return nil
}

func (a *App) validateStruct(req interface{}) error {
	if err := a.validate.Struct(req); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	return nil
}
