package leaguestub

import (
	"context"
	"fmt"
	"sync"

	"github.com/mcdev12/leaguefixture/go/internal/models"
)

// Repository keeps every entity in memory. Ids start at 1 and are never reused.
type Repository struct {
	mu sync.RWMutex

	leagues        []*models.League
	users          map[int]*storedUser
	teams          []*models.Team
	availabilities []*models.Availability
	games          []*models.Game

	nextLeagueID       int
	nextUserID         int
	nextTeamID         int
	nextAvailabilityID int
	nextGameID         int
}

type storedUser struct {
	user     models.User
	password string
}

// NewRepository creates an empty repository
func NewRepository() *Repository {
	return &Repository{
		users:              make(map[int]*storedUser),
		nextLeagueID:       1,
		nextUserID:         1,
		nextTeamID:         1,
		nextAvailabilityID: 1,
		nextGameID:         1,
	}
}

func (r *Repository) CreateLeague(ctx context.Context, req models.LeagueRequest) (*models.League, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	league := leagueFromRequest(r.nextLeagueID, req)
	r.nextLeagueID++
	r.leagues = append(r.leagues, league)
	return r.withChildren(league), nil
}

func (r *Repository) UpdateLeague(ctx context.Context, req models.LeagueRequest) (*models.League, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, l := range r.leagues {
		if l.LeagueID == req.LeagueID {
			r.leagues[i] = leagueFromRequest(req.LeagueID, req)
			return r.withChildren(r.leagues[i]), nil
		}
	}
	return nil, fmt.Errorf("%w: league %d", ErrNotFound, req.LeagueID)
}

func (r *Repository) GetLeague(ctx context.Context, leagueID int) (*models.League, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, l := range r.leagues {
		if l.LeagueID == leagueID {
			return r.withChildren(l), nil
		}
	}
	return nil, fmt.Errorf("%w: league %d", ErrNotFound, leagueID)
}

// ListLeagues returns leagues in creation order
func (r *Repository) ListLeagues(ctx context.Context) ([]models.League, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	leagues := make([]models.League, 0, len(r.leagues))
	for _, l := range r.leagues {
		leagues = append(leagues, *r.withChildren(l))
	}
	return leagues, nil
}

func (r *Repository) IsLeagueNameInUse(ctx context.Context, name string, exceptLeagueID int) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, l := range r.leagues {
		if l.Name == name && l.LeagueID != exceptLeagueID {
			return true, nil
		}
	}
	return false, nil
}

func (r *Repository) CreateUser(ctx context.Context, req models.UserRequest) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if u.user.Email == req.Email {
			return nil, fmt.Errorf("%w: email %s", ErrConflict, req.Email)
		}
	}
	stored := &storedUser{
		user:     models.User{UserID: r.nextUserID, Email: req.Email},
		password: req.Password,
	}
	r.users[stored.user.UserID] = stored
	r.nextUserID++

	user := stored.user
	return &user, nil
}

func (r *Repository) GetUser(ctx context.Context, userID int) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stored, ok := r.users[userID]
	if !ok {
		return nil, fmt.Errorf("%w: user %d", ErrNotFound, userID)
	}
	user := stored.user
	return &user, nil
}

// CreateTeam stores the team with its creator as a manager holding every permission
func (r *Repository) CreateTeam(ctx context.Context, req models.TeamRequest, manager models.User) (*models.Team, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, t := range r.teams {
		if t.LeagueID != req.LeagueID {
			continue
		}
		if t.Name == req.Name {
			return nil, fmt.Errorf("%w: team name %q in league %d", ErrConflict, req.Name, req.LeagueID)
		}
		if t.Tag == req.Tag {
			return nil, fmt.Errorf("%w: team tag %q in league %d", ErrConflict, req.Tag, req.LeagueID)
		}
	}

	team := &models.Team{
		TeamID:      r.nextTeamID,
		LeagueID:    req.LeagueID,
		Name:        req.Name,
		Tag:         req.Tag,
		Description: req.Description,
		Seed:        req.Seed,
		Managers: []models.Manager{{
			UserID:        manager.UserID,
			Email:         manager.Email,
			Administrator: true,
			Information:   true,
			Games:         true,
		}},
	}
	r.nextTeamID++
	r.teams = append(r.teams, team)
	return copyTeam(team), nil
}

func (r *Repository) GetTeam(ctx context.Context, teamID int) (*models.Team, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, t := range r.teams {
		if t.TeamID == teamID {
			return copyTeam(t), nil
		}
	}
	return nil, fmt.Errorf("%w: team %d", ErrNotFound, teamID)
}

func (r *Repository) CreateAvailability(ctx context.Context, req models.AvailabilityRequest) (*models.Availability, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	availability := &models.Availability{
		AvailabilityID: r.nextAvailabilityID,
		LeagueID:       req.LeagueID,
		Weekday:        req.Weekday,
		Hour:           req.Hour,
		Minute:         req.Minute,
		Duration:       req.Duration,
	}
	r.nextAvailabilityID++
	r.availabilities = append(r.availabilities, availability)

	created := *availability
	return &created, nil
}

func (r *Repository) CreateGame(ctx context.Context, req models.GameRequest) (*models.Game, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, g := range r.games {
		if g.GameTime != req.GameTime {
			continue
		}
		if involves(g, req.Team1ID) || involves(g, req.Team2ID) {
			return nil, fmt.Errorf("%w: a team already plays at %d", ErrConflict, req.GameTime)
		}
	}

	game := &models.Game{
		GameID:   r.nextGameID,
		LeagueID: req.LeagueID,
		Team1ID:  req.Team1ID,
		Team2ID:  req.Team2ID,
		GameTime: req.GameTime,
		WinnerID: models.NoWinner,
	}
	r.nextGameID++
	r.games = append(r.games, game)

	created := *game
	return &created, nil
}

// withChildren must be called with r.mu held
func (r *Repository) withChildren(l *models.League) *models.League {
	league := *l
	league.Teams = []models.Team{}
	league.Availabilities = []models.Availability{}
	league.Games = []models.Game{}

	for _, t := range r.teams {
		if t.LeagueID == l.LeagueID {
			league.Teams = append(league.Teams, *copyTeam(t))
		}
	}
	for _, a := range r.availabilities {
		if a.LeagueID == l.LeagueID {
			league.Availabilities = append(league.Availabilities, *a)
		}
	}
	for _, g := range r.games {
		if g.LeagueID == l.LeagueID {
			league.Games = append(league.Games, *g)
		}
	}
	return &league
}

func leagueFromRequest(leagueID int, req models.LeagueRequest) *models.League {
	return &models.League{
		LeagueID:    leagueID,
		Name:        req.Name,
		Description: req.Description,
		Game:        req.Game,
		PublicView:  req.PublicView,
		PublicJoin:  req.PublicJoin,
		SignupStart: req.SignupStart,
		SignupEnd:   req.SignupEnd,
		LeagueStart: req.LeagueStart,
		LeagueEnd:   req.LeagueEnd,
	}
}

func copyTeam(t *models.Team) *models.Team {
	team := *t
	team.Managers = append([]models.Manager(nil), t.Managers...)
	return &team
}

func involves(g *models.Game, teamID int) bool {
	return g.Team1ID == teamID || g.Team2ID == teamID
}
