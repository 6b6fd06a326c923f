package fixtures

import (
	"time"

	"github.com/mcdev12/leaguefixture/go/internal/fakedata"
	"github.com/mcdev12/leaguefixture/go/internal/models"
	"github.com/stretchr/testify/require"
)

// League is the expected client-side state of one league on the server.
// The embedded schedule holds SignupStart, SignupEnd, LeagueStart and LeagueEnd.
type League struct {
	env *Env

	LeagueID    int
	Name        string
	Description string
	Game        models.GameType
	PublicView  bool
	PublicJoin  bool
	models.Schedule

	// Managers is not populated by the league itself; team managers live on each Team.
	Managers       []*User
	Teams          []*Team
	Availabilities []*Availability
	Games          []*Game
}

// NewLeague creates a league with random name, description and game whose signup
// window is open and whose competition starts in three weeks.
func NewLeague(t T, env *Env) *League {
	helper(t)

	now := env.Clock.Now()
	l := &League{
		env:         env,
		Name:        env.Data.Slug(),
		Description: env.Data.Text(fakedata.MaxDescriptionLength),
		Game:        env.Data.GameType(),
		PublicView:  true,
		PublicJoin:  true,
		Schedule: models.NewSchedule(
			now.Add(-1*Week),
			now.Add(1*Week),
			now.Add(3*Week),
			now.Add(4*Week),
		),
	}

	leagueID, err := env.API.CreateLeague(env.Ctx, l.request(l.Schedule, l.PublicView, l.PublicJoin))
	require.NoError(t, err, "create league %q", l.Name)
	l.LeagueID = leagueID

	env.Logger.Debug().
		Int("league_id", l.LeagueID).
		Str("name", l.Name).
		Str("game", string(l.Game)).
		Msg("created league")
	return l
}

// UpdateToMiddleOfCompetitionTime moves the league so that signup closed six weeks ago
// and the competition runs from five weeks ago until five weeks from now.
func (l *League) UpdateToMiddleOfCompetitionTime(t T) {
	helper(t)

	now := l.env.Clock.Now()
	schedule := models.NewSchedule(
		now.Add(-7*Week),
		now.Add(-6*Week),
		now.Add(-5*Week),
		now.Add(5*Week),
	)
	l.update(t, schedule, l.PublicView, l.PublicJoin)
}

// UpdatePermissions changes the visibility flags. publicView defaults to true when omitted.
func (l *League) UpdatePermissions(t T, publicJoin bool, publicView ...bool) {
	helper(t)

	view := true
	if len(publicView) > 0 {
		view = publicView[0]
	}
	l.update(t, l.Schedule, view, publicJoin)
}

// update sends the whole league and commits the new values only once the server accepted them
func (l *League) update(t T, schedule models.Schedule, publicView, publicJoin bool) {
	helper(t)

	err := l.env.API.UpdateLeague(l.env.Ctx, l.request(schedule, publicView, publicJoin))
	require.NoError(t, err, "update league %d", l.LeagueID)

	l.Schedule = schedule
	l.PublicView = publicView
	l.PublicJoin = publicJoin
}

func (l *League) request(schedule models.Schedule, publicView, publicJoin bool) models.LeagueRequest {
	return models.LeagueRequest{
		LeagueID:    l.LeagueID,
		Name:        l.Name,
		Description: l.Description,
		Game:        l.Game,
		PublicView:  publicView,
		PublicJoin:  publicJoin,
		SignupStart: schedule.SignupStart.Unix(),
		SignupEnd:   schedule.SignupEnd.Unix(),
		LeagueStart: schedule.LeagueStart.Unix(),
		LeagueEnd:   schedule.LeagueEnd.Unix(),
	}
}

// CreateTeam registers a team managed by manager. The team receives a random seed in [0, 100].
func (l *League) CreateTeam(t T, manager *User, opts ...TeamOption) *Team {
	helper(t)

	team := NewTeam(t, l.env, l, manager, l.env.Data.IntBetween(0, 100), opts...)
	l.Teams = append(l.Teams, team)
	return team
}

func (l *League) CreateAvailability(t T, weekday models.Weekday, hour, minute, durationMinutes int) *Availability {
	helper(t)

	availability := NewAvailability(t, l.env, l, weekday, hour, minute, durationMinutes)
	l.Availabilities = append(l.Availabilities, availability)
	return availability
}

func (l *League) CreateGame(t T, team1ID, team2ID int, gameTime time.Time) *Game {
	helper(t)

	game := NewGame(t, l.env, l, team1ID, team2ID, gameTime)
	l.Games = append(l.Games, game)
	return game
}

// GetTeam returns nil when no team with teamID was created through this league
func (l *League) GetTeam(teamID int) *Team {
	for _, team := range l.Teams {
		if team.TeamID == teamID {
			return team
		}
	}
	return nil
}

// GetGame returns nil when no game with gameID was created through this league
func (l *League) GetGame(gameID int) *Game {
	for _, game := range l.Games {
		if game.GameID == gameID {
			return game
		}
	}
	return nil
}

func (l *League) GetAvailability(availabilityID int) *Availability {
	for _, availability := range l.Availabilities {
		if availability.AvailabilityID == availabilityID {
			return availability
		}
	}
	return nil
}

// MustGetTeam is GetTeam that fails the test instead of returning nil
func (l *League) MustGetTeam(t T, teamID int) *Team {
	helper(t)

	team := l.GetTeam(teamID)
	require.NotNil(t, team, "team %d not found in league %d", teamID, l.LeagueID)
	return team
}

// MustGetGame is GetGame that fails the test instead of returning nil
func (l *League) MustGetGame(t T, gameID int) *Game {
	helper(t)

	game := l.GetGame(gameID)
	require.NotNil(t, game, "game %d not found in league %d", gameID, l.LeagueID)
	return game
}

func (l *League) MustGetAvailability(t T, availabilityID int) *Availability {
	helper(t)

	availability := l.GetAvailability(availabilityID)
	require.NotNil(t, availability, "availability %d not found in league %d", availabilityID, l.LeagueID)
	return availability
}
