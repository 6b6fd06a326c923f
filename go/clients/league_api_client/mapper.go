package league_api_client

import "github.com/mcdev12/leaguefixture/go/internal/models"

// The mappers assume the wire value already passed validation, so required pointers are non-nil.

func mapLeague(l leagueResponse) models.League {
	league := models.League{
		LeagueID:       *l.LeagueID,
		Name:           *l.Name,
		Description:    *l.Description,
		Game:           models.GameType(*l.Game),
		PublicView:     *l.PublicView,
		PublicJoin:     *l.PublicJoin,
		SignupStart:    *l.SignupStart,
		SignupEnd:      *l.SignupEnd,
		LeagueStart:    *l.LeagueStart,
		LeagueEnd:      *l.LeagueEnd,
		Teams:          make([]models.Team, 0, len(l.Teams)),
		Availabilities: make([]models.Availability, 0, len(l.Availabilities)),
		Games:          make([]models.Game, 0, len(l.Games)),
	}
	for _, t := range l.Teams {
		league.Teams = append(league.Teams, mapTeam(t))
	}
	for _, a := range l.Availabilities {
		league.Availabilities = append(league.Availabilities, mapAvailability(a))
	}
	for _, g := range l.Games {
		league.Games = append(league.Games, mapGame(g))
	}
	return league
}

func mapTeam(t teamResponse) models.Team {
	team := models.Team{
		TeamID:      *t.TeamID,
		LeagueID:    t.LeagueID,
		Name:        *t.Name,
		Tag:         *t.Tag,
		Description: t.Description,
		Seed:        t.Seed,
		Wins:        t.Wins,
		Losses:      t.Losses,
		Managers:    make([]models.Manager, 0, len(t.Managers)),
	}
	for _, m := range t.Managers {
		team.Managers = append(team.Managers, models.Manager{
			UserID:        *m.UserID,
			Email:         *m.Email,
			Administrator: *m.Administrator,
			Information:   *m.Information,
			Games:         *m.Games,
		})
	}
	return team
}

func mapAvailability(a availabilityResponse) models.Availability {
	return models.Availability{
		AvailabilityID: *a.AvailabilityID,
		LeagueID:       a.LeagueID,
		Weekday:        models.Weekday(*a.Weekday),
		Hour:           *a.Hour,
		Minute:         *a.Minute,
		Duration:       *a.Duration,
	}
}

func mapGame(g gameResponse) models.Game {
	return models.Game{
		GameID:     *g.GameID,
		LeagueID:   g.LeagueID,
		Team1ID:    *g.Team1ID,
		Team2ID:    *g.Team2ID,
		GameTime:   *g.GameTime,
		Complete:   g.Complete,
		WinnerID:   g.WinnerID,
		ScoreTeam1: g.ScoreTeam1,
		ScoreTeam2: g.ScoreTeam2,
	}
}
