package fixtures

import (
	"github.com/mcdev12/leaguefixture/go/clients/league_api_client"
	"github.com/mcdev12/leaguefixture/go/internal/models"
	"github.com/stretchr/testify/require"
)

// FetchServerState lists leagues and returns the entry for this league, failing the
// test when the server does not report it.
func (l *League) FetchServerState(t T) *models.League {
	helper(t)

	leagues, err := l.env.API.ListLeagues(l.env.Ctx)
	require.NoError(t, err, "list leagues")

	league, err := league_api_client.FindLeague(leagues, l.LeagueID)
	require.NoError(t, err)
	return league
}

// AssertServerDataConsistent checks the server's copy of this league against the local one
func (l *League) AssertServerDataConsistent(t T) {
	helper(t)

	l.AssertEqualJSON(t, *l.FetchServerState(t))
}

// AssertEqualJSON compares every league field, timestamps as epoch seconds
func (l *League) AssertEqualJSON(t T, json models.League) {
	helper(t)

	require.Equal(t, l.LeagueID, json.LeagueID, "league %d: leagueId", l.LeagueID)
	require.Equal(t, l.Name, json.Name, "league %d: name", l.LeagueID)
	require.Equal(t, l.Description, json.Description, "league %d: description", l.LeagueID)
	require.Equal(t, l.Game, json.Game, "league %d: game", l.LeagueID)
	require.Equal(t, l.PublicView, json.PublicView, "league %d: publicView", l.LeagueID)
	require.Equal(t, l.PublicJoin, json.PublicJoin, "league %d: publicJoin", l.LeagueID)
	require.Equal(t, l.SignupStart.Unix(), json.SignupStart, "league %d: signupStart", l.LeagueID)
	require.Equal(t, l.SignupEnd.Unix(), json.SignupEnd, "league %d: signupEnd", l.LeagueID)
	require.Equal(t, l.LeagueStart.Unix(), json.LeagueStart, "league %d: leagueStart", l.LeagueID)
	require.Equal(t, l.LeagueEnd.Unix(), json.LeagueEnd, "league %d: leagueEnd", l.LeagueID)
}

func (l *League) AssertTeamsEqualJSON(t T, json []models.Team) {
	helper(t)

	for _, jsonTeam := range json {
		l.MustGetTeam(t, jsonTeam.TeamID).AssertEqualJSON(t, jsonTeam)
	}
}

// AssertManagersEqualJSON checks each reported manager against the local team's managers.
// Every manager created through a fixture holds all three permissions.
func (l *League) AssertManagersEqualJSON(t T, json []models.Team) {
	helper(t)

	for _, jsonTeam := range json {
		team := l.MustGetTeam(t, jsonTeam.TeamID)
		team.AssertDisplayEqualJSON(t, jsonTeam)

		for _, jsonManager := range jsonTeam.Managers {
			l.env.Logger.Debug().
				Int("team_id", team.TeamID).
				Int("user_id", jsonManager.UserID).
				Msg("checking manager")

			manager := team.GetManager(jsonManager.UserID)
			require.NotNil(t, manager, "manager %d not found on team %d", jsonManager.UserID, team.TeamID)
			require.Equal(t, manager.UserID, jsonManager.UserID, "team %d: manager userId", team.TeamID)
			require.Equal(t, manager.Email, jsonManager.Email, "team %d: manager %d email", team.TeamID, manager.UserID)
			require.True(t, jsonManager.Administrator, "team %d: manager %d administrator", team.TeamID, manager.UserID)
			require.True(t, jsonManager.Information, "team %d: manager %d information", team.TeamID, manager.UserID)
			require.True(t, jsonManager.Games, "team %d: manager %d games", team.TeamID, manager.UserID)
		}
	}
}

func (l *League) AssertAvailabilitiesEqualJSON(t T, json []models.Availability) {
	helper(t)

	for _, jsonAvailability := range json {
		l.MustGetAvailability(t, jsonAvailability.AvailabilityID).AssertEqualJSON(t, jsonAvailability)
	}
}

func (l *League) AssertGamesEqualJSON(t T, json []models.Game) {
	helper(t)

	for _, jsonGame := range json {
		l.MustGetGame(t, jsonGame.GameID).AssertEqualJSON(t, jsonGame, l.Teams)
	}
}
