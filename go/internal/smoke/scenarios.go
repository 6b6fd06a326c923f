// Package smoke runs the league fixture scenarios outside of go test, against whatever
// league API the environment points at.
package smoke

import (
	"github.com/mcdev12/leaguefixture/go/internal/fixtures"
	"github.com/mcdev12/leaguefixture/go/internal/models"
	"github.com/stretchr/testify/require"
)

// Scenario is one named end-to-end check
type Scenario struct {
	Name string
	Run  func(t fixtures.T, env *fixtures.Env)
}

// All returns the scenarios in the order they are run
func All() []Scenario {
	return []Scenario{
		{Name: "create league round trip", Run: createLeagueRoundTrip},
		{Name: "update permissions", Run: updatePermissions},
		{Name: "middle of competition", Run: middleOfCompetition},
		{Name: "teams availabilities and games", Run: teamsAvailabilitiesAndGames},
	}
}

func createLeagueRoundTrip(t fixtures.T, env *fixtures.Env) {
	league := fixtures.NewLeague(t, env)
	league.AssertServerDataConsistent(t)
}

func updatePermissions(t fixtures.T, env *fixtures.Env) {
	league := fixtures.NewLeague(t, env)
	before := league.FetchServerState(t)

	league.UpdatePermissions(t, false)

	after := league.FetchServerState(t)
	require.False(t, after.PublicJoin, "publicJoin")
	require.True(t, after.PublicView, "publicView")

	before.PublicJoin = after.PublicJoin
	before.PublicView = after.PublicView
	require.Equal(t, *before, *after, "only the permission flags may change")
	league.AssertEqualJSON(t, *after)
}

func middleOfCompetition(t fixtures.T, env *fixtures.Env) {
	league := fixtures.NewLeague(t, env)
	league.UpdateToMiddleOfCompetitionTime(t)

	now := env.Clock.Now()
	require.True(t, league.InCompetition(now), "competition window should contain now")
	require.False(t, league.InSignup(now), "signup window should be closed")
	league.AssertServerDataConsistent(t)
}

func teamsAvailabilitiesAndGames(t fixtures.T, env *fixtures.Env) {
	league := fixtures.NewLeague(t, env)
	home := league.CreateTeam(t, fixtures.NewUser(t, env))
	away := league.CreateTeam(t, fixtures.NewUser(t, env))
	league.CreateAvailability(t, models.Saturday, 18, 30, 90)
	league.CreateGame(t, home.TeamID, away.TeamID, league.LeagueStart.Add(fixtures.Week))

	server := league.FetchServerState(t)
	league.AssertEqualJSON(t, *server)
	require.Len(t, server.Teams, len(league.Teams), "teams")
	league.AssertTeamsEqualJSON(t, server.Teams)
	league.AssertManagersEqualJSON(t, server.Teams)
	require.Len(t, server.Availabilities, len(league.Availabilities), "availabilities")
	league.AssertAvailabilitiesEqualJSON(t, server.Availabilities)
	require.Len(t, server.Games, len(league.Games), "games")
	league.AssertGamesEqualJSON(t, server.Games)
}
