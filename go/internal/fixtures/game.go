package fixtures

import (
	"time"

	"github.com/mcdev12/leaguefixture/go/internal/models"
	"github.com/stretchr/testify/require"
)

// Game is a scheduled, not yet reported game between two teams of a League
type Game struct {
	League     *League
	GameID     int
	Team1ID    int
	Team2ID    int
	GameTime   time.Time
	Complete   bool
	WinnerID   int
	ScoreTeam1 int
	ScoreTeam2 int
}

func NewGame(t T, env *Env, league *League, team1ID, team2ID int, gameTime time.Time) *Game {
	helper(t)

	g := &Game{
		League:   league,
		Team1ID:  team1ID,
		Team2ID:  team2ID,
		GameTime: gameTime.Truncate(time.Second),
		WinnerID: models.NoWinner,
	}
	gameID, err := env.API.CreateGame(env.Ctx, models.GameRequest{
		LeagueID: league.LeagueID,
		Team1ID:  team1ID,
		Team2ID:  team2ID,
		GameTime: g.GameTime.Unix(),
	})
	require.NoError(t, err, "create game %d vs %d in league %d", team1ID, team2ID, league.LeagueID)
	g.GameID = gameID

	env.Logger.Debug().
		Int("game_id", g.GameID).
		Int("team1_id", team1ID).
		Int("team2_id", team2ID).
		Time("game_time", g.GameTime).
		Msg("created game")
	return g
}

// AssertEqualJSON compares the game and requires both of its teams to be among teams
func (g *Game) AssertEqualJSON(t T, json models.Game, teams []*Team) {
	helper(t)

	require.Equal(t, g.GameID, json.GameID, "game %d: gameId", g.GameID)
	require.Equal(t, g.Team1ID, json.Team1ID, "game %d: team1Id", g.GameID)
	require.Equal(t, g.Team2ID, json.Team2ID, "game %d: team2Id", g.GameID)
	require.Equal(t, g.GameTime.Unix(), json.GameTime, "game %d: gameTime", g.GameID)
	require.Equal(t, g.Complete, json.Complete, "game %d: complete", g.GameID)
	require.Equal(t, g.WinnerID, json.WinnerID, "game %d: winnerId", g.GameID)
	require.Equal(t, g.ScoreTeam1, json.ScoreTeam1, "game %d: scoreTeam1", g.GameID)
	require.Equal(t, g.ScoreTeam2, json.ScoreTeam2, "game %d: scoreTeam2", g.GameID)

	require.True(t, containsTeam(teams, json.Team1ID), "game %d: team1 %d is not a team of the league", g.GameID, json.Team1ID)
	require.True(t, containsTeam(teams, json.Team2ID), "game %d: team2 %d is not a team of the league", g.GameID, json.Team2ID)
}

func containsTeam(teams []*Team, teamID int) bool {
	for _, team := range teams {
		if team.TeamID == teamID {
			return true
		}
	}
	return false
}
