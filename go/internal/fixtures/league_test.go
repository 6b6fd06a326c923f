package fixtures_test

import (
	"testing"
	"time"

	"github.com/mcdev12/leaguefixture/go/internal/fakedata"
	"github.com/mcdev12/leaguefixture/go/internal/fixtures"
	"github.com/mcdev12/leaguefixture/go/internal/models"
	"github.com/mcdev12/leaguefixture/go/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLeague(t *testing.T) {
	env, _ := testutil.NewStubEnv(t, 1)
	now := testutil.FixedNow.Truncate(time.Second)

	league := fixtures.NewLeague(t, env)

	assert.Positive(t, league.LeagueID)
	assert.NotEmpty(t, league.Name)
	assert.LessOrEqual(t, len([]rune(league.Description)), fakedata.MaxDescriptionLength)
	assert.True(t, models.ValidateGameType(league.Game))
	assert.True(t, league.PublicView)
	assert.True(t, league.PublicJoin)

	assert.Equal(t, now.Add(-1*fixtures.Week), league.SignupStart)
	assert.Equal(t, now.Add(1*fixtures.Week), league.SignupEnd)
	assert.Equal(t, now.Add(3*fixtures.Week), league.LeagueStart)
	assert.Equal(t, now.Add(4*fixtures.Week), league.LeagueEnd)
	assert.Zero(t, league.SignupStart.Nanosecond(), "timestamps are stored with second precision")

	league.AssertServerDataConsistent(t)
}

func TestNewLeagueAssignsDistinctIDs(t *testing.T) {
	env, _ := testutil.NewStubEnv(t, 2)

	first := fixtures.NewLeague(t, env)
	second := fixtures.NewLeague(t, env)

	assert.NotEqual(t, first.LeagueID, second.LeagueID)
	first.AssertServerDataConsistent(t)
	second.AssertServerDataConsistent(t)
}

func TestUpdateToMiddleOfCompetitionTime(t *testing.T) {
	env, clock := testutil.NewStubEnv(t, 3)
	league := fixtures.NewLeague(t, env)

	clock.Advance(36 * time.Hour)
	callTime := clock.Now()
	league.UpdateToMiddleOfCompetitionTime(t)

	at := callTime.Truncate(time.Second)
	assert.Equal(t, at.Add(-7*fixtures.Week), league.SignupStart)
	assert.Equal(t, at.Add(-6*fixtures.Week), league.SignupEnd)
	assert.Equal(t, at.Add(-5*fixtures.Week), league.LeagueStart)
	assert.Equal(t, at.Add(5*fixtures.Week), league.LeagueEnd)

	assert.True(t, league.SignupEnd.Before(callTime))
	assert.True(t, callTime.Before(league.LeagueEnd))
	assert.True(t, league.InCompetition(callTime))
	assert.False(t, league.InSignup(callTime))

	league.AssertServerDataConsistent(t)
}

func TestUpdateToMiddleOfCompetitionTimeKeepsPermissions(t *testing.T) {
	env, _ := testutil.NewStubEnv(t, 4)
	league := fixtures.NewLeague(t, env)
	league.UpdatePermissions(t, false, false)

	league.UpdateToMiddleOfCompetitionTime(t)

	server := league.FetchServerState(t)
	assert.False(t, server.PublicJoin)
	assert.False(t, server.PublicView)
	league.AssertEqualJSON(t, *server)
}

func TestUpdatePermissions(t *testing.T) {
	env, _ := testutil.NewStubEnv(t, 5)
	league := fixtures.NewLeague(t, env)
	before := league.FetchServerState(t)

	league.UpdatePermissions(t, false)

	after := league.FetchServerState(t)
	assert.False(t, after.PublicJoin)
	assert.True(t, after.PublicView, "publicView defaults to true")
	assert.Equal(t, before.Name, after.Name)
	assert.Equal(t, before.Description, after.Description)
	assert.Equal(t, before.Game, after.Game)
	assert.Equal(t, before.SignupStart, after.SignupStart)
	assert.Equal(t, before.SignupEnd, after.SignupEnd)
	assert.Equal(t, before.LeagueStart, after.LeagueStart)
	assert.Equal(t, before.LeagueEnd, after.LeagueEnd)
	league.AssertServerDataConsistent(t)

	league.UpdatePermissions(t, true, false)
	assert.True(t, league.PublicJoin)
	assert.False(t, league.PublicView)
	league.AssertServerDataConsistent(t)
}

func TestGetTeamAndGameReturnNilForUnknownIDs(t *testing.T) {
	env, _ := testutil.NewStubEnv(t, 6)
	league := fixtures.NewLeague(t, env)

	assert.Nil(t, league.GetTeam(12345))
	assert.Nil(t, league.GetGame(12345))
	assert.Nil(t, league.GetAvailability(12345))
}

func TestMustGetTeamFailsExplicitly(t *testing.T) {
	env, _ := testutil.NewStubEnv(t, 7)
	league := fixtures.NewLeague(t, env)

	msg := testutil.ExpectFailure(t, func(ft fixtures.T) {
		league.MustGetTeam(ft, 999)
	})
	assert.Contains(t, msg, "team 999 not found")

	msg = testutil.ExpectFailure(t, func(ft fixtures.T) {
		league.MustGetGame(ft, 998)
	})
	assert.Contains(t, msg, "game 998 not found")
}

func TestAssertEqualJSONReportsMismatchedField(t *testing.T) {
	env, _ := testutil.NewStubEnv(t, 8)
	league := fixtures.NewLeague(t, env)
	server := league.FetchServerState(t)

	tampered := *server
	tampered.Description = "something else"
	msg := testutil.ExpectFailure(t, func(ft fixtures.T) {
		league.AssertEqualJSON(ft, tampered)
	})
	assert.Contains(t, msg, "description")
	assert.Contains(t, msg, "something else")

	tampered = *server
	tampered.LeagueEnd++
	msg = testutil.ExpectFailure(t, func(ft fixtures.T) {
		league.AssertEqualJSON(ft, tampered)
	})
	assert.Contains(t, msg, "leagueEnd")
}

func TestAssertServerDataConsistentFailsWhenLeagueMissing(t *testing.T) {
	env, _ := testutil.NewStubEnv(t, 9)
	league := fixtures.NewLeague(t, env)
	league.LeagueID = 4242

	msg := testutil.ExpectFailure(t, func(ft fixtures.T) {
		league.AssertServerDataConsistent(ft)
	})
	assert.Contains(t, msg, "league not found in response")
}

func TestUpdateFailureIsHardAndKeepsLocalState(t *testing.T) {
	env, _ := testutil.NewStubEnv(t, 10)
	league := fixtures.NewLeague(t, env)
	other := fixtures.NewLeague(t, env)
	signupEnd := league.SignupEnd

	// Renaming onto another league's name makes the server reject the update.
	league.Name = other.Name
	testutil.ExpectFailure(t, func(ft fixtures.T) {
		league.UpdateToMiddleOfCompetitionTime(ft)
	})
	assert.Equal(t, signupEnd, league.SignupEnd)
}

func TestCreateLeagueFailsOnUnexpectedStatus(t *testing.T) {
	srv := testutil.NewServer(t, testutil.StatusHandler(500))
	env, _ := testutil.NewEnv(testutil.NewClient(srv), 11)

	msg := testutil.ExpectFailure(t, func(ft fixtures.T) {
		fixtures.NewLeague(ft, env)
	})
	assert.Contains(t, msg, "expected status 201, got 500")
}

func TestSameSeedChoosesSameGame(t *testing.T) {
	envA, _ := testutil.NewStubEnv(t, 99)
	envB, _ := testutil.NewStubEnv(t, 99)

	a := fixtures.NewLeague(t, envA)
	b := fixtures.NewLeague(t, envB)

	require.Equal(t, a.Game, b.Game, "same seed, same game choice")
	require.Equal(t, a.LeagueID, b.LeagueID)
}
