package league_api_client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/mcdev12/leaguefixture/go/internal/models"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const leagueJSON = `{
	"leagueId": 7,
	"name": "quiet-river-000001",
	"description": "A league.",
	"game": "leagueoflegends",
	"publicView": true,
	"publicJoin": false,
	"signupStart": 100,
	"signupEnd": 200,
	"leagueStart": 300,
	"leagueEnd": 400,
	"teams": [{
		"teamId": 3, "leagueId": 7, "name": "Brave Owls 12", "tag": "OWL", "description": "", "seed": 42,
		"managers": [{"userId": 9, "email": "a@b.io", "administrator": true, "information": true, "games": false}]
	}],
	"availabilities": [{"availabilityId": 4, "leagueId": 7, "weekday": "monday", "hour": 0, "minute": 30, "duration": 60}],
	"games": [{"gameId": 5, "leagueId": 7, "team1Id": 3, "team2Id": 8, "gameTime": 350, "complete": false, "winnerId": -1}]
}`

func newTestClient(t *testing.T, status int, body string) *LeagueApiClient {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)

	c := NewLeagueApiClient(srv.URL)
	c.SetHTTPClient(srv.Client())
	c.SetLogger(zerolog.Nop())
	return c
}

func TestNewLeagueApiClientDefaultsBaseURL(t *testing.T) {
	assert.Equal(t, BaseURL, NewLeagueApiClient("").BaseURL())
}

func TestCreateLeague(t *testing.T) {
	var got models.LeagueRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, LeaguesEndpoint, r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"leagueId": 12}`))
	}))
	defer srv.Close()

	c := NewLeagueApiClient(srv.URL)
	c.SetLogger(zerolog.Nop())

	id, err := c.CreateLeague(context.Background(), models.LeagueRequest{
		Name:        "league",
		Game:        models.GameLeagueOfLegends,
		PublicView:  true,
		SignupStart: 1,
		SignupEnd:   2,
		LeagueStart: 3,
		LeagueEnd:   4,
	})
	require.NoError(t, err)
	assert.Equal(t, 12, id)
	assert.Equal(t, "league", got.Name)
	assert.Zero(t, got.LeagueID)
	assert.True(t, got.PublicView)
	assert.False(t, got.PublicJoin)
}

func TestCreateLeagueUnexpectedStatus(t *testing.T) {
	c := newTestClient(t, http.StatusBadRequest, `{"error":"invalid"}`)

	_, err := c.CreateLeague(context.Background(), models.LeagueRequest{Name: "league"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnexpectedStatus)

	var statusErr *StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusCreated, statusErr.Expected)
	assert.Equal(t, http.StatusBadRequest, statusErr.StatusCode)
	assert.Contains(t, err.Error(), "POST /api/v1/leagues: expected status 201, got 400")
}

func TestCreateLeagueMissingID(t *testing.T) {
	c := newTestClient(t, http.StatusCreated, `{"id": 12}`)

	_, err := c.CreateLeague(context.Background(), models.LeagueRequest{Name: "league"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMalformedResponse)
	assert.NotErrorIs(t, err, ErrUnexpectedStatus)
}

func TestCreateLeagueNotJSON(t *testing.T) {
	c := newTestClient(t, http.StatusCreated, `<html>`)

	_, err := c.CreateLeague(context.Background(), models.LeagueRequest{Name: "league"})
	assert.ErrorIs(t, err, ErrMalformedResponse)
	assert.Contains(t, err.Error(), "<html>")
}

func TestUpdateLeague(t *testing.T) {
	var got map[string]interface{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
	}))
	defer srv.Close()

	c := NewLeagueApiClient(srv.URL)
	c.SetLogger(zerolog.Nop())

	err := c.UpdateLeague(context.Background(), models.LeagueRequest{LeagueID: 7, Name: "league"})
	require.NoError(t, err)
	assert.EqualValues(t, 7, got["leagueId"])
	assert.Contains(t, got, "publicJoin")
}

func TestUpdateLeagueUnexpectedStatus(t *testing.T) {
	c := newTestClient(t, http.StatusNotFound, `{"error":"leagueNotFound"}`)

	err := c.UpdateLeague(context.Background(), models.LeagueRequest{LeagueID: 7})
	assert.ErrorIs(t, err, ErrUnexpectedStatus)
	assert.Contains(t, err.Error(), "leagueNotFound")
}

func TestListLeagues(t *testing.T) {
	c := newTestClient(t, http.StatusOK, "["+leagueJSON+"]")

	leagues, err := c.ListLeagues(context.Background())
	require.NoError(t, err)
	require.Len(t, leagues, 1)

	l := leagues[0]
	assert.Equal(t, 7, l.LeagueID)
	assert.Equal(t, models.GameLeagueOfLegends, l.Game)
	assert.True(t, l.PublicView)
	assert.False(t, l.PublicJoin)
	assert.Equal(t, int64(300), l.LeagueStart)

	require.Len(t, l.Teams, 1)
	assert.Equal(t, "OWL", l.Teams[0].Tag)
	assert.Equal(t, 42, l.Teams[0].Seed)
	require.Len(t, l.Teams[0].Managers, 1)
	assert.False(t, l.Teams[0].Managers[0].Games)

	require.Len(t, l.Availabilities, 1)
	assert.Equal(t, 0, l.Availabilities[0].Hour)
	assert.Equal(t, models.Monday, l.Availabilities[0].Weekday)

	require.Len(t, l.Games, 1)
	assert.Equal(t, models.NoWinner, l.Games[0].WinnerID)
}

func TestListLeaguesEmptyChildren(t *testing.T) {
	c := newTestClient(t, http.StatusOK, `[{"leagueId": 1, "name": "n", "description": "", "game": "dota2",
		"publicView": false, "publicJoin": false, "signupStart": 1, "signupEnd": 2, "leagueStart": 3, "leagueEnd": 4}]`)

	leagues, err := c.ListLeagues(context.Background())
	require.NoError(t, err)
	require.Len(t, leagues, 1)
	assert.NotNil(t, leagues[0].Teams)
	assert.Empty(t, leagues[0].Teams)
	assert.Empty(t, leagues[0].Games)
}

func TestListLeaguesMissingField(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{
			name: "league without publicJoin",
			body: `[{"leagueId": 1, "name": "n", "description": "", "game": "dota2",
				"publicView": true, "signupStart": 1, "signupEnd": 2, "leagueStart": 3, "leagueEnd": 4}]`,
		},
		{
			name: "team without tag",
			body: `[{"leagueId": 1, "name": "n", "description": "", "game": "dota2", "publicView": true,
				"publicJoin": true, "signupStart": 1, "signupEnd": 2, "leagueStart": 3, "leagueEnd": 4,
				"teams": [{"teamId": 2, "name": "t"}]}]`,
		},
		{
			name: "manager without permissions",
			body: `[{"leagueId": 1, "name": "n", "description": "", "game": "dota2", "publicView": true,
				"publicJoin": true, "signupStart": 1, "signupEnd": 2, "leagueStart": 3, "leagueEnd": 4,
				"teams": [{"teamId": 2, "name": "t", "tag": "TT", "managers": [{"userId": 1, "email": "a@b.io"}]}]}]`,
		},
		{
			name: "not an array",
			body: `{"leagues": []}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(t, http.StatusOK, tt.body)

			_, err := c.ListLeagues(context.Background())
			assert.ErrorIs(t, err, ErrMalformedResponse)
		})
	}
}

func TestGetLeague(t *testing.T) {
	c := newTestClient(t, http.StatusOK, "["+leagueJSON+"]")

	league, err := c.GetLeague(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, "quiet-river-000001", league.Name)

	_, err = c.GetLeague(context.Background(), 8)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrLeagueNotFound)
	assert.Contains(t, err.Error(), "league 8 among 1 leagues")
}

func TestFindLeagueReturnsElementOfSlice(t *testing.T) {
	leagues := []models.League{{LeagueID: 1}, {LeagueID: 2}}

	league, err := FindLeague(leagues, 2)
	require.NoError(t, err)
	assert.Same(t, &leagues[1], league)

	_, err = FindLeague(nil, 1)
	assert.ErrorIs(t, err, ErrLeagueNotFound)
}
