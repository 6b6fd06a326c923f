package fixtures

import (
	"github.com/mcdev12/leaguefixture/go/internal/fakedata"
	"github.com/mcdev12/leaguefixture/go/internal/models"
	"github.com/stretchr/testify/require"
)

// Team is the expected state of a team registered in a League
type Team struct {
	League      *League
	TeamID      int
	Name        string
	Tag         string
	Description string
	Seed        int
	Managers    []*User
}

type teamOptions struct {
	name string
	tag  string
}

// TeamOption overrides a randomly generated team value
type TeamOption func(*teamOptions)

func WithTeamName(name string) TeamOption {
	return func(o *teamOptions) { o.name = name }
}

func WithTeamTag(tag string) TeamOption {
	return func(o *teamOptions) { o.tag = tag }
}

// NewTeam registers a team in league with manager as its only, fully privileged manager.
// Prefer League.CreateTeam, which also tracks the team.
func NewTeam(t T, env *Env, league *League, manager *User, seed int, opts ...TeamOption) *Team {
	helper(t)
	require.NotNil(t, manager, "team needs a manager")

	o := teamOptions{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.name == "" {
		o.name = env.Data.TeamName()
	}
	if o.tag == "" {
		o.tag = env.Data.TeamTag()
	}

	team := &Team{
		League:      league,
		Name:        o.name,
		Tag:         o.tag,
		Description: env.Data.Text(fakedata.MaxDescriptionLength),
		Seed:        seed,
		Managers:    []*User{manager},
	}
	teamID, err := env.API.CreateTeam(env.Ctx, models.TeamRequest{
		LeagueID:    league.LeagueID,
		ManagerID:   manager.UserID,
		Name:        team.Name,
		Tag:         team.Tag,
		Description: team.Description,
		Seed:        team.Seed,
	})
	require.NoError(t, err, "create team %q in league %d", team.Name, league.LeagueID)
	team.TeamID = teamID

	env.Logger.Debug().
		Int("team_id", team.TeamID).
		Int("league_id", league.LeagueID).
		Str("tag", team.Tag).
		Msg("created team")
	return team
}

// GetManager returns nil when userID does not manage this team
func (tm *Team) GetManager(userID int) *User {
	for _, m := range tm.Managers {
		if m.UserID == userID {
			return m
		}
	}
	return nil
}

func (tm *Team) AssertEqualJSON(t T, json models.Team) {
	helper(t)

	tm.AssertDisplayEqualJSON(t, json)
	require.Equal(t, tm.League.LeagueID, json.LeagueID, "team %d: leagueId", tm.TeamID)
	require.Equal(t, tm.Description, json.Description, "team %d: description", tm.TeamID)
	require.Equal(t, tm.Seed, json.Seed, "team %d: seed", tm.TeamID)
}

// AssertDisplayEqualJSON compares only what a team listing shows: id, name and tag
func (tm *Team) AssertDisplayEqualJSON(t T, json models.Team) {
	helper(t)

	require.Equal(t, tm.TeamID, json.TeamID, "team %d: teamId", tm.TeamID)
	require.Equal(t, tm.Name, json.Name, "team %d: name", tm.TeamID)
	require.Equal(t, tm.Tag, json.Tag, "team %d: tag", tm.TeamID)
}
