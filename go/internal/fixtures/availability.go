package fixtures

import (
	"github.com/mcdev12/leaguefixture/go/internal/models"
	"github.com/stretchr/testify/require"
)

// Availability is a weekly slot in which games of a league may be scheduled
type Availability struct {
	League         *League
	AvailabilityID int
	Weekday        models.Weekday
	Hour           int
	Minute         int
	Duration       int
}

func NewAvailability(t T, env *Env, league *League, weekday models.Weekday, hour, minute, durationMinutes int) *Availability {
	helper(t)

	a := &Availability{
		League:   league,
		Weekday:  weekday,
		Hour:     hour,
		Minute:   minute,
		Duration: durationMinutes,
	}
	availabilityID, err := env.API.CreateAvailability(env.Ctx, models.AvailabilityRequest{
		LeagueID: league.LeagueID,
		Weekday:  weekday,
		Hour:     hour,
		Minute:   minute,
		Duration: durationMinutes,
	})
	require.NoError(t, err, "create %s %02d:%02d availability in league %d", weekday, hour, minute, league.LeagueID)
	a.AvailabilityID = availabilityID
	return a
}

func (a *Availability) AssertEqualJSON(t T, json models.Availability) {
	helper(t)

	require.Equal(t, a.AvailabilityID, json.AvailabilityID, "availability %d: availabilityId", a.AvailabilityID)
	require.Equal(t, a.League.LeagueID, json.LeagueID, "availability %d: leagueId", a.AvailabilityID)
	require.Equal(t, a.Weekday, json.Weekday, "availability %d: weekday", a.AvailabilityID)
	require.Equal(t, a.Hour, json.Hour, "availability %d: hour", a.AvailabilityID)
	require.Equal(t, a.Minute, json.Minute, "availability %d: minute", a.AvailabilityID)
	require.Equal(t, a.Duration, json.Duration, "availability %d: duration", a.AvailabilityID)
}
