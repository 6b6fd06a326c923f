package models

import (
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidGameTypes(t *testing.T) {
	games := ValidGameTypes()
	require.Len(t, games, 13)
	assert.Equal(t, GameGenericSport, games[0])
	assert.Equal(t, GameOverwatch, games[len(games)-1])

	for _, g := range games {
		assert.True(t, ValidateGameType(g), string(g))
	}
	assert.False(t, ValidateGameType("chess"))
	assert.False(t, ValidateGameType(""))
}

func TestGetEsportGameTypes(t *testing.T) {
	assert.Equal(t,
		[]GameType{GameGenericEsport, GameCSGO, GameLeagueOfLegends, GameOverwatch},
		GetEsportGameTypes())
	assert.Equal(t, "Water Polo", GetGameTypes()[GameWaterPolo].Name)
}

func TestNewScheduleTruncatesToSeconds(t *testing.T) {
	now := time.Date(2026, 3, 14, 15, 9, 26, 535_000_000, time.UTC)

	s := NewSchedule(now, now.Add(time.Hour), now.Add(2*time.Hour), now.Add(3*time.Hour))
	assert.Equal(t, 0, s.SignupStart.Nanosecond())
	assert.Equal(t, 0, s.LeagueEnd.Nanosecond())
	assert.Equal(t, now.Unix(), s.SignupStart.Unix())
	assert.Equal(t, now.Add(3*time.Hour).Unix(), s.LeagueEnd.Unix())
}

func TestScheduleWindows(t *testing.T) {
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	s := NewSchedule(base, base.Add(time.Hour), base.Add(2*time.Hour), base.Add(3*time.Hour))

	tests := []struct {
		name          string
		at            time.Time
		inSignup      bool
		inCompetition bool
	}{
		{"before signup", base.Add(-time.Second), false, false},
		{"signup start is inclusive", base, true, false},
		{"signup end is exclusive", base.Add(time.Hour), false, false},
		{"league start is inclusive", base.Add(2 * time.Hour), false, true},
		{"during competition", base.Add(150 * time.Minute), false, true},
		{"league end is exclusive", base.Add(3 * time.Hour), false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.inSignup, s.InSignup(tt.at))
			assert.Equal(t, tt.inCompetition, s.InCompetition(tt.at))
		})
	}
}

func TestParseWeekday(t *testing.T) {
	w, ok := ParseWeekday(" Friday ")
	assert.True(t, ok)
	assert.Equal(t, Friday, w)

	_, ok = ParseWeekday("someday")
	assert.False(t, ok)
	assert.Len(t, Weekdays, 7)
}

func TestRequestValidation(t *testing.T) {
	validate := validator.New()

	assert.NoError(t, validate.Struct(GameRequest{LeagueID: 1, Team1ID: 2, Team2ID: 3, GameTime: 10}))
	assert.Error(t, validate.Struct(GameRequest{LeagueID: 1, Team1ID: 2, Team2ID: 2, GameTime: 10}))

	assert.NoError(t, validate.Struct(AvailabilityRequest{LeagueID: 1, Weekday: Monday, Hour: 0, Minute: 0, Duration: 30}))
	assert.Error(t, validate.Struct(AvailabilityRequest{LeagueID: 1, Weekday: Monday, Hour: 24, Duration: 30}))

	assert.NoError(t, validate.Struct(TeamRequest{LeagueID: 1, ManagerID: 1, Name: "Owls", Tag: "OWL", Seed: 100}))
	assert.Error(t, validate.Struct(TeamRequest{LeagueID: 1, ManagerID: 1, Name: "Owls", Tag: "OWLSSS"}))

	assert.Error(t, validate.Struct(UserRequest{Email: "not-an-email", Password: "long enough"}))
}
