// Package fixtures mirrors league API state on the client side and asserts that the
// server agrees with it.
//
// Every fixture talks to the API as soon as it is constructed and records the ids the
// server assigns. Any unexpected status, decoding problem or field mismatch is a hard
// test failure reported through require, so a fixture method only returns when the
// server accepted the call.
package fixtures

import (
	"context"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/mcdev12/leaguefixture/go/internal/fakedata"
	"github.com/mcdev12/leaguefixture/go/internal/models"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/require"
)

// Week is the unit every default league window is expressed in
const Week = 7 * 24 * time.Hour

// API is what the fixtures need from the league API client
type API interface {
	CreateLeague(ctx context.Context, req models.LeagueRequest) (int, error)
	UpdateLeague(ctx context.Context, req models.LeagueRequest) error
	ListLeagues(ctx context.Context) ([]models.League, error)
	CreateTeam(ctx context.Context, req models.TeamRequest) (int, error)
	CreateUser(ctx context.Context, req models.UserRequest) (int, error)
	CreateAvailability(ctx context.Context, req models.AvailabilityRequest) (int, error)
	CreateGame(ctx context.Context, req models.GameRequest) (int, error)
}

// T is satisfied by *testing.T and by any reporter that can record a failure and stop
type T = require.TestingT

// Env carries the collaborators shared by every fixture of one test
type Env struct {
	Ctx    context.Context
	API    API
	Data   fakedata.Generator
	Clock  clockwork.Clock
	Logger zerolog.Logger
}

// NewEnv returns an Env using the real clock, the global logger and a background context
func NewEnv(api API, data fakedata.Generator) *Env {
	return &Env{
		Ctx:    context.Background(),
		API:    api,
		Data:   data,
		Clock:  clockwork.NewRealClock(),
		Logger: log.Logger,
	}
}

func helper(t T) {
	if h, ok := t.(interface{ Helper() }); ok {
		h.Helper()
	}
}
