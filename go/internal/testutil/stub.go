// Package testutil starts an in-memory league API and builds fixture environments against it.
package testutil

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/mcdev12/leaguefixture/go/clients/league_api_client"
	"github.com/mcdev12/leaguefixture/go/internal/fakedata"
	"github.com/mcdev12/leaguefixture/go/internal/fixtures"
	"github.com/mcdev12/leaguefixture/go/internal/leaguestub"
	"github.com/rs/zerolog"
)

// FixedNow is the instant fake clocks start at
var FixedNow = time.Date(2026, time.March, 14, 15, 9, 26, 535000000, time.UTC)

// NewStubServer serves a fresh league stub for the duration of the test
func NewStubServer(t testing.TB) *httptest.Server {
	t.Helper()
	return NewServer(t, leaguestub.NewHandler())
}

// NewServer serves h for the duration of the test
func NewServer(t testing.TB, h http.Handler) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return srv
}

// NewClient returns a quiet client pointed at srv
func NewClient(srv *httptest.Server) *league_api_client.LeagueApiClient {
	client := league_api_client.NewLeagueApiClient(srv.URL)
	client.SetHTTPClient(srv.Client())
	client.SetLogger(zerolog.Nop())
	return client
}

// NewEnv returns an Env with a seeded generator and a fake clock at FixedNow
func NewEnv(api fixtures.API, seed int64) (*fixtures.Env, *clockwork.FakeClock) {
	clock := clockwork.NewFakeClockAt(FixedNow)
	env := fixtures.NewEnv(api, fakedata.New(seed))
	env.Clock = clock
	env.Logger = zerolog.Nop()
	return env, clock
}

// NewStubEnv combines NewStubServer, NewClient and NewEnv
func NewStubEnv(t testing.TB, seed int64) (*fixtures.Env, *clockwork.FakeClock) {
	t.Helper()
	return NewEnv(NewClient(NewStubServer(t)), seed)
}

// StatusHandler answers every request with status and an empty JSON object
func StatusHandler(status int) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte("{}"))
	})
}
