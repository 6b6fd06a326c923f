package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/mcdev12/leaguefixture/go/clients/league_api_client"
	"github.com/mcdev12/leaguefixture/go/internal/fakedata"
	"github.com/mcdev12/leaguefixture/go/internal/fixtureconfig"
	"github.com/mcdev12/leaguefixture/go/internal/fixtures"
	"github.com/mcdev12/leaguefixture/go/internal/smoke"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	configPath := flag.String("config", "", "path to a fixtures YAML file")
	flag.Parse()

	// Setup logging
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	cfg, err := fixtureconfig.Load(*configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}
	zerolog.SetGlobalLevel(cfg.Level())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	client := league_api_client.NewLeagueApiClient(cfg.APIURL)
	client.SetTimeout(cfg.Timeout())

	env := fixtures.NewEnv(client, fakedata.New(cfg.Seed))
	env.Ctx = ctx

	log.Info().
		Str("api_url", cfg.APIURL).
		Int64("seed", cfg.Seed).
		Msg("running league fixture scenarios")

	failed := 0
	for _, result := range smoke.Run(env, smoke.All()) {
		if !result.Passed {
			failed++
		}
	}
	if failed > 0 {
		stop()
		fmt.Fprintf(os.Stderr, "%d scenario(s) failed\n", failed)
		os.Exit(1)
	}
	log.Info().Msg("all scenarios passed")
}
