package smoke

import (
	"errors"
	"fmt"
	"time"

	"github.com/mcdev12/leaguefixture/go/internal/fixtures"
	"github.com/rs/zerolog"
)

var errFailNow = errors.New("scenario failed")

// Result is the outcome of one scenario
type Result struct {
	Name     string
	Passed   bool
	Failures []string
	Duration time.Duration
}

// reporter satisfies fixtures.T; FailNow unwinds the scenario with a panic that Run recovers
type reporter struct {
	logger   zerolog.Logger
	failures []string
}

func (r *reporter) Errorf(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	r.failures = append(r.failures, msg)
	r.logger.Error().Msg(msg)
}

func (r *reporter) FailNow() {
	panic(errFailNow)
}

// Run executes every scenario in order and returns one result per scenario
func Run(env *fixtures.Env, scenarios []Scenario) []Result {
	results := make([]Result, 0, len(scenarios))
	for _, sc := range scenarios {
		results = append(results, runOne(env, sc))
	}
	return results
}

func runOne(env *fixtures.Env, sc Scenario) (result Result) {
	r := &reporter{logger: env.Logger.With().Str("scenario", sc.Name).Logger()}
	start := env.Clock.Now()

	defer func() {
		if rec := recover(); rec != nil && rec != errFailNow {
			panic(rec)
		}
		result = Result{
			Name:     sc.Name,
			Passed:   len(r.failures) == 0,
			Failures: r.failures,
			Duration: env.Clock.Since(start),
		}
		event := r.logger.Info()
		if !result.Passed {
			event = r.logger.Warn()
		}
		event.Bool("passed", result.Passed).Dur("duration", result.Duration).Msg("scenario finished")
	}()

	sc.Run(r, env)
	return result
}
