package league_api_client

import (
	"encoding/json"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/mcdev12/leaguefixture/go/clients"
)

var validate = validator.New()

// LeagueApiClient talks to the league-management API
type LeagueApiClient struct {
	*clients.BaseClient
}

func NewLeagueApiClient(baseURL string) *LeagueApiClient {
	if baseURL == "" {
		baseURL = BaseURL
	}
	return &LeagueApiClient{
		BaseClient: clients.NewBaseClient(baseURL),
	}
}

// decode unmarshals a response body into dest and runs the required-field checks on it
func decode(method, endpoint string, resp *clients.Response, dest interface{}) error {
	if err := json.Unmarshal(resp.Body, dest); err != nil {
		return fmt.Errorf("%w: %s %s: %v, raw response: %s", ErrMalformedResponse, method, endpoint, err, string(resp.Body))
	}
	if err := validate.Struct(dest); err != nil {
		return fmt.Errorf("%w: %s %s: %v", ErrMalformedResponse, method, endpoint, err)
	}
	return nil
}

// expectStatus returns a *StatusError unless the response carries want
func expectStatus(method, endpoint string, resp *clients.Response, want int) error {
	if resp.StatusCode == want {
		return nil
	}
	return &StatusError{
		Method:     method,
		Endpoint:   endpoint,
		Expected:   want,
		StatusCode: resp.StatusCode,
		Body:       string(resp.Body),
	}
}
