package league_api_client

const (
	// Base URL of a locally running league API
	BaseURL = "http://localhost:8080"

	// API Endpoints
	LeaguesEndpoint        = "/api/v1/leagues"
	TeamsEndpoint          = "/api/v1/teams"
	AvailabilitiesEndpoint = "/api/v1/availabilities"
	GamesEndpoint          = "/api/v1/games"
	UsersEndpoint          = "/api/v1/users"
)
