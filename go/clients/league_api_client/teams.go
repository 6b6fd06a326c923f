package league_api_client

import (
	"context"
	"fmt"
	"net/http"

	"github.com/mcdev12/leaguefixture/go/internal/models"
)

// CreateTeam registers a team in a league and returns its id
func (c *LeagueApiClient) CreateTeam(ctx context.Context, req models.TeamRequest) (int, error) {
	resp, err := c.Post(ctx, TeamsEndpoint, req)
	if err != nil {
		return 0, fmt.Errorf("failed to create team: %w", err)
	}
	if err := expectStatus(http.MethodPost, TeamsEndpoint, resp, http.StatusCreated); err != nil {
		return 0, err
	}

	var created createdTeamResponse
	if err := decode(http.MethodPost, TeamsEndpoint, resp, &created); err != nil {
		return 0, err
	}
	return *created.TeamID, nil
}
