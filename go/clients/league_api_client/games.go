package league_api_client

import (
	"context"
	"fmt"
	"net/http"

	"github.com/mcdev12/leaguefixture/go/internal/models"
)

// CreateGame schedules a game between two teams and returns its id
func (c *LeagueApiClient) CreateGame(ctx context.Context, req models.GameRequest) (int, error) {
	resp, err := c.Post(ctx, GamesEndpoint, req)
	if err != nil {
		return 0, fmt.Errorf("failed to create game: %w", err)
	}
	if err := expectStatus(http.MethodPost, GamesEndpoint, resp, http.StatusCreated); err != nil {
		return 0, err
	}

	var created createdGameResponse
	if err := decode(http.MethodPost, GamesEndpoint, resp, &created); err != nil {
		return 0, err
	}
	return *created.GameID, nil
}
