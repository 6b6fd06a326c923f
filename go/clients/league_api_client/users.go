package league_api_client

import (
	"context"
	"fmt"
	"net/http"

	"github.com/mcdev12/leaguefixture/go/internal/models"
)

// CreateUser registers an account and returns its id
func (c *LeagueApiClient) CreateUser(ctx context.Context, req models.UserRequest) (int, error) {
	resp, err := c.Post(ctx, UsersEndpoint, req)
	if err != nil {
		return 0, fmt.Errorf("failed to create user: %w", err)
	}
	if err := expectStatus(http.MethodPost, UsersEndpoint, resp, http.StatusCreated); err != nil {
		return 0, err
	}

	var created createdUserResponse
	if err := decode(http.MethodPost, UsersEndpoint, resp, &created); err != nil {
		return 0, err
	}
	return *created.UserID, nil
}
