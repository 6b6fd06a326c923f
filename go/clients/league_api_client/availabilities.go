package league_api_client

import (
	"context"
	"fmt"
	"net/http"

	"github.com/mcdev12/leaguefixture/go/internal/models"
)

// CreateAvailability adds a weekly slot to a league and returns its id
func (c *LeagueApiClient) CreateAvailability(ctx context.Context, req models.AvailabilityRequest) (int, error) {
	resp, err := c.Post(ctx, AvailabilitiesEndpoint, req)
	if err != nil {
		return 0, fmt.Errorf("failed to create availability: %w", err)
	}
	if err := expectStatus(http.MethodPost, AvailabilitiesEndpoint, resp, http.StatusCreated); err != nil {
		return 0, err
	}

	var created createdAvailabilityResponse
	if err := decode(http.MethodPost, AvailabilitiesEndpoint, resp, &created); err != nil {
		return 0, err
	}
	return *created.AvailabilityID, nil
}
