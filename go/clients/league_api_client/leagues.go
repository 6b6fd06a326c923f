package league_api_client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/mcdev12/leaguefixture/go/internal/models"
)

// CreateLeague registers a league and returns the id assigned by the server
func (c *LeagueApiClient) CreateLeague(ctx context.Context, req models.LeagueRequest) (int, error) {
	resp, err := c.Post(ctx, LeaguesEndpoint, req)
	if err != nil {
		return 0, fmt.Errorf("failed to create league: %w", err)
	}
	if err := expectStatus(http.MethodPost, LeaguesEndpoint, resp, http.StatusCreated); err != nil {
		return 0, err
	}

	var created createdLeagueResponse
	if err := decode(http.MethodPost, LeaguesEndpoint, resp, &created); err != nil {
		return 0, err
	}
	return *created.LeagueID, nil
}

// UpdateLeague replaces every field of the league identified by req.LeagueID
func (c *LeagueApiClient) UpdateLeague(ctx context.Context, req models.LeagueRequest) error {
	resp, err := c.Put(ctx, LeaguesEndpoint, req)
	if err != nil {
		return fmt.Errorf("failed to update league: %w", err)
	}
	return expectStatus(http.MethodPut, LeaguesEndpoint, resp, http.StatusOK)
}

// ListLeagues returns every league the server reports
func (c *LeagueApiClient) ListLeagues(ctx context.Context) ([]models.League, error) {
	resp, err := c.Get(ctx, LeaguesEndpoint)
	if err != nil {
		return nil, fmt.Errorf("failed to list leagues: %w", err)
	}
	if err := expectStatus(http.MethodGet, LeaguesEndpoint, resp, http.StatusOK); err != nil {
		return nil, err
	}

	var list leagueListResponse
	if err := json.Unmarshal(resp.Body, &list.Leagues); err != nil {
		return nil, fmt.Errorf("%w: GET %s: %v, raw response: %s", ErrMalformedResponse, LeaguesEndpoint, err, string(resp.Body))
	}
	if err := validate.Struct(&list); err != nil {
		return nil, fmt.Errorf("%w: GET %s: %v", ErrMalformedResponse, LeaguesEndpoint, err)
	}

	leagues := make([]models.League, 0, len(list.Leagues))
	for _, l := range list.Leagues {
		leagues = append(leagues, mapLeague(l))
	}
	return leagues, nil
}

// GetLeague fetches the league list and picks the entry with the given id
func (c *LeagueApiClient) GetLeague(ctx context.Context, leagueID int) (*models.League, error) {
	leagues, err := c.ListLeagues(ctx)
	if err != nil {
		return nil, err
	}
	league, err := FindLeague(leagues, leagueID)
	if err != nil {
		return nil, err
	}
	return league, nil
}

// FindLeague correlates a list response entry by id
func FindLeague(leagues []models.League, leagueID int) (*models.League, error) {
	for i := range leagues {
		if leagues[i].LeagueID == leagueID {
			return &leagues[i], nil
		}
	}
	return nil, fmt.Errorf("%w: league %d among %d leagues", ErrLeagueNotFound, leagueID, len(leagues))
}
