package api

import (
	"context"
	"fmt"

	"github.com/mathangi54/travel-booking-client/internal/models"
)

// GetTours fetches the full tour catalog.
func (c *Client) GetTours(ctx context.Context) ([]models.Tour, error) {
	var tours []models.Tour
	if _, err := c.getJSON(ctx, "/tours", &tours); err != nil {
		return nil, err
	}
	return tours, nil
}

// GetTour fetches one tour by id. A missing tour surfaces as an *APIError
// with status 404; use IsNotFound to detect it.
func (c *Client) GetTour(ctx context.Context, id int) (*models.Tour, error) {
	var tour models.Tour
	if _, err := c.getJSON(ctx, fmt.Sprintf("/tours/%d", id), &tour); err != nil {
		return nil, err
	}
	return &tour, nil
}

// SeedTours asks the backend to populate an empty catalog with its default
// Sri Lankan destinations. The operation is idempotent server-side.
func (c *Client) SeedTours(ctx context.Context) error {
	env, err := c.getJSON(ctx, "/seed-sri-lanka", nil)
	if err != nil {
		return err
	}
	c.logger.WithField("message", env.Message).Info("Seeded tour catalog")
	return nil
}
