package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/mathangi54/travel-booking-client/internal/models"
)

// createBookingData matches the /bookings success payload, which nests the
// created record under booking_details.
type createBookingData struct {
	ID             int            `json:"id"`
	BookingDetails models.Booking `json:"booking_details"`
}

// CreateBooking submits a booking with the given bearer token. It runs
// under the longer submission bound since it is the one write the wizard
// performs.
func (c *Client) CreateBooking(ctx context.Context, req models.CreateBookingRequest, token string) (*models.Booking, error) {
	env, err := c.doJSON(ctx, http.MethodPost, "/bookings", req, token, c.submitTimeout)
	if err != nil {
		return nil, err
	}

	var data createBookingData
	if err := json.Unmarshal(env.Data, &data); err != nil {
		return nil, fmt.Errorf("failed to decode booking response: %w", err)
	}

	booking := data.BookingDetails
	if booking.ID == 0 {
		booking.ID = data.ID
	}

	c.logger.WithField("booking_id", booking.ID).Info("Booking created")
	return &booking, nil
}
