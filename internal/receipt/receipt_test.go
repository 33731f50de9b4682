package receipt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mathangi54/travel-booking-client/internal/models"
)

func TestGenerate(t *testing.T) {
	booking := &models.Booking{
		ID:            42,
		TourName:      "Pristine Beaches of Mirissa",
		TravelDate:    "2026-10-12",
		Guests:        3,
		TotalPrice:    2550,
		CustomerName:  "Nimal Perera",
		CustomerEmail: "nimal@example.com",
		CustomerPhone: "0771234567",
		PackageType:   "premium",
		Status:        "pending",
	}

	data, err := Generate(booking)
	require.NoError(t, err)
	require.NotEmpty(t, data)
	assert.Equal(t, "%PDF", string(data[:4]))
}

func TestGenerateMinimalBooking(t *testing.T) {
	data, err := Generate(&models.Booking{ID: 1, Guests: 1, PackageType: "standard"})
	require.NoError(t, err)
	assert.NotEmpty(t, data)
}

func TestGenerateNilBooking(t *testing.T) {
	_, err := Generate(nil)
	assert.Error(t, err)
}
