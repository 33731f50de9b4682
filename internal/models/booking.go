package models

import (
	"time"

	"github.com/google/uuid"
)

// PackageKind represents the static booking tier selected in step 1.
type PackageKind string

const (
	PackageStandard PackageKind = "standard"
	PackagePremium  PackageKind = "premium"
	PackageDeluxe   PackageKind = "deluxe"
)

// IsValid reports whether the kind is one of the three known tiers.
func (k PackageKind) IsValid() bool {
	switch k {
	case PackageStandard, PackagePremium, PackageDeluxe:
		return true
	}
	return false
}

// Traveler count bounds enforced by step 1 of the wizard.
const (
	MinTravelers = 1
	MaxTravelers = 20
)

// PersonalInfo holds the contact details collected in step 2.
type PersonalInfo struct {
	FullName        string `json:"full_name"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	SpecialRequests string `json:"special_requests,omitempty"`
}

// BookingDraft is the mutable working state of the booking wizard. It is
// owned by a single flow controller instance and serialized to the draft
// store only at hand-off points (pre-login redirect, card selection).
type BookingDraft struct {
	ID              uuid.UUID    `json:"id"`
	SelectedPackage PackageKind  `json:"package_type"`
	TravelerCount   int          `json:"guests"`
	TravelDate      time.Time    `json:"travel_date"`
	TotalAmount     float64      `json:"total_price"`
	PersonalInfo    PersonalInfo `json:"customer_info"`
	SourceTour      *Tour        `json:"source_tour,omitempty"`
	CurrentStep     int          `json:"current_step"`
	Confirmed       bool         `json:"confirmed"`
}

// NewBookingDraft returns a draft with the wizard's initial values: the
// standard tier, a single traveler, travel date of today, step 1, and the
// total already priced for that selection.
func NewBookingDraft() *BookingDraft {
	y, m, d := time.Now().Date()
	return &BookingDraft{
		ID:              uuid.New(),
		SelectedPackage: PackageStandard,
		TravelerCount:   1,
		TravelDate:      time.Date(y, m, d, 0, 0, 0, 0, time.UTC),
		TotalAmount:     StaticPackageCatalog[PackageStandard].PerPersonPrice,
		CurrentStep:     1,
	}
}

// CreateBookingRequest is the POST /api/bookings payload.
type CreateBookingRequest struct {
	TourID              int     `json:"tour_id"`
	TravelDate          string  `json:"travel_date"` // YYYY-MM-DD
	Guests              int     `json:"guests"`
	TotalPrice          float64 `json:"total_price"`
	CustomerName        string  `json:"customer_name"`
	CustomerEmail       string  `json:"customer_email"`
	CustomerPhone       string  `json:"customer_phone"`
	SpecialRequests     string  `json:"special_requests"`
	PackageType         string  `json:"package_type"`
	PreferredStarRating int     `json:"preferred_star_rating"`
	NumberOfChildren    int     `json:"number_of_children"`
	IdempotencyKey      string  `json:"idempotency_key,omitempty"`
}

// Booking is a created booking as echoed back by the backend.
type Booking struct {
	ID              int     `json:"id"`
	TourID          int     `json:"tour_id"`
	TourName        string  `json:"tour_name,omitempty"`
	TravelDate      string  `json:"travel_date"`
	Guests          int     `json:"guests"`
	TotalPrice      float64 `json:"total_price"`
	CustomerName    string  `json:"customer_name"`
	CustomerEmail   string  `json:"customer_email"`
	CustomerPhone   string  `json:"customer_phone"`
	SpecialRequests string  `json:"special_requests,omitempty"`
	PackageType     string  `json:"package_type"`
	Status          string  `json:"status"`
}

// User is the authenticated account as returned by the auth endpoints.
type User struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role,omitempty"`
}
