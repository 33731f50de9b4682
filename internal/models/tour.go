package models

import "fmt"

// Tour is a catalog entry as served by the backend tour endpoints.
type Tour struct {
	ID           int     `json:"id" db:"id"`
	Name         string  `json:"name" db:"name"`
	Description  string  `json:"description" db:"description"`
	Location     string  `json:"location,omitempty" db:"location"`
	Price        float64 `json:"price" db:"price"`
	DurationDays int     `json:"duration_days" db:"duration_days"`
	TourType     string  `json:"tour_type" db:"tour_type"`
	ImageURL     string  `json:"image_url" db:"image_url"`
	Rating       float64 `json:"rating,omitempty" db:"rating"`
	Reviews      int     `json:"reviews,omitempty" db:"reviews"`
}

func (t Tour) String() string {
	return fmt.Sprintf("#%d %s ($%.2f)", t.ID, t.Name, t.Price)
}

// DefaultTour is the last-resort booking target used when the catalog is
// unreachable and nothing else identifies a tour. It mirrors the first
// seeded destination so the wizard is never left without a price.
var DefaultTour = Tour{
	ID:           1,
	Name:         "Pristine Beaches of Mirissa",
	Description:  "Experience whale watching and pristine beaches in southern Sri Lanka",
	Location:     "Mirissa, Sri Lanka",
	Price:        850.00,
	DurationDays: 5,
	TourType:     "Beach",
	ImageURL:     "/images/mirrisa1.jpg",
}
