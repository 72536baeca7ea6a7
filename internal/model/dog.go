package model

import "time"

// CareInstructions is the nested care record attached to each dog listing.
// SpecialNeeds is optional; the other fields are always present in seed data.
type CareInstructions struct {
	Food         string `json:"food"`
	Exercise     string `json:"exercise"`
	Grooming     string `json:"grooming"`
	SpecialNeeds string `json:"specialNeeds,omitempty"`
}

// Dog is a catalog listing. AvailableCount is the number of adoptable
// units remaining; the schema enforces it never goes negative.
type Dog struct {
	ID               string           `json:"id"`
	Name             string           `json:"name"`
	Breed            string           `json:"breed"`
	Age              int              `json:"age"`
	Gender           string           `json:"gender"`
	Description      string           `json:"description"`
	Price            float64          `json:"price"`
	AvailableCount   int              `json:"availableCount"`
	ImageURL         string           `json:"imageUrl"`
	CareInstructions CareInstructions `json:"careInstructions"`
	CreatedAt        time.Time        `json:"createdAt"`
}

// Available reports whether the listing has adoptable units left.
func (d *Dog) Available() bool {
	return d.AvailableCount > 0
}
