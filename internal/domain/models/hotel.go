package models

import "time"

// Hotel is reference data for the booking form's location picker.
type Hotel struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Category    string    `json:"category"`
	Region      string    `json:"region"`
	Address     string    `json:"address"`
	Latitude    float64   `json:"latitude"`
	Longitude   float64   `json:"longitude"`
	Rating      float64   `json:"rating"`
	ImageURL    string    `json:"imageUrl,omitempty"`
	Phone       string    `json:"phone,omitempty"`
	PriceRange  string    `json:"priceRange,omitempty"`
	Description string    `json:"description,omitempty"`
	IsActive    bool      `json:"isActive"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type HotelPatch struct {
	Name        *string  `json:"name"`
	Category    *string  `json:"category"`
	Region      *string  `json:"region"`
	Address     *string  `json:"address"`
	Latitude    *float64 `json:"latitude"`
	Longitude   *float64 `json:"longitude"`
	Rating      *float64 `json:"rating"`
	ImageURL    *string  `json:"imageUrl"`
	Phone       *string  `json:"phone"`
	PriceRange  *string  `json:"priceRange"`
	Description *string  `json:"description"`
}

// HotelFilter narrows the public hotel list.
type HotelFilter struct {
	Region    string
	Category  string
	MinRating float64
}
