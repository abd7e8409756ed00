package models

import "time"

// Vehicle is a transfer vehicle class with localized naming (tr/en/ru/hi).
type Vehicle struct {
	ID              int64     `json:"id"`
	Name            string    `json:"name"`
	NameTR          string    `json:"nameTr"`
	NameEN          string    `json:"nameEn"`
	NameRU          string    `json:"nameRu"`
	NameHI          string    `json:"nameHi"`
	Model           string    `json:"model,omitempty"`
	DescriptionTR   string    `json:"descriptionTr,omitempty"`
	DescriptionEN   string    `json:"descriptionEn,omitempty"`
	DescriptionRU   string    `json:"descriptionRu,omitempty"`
	DescriptionHI   string    `json:"descriptionHi,omitempty"`
	Capacity        int       `json:"capacity"`
	LuggageCapacity int       `json:"luggageCapacity"`
	ImageURL        string    `json:"imageUrl,omitempty"`
	PricePerKm      float64   `json:"pricePerKm"`
	BasePrice       float64   `json:"basePrice"`
	IsActive        bool      `json:"isActive"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// VehiclePatch keeps absent JSON keys nil so stored values survive the
// COALESCE update.
type VehiclePatch struct {
	Name            *string  `json:"name"`
	NameTR          *string  `json:"nameTr"`
	NameEN          *string  `json:"nameEn"`
	NameRU          *string  `json:"nameRu"`
	NameHI          *string  `json:"nameHi"`
	Model           *string  `json:"model"`
	DescriptionTR   *string  `json:"descriptionTr"`
	DescriptionEN   *string  `json:"descriptionEn"`
	DescriptionRU   *string  `json:"descriptionRu"`
	DescriptionHI   *string  `json:"descriptionHi"`
	Capacity        *int     `json:"capacity"`
	LuggageCapacity *int     `json:"luggageCapacity"`
	ImageURL        *string  `json:"imageUrl"`
	PricePerKm      *float64 `json:"pricePerKm"`
	BasePrice       *float64 `json:"basePrice"`
	IsActive        *bool    `json:"isActive"`
}
