package distance

// Route is the provider's distance/duration estimate between two locations.
type Route struct {
	DistanceKm      float64 `json:"distanceKm"`
	DurationMinutes float64 `json:"durationMinutes"`
}
