package utils

// ComputePrice returns the transfer price for a route of distanceKm using the
// vehicle's per-kilometer rate. The base price is a floor: short routes never
// cost less than it.
func ComputePrice(distanceKm, pricePerKm, basePrice float64) float64 {
	if distanceKm <= 0 {
		return basePrice
	}
	price := distanceKm * pricePerKm
	if price < basePrice {
		return basePrice
	}
	return price
}
