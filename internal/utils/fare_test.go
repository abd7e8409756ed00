package utils

import "testing"

func TestComputePrice(t *testing.T) {
	cases := []struct {
		name       string
		distanceKm float64
		perKm      float64
		base       float64
		want       float64
	}{
		{"long route is metered", 50, 12, 200, 600},
		{"short route hits the base floor", 5, 12, 200, 200},
		{"zero distance returns base", 0, 12, 200, 200},
		{"negative distance returns base", -3, 12, 200, 200},
		{"exactly at the floor", 10, 20, 200, 200},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ComputePrice(tc.distanceKm, tc.perKm, tc.base)
			if got != tc.want {
				t.Fatalf("ComputePrice(%v, %v, %v) = %v, want %v",
					tc.distanceKm, tc.perKm, tc.base, got, tc.want)
			}
		})
	}
}
