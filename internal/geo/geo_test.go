package geo

import (
	"math"
	"testing"
)

func TestHaversine(t *testing.T) {
	tests := []struct {
		name                   string
		lon1, lat1, lon2, lat2 float64
		want                   float64 // meters
		tol                    float64 // relative
	}{
		{"same point", -0.09, 51.505, -0.09, 51.505, 0, 0},
		{"hundredth degree latitude", -0.1, 51.5, -0.1, 51.51, 1113, 0.01},
		{"one degree latitude at equator", 0, 0, 0, 1, 111195, 0.01},
		{"london to paris", -0.1276, 51.5074, 2.3522, 48.8566, 343500, 0.01},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Haversine(tc.lon1, tc.lat1, tc.lon2, tc.lat2)
			if tc.want == 0 {
				if got != 0 {
					t.Fatalf("expected 0, got %f", got)
				}
				return
			}
			if rel := math.Abs(got-tc.want) / tc.want; rel > tc.tol {
				t.Fatalf("want %.0f m (±%.0f%%), got %.1f m", tc.want, tc.tol*100, got)
			}
		})
	}
}

func TestHaversineSymmetry(t *testing.T) {
	pairs := [][4]float64{
		{-0.09, 51.505, 2.3522, 48.8566},
		{0, 0, 180, 0},
		{-73.98, 40.74, 151.2, -33.86},
	}
	for _, p := range pairs {
		ab := Haversine(p[0], p[1], p[2], p[3])
		ba := Haversine(p[2], p[3], p[0], p[1])
		if ab != ba {
			t.Errorf("distance not symmetric: %f != %f", ab, ba)
		}
		if ab < 0 {
			t.Errorf("negative distance: %f", ab)
		}
	}
}
