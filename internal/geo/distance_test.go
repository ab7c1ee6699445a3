package geo

import (
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
)

func TestDistanceKm_IdenticalPoints(t *testing.T) {
	p := orb.Point{121.5645, 25.0340}

	assert.Equal(t, 0.0, DistanceKm(p, p))
}

func TestDistanceKm_Symmetry(t *testing.T) {
	a := orb.Point{121.5645, 25.0340}
	b := orb.Point{120.3014, 22.6273}

	assert.Equal(t, DistanceKm(a, b), DistanceKm(b, a))
}

func TestDistanceKm_KnownDistances(t *testing.T) {
	tests := []struct {
		name string
		a    orb.Point
		b    orb.Point
		want float64
	}{
		{
			name: "taipei to kaohsiung",
			a:    orb.Point{121.5645, 25.0340},
			b:    orb.Point{120.3014, 22.6273},
			want: 296.8,
		},
		{
			name: "short hop rounds to one decimal",
			a:    orb.Point{121.5645, 25.0340},
			b:    orb.Point{121.5637, 25.0375},
			want: 0.4,
		},
		{
			name: "ten km along the equator",
			a:    orb.Point{0, 0},
			b:    orb.Point{0.09, 0},
			want: 10.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DistanceKm(tt.a, tt.b))
		})
	}
}

func TestDistanceKm_NonNegative(t *testing.T) {
	points := []orb.Point{
		{0, 0},
		{-180, -90},
		{180, 90},
		{121.5, 25.0},
		{-73.98, 40.74},
	}

	for _, a := range points {
		for _, b := range points {
			assert.GreaterOrEqual(t, DistanceKm(a, b), 0.0)
		}
	}
}
