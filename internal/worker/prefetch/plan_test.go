package prefetch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gmaps-business-provider/internal/domain"
)

var berlin = domain.Point{Lat: 52.52, Lon: 13.405}

func TestPlan_SinglePoint(t *testing.T) {
	jobs, err := Plan(Area{
		MapType:   domain.MapTypeRoadmap,
		SouthWest: berlin,
		NorthEast: berlin,
		MinZoom:   10,
		MaxZoom:   10,
	})
	require.NoError(t, err)
	assert.Equal(t, []Job{{MapType: domain.MapTypeRoadmap, X: 550, Y: 335, Zoom: 10}}, jobs)
}

func TestPlan_WholeWorld(t *testing.T) {
	jobs, err := Plan(Area{
		MapType:   domain.MapTypeSatellite,
		SouthWest: domain.Point{Lat: -90, Lon: -180},
		NorthEast: domain.Point{Lat: 90, Lon: 180},
		MinZoom:   0,
		MaxZoom:   2,
	})
	require.NoError(t, err)
	require.Len(t, jobs, 1+4+16)

	assert.Equal(t, Job{MapType: domain.MapTypeSatellite, X: 0, Y: 0, Zoom: 0}, jobs[0])
	assert.Equal(t, Job{MapType: domain.MapTypeSatellite, X: 3, Y: 3, Zoom: 2}, jobs[len(jobs)-1])

	seen := make(map[Job]bool)
	for _, j := range jobs {
		assert.False(t, seen[j], "duplicate job %+v", j)
		seen[j] = true
		assert.Less(t, j.X, 1<<uint(j.Zoom))
		assert.Less(t, j.Y, 1<<uint(j.Zoom))
	}
}

func TestPlan_ZoomOrder(t *testing.T) {
	jobs, err := Plan(Area{
		MapType:   domain.MapTypeTerrain,
		SouthWest: domain.Point{Lat: 52.3, Lon: 13.0},
		NorthEast: domain.Point{Lat: 52.7, Lon: 13.8},
		MinZoom:   5,
		MaxZoom:   9,
	})
	require.NoError(t, err)
	require.NotEmpty(t, jobs)

	for i := 1; i < len(jobs); i++ {
		assert.GreaterOrEqual(t, jobs[i].Zoom, jobs[i-1].Zoom)
	}
	assert.Equal(t, 5, jobs[0].Zoom)
	assert.Equal(t, 9, jobs[len(jobs)-1].Zoom)
}

func TestPlan_Invalid(t *testing.T) {
	valid := Area{
		MapType:   domain.MapTypeRoadmap,
		SouthWest: domain.Point{Lat: 52.3, Lon: 13.0},
		NorthEast: domain.Point{Lat: 52.7, Lon: 13.8},
		MinZoom:   1,
		MaxZoom:   3,
	}

	tests := []struct {
		name   string
		modify func(a *Area)
	}{
		{"unknown map type", func(a *Area) { a.MapType = "streetview" }},
		{"latitude out of range", func(a *Area) { a.NorthEast.Lat = 91 }},
		{"swapped corners", func(a *Area) { a.SouthWest, a.NorthEast = a.NorthEast, a.SouthWest }},
		{"negative zoom", func(a *Area) { a.MinZoom = -1 }},
		{"zoom above max", func(a *Area) { a.MaxZoom = 23 }},
		{"min above max", func(a *Area) { a.MinZoom = 4 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			area := valid
			tt.modify(&area)
			_, err := Plan(area)
			assert.Error(t, err)
		})
	}

	area := valid
	area.MapType = "streetview"
	_, err := Plan(area)
	assert.ErrorIs(t, err, domain.ErrUnknownMapType)
}

func TestPlan_TooLarge(t *testing.T) {
	_, err := Plan(Area{
		MapType:   domain.MapTypeRoadmap,
		SouthWest: domain.Point{Lat: -80, Lon: -180},
		NorthEast: domain.Point{Lat: 80, Lon: 180},
		MinZoom:   0,
		MaxZoom:   12,
	})
	assert.ErrorIs(t, err, ErrAreaTooLarge)
}
