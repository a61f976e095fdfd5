package tilemath

import (
	"testing"

	"github.com/paulmach/orb/maptile"
	"github.com/stretchr/testify/assert"

	"github.com/gmaps-business-provider/internal/domain"
)

func TestTileCenter_ZoomZero(t *testing.T) {
	c := TileCenter(0, 0, 0)
	assert.InDelta(t, 0.0, c.Lat, 1e-9)
	assert.InDelta(t, 0.0, c.Lon, 1e-9)
}

func TestTileToLatLng_Corners(t *testing.T) {
	nw := TileToLatLng(0, 0, 0)
	assert.InDelta(t, 85.0511287798, nw.Lat, 1e-6)
	assert.InDelta(t, -180.0, nw.Lon, 1e-9)

	se := TileToLatLng(1, 1, 0)
	assert.InDelta(t, -85.0511287798, se.Lat, 1e-6)
	assert.InDelta(t, 180.0, se.Lon, 1e-9)
}

func TestTileToLatLng_MatchesMaptileBounds(t *testing.T) {
	tiles := []struct{ x, y, z int }{
		{0, 0, 1}, {1, 1, 1}, {5, 9, 4}, {4401, 2686, 13}, {70000, 45000, 17},
	}

	for _, tc := range tiles {
		bound := maptile.New(uint32(tc.x), uint32(tc.y), maptile.Zoom(tc.z)).Bound()
		nw := TileToLatLng(float64(tc.x), float64(tc.y), tc.z)

		assert.InDelta(t, bound.Min[0], nw.Lon, 1e-6, "west edge of %v", tc)
		assert.InDelta(t, bound.Max[1], nw.Lat, 1e-6, "north edge of %v", tc)
	}
}

func TestTileCenter_RoundTrip(t *testing.T) {
	for zoom := 0; zoom <= 20; zoom += 2 {
		n := 1 << uint(zoom)
		for _, x := range []int{0, n / 3, n / 2, n - 1} {
			for _, y := range []int{0, n / 4, n / 2, n - 1} {
				center := TileCenter(x, y, zoom)
				gotX, gotY := LatLngToTile(center, zoom)
				assert.Equal(t, x, gotX, "x at zoom %d", zoom)
				assert.Equal(t, y, gotY, "y at zoom %d", zoom)
			}
		}
	}
}

func TestLatLngToTile(t *testing.T) {
	// Berlin, zoom 10
	x, y := LatLngToTile(domain.Point{Lat: 52.52, Lon: 13.405}, 10)
	assert.Equal(t, 550, x)
	assert.Equal(t, 335, y)
}

func TestValidTile(t *testing.T) {
	assert.True(t, ValidTile(0, 0, 0))
	assert.True(t, ValidTile(3, 3, 2))
	assert.False(t, ValidTile(4, 0, 2))
	assert.False(t, ValidTile(0, 4, 2))
	assert.False(t, ValidTile(-1, 0, 2))
	assert.False(t, ValidTile(0, 0, -1))
	assert.False(t, ValidTile(0, 0, MaxZoom+1))
}
