package tilemath

import (
	"math"

	"github.com/gmaps-business-provider/internal/domain"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/maptile"
)

// MaxZoom - максимальный zoom Google Static Maps
const MaxZoom = 22

// TileToLatLng - обратная проекция Web Mercator: координата в сетке тайлов -> lat/lng.
// Дробные tileX/tileY дают точки внутри тайла
func TileToLatLng(tileX, tileY float64, zoom int) domain.Point {
	n := math.Pow(2.0, float64(zoom))
	return domain.Point{
		Lat: 180.0 / math.Pi * math.Atan(math.Sinh(math.Pi-2.0*math.Pi*tileY/n)),
		Lon: tileX/n*360.0 - 180.0,
	}
}

// TileCenter - центр тайла (x, y, zoom)
func TileCenter(x, y, zoom int) domain.Point {
	return TileToLatLng(float64(x)+0.5, float64(y)+0.5, zoom)
}

// ValidTile проверяет zoom и попадание x/y в сетку zoom
func ValidTile(x, y, zoom int) bool {
	if zoom < 0 || zoom > MaxZoom || x < 0 || y < 0 {
		return false
	}
	return maptile.New(uint32(x), uint32(y), maptile.Zoom(zoom)).Valid()
}

// LatLngToTile - прямая проекция: тайл, содержащий точку
func LatLngToTile(p domain.Point, zoom int) (x, y int) {
	t := maptile.At(orb.Point{p.Lon, p.Lat}, maptile.Zoom(zoom))
	return int(t.X), int(t.Y)
}
