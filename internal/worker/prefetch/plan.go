package prefetch

import (
	"errors"
	"fmt"

	"github.com/gmaps-business-provider/internal/domain"
	"github.com/gmaps-business-provider/internal/pkg/tilemath"
	"github.com/gmaps-business-provider/internal/pkg/utils"
)

const (
	// MaxJobs ограничивает размер одной области предзагрузки
	MaxJobs = 100000

	// maxMercatorLat - граница сетки Web Mercator
	maxMercatorLat = 85.0511
)

var ErrAreaTooLarge = errors.New("prefetch area too large")

// Job - один тайл для предзагрузки
type Job struct {
	MapType domain.MapType
	X       int
	Y       int
	Zoom    int
}

// Area - прямоугольник в координатах WGS84 и диапазон zoom
type Area struct {
	MapType   domain.MapType
	SouthWest domain.Point
	NorthEast domain.Point
	MinZoom   int
	MaxZoom   int
}

func (a Area) validate() error {
	if !a.MapType.Valid() {
		return fmt.Errorf("%w: %q", domain.ErrUnknownMapType, a.MapType)
	}
	if !utils.ValidateCoordinates(a.SouthWest.Lat, a.SouthWest.Lon) ||
		!utils.ValidateCoordinates(a.NorthEast.Lat, a.NorthEast.Lon) {
		return fmt.Errorf("area coordinates out of range")
	}
	if a.SouthWest.Lat > a.NorthEast.Lat || a.SouthWest.Lon > a.NorthEast.Lon {
		return fmt.Errorf("south-west corner must be below and left of north-east corner")
	}
	if a.MinZoom < 0 || a.MaxZoom > tilemath.MaxZoom || a.MinZoom > a.MaxZoom {
		return fmt.Errorf("invalid zoom range %d-%d", a.MinZoom, a.MaxZoom)
	}
	return nil
}

// Plan перечисляет тайлы области по zoom от меньшего к большему
func Plan(area Area) ([]Job, error) {
	if err := area.validate(); err != nil {
		return nil, err
	}

	north := min(area.NorthEast.Lat, maxMercatorLat)
	south := max(area.SouthWest.Lat, -maxMercatorLat)

	var jobs []Job
	for z := area.MinZoom; z <= area.MaxZoom; z++ {
		last := 1<<uint(z) - 1
		minX, minY := tilemath.LatLngToTile(domain.Point{Lat: north, Lon: area.SouthWest.Lon}, z)
		maxX, maxY := tilemath.LatLngToTile(domain.Point{Lat: south, Lon: area.NorthEast.Lon}, z)
		maxX, maxY = min(maxX, last), min(maxY, last)

		count := (maxX - minX + 1) * (maxY - minY + 1)
		if len(jobs)+count > MaxJobs {
			return nil, fmt.Errorf("%w: more than %d tiles up to zoom %d", ErrAreaTooLarge, MaxJobs, z)
		}

		for x := minX; x <= maxX; x++ {
			for y := minY; y <= maxY; y++ {
				jobs = append(jobs, Job{MapType: area.MapType, X: x, Y: y, Zoom: z})
			}
		}
	}

	return jobs, nil
}
