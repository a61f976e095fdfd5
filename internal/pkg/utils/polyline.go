package utils

import (
	"fmt"

	"github.com/gmaps-business-provider/internal/domain"
	"github.com/twpayne/go-polyline"
)

// DecodePolyline декодирует Encoded Polyline Google (точность 1e-5) в точки
func DecodePolyline(encoded string) ([]domain.Point, error) {
	if encoded == "" {
		return nil, nil
	}

	coords, rest, err := polyline.DecodeCoords([]byte(encoded))
	if err != nil {
		return nil, fmt.Errorf("failed to decode polyline: %w", err)
	}
	if len(rest) > 0 {
		return nil, fmt.Errorf("failed to decode polyline: %d trailing bytes", len(rest))
	}

	points := make([]domain.Point, 0, len(coords))
	for _, c := range coords {
		points = append(points, domain.Point{Lat: c[0], Lon: c[1]})
	}
	return points, nil
}

// EncodePolyline кодирует точки в Encoded Polyline
func EncodePolyline(points []domain.Point) string {
	coords := make([][]float64, 0, len(points))
	for _, p := range points {
		coords = append(coords, []float64{p.Lat, p.Lon})
	}
	return string(polyline.EncodeCoords(coords))
}
