package domain

import "strconv"

// Point - географическая точка (WGS84)
type Point struct {
	Lat float64 `json:"lat" db:"lat"`
	Lon float64 `json:"lon" db:"lon"`
}

// LatLng форматирует точку как "lat,lng" для параметров Google Maps
func (p Point) LatLng() string {
	return strconv.FormatFloat(p.Lat, 'f', -1, 64) + "," + strconv.FormatFloat(p.Lon, 'f', -1, 64)
}
