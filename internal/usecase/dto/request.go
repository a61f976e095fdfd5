package dto

import "github.com/gmaps-business-provider/internal/domain"

// GeocodeRequest - запрос на прямое геокодирование
type GeocodeRequest struct {
	Query string `query:"q" json:"q" validate:"required,min=1,max=512"`
}

// ReverseGeocodeRequest - запрос на обратное геокодирование
type ReverseGeocodeRequest struct {
	Lat float64 `query:"lat" json:"lat" validate:"min=-90,max=90"`
	Lon float64 `query:"lon" json:"lon" validate:"min=-180,max=180"`
}

// Point - координаты точки
type Point struct {
	Lat float64 `json:"lat" validate:"min=-90,max=90"`
	Lon float64 `json:"lon" validate:"min=-180,max=180"`
}

func (p Point) ToDomain() domain.Point {
	return domain.Point{Lat: p.Lat, Lon: p.Lon}
}

// RouteRequest - маршрут между двумя точками
type RouteRequest struct {
	Start         Point `json:"start"`
	End           Point `json:"end"`
	Walking       bool  `json:"walking"`
	AvoidHighways bool  `json:"avoid_highways"`
	// Overview - вернуть сглаженную overview polyline вместо шагов
	Overview bool `json:"overview"`
}

// AddressRouteRequest - маршрут между двумя адресами
type AddressRouteRequest struct {
	Start         string `json:"start" validate:"required,max=512"`
	End           string `json:"end" validate:"required,max=512"`
	Walking       bool   `json:"walking"`
	AvoidHighways bool   `json:"avoid_highways"`
	Overview      bool   `json:"overview"`
}

// TileRequest - параметры пути тайла
type TileRequest struct {
	MapType string `params:"type" validate:"required"`
	Zoom    int    `params:"z" validate:"min=0,max=22"`
	X       int    `params:"x" validate:"min=0"`
	Y       int    `params:"y" validate:"min=0"`
	Refresh bool   `query:"refresh"`
}
