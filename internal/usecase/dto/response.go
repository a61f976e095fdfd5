package dto

import "github.com/gmaps-business-provider/internal/domain"

// GeocodeResponse - результат прямого геокодирования
type GeocodeResponse struct {
	Status domain.GeoCoderStatusCode `json:"status"`
	Points []domain.GeocodedPoint    `json:"points"`
}

// PlacemarksResponse - результат обратного геокодирования
type PlacemarksResponse struct {
	Status     domain.GeoCoderStatusCode `json:"status"`
	Placemarks []domain.Placemark        `json:"placemarks"`
}

// RouteResponse - построенный маршрут, Route пуст если маршрут не найден
type RouteResponse struct {
	Status domain.GeoCoderStatusCode `json:"status"`
	Route  *domain.MapRoute          `json:"route,omitempty"`
}

// ProviderResponse - описание провайдера карты
type ProviderResponse struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	MapType    string `json:"map_type"`
	Projection string `json:"projection"`
	Copyright  string `json:"copyright"`
	MinZoom    int    `json:"min_zoom"`
	MaxZoom    int    `json:"max_zoom"`
	TileSize   int    `json:"tile_size"`
}

// HealthResponse - состояние сервиса
type HealthResponse struct {
	Status      string `json:"status"`
	Credentials bool   `json:"credentials"`
	Cache       string `json:"cache"`
}
