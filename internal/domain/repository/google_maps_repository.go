package repository

import (
	"context"

	"github.com/gmaps-business-provider/internal/domain"
)

// ResponseFetcher выполняет GET запрос и возвращает тело ответа
type ResponseFetcher interface {
	Fetch(ctx context.Context, rawURL string) ([]byte, error)
}

// URLSigner подписывает URL запроса к Google Maps for Business
type URLSigner interface {
	SignURL(rawURL string) (string, error)
}

// GoogleMapsRepository определяет методы для работы с Google Maps Web Services
type GoogleMapsRepository interface {
	// Geocode - прямое геокодирование адреса
	Geocode(ctx context.Context, address string) (*domain.GeocodingResponse, error)

	// ReverseGeocode - обратное геокодирование координаты
	ReverseGeocode(ctx context.Context, point domain.Point) (*domain.GeocodingResponse, error)

	// Directions - построение маршрута
	Directions(ctx context.Context, req domain.DirectionsRequest) (*domain.DirectionsResponse, error)

	// StaticMapURL возвращает подписанный URL изображения Static Maps
	StaticMapURL(req domain.StaticMapRequest) (string, error)
}

// CachedFetcher - ResponseFetcher с URL кешем. forceNoCache пропускает чтение
// из кеша, но свежий ответ все равно записывается
type CachedFetcher interface {
	ResponseFetcher
	Get(ctx context.Context, rawURL string, forceNoCache bool) (*domain.CachedResponse, error)
}
