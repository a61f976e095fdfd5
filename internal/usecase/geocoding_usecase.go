package usecase

import (
	"context"
	"strings"

	"github.com/gmaps-business-provider/internal/domain"
	"github.com/gmaps-business-provider/internal/domain/repository"
	"github.com/gmaps-business-provider/internal/pkg/utils"
	"go.uber.org/zap"
)

// GeocodingUseCase - прямое и обратное геокодирование через Google Maps.
// Статусы Google возвращаются кодом, ошибкой считается только сбой запроса
type GeocodingUseCase struct {
	googleRepo repository.GoogleMapsRepository
	logger     *zap.Logger
}

func NewGeocodingUseCase(googleRepo repository.GoogleMapsRepository, logger *zap.Logger) *GeocodingUseCase {
	return &GeocodingUseCase{
		googleRepo: googleRepo,
		logger:     logger,
	}
}

// GetPoints возвращает все найденные точки для адреса
func (uc *GeocodingUseCase) GetPoints(ctx context.Context, keywords string) ([]domain.GeocodedPoint, domain.GeoCoderStatusCode, error) {
	keywords = strings.TrimSpace(keywords)
	if keywords == "" {
		return nil, domain.GeoCoderBadRequest, nil
	}

	resp, err := uc.googleRepo.Geocode(ctx, keywords)
	if err != nil {
		uc.logger.Error("Geocoding failed", zap.String("keywords", keywords), zap.Error(err))
		return nil, domain.GeoCoderExceptionInCode, err
	}

	status := ToGeoCoderStatusCode(resp.Status)
	if status != domain.GeoCoderSuccess {
		return nil, status, nil
	}

	points := make([]domain.GeocodedPoint, 0, len(resp.Results))
	for _, result := range resp.Results {
		points = append(points, ToGeocodedPoint(result))
	}

	return points, status, nil
}

// GetPoint возвращает первую найденную точку
func (uc *GeocodingUseCase) GetPoint(ctx context.Context, keywords string) (*domain.GeocodedPoint, domain.GeoCoderStatusCode, error) {
	points, status, err := uc.GetPoints(ctx, keywords)
	if err != nil || len(points) == 0 {
		return nil, status, err
	}
	return &points[0], status, nil
}

// GetPlacemarks возвращает адреса для координаты
func (uc *GeocodingUseCase) GetPlacemarks(ctx context.Context, point domain.Point) ([]domain.Placemark, domain.GeoCoderStatusCode, error) {
	if !utils.ValidateCoordinates(point.Lat, point.Lon) {
		return nil, domain.GeoCoderBadRequest, nil
	}

	resp, err := uc.googleRepo.ReverseGeocode(ctx, point)
	if err != nil {
		uc.logger.Error("Reverse geocoding failed",
			zap.Float64("lat", point.Lat),
			zap.Float64("lon", point.Lon),
			zap.Error(err))
		return nil, domain.GeoCoderExceptionInCode, err
	}

	status := ToGeoCoderStatusCode(resp.Status)
	if status != domain.GeoCoderSuccess {
		return nil, status, nil
	}

	placemarks := make([]domain.Placemark, 0, len(resp.Results))
	for _, result := range resp.Results {
		placemarks = append(placemarks, ToPlacemark(result))
	}

	return placemarks, status, nil
}

// GetPlacemark возвращает первый адрес для координаты
func (uc *GeocodingUseCase) GetPlacemark(ctx context.Context, point domain.Point) (*domain.Placemark, domain.GeoCoderStatusCode, error) {
	placemarks, status, err := uc.GetPlacemarks(ctx, point)
	if err != nil || len(placemarks) == 0 {
		return nil, status, err
	}
	return &placemarks[0], status, nil
}
