package usecase

import (
	"context"

	"github.com/gmaps-business-provider/internal/domain"
	"github.com/gmaps-business-provider/internal/domain/repository"
	"github.com/gmaps-business-provider/internal/usecase/dto"
	"go.uber.org/zap"
)

type RoutingUseCase struct {
	googleRepo repository.GoogleMapsRepository
	logger     *zap.Logger
}

func NewRoutingUseCase(googleRepo repository.GoogleMapsRepository, logger *zap.Logger) *RoutingUseCase {
	return &RoutingUseCase{
		googleRepo: googleRepo,
		logger:     logger,
	}
}

// GetRoute строит маршрут между двумя точками
func (uc *RoutingUseCase) GetRoute(ctx context.Context, req dto.RouteRequest) (*domain.MapRoute, domain.GeoCoderStatusCode, error) {
	return uc.route(ctx, domain.DirectionsRequest{
		Origin:        req.Start.ToDomain().LatLng(),
		Destination:   req.End.ToDomain().LatLng(),
		Mode:          travelMode(req.Walking),
		AvoidHighways: req.AvoidHighways,
	}, req.Overview)
}

// GetRouteByAddress строит маршрут между двумя адресами
func (uc *RoutingUseCase) GetRouteByAddress(ctx context.Context, req dto.AddressRouteRequest) (*domain.MapRoute, domain.GeoCoderStatusCode, error) {
	if req.Start == "" || req.End == "" {
		return nil, domain.GeoCoderBadRequest, nil
	}

	return uc.route(ctx, domain.DirectionsRequest{
		Origin:        req.Start,
		Destination:   req.End,
		Mode:          travelMode(req.Walking),
		AvoidHighways: req.AvoidHighways,
	}, req.Overview)
}

func (uc *RoutingUseCase) route(ctx context.Context, req domain.DirectionsRequest, overview bool) (*domain.MapRoute, domain.GeoCoderStatusCode, error) {
	resp, err := uc.googleRepo.Directions(ctx, req)
	if err != nil {
		uc.logger.Error("Directions request failed",
			zap.String("origin", req.Origin),
			zap.String("destination", req.Destination),
			zap.Error(err))
		return nil, domain.GeoCoderExceptionInCode, err
	}

	status := ToGeoCoderStatusCode(resp.Status)
	if status != domain.GeoCoderSuccess || len(resp.Routes) == 0 {
		return nil, status, nil
	}

	route, err := ToMapRoute(resp.Routes[0], overview)
	if err != nil {
		uc.logger.Error("Failed to decode route", zap.Error(err))
		return nil, domain.GeoCoderExceptionInCode, err
	}

	return route, status, nil
}

func travelMode(walking bool) domain.TravelMode {
	if walking {
		return domain.TravelModeWalking
	}
	return domain.TravelModeDriving
}
