package provider

import (
	"context"
	"fmt"
	"time"

	"github.com/gmaps-business-provider/internal/domain"
	"github.com/gmaps-business-provider/internal/pkg/tilemath"
	"github.com/gmaps-business-provider/internal/usecase"
	"github.com/gmaps-business-provider/internal/usecase/dto"
	"github.com/google/uuid"
)

// Projection - проекция всех провайдеров Google
const Projection = "Mercator"

type descriptor struct {
	id   uuid.UUID
	name string
}

var descriptors = map[domain.MapType]descriptor{
	domain.MapTypeRoadmap: {
		id:   uuid.MustParse("1F5DB68E-1F81-4CF7-A78F-549480DBC90C"),
		name: "GoogleMap (Business)",
	},
	domain.MapTypeSatellite: {
		id:   uuid.MustParse("0FD8CA5C-D00A-4140-A706-BE63B012CE7A"),
		name: "GoogleMap Satellite (Business)",
	},
	domain.MapTypeHybrid: {
		id:   uuid.MustParse("BCD7B456-5003-4183-A857-8CA29DD6D12A"),
		name: "GoogleMap Hybrid (Business)",
	},
	domain.MapTypeTerrain: {
		id:   uuid.MustParse("2DD34DCC-9C1C-42E7-A1B9-D51891D939C7"),
		name: "GoogleMap Terrain (Business)",
	},
}

// Provider - карта Google for Business одного типа. Тайлы, геокодирование
// и маршруты делегируются общим use case
type Provider struct {
	id      uuid.UUID
	name    string
	mapType domain.MapType

	tiles     *usecase.TileUseCase
	geocoding *usecase.GeocodingUseCase
	routing   *usecase.RoutingUseCase

	now func() time.Time
}

func newProvider(
	mapType domain.MapType,
	tiles *usecase.TileUseCase,
	geocoding *usecase.GeocodingUseCase,
	routing *usecase.RoutingUseCase,
) (*Provider, error) {
	d, ok := descriptors[mapType]
	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownMapType, mapType)
	}
	return &Provider{
		id:        d.id,
		name:      d.name,
		mapType:   mapType,
		tiles:     tiles,
		geocoding: geocoding,
		routing:   routing,
		now:       time.Now,
	}, nil
}

func (p *Provider) ID() uuid.UUID {
	return p.id
}

func (p *Provider) Name() string {
	return p.name
}

func (p *Provider) MapType() domain.MapType {
	return p.mapType
}

func (p *Provider) Projection() string {
	return Projection
}

func (p *Provider) MinZoom() int {
	return 0
}

func (p *Provider) MaxZoom() int {
	return tilemath.MaxZoom
}

// Copyright - строка атрибуции с текущим годом
func (p *Provider) Copyright() string {
	return fmt.Sprintf("Map Data ©%d Google", p.now().Year())
}

func (p *Provider) String() string {
	return p.name
}

// Describe возвращает описание провайдера для API
func (p *Provider) Describe() dto.ProviderResponse {
	return dto.ProviderResponse{
		ID:         p.id.String(),
		Name:       p.name,
		MapType:    p.mapType.String(),
		Projection: p.Projection(),
		Copyright:  p.Copyright(),
		MinZoom:    p.MinZoom(),
		MaxZoom:    p.MaxZoom(),
		TileSize:   p.tiles.TileSize(),
	}
}

// GetTile возвращает тайл или nil, если изображение недоступно
func (p *Provider) GetTile(ctx context.Context, x, y, zoom int, forceRefresh bool) (*domain.TileImage, error) {
	return p.tiles.GetTile(ctx, domain.TileRequest{
		MapType:      p.mapType,
		X:            x,
		Y:            y,
		Zoom:         zoom,
		ForceRefresh: forceRefresh,
	})
}

func (p *Provider) GetPoint(ctx context.Context, keywords string) (*domain.GeocodedPoint, domain.GeoCoderStatusCode, error) {
	return p.geocoding.GetPoint(ctx, keywords)
}

func (p *Provider) GetPoints(ctx context.Context, keywords string) ([]domain.GeocodedPoint, domain.GeoCoderStatusCode, error) {
	return p.geocoding.GetPoints(ctx, keywords)
}

func (p *Provider) GetPlacemark(ctx context.Context, point domain.Point) (*domain.Placemark, domain.GeoCoderStatusCode, error) {
	return p.geocoding.GetPlacemark(ctx, point)
}

func (p *Provider) GetPlacemarks(ctx context.Context, point domain.Point) ([]domain.Placemark, domain.GeoCoderStatusCode, error) {
	return p.geocoding.GetPlacemarks(ctx, point)
}

func (p *Provider) GetRoute(ctx context.Context, req dto.RouteRequest) (*domain.MapRoute, domain.GeoCoderStatusCode, error) {
	return p.routing.GetRoute(ctx, req)
}

func (p *Provider) GetRouteByAddress(ctx context.Context, req dto.AddressRouteRequest) (*domain.MapRoute, domain.GeoCoderStatusCode, error) {
	return p.routing.GetRouteByAddress(ctx, req)
}
