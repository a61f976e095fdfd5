package usecase_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/gmaps-business-provider/internal/domain"
)

// MockGoogleMapsRepository is a mock of GoogleMapsRepository
type MockGoogleMapsRepository struct {
	mock.Mock
}

func (m *MockGoogleMapsRepository) Geocode(ctx context.Context, address string) (*domain.GeocodingResponse, error) {
	args := m.Called(ctx, address)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.GeocodingResponse), args.Error(1)
}

func (m *MockGoogleMapsRepository) ReverseGeocode(ctx context.Context, point domain.Point) (*domain.GeocodingResponse, error) {
	args := m.Called(ctx, point)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.GeocodingResponse), args.Error(1)
}

func (m *MockGoogleMapsRepository) Directions(ctx context.Context, req domain.DirectionsRequest) (*domain.DirectionsResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DirectionsResponse), args.Error(1)
}

func (m *MockGoogleMapsRepository) StaticMapURL(req domain.StaticMapRequest) (string, error) {
	args := m.Called(req)
	return args.String(0), args.Error(1)
}

// MockCachedFetcher is a mock of CachedFetcher
type MockCachedFetcher struct {
	mock.Mock
}

func (m *MockCachedFetcher) Fetch(ctx context.Context, rawURL string) ([]byte, error) {
	args := m.Called(ctx, rawURL)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockCachedFetcher) Get(ctx context.Context, rawURL string, forceNoCache bool) (*domain.CachedResponse, error) {
	args := m.Called(ctx, rawURL, forceNoCache)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CachedResponse), args.Error(1)
}
