package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/gmaps-business-provider/internal/domain"
	"github.com/gmaps-business-provider/internal/usecase"
	"github.com/gmaps-business-provider/internal/usecase/dto"
)

func sampleDirections() *domain.DirectionsResponse {
	return &domain.DirectionsResponse{
		Status: domain.GoogleStatusOK,
		Routes: []domain.DirectionsRoute{{
			Summary:          "CA-99",
			OverviewPolyline: domain.EncodedPolyline{Points: "_p~iF~ps|U"},
			Legs: []domain.DirectionsLeg{{
				Steps: []domain.DirectionsStep{
					{Polyline: domain.EncodedPolyline{Points: "_p~iF~ps|U_ulLnnqC"}},
					{Polyline: domain.EncodedPolyline{Points: "_p~iF~ps|U_ulLnnqC_mqNvxq`@"}},
				},
			}},
		}},
	}
}

func TestRoutingUseCase_GetRoute(t *testing.T) {
	logger := zap.NewNop()
	ctx := context.Background()

	req := dto.RouteRequest{
		Start: dto.Point{Lat: 38.5, Lon: -120.2},
		End:   dto.Point{Lat: 43.252, Lon: -126.453},
	}

	t.Run("driving by steps", func(t *testing.T) {
		repo := &MockGoogleMapsRepository{}
		repo.On("Directions", ctx, domain.DirectionsRequest{
			Origin:      "38.5,-120.2",
			Destination: "43.252,-126.453",
			Mode:        domain.TravelModeDriving,
		}).Return(sampleDirections(), nil).Once()
		uc := usecase.NewRoutingUseCase(repo, logger)

		route, status, err := uc.GetRoute(ctx, req)
		require.NoError(t, err)
		assert.Equal(t, domain.GeoCoderSuccess, status)
		require.NotNil(t, route)
		assert.Equal(t, "CA-99", route.Name)
		assert.Len(t, route.Points, 5)
		repo.AssertExpectations(t)
	})

	t.Run("walking overview avoiding highways", func(t *testing.T) {
		repo := &MockGoogleMapsRepository{}
		repo.On("Directions", ctx, domain.DirectionsRequest{
			Origin:        "38.5,-120.2",
			Destination:   "43.252,-126.453",
			Mode:          domain.TravelModeWalking,
			AvoidHighways: true,
		}).Return(sampleDirections(), nil).Once()
		uc := usecase.NewRoutingUseCase(repo, logger)

		walking := req
		walking.Walking = true
		walking.AvoidHighways = true
		walking.Overview = true

		route, _, err := uc.GetRoute(ctx, walking)
		require.NoError(t, err)
		require.Len(t, route.Points, 1)
		repo.AssertExpectations(t)
	})

	t.Run("no routes", func(t *testing.T) {
		repo := &MockGoogleMapsRepository{}
		repo.On("Directions", ctx, mock.Anything).
			Return(&domain.DirectionsResponse{Status: domain.GoogleStatusZeroResults}, nil)
		uc := usecase.NewRoutingUseCase(repo, logger)

		route, status, err := uc.GetRoute(ctx, req)
		require.NoError(t, err)
		assert.Equal(t, domain.GeoCoderUnknownAddress, status)
		assert.Nil(t, route)
	})

	t.Run("transport error", func(t *testing.T) {
		repo := &MockGoogleMapsRepository{}
		repo.On("Directions", ctx, mock.Anything).Return(nil, errors.New("timeout"))
		uc := usecase.NewRoutingUseCase(repo, logger)

		route, status, err := uc.GetRoute(ctx, req)
		require.Error(t, err)
		assert.Equal(t, domain.GeoCoderExceptionInCode, status)
		assert.Nil(t, route)
	})

	t.Run("undecodable polyline", func(t *testing.T) {
		resp := sampleDirections()
		resp.Routes[0].Legs[0].Steps[0].Polyline.Points = "_p~iF~ps|U_ulL"

		repo := &MockGoogleMapsRepository{}
		repo.On("Directions", ctx, mock.Anything).Return(resp, nil)
		uc := usecase.NewRoutingUseCase(repo, logger)

		_, status, err := uc.GetRoute(ctx, req)
		require.Error(t, err)
		assert.Equal(t, domain.GeoCoderExceptionInCode, status)
	})
}

func TestRoutingUseCase_GetRouteByAddress(t *testing.T) {
	logger := zap.NewNop()
	ctx := context.Background()

	repo := &MockGoogleMapsRepository{}
	repo.On("Directions", ctx, domain.DirectionsRequest{
		Origin:      "Berlin",
		Destination: "Potsdam",
		Mode:        domain.TravelModeDriving,
	}).Return(sampleDirections(), nil).Once()
	uc := usecase.NewRoutingUseCase(repo, logger)

	route, status, err := uc.GetRouteByAddress(ctx, dto.AddressRouteRequest{Start: "Berlin", End: "Potsdam"})
	require.NoError(t, err)
	assert.Equal(t, domain.GeoCoderSuccess, status)
	require.NotNil(t, route)
	repo.AssertExpectations(t)

	route, status, err = uc.GetRouteByAddress(ctx, dto.AddressRouteRequest{Start: "Berlin"})
	require.NoError(t, err)
	assert.Equal(t, domain.GeoCoderBadRequest, status)
	assert.Nil(t, route)
}
