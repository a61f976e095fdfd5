package googlemaps

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"

	"github.com/gmaps-business-provider/internal/domain"
	"github.com/gmaps-business-provider/internal/domain/repository"
	"go.uber.org/zap"
)

const (
	geocodePath    = "/maps/api/geocode/json"
	directionsPath = "/maps/api/directions/json"
	staticMapPath  = "/maps/api/staticmap"
)

type client struct {
	baseURL string
	signer  repository.URLSigner
	fetcher repository.ResponseFetcher
	logger  *zap.Logger
}

// NewGoogleMapsClient создает клиент Google Maps Web Services.
// Все запросы подписываются signer и выполняются через fetcher
func NewGoogleMapsClient(
	baseURL string,
	signer repository.URLSigner,
	fetcher repository.ResponseFetcher,
	logger *zap.Logger,
) repository.GoogleMapsRepository {
	return &client{
		baseURL: baseURL,
		signer:  signer,
		fetcher: fetcher,
		logger:  logger,
	}
}

// Geocode выполняет прямое геокодирование адреса
func (c *client) Geocode(ctx context.Context, address string) (*domain.GeocodingResponse, error) {
	params := url.Values{}
	params.Set("address", address)
	params.Set("sensor", "false")

	var resp domain.GeocodingResponse
	if err := c.getJSON(ctx, geocodePath, params, &resp); err != nil {
		return nil, err
	}

	c.logStatus("geocode", resp.Status, resp.ErrorMessage, len(resp.Results))
	return &resp, nil
}

// ReverseGeocode выполняет обратное геокодирование координаты
func (c *client) ReverseGeocode(ctx context.Context, point domain.Point) (*domain.GeocodingResponse, error) {
	params := url.Values{}
	params.Set("latlng", point.LatLng())
	params.Set("sensor", "false")

	var resp domain.GeocodingResponse
	if err := c.getJSON(ctx, geocodePath, params, &resp); err != nil {
		return nil, err
	}

	c.logStatus("reverse_geocode", resp.Status, resp.ErrorMessage, len(resp.Results))
	return &resp, nil
}

// Directions строит маршрут между двумя точками или адресами
func (c *client) Directions(ctx context.Context, req domain.DirectionsRequest) (*domain.DirectionsResponse, error) {
	if req.Origin == "" || req.Destination == "" {
		return nil, fmt.Errorf("origin and destination cannot be empty")
	}

	mode := req.Mode
	if mode == "" {
		mode = domain.TravelModeDriving
	}

	params := url.Values{}
	params.Set("origin", req.Origin)
	params.Set("destination", req.Destination)
	params.Set("mode", string(mode))
	params.Set("sensor", "false")
	if req.AvoidHighways {
		params.Set("avoid", "highways")
	}

	var resp domain.DirectionsResponse
	if err := c.getJSON(ctx, directionsPath, params, &resp); err != nil {
		return nil, err
	}

	c.logStatus("directions", resp.Status, resp.ErrorMessage, len(resp.Routes))
	return &resp, nil
}

// StaticMapURL собирает подписанный URL изображения Static Maps
func (c *client) StaticMapURL(req domain.StaticMapRequest) (string, error) {
	if req.Width <= 0 || req.Height <= 0 {
		return "", fmt.Errorf("invalid static map size %dx%d", req.Width, req.Height)
	}

	mapType := req.MapType
	if mapType == "" {
		mapType = domain.MapTypeRoadmap
	}

	params := url.Values{}
	params.Set("center", req.Center.LatLng())
	params.Set("zoom", strconv.Itoa(req.Zoom))
	params.Set("size", fmt.Sprintf("%dx%d", req.Width, req.Height))
	params.Set("maptype", string(mapType))
	params.Set("format", "png")
	params.Set("sensor", "false")

	return c.signer.SignURL(c.baseURL + staticMapPath + "?" + params.Encode())
}

func (c *client) getJSON(ctx context.Context, path string, params url.Values, out interface{}) error {
	signedURL, err := c.signer.SignURL(c.baseURL + path + "?" + params.Encode())
	if err != nil {
		c.logger.Error("Failed to sign request", zap.String("path", path), zap.Error(err))
		return fmt.Errorf("failed to sign request: %w", err)
	}

	c.logger.Debug("Calling Google Maps API", zap.String("path", path))

	body, err := c.fetcher.Fetch(ctx, signedURL)
	if err != nil {
		c.logger.Error("Google Maps request failed", zap.String("path", path), zap.Error(err))
		return fmt.Errorf("google maps request failed: %w", err)
	}

	if err := json.Unmarshal(body, out); err != nil {
		c.logger.Error("Failed to decode response", zap.String("path", path), zap.Error(err))
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}

func (c *client) logStatus(call string, status domain.GoogleStatus, message string, results int) {
	if status == domain.GoogleStatusOK || status == domain.GoogleStatusZeroResults {
		c.logger.Debug("Google Maps API call finished",
			zap.String("call", call),
			zap.String("status", string(status)),
			zap.Int("results", results))
		return
	}

	c.logger.Warn("Google Maps API returned non-OK status",
		zap.String("call", call),
		zap.String("status", string(status)),
		zap.String("error_message", message))
}
