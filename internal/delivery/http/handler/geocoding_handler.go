package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gmaps-business-provider/internal/pkg/errors"
	"github.com/gmaps-business-provider/internal/pkg/utils"
	"github.com/gmaps-business-provider/internal/pkg/validator"
	"github.com/gmaps-business-provider/internal/usecase"
	"github.com/gmaps-business-provider/internal/usecase/dto"
	"go.uber.org/zap"
)

// GeocodingHandler - геокодирование и маршруты Google Maps.
// Статус Google возвращается в теле ответа и в meta.status
type GeocodingHandler struct {
	geocodingUC *usecase.GeocodingUseCase
	routingUC   *usecase.RoutingUseCase
	logger      *zap.Logger
}

func NewGeocodingHandler(geocodingUC *usecase.GeocodingUseCase, routingUC *usecase.RoutingUseCase, logger *zap.Logger) *GeocodingHandler {
	return &GeocodingHandler{
		geocodingUC: geocodingUC,
		routingUC:   routingUC,
		logger:      logger,
	}
}

// Geocode godoc
// @Summary Прямое геокодирование
// @Tags Geocoding
// @Produce json
// @Param q query string true "Адрес"
// @Success 200 {object} utils.SuccessResponse{data=dto.GeocodeResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 502 {object} utils.ErrorResponse
// @Router /api/v1/geocode [get]
func (h *GeocodingHandler) Geocode(c *fiber.Ctx) error {
	var req dto.GeocodeRequest
	req.Query = c.Query("q")

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	points, status, err := h.geocodingUC.GetPoints(c.UserContext(), req.Query)
	if err != nil {
		return utils.SendError(c, toAppError(err))
	}

	return utils.SendSuccess(c, dto.GeocodeResponse{
		Status: status,
		Points: points,
	}, &utils.Meta{
		Total:  len(points),
		Status: status.String(),
	})
}

// ReverseGeocode godoc
// @Summary Обратное геокодирование
// @Tags Geocoding
// @Produce json
// @Param lat query number true "Широта"
// @Param lon query number true "Долгота"
// @Success 200 {object} utils.SuccessResponse{data=dto.PlacemarksResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 502 {object} utils.ErrorResponse
// @Router /api/v1/reverse-geocode [get]
func (h *GeocodingHandler) ReverseGeocode(c *fiber.Ctx) error {
	var req dto.ReverseGeocodeRequest
	if err := c.QueryParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidCoordinates)
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	placemarks, status, err := h.geocodingUC.GetPlacemarks(c.UserContext(), dto.Point{Lat: req.Lat, Lon: req.Lon}.ToDomain())
	if err != nil {
		return utils.SendError(c, toAppError(err))
	}

	return utils.SendSuccess(c, dto.PlacemarksResponse{
		Status:     status,
		Placemarks: placemarks,
	}, &utils.Meta{
		Total:  len(placemarks),
		Status: status.String(),
	})
}

// Route godoc
// @Summary Маршрут между двумя точками
// @Tags Routing
// @Accept json
// @Produce json
// @Param request body dto.RouteRequest true "Начало и конец маршрута"
// @Success 200 {object} utils.SuccessResponse{data=dto.RouteResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 502 {object} utils.ErrorResponse
// @Router /api/v1/route [post]
func (h *GeocodingHandler) Route(c *fiber.Ctx) error {
	var req dto.RouteRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest.WithMessage("Invalid request body"))
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	route, status, err := h.routingUC.GetRoute(c.UserContext(), req)
	if err != nil {
		return utils.SendError(c, toAppError(err))
	}

	return sendRoute(c, dto.RouteResponse{Status: status, Route: route})
}

// RouteByAddress godoc
// @Summary Маршрут между двумя адресами
// @Tags Routing
// @Accept json
// @Produce json
// @Param request body dto.AddressRouteRequest true "Адреса начала и конца маршрута"
// @Success 200 {object} utils.SuccessResponse{data=dto.RouteResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 502 {object} utils.ErrorResponse
// @Router /api/v1/route/address [post]
func (h *GeocodingHandler) RouteByAddress(c *fiber.Ctx) error {
	var req dto.AddressRouteRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest.WithMessage("Invalid request body"))
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	route, status, err := h.routingUC.GetRouteByAddress(c.UserContext(), req)
	if err != nil {
		return utils.SendError(c, toAppError(err))
	}

	return sendRoute(c, dto.RouteResponse{Status: status, Route: route})
}

func sendRoute(c *fiber.Ctx, resp dto.RouteResponse) error {
	total := 0
	if resp.Route != nil {
		total = len(resp.Route.Points)
	}
	return utils.SendSuccess(c, resp, &utils.Meta{
		Total:  total,
		Status: resp.Status.String(),
	})
}
