package handler

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/gmaps-business-provider/internal/domain"
	"github.com/gmaps-business-provider/internal/pkg/errors"
	"github.com/gmaps-business-provider/internal/pkg/utils"
	"github.com/gmaps-business-provider/internal/pkg/validator"
	"github.com/gmaps-business-provider/internal/provider"
	"github.com/gmaps-business-provider/internal/usecase/dto"
	"go.uber.org/zap"
)

// TileHandler - обработчик запросов растровых тайлов
type TileHandler struct {
	registry *provider.Registry
	logger   *zap.Logger
}

// NewTileHandler - создание нового TileHandler
func NewTileHandler(registry *provider.Registry, logger *zap.Logger) *TileHandler {
	return &TileHandler{
		registry: registry,
		logger:   logger,
	}
}

// GetTile godoc
// @Summary Растровый тайл Google Maps
// @Description PNG тайл 256x256 для сетки Web Mercator. Полосы с логотипом Google обрезаны
// @Tags Tiles
// @Produce png
// @Param type path string true "roadmap, satellite, hybrid или terrain"
// @Param z path int true "Zoom (0-22)"
// @Param x path int true "X"
// @Param y path int true "Y"
// @Param refresh query bool false "Не читать URL кеш"
// @Success 200 {file} binary
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/providers/{type}/tiles/{z}/{x}/{y}.png [get]
func (h *TileHandler) GetTile(c *fiber.Ctx) error {
	var req dto.TileRequest
	if err := c.ParamsParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidTileCoordinates)
	}
	req.Refresh = c.QueryBool("refresh", false)

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	mapType, err := domain.ParseMapType(req.MapType)
	if err != nil {
		return utils.SendError(c, errors.ErrUnknownMapType)
	}

	p, err := h.registry.Get(mapType)
	if err != nil {
		return utils.SendError(c, toAppError(err))
	}

	tile, err := p.GetTile(c.UserContext(), req.X, req.Y, req.Zoom, req.Refresh)
	if err != nil {
		return utils.SendError(c, toAppError(err))
	}
	if tile == nil {
		return utils.SendError(c, errors.ErrTileNotAvailable)
	}

	cacheStatus := "MISS"
	if tile.FromCache {
		cacheStatus = "HIT"
	}

	c.Set(fiber.HeaderContentType, "image/png")
	c.Set(fiber.HeaderCacheControl, "public, max-age=86400")
	c.Set("X-Cache", cacheStatus)
	c.Set("X-Copyright", p.Copyright())
	c.Set(fiber.HeaderContentLength, fmt.Sprint(len(tile.Data)))
	return c.Send(tile.Data)
}
