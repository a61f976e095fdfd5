package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gmaps-business-provider/internal/pkg/errors"
	"github.com/gmaps-business-provider/internal/pkg/utils"
	"github.com/gmaps-business-provider/internal/provider"
	"github.com/gmaps-business-provider/internal/usecase/dto"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ProviderHandler - список провайдеров карт
type ProviderHandler struct {
	registry *provider.Registry
	logger   *zap.Logger
}

func NewProviderHandler(registry *provider.Registry, logger *zap.Logger) *ProviderHandler {
	return &ProviderHandler{
		registry: registry,
		logger:   logger,
	}
}

// List godoc
// @Summary Список провайдеров Google Maps for Business
// @Tags Providers
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=[]dto.ProviderResponse}
// @Router /api/v1/providers [get]
func (h *ProviderHandler) List(c *fiber.Ctx) error {
	providers := h.registry.All()
	result := make([]dto.ProviderResponse, 0, len(providers))
	for _, p := range providers {
		result = append(result, p.Describe())
	}

	return utils.SendSuccess(c, result, &utils.Meta{
		Total: len(result),
	})
}

// GetByID godoc
// @Summary Провайдер по UUID
// @Tags Providers
// @Produce json
// @Param id path string true "UUID провайдера"
// @Success 200 {object} utils.SuccessResponse{data=dto.ProviderResponse}
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/providers/{id} [get]
func (h *ProviderHandler) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest.WithMessage("Provider id must be a UUID"))
	}

	p, ok := h.registry.ByID(id)
	if !ok {
		return utils.SendError(c, errors.ErrUnknownMapType.WithMessage("Provider not found"))
	}

	return utils.SendSuccess(c, p.Describe(), nil)
}
