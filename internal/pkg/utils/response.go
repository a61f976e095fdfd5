package utils

import (
	"github.com/gmaps-business-provider/internal/pkg/errors"
	"github.com/gmaps-business-provider/internal/pkg/validator"
	"github.com/gofiber/fiber/v2"
)

// SuccessResponse - конверт всех JSON ответов API, кроме тайлов
type SuccessResponse struct {
	Data interface{} `json:"data"`
	Meta *Meta       `json:"meta,omitempty"`
}

type ErrorResponse struct {
	Error *errors.AppError `json:"error"`
}

// Meta - количество результатов и статус геокодера
type Meta struct {
	Total  int    `json:"total,omitempty"`
	Status string `json:"status,omitempty"`
}

func SendSuccess(c *fiber.Ctx, data interface{}, meta *Meta) error {
	return c.JSON(SuccessResponse{
		Data: data,
		Meta: meta,
	})
}

func SendError(c *fiber.Ctx, err error) error {
	if appErr, ok := errors.As(err); ok {
		return c.Status(appErr.StatusCode).JSON(ErrorResponse{
			Error: appErr,
		})
	}

	if details := validator.FieldErrors(err); details != nil {
		appErr := errors.ErrInvalidRequest.WithDetails(details)
		return c.Status(appErr.StatusCode).JSON(ErrorResponse{
			Error: appErr,
		})
	}

	return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
		Error: errors.ErrInternalServer,
	})
}
