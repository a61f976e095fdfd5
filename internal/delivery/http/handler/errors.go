package handler

import (
	"errors"

	"github.com/gmaps-business-provider/internal/domain"
	apperrors "github.com/gmaps-business-provider/internal/pkg/errors"
)

// toAppError переводит ошибку use case в ошибку API
func toAppError(err error) error {
	if appErr, ok := apperrors.As(err); ok {
		return appErr
	}
	if errors.Is(err, domain.ErrUnknownMapType) {
		return apperrors.ErrUnknownMapType
	}
	return apperrors.ErrUpstreamUnavailable.WithDetails(map[string]interface{}{
		"reason": err.Error(),
	})
}
