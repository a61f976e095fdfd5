package usecase

import (
	"context"

	"github.com/gmaps-business-provider/internal/config"
	"github.com/gmaps-business-provider/internal/domain"
	"github.com/gmaps-business-provider/internal/domain/repository"
	"github.com/gmaps-business-provider/internal/pkg/errors"
	"github.com/gmaps-business-provider/internal/pkg/imageutil"
	"github.com/gmaps-business-provider/internal/pkg/tilemath"
	"go.uber.org/zap"
)

// TileUseCase собирает тайлы Web Mercator из изображений Static Maps
type TileUseCase struct {
	googleRepo repository.GoogleMapsRepository
	fetcher    repository.CachedFetcher
	tileSize   int
	margin     int
	logger     *zap.Logger
}

func NewTileUseCase(
	googleRepo repository.GoogleMapsRepository,
	fetcher repository.CachedFetcher,
	tileCfg config.TileConfig,
	logger *zap.Logger,
) *TileUseCase {
	margin := 0
	if tileCfg.RemoveBranding {
		margin = tileCfg.BrandingMargin
	}
	return &TileUseCase{
		googleRepo: googleRepo,
		fetcher:    fetcher,
		tileSize:   tileCfg.Size,
		margin:     margin,
		logger:     logger,
	}
}

// TileSize - сторона готового тайла в пикселях
func (uc *TileUseCase) TileSize() int {
	return uc.tileSize
}

// GetTile возвращает PNG тайла. Изображение запрашивается выше тайла на
// margin пикселей сверху и снизу, полосы с логотипом Google обрезаются.
// Ошибки сети и декодирования логируются, результат при этом nil, nil
func (uc *TileUseCase) GetTile(ctx context.Context, req domain.TileRequest) (*domain.TileImage, error) {
	if !req.MapType.Valid() {
		return nil, errors.ErrUnknownMapType
	}
	if !tilemath.ValidTile(req.X, req.Y, req.Zoom) {
		return nil, errors.ErrInvalidTileCoordinates
	}

	log := uc.logger.With(
		zap.String("map_type", req.MapType.String()),
		zap.Int("z", req.Zoom),
		zap.Int("x", req.X),
		zap.Int("y", req.Y),
	)

	staticURL, err := uc.googleRepo.StaticMapURL(domain.StaticMapRequest{
		Center:  tilemath.TileCenter(req.X, req.Y, req.Zoom),
		Zoom:    req.Zoom,
		Width:   uc.tileSize,
		Height:  uc.tileSize + 2*uc.margin,
		MapType: req.MapType,
	})
	if err != nil {
		log.Error("Failed to build static map url", zap.Error(err))
		return nil, nil
	}

	resp, err := uc.fetcher.Get(ctx, staticURL, req.ForceRefresh)
	if err != nil {
		log.Warn("Failed to fetch static map image", zap.Error(err))
		return nil, nil
	}

	if uc.margin == 0 {
		return &domain.TileImage{
			Data:      resp.Body,
			Width:     uc.tileSize,
			Height:    uc.tileSize,
			FromCache: resp.FromCache,
		}, nil
	}

	img, format, err := imageutil.Decode(resp.Body)
	if err != nil {
		log.Warn("Failed to decode static map image", zap.Bool("from_cache", resp.FromCache), zap.Error(err))
		return nil, nil
	}

	cropped, err := imageutil.CropRows(img, uc.margin, uc.tileSize)
	if err != nil {
		log.Warn("Static map image has unexpected size",
			zap.String("format", format),
			zap.Int("width", img.Bounds().Dx()),
			zap.Int("height", img.Bounds().Dy()),
			zap.Error(err))
		return nil, nil
	}

	data, err := imageutil.EncodePNG(cropped)
	if err != nil {
		log.Error("Failed to encode tile", zap.Error(err))
		return nil, nil
	}

	log.Debug("Tile assembled", zap.Bool("from_cache", resp.FromCache), zap.Int("size", len(data)))

	return &domain.TileImage{
		Data:      data,
		Width:     cropped.Bounds().Dx(),
		Height:    cropped.Bounds().Dy(),
		FromCache: resp.FromCache,
	}, nil
}
