package provider

import (
	"fmt"

	"github.com/gmaps-business-provider/internal/domain"
	"github.com/gmaps-business-provider/internal/infrastructure/googlemaps"
	"github.com/gmaps-business-provider/internal/usecase"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Registry - четыре провайдера Google for Business с общими учетными данными
type Registry struct {
	providers   []*Provider
	byType      map[domain.MapType]*Provider
	byID        map[uuid.UUID]*Provider
	credentials *googlemaps.Credentials
	logger      *zap.Logger
}

func NewRegistry(
	credentials *googlemaps.Credentials,
	tiles *usecase.TileUseCase,
	geocoding *usecase.GeocodingUseCase,
	routing *usecase.RoutingUseCase,
	logger *zap.Logger,
) (*Registry, error) {
	r := &Registry{
		byType:      make(map[domain.MapType]*Provider, len(domain.AllMapTypes)),
		byID:        make(map[uuid.UUID]*Provider, len(domain.AllMapTypes)),
		credentials: credentials,
		logger:      logger,
	}

	for _, mt := range domain.AllMapTypes {
		p, err := newProvider(mt, tiles, geocoding, routing)
		if err != nil {
			return nil, err
		}
		r.providers = append(r.providers, p)
		r.byType[mt] = p
		r.byID[p.ID()] = p
	}

	return r, nil
}

// All возвращает провайдеров в порядке roadmap, satellite, hybrid, terrain
func (r *Registry) All() []*Provider {
	out := make([]*Provider, len(r.providers))
	copy(out, r.providers)
	return out
}

func (r *Registry) Get(mapType domain.MapType) (*Provider, error) {
	p, ok := r.byType[mapType]
	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownMapType, mapType)
	}
	return p, nil
}

func (r *Registry) ByID(id uuid.UUID) (*Provider, bool) {
	p, ok := r.byID[id]
	return p, ok
}

// SetCredentialString задает учетные данные сразу для всех провайдеров.
// Формат: id=<client-id>;key=<private-key>
func (r *Registry) SetCredentialString(s string) error {
	if err := r.credentials.SetCredentialString(s); err != nil {
		r.logger.Error("Invalid Google credentials", zap.Error(err))
		return err
	}
	r.logger.Info("Google credentials updated", zap.Stringer("credentials", r.credentials))
	return nil
}

func (r *Registry) Credentials() *googlemaps.Credentials {
	return r.credentials
}
